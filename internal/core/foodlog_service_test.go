package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/krthik777/nutritrackBackend/internal/models"
)

// mockFoodLogRepository filters its entries by the window bounds it is
// given, mimicking the store's inclusive $gte/$lte query.
type mockFoodLogRepository struct {
	entries     []models.FoodLog
	created     []models.FoodLog
	listCalls   int
	windowCalls int
	lastStart   time.Time
	lastEnd     time.Time
	err         error
}

func (m *mockFoodLogRepository) ListByEmail(ctx context.Context, email string) ([]models.FoodLog, error) {
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *mockFoodLogRepository) Create(ctx context.Context, entry *models.FoodLog) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, *entry)
	return nil
}

func (m *mockFoodLogRepository) ListByEmailBetween(ctx context.Context, email string, start, end time.Time) ([]models.FoodLog, error) {
	m.windowCalls++
	m.lastStart = start
	m.lastEnd = end
	if m.err != nil {
		return nil, m.err
	}
	var selected []models.FoodLog
	for _, e := range m.entries {
		if e.Email == email && !e.Timestamp.Before(start) && !e.Timestamp.After(end) {
			selected = append(selected, e)
		}
	}
	return selected, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// Thursday, March 6 2025. The surrounding week runs Sunday March 2
// through Saturday March 8.
var testNow = time.Date(2025, time.March, 6, 15, 0, 0, 0, time.UTC)

func logAt(email string, ts time.Time, calories float64) models.FoodLog {
	return models.FoodLog{
		Email:       email,
		DishName:    "dish",
		Calories:    calories,
		Ingredients: "stuff",
		ServingSize: "1 cup",
		Healthiness: "ok",
		Timestamp:   ts,
	}
}

func TestWeekWindow(t *testing.T) {
	start, end := weekWindow(testNow)

	wantStart := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.March, 8, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	if !start.Equal(wantStart) {
		t.Errorf("week start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Errorf("week end = %v, want %v", end, wantEnd)
	}

	// A "now" of exactly Sunday midnight starts its own week.
	start, _ = weekWindow(wantStart)
	if !start.Equal(wantStart) {
		t.Errorf("week start for Sunday midnight = %v, want %v", start, wantStart)
	}
}

func TestWeeklyCaloriesGroupsAndZeroFills(t *testing.T) {
	repo := &mockFoodLogRepository{
		entries: []models.FoodLog{
			// Monday 100 and Wednesday 50 inside the week; one entry in
			// the prior week and one for another owner, both ignored.
			logAt("a@b.com", time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC), 100),
			logAt("a@b.com", time.Date(2025, time.March, 5, 19, 0, 0, 0, time.UTC), 50),
			logAt("a@b.com", time.Date(2025, time.February, 24, 9, 0, 0, 0, time.UTC), 999),
			logAt("other@b.com", time.Date(2025, time.March, 4, 9, 0, 0, 0, time.UTC), 777),
		},
	}
	svc := NewFoodLogService(repo, fixedClock(testNow))

	summary, err := svc.WeeklyCalories(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("WeeklyCalories returned error: %v", err)
	}

	want := []models.DayCalories{
		{Day: "Sun", Calories: 0},
		{Day: "Mon", Calories: 100},
		{Day: "Tue", Calories: 0},
		{Day: "Wed", Calories: 50},
		{Day: "Thu", Calories: 0},
		{Day: "Fri", Calories: 0},
		{Day: "Sat", Calories: 0},
	}
	if len(summary) != 7 {
		t.Fatalf("summary has %d entries, want 7", len(summary))
	}
	for i := range want {
		if summary[i] != want[i] {
			t.Errorf("summary[%d] = %+v, want %+v", i, summary[i], want[i])
		}
	}
}

func TestWeeklyCaloriesWindowBoundaries(t *testing.T) {
	weekStart := time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC)
	weekEnd := time.Date(2025, time.March, 8, 23, 59, 59, int(999*time.Millisecond), time.UTC)

	repo := &mockFoodLogRepository{
		entries: []models.FoodLog{
			// Sunday 00:00:00.000 and Saturday 23:59:59.999 are both
			// inclusive; one millisecond past the end is the next week.
			logAt("a@b.com", weekStart, 10),
			logAt("a@b.com", weekEnd, 20),
			logAt("a@b.com", weekEnd.Add(time.Millisecond), 40),
		},
	}
	svc := NewFoodLogService(repo, fixedClock(testNow))

	summary, err := svc.WeeklyCalories(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("WeeklyCalories returned error: %v", err)
	}
	if summary[0].Calories != 10 {
		t.Errorf("Sunday total = %v, want 10 (week-start boundary must be included)", summary[0].Calories)
	}
	if summary[6].Calories != 20 {
		t.Errorf("Saturday total = %v, want 20 (week-end boundary must be included)", summary[6].Calories)
	}
	var total float64
	for _, d := range summary {
		total += d.Calories
	}
	if total != 30 {
		t.Errorf("week total = %v, want 30 (entry 1ms past week end must be excluded)", total)
	}
}

func TestWeeklyCaloriesBucketsInServerZone(t *testing.T) {
	// Server runs at UTC-5; the store hands timestamps back as UTC
	// instants. An entry logged Monday 22:00 local is Tuesday 03:00 UTC
	// and must still count toward Monday.
	loc := time.FixedZone("UTC-5", -5*60*60)
	localNow := time.Date(2025, time.March, 6, 15, 0, 0, 0, loc) // Thursday

	mondayLocalEvening := time.Date(2025, time.March, 4, 3, 0, 0, 0, time.UTC)
	repo := &mockFoodLogRepository{
		entries: []models.FoodLog{
			logAt("a@b.com", mondayLocalEvening, 100),
		},
	}
	svc := NewFoodLogService(repo, fixedClock(localNow))

	summary, err := svc.WeeklyCalories(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("WeeklyCalories returned error: %v", err)
	}
	if summary[1].Calories != 100 {
		t.Errorf("Monday total = %v, want 100 (bucketing must follow the server zone, not UTC)", summary[1].Calories)
	}
	if summary[2].Calories != 0 {
		t.Errorf("Tuesday total = %v, want 0", summary[2].Calories)
	}

	wantStart := time.Date(2025, time.March, 2, 0, 0, 0, 0, loc)
	if !repo.lastStart.Equal(wantStart) {
		t.Errorf("window start = %v, want local Sunday midnight %v", repo.lastStart, wantStart)
	}
}

func TestWeeklyCaloriesMissingEmail(t *testing.T) {
	repo := &mockFoodLogRepository{}
	svc := NewFoodLogService(repo, fixedClock(testNow))

	_, err := svc.WeeklyCalories(context.Background(), "")
	if !errors.Is(err, ErrMissingEmail) {
		t.Fatalf("error = %v, want ErrMissingEmail", err)
	}
	if repo.windowCalls != 0 {
		t.Errorf("repository queried %d times, want 0", repo.windowCalls)
	}
}

func TestCreateValidatesRequiredFields(t *testing.T) {
	base := logAt("a@b.com", time.Time{}, 250)

	tests := []struct {
		name   string
		mutate func(*models.FoodLog)
	}{
		{"missing email", func(e *models.FoodLog) { e.Email = "" }},
		{"missing dishName", func(e *models.FoodLog) { e.DishName = "" }},
		{"zero calories", func(e *models.FoodLog) { e.Calories = 0 }},
		{"missing ingredients", func(e *models.FoodLog) { e.Ingredients = "" }},
		{"missing servingSize", func(e *models.FoodLog) { e.ServingSize = "" }},
		{"missing healthiness", func(e *models.FoodLog) { e.Healthiness = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockFoodLogRepository{}
			svc := NewFoodLogService(repo, fixedClock(testNow))

			entry := base
			tt.mutate(&entry)
			if _, err := svc.Create(context.Background(), &entry); err == nil {
				t.Fatal("Create succeeded, want validation error")
			}
			if len(repo.created) != 0 {
				t.Errorf("repository stored %d entries, want 0 (no partial insert)", len(repo.created))
			}
		})
	}
}

func TestCreateStampsServerTimestamp(t *testing.T) {
	repo := &mockFoodLogRepository{}
	svc := NewFoodLogService(repo, fixedClock(testNow))

	entry := logAt("a@b.com", time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC), 250)
	stored, err := svc.Create(context.Background(), &entry)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if !stored.Timestamp.Equal(testNow) {
		t.Errorf("timestamp = %v, want server time %v (client value must be overridden)", stored.Timestamp, testNow)
	}
	if len(repo.created) != 1 {
		t.Fatalf("repository stored %d entries, want 1", len(repo.created))
	}
}
