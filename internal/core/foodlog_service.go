package core

import (
	"context"
	"fmt"
	"time"

	"github.com/krthik777/nutritrackBackend/internal/db"
	"github.com/krthik777/nutritrackBackend/internal/models"
)

// dayLabels are the fixed 3-letter labels of the weekly summary,
// Sunday-first to match time.Weekday numbering.
var dayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type foodLogService struct {
	foodLogRepo db.FoodLogRepository
	now         func() time.Time
}

// NewFoodLogService creates a FoodLogService instance. The now function
// supplies "current time" for timestamping and the week window; pass
// time.Now in production and a fixed clock in tests.
func NewFoodLogService(foodLogRepo db.FoodLogRepository, now func() time.Time) FoodLogService {
	if now == nil {
		now = time.Now
	}
	return &foodLogService{foodLogRepo: foodLogRepo, now: now}
}

func (s *foodLogService) ListByEmail(ctx context.Context, email string) ([]models.FoodLog, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	entries, err := s.foodLogRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list food logs for '%s': %w", email, err)
	}
	return entries, nil
}

// Create validates all six business fields before the store is touched, so
// a rejected entry never partially persists. The timestamp is always
// assigned here; any client-supplied value is discarded.
func (s *foodLogService) Create(ctx context.Context, entry *models.FoodLog) (*models.FoodLog, error) {
	if entry == nil || entry.Email == "" {
		return nil, ErrMissingEmail
	}
	switch {
	case entry.DishName == "":
		return nil, fmt.Errorf("%w: dishName", ErrMissingField)
	case entry.Calories == 0:
		return nil, fmt.Errorf("%w: calories", ErrMissingField)
	case entry.Ingredients == "":
		return nil, fmt.Errorf("%w: ingredients", ErrMissingField)
	case entry.ServingSize == "":
		return nil, fmt.Errorf("%w: servingSize", ErrMissingField)
	case entry.Healthiness == "":
		return nil, fmt.Errorf("%w: healthiness", ErrMissingField)
	}

	entry.Timestamp = s.now()
	if err := s.foodLogRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create food log for '%s': %w", entry.Email, err)
	}
	return entry, nil
}

// WeeklyCalories computes per-day calorie totals for the current calendar
// week in two passes: a window query for the owner's entries, then an
// in-process grouping projected onto the fixed Sun..Sat template.
func (s *foodLogService) WeeklyCalories(ctx context.Context, email string) ([]models.DayCalories, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}

	now := s.now()
	start, end := weekWindow(now)
	entries, err := s.foodLogRepo.ListByEmailBetween(ctx, email, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly food logs for '%s': %w", email, err)
	}

	// Timestamps come back from the store in UTC; bucket them in the
	// window's own zone so an entry logged Monday evening local time
	// counts as Monday, not its UTC day.
	var totals [7]float64
	for _, entry := range entries {
		totals[int(entry.Timestamp.In(now.Location()).Weekday())] += entry.Calories
	}

	summary := make([]models.DayCalories, 7)
	for i := range summary {
		summary[i] = models.DayCalories{Day: dayLabels[i], Calories: totals[i]}
	}
	return summary, nil
}

// weekWindow returns the current calendar week's bounds: the most recent
// Sunday at 00:00:00.000 local time through the following Saturday at
// 23:59:59.999, both inclusive. The week starts on Sunday regardless of
// locale.
func weekWindow(now time.Time) (start, end time.Time) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start = midnight.AddDate(0, 0, -int(midnight.Weekday()))
	end = start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return start, end
}
