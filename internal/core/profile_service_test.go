package core

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/krthik777/nutritrackBackend/internal/db"
	"github.com/krthik777/nutritrackBackend/internal/models"
)

type mockProfileRepository struct {
	profiles    map[string]models.Profile
	getCalls    int
	upsertCalls int
	upsertErr   error
}

func newMockProfileRepository() *mockProfileRepository {
	return &mockProfileRepository{profiles: map[string]models.Profile{}}
}

func (m *mockProfileRepository) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	m.getCalls++
	p, ok := m.profiles[email]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &p, nil
}

func (m *mockProfileRepository) Upsert(ctx context.Context, profile *models.Profile) error {
	m.upsertCalls++
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.profiles[profile.Email] = *profile
	return nil
}

func (m *mockProfileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := m.profiles[email]
	return ok, nil
}

func TestProfileGetMissingEmailSkipsStore(t *testing.T) {
	repo := newMockProfileRepository()
	svc := NewProfileService(repo)

	_, err := svc.GetByEmail(context.Background(), "")
	if !errors.Is(err, ErrMissingEmail) {
		t.Fatalf("error = %v, want ErrMissingEmail", err)
	}
	if repo.getCalls != 0 {
		t.Errorf("store read %d times, want 0", repo.getCalls)
	}
}

func TestProfileGetNotFound(t *testing.T) {
	svc := NewProfileService(newMockProfileRepository())

	_, err := svc.GetByEmail(context.Background(), "a@b.com")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("error = %v, want ErrProfileNotFound", err)
	}
}

func TestProfileUpsertReplacesNotMerges(t *testing.T) {
	repo := newMockProfileRepository()
	svc := NewProfileService(repo)

	first := models.Profile{Email: "a@b.com", Name: "Alice", Goal: "bulk"}
	if _, err := svc.Upsert(context.Background(), &first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	// Second submission for the same email fully replaces prior fields.
	second := models.Profile{Email: "a@b.com", Name: "Alice B"}
	if _, err := svc.Upsert(context.Background(), &second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if len(repo.profiles) != 1 {
		t.Fatalf("store holds %d profiles, want 1", len(repo.profiles))
	}
	stored := repo.profiles["a@b.com"]
	if stored.Name != "Alice B" || stored.Goal != "" {
		t.Errorf("stored profile = %+v, want full replacement with no merged fields", stored)
	}
}

func TestProfileUpsertDiscardsClientSuppliedID(t *testing.T) {
	repo := newMockProfileRepository()
	svc := NewProfileService(repo)

	profile := models.Profile{
		ID:    primitive.NewObjectID(),
		Email: "a@b.com",
		Name:  "Alice",
	}
	if _, err := svc.Upsert(context.Background(), &profile); err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}

	// The replacement document must not carry an _id; Mongo rejects a
	// replace whose _id differs from the stored document's.
	stored := repo.profiles["a@b.com"]
	if !stored.ID.IsZero() {
		t.Errorf("stored profile id = %v, want zero (client id must be discarded)", stored.ID)
	}
}

func TestProfileUpsertDuplicateKey(t *testing.T) {
	repo := newMockProfileRepository()
	repo.upsertErr = db.ErrDuplicateKey
	svc := NewProfileService(repo)

	_, err := svc.Upsert(context.Background(), &models.Profile{Email: "a@b.com"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("error = %v, want ErrDuplicateEmail", err)
	}
}

func TestProfileUpsertMissingEmailSkipsStore(t *testing.T) {
	repo := newMockProfileRepository()
	svc := NewProfileService(repo)

	_, err := svc.Upsert(context.Background(), &models.Profile{Name: "no email"})
	if !errors.Is(err, ErrMissingEmail) {
		t.Fatalf("error = %v, want ErrMissingEmail", err)
	}
	if repo.upsertCalls != 0 {
		t.Errorf("store written %d times, want 0", repo.upsertCalls)
	}
}

func TestHasDetails(t *testing.T) {
	repo := newMockProfileRepository()
	repo.profiles["a@b.com"] = models.Profile{Email: "a@b.com"}
	svc := NewProfileService(repo)

	exists, err := svc.HasDetails(context.Background(), "a@b.com")
	if err != nil || !exists {
		t.Errorf("HasDetails(a@b.com) = %v, %v; want true, nil", exists, err)
	}
	exists, err = svc.HasDetails(context.Background(), "nobody@b.com")
	if err != nil || exists {
		t.Errorf("HasDetails(nobody@b.com) = %v, %v; want false, nil", exists, err)
	}
	if _, err := svc.HasDetails(context.Background(), ""); !errors.Is(err, ErrMissingEmail) {
		t.Errorf("HasDetails(\"\") error = %v, want ErrMissingEmail", err)
	}
}
