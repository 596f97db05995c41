package profile

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/firestore"

	"github.com/propmandi/marketplace-api/internal/testutil"
)

// newEmulatorStore connects to the Firestore emulator, skipping if it is not
// running.
func newEmulatorStore(t *testing.T) *FirestoreStore {
	t.Helper()
	testutil.SkipIfFirestoreUnavailable(t)
	testutil.SetupEmulator(t)
	testutil.ClearFirestore(t)

	client, err := firestore.NewClient(context.Background(), testutil.ProjectID)
	if err != nil {
		t.Fatalf("failed to create Firestore client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return NewFirestoreStore(client)
}

func TestFirestoreCreateGetRoundTrip(t *testing.T) {
	store := newEmulatorStore(t)
	ctx := context.Background()

	created, err := store.Create(ctx, "uid-rt", CreateParams{
		Name:  "  Asha Verma ",
		Email: " ASHA@Example.COM ",
		Phone: "987-654-3210",
		Role:  RoleBuilder,
		Bio:   "custom villas",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Email != "asha@example.com" || created.Phone != "9876543210" {
		t.Errorf("normalization: email=%q phone=%q", created.Email, created.Phone)
	}

	got, err := store.Get(ctx, "uid-rt")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != "uid-rt" || got.Name != "Asha Verma" || got.Role != RoleBuilder {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("createdAt changed across round trip: %v vs %v", got.CreatedAt, created.CreatedAt)
	}
}

func TestFirestoreCreateConflict(t *testing.T) {
	store := newEmulatorStore(t)
	ctx := context.Background()

	params := CreateParams{Name: "Asha", Email: "a@b.co", Phone: "9876543210", Role: RoleBuilder}
	if _, err := store.Create(ctx, "uid-dup", params); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := store.Create(ctx, "uid-dup", params); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestFirestoreGetNotFound(t *testing.T) {
	store := newEmulatorStore(t)
	if _, err := store.Get(context.Background(), "uid-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFirestoreUpdate(t *testing.T) {
	store := newEmulatorStore(t)
	ctx := context.Background()
	strptr := func(s string) *string { return &s }

	if _, err := store.Create(ctx, "uid-upd", CreateParams{
		Name: "Asha", Email: "a@b.co", Phone: "9876543210", Role: RoleBuilder, Location: "Pune",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := store.Update(ctx, "uid-upd", UpdateParams{
		Location: strptr("Mumbai"),
		Bio:      strptr("  renovations  "),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Location != "Mumbai" || updated.Bio != "renovations" {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.Name != "Asha" {
		t.Errorf("unset field changed: name=%q", updated.Name)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Errorf("updatedAt not bumped: %v vs %v", updated.UpdatedAt, updated.CreatedAt)
	}

	if _, err := store.Update(ctx, "uid-absent", UpdateParams{Name: strptr("X")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing profile, got %v", err)
	}
}

func TestFirestoreSearch(t *testing.T) {
	store := newEmulatorStore(t)
	ctx := context.Background()

	seed := []struct {
		uid    string
		params CreateParams
	}{
		{"uid-s1", CreateParams{Name: "Asha Verma", Email: "a@b.co", Phone: "9876543210", Role: RoleBuilder, Location: "Pune", Bio: "custom villas"}},
		{"uid-s2", CreateParams{Name: "Birju", Email: "b@b.co", Phone: "9876543211", Role: RoleBuilder, Location: "Mumbai", ServiceName: "Verma Interiors"}},
		{"uid-s3", CreateParams{Name: "Chitra", Email: "c@b.co", Phone: "9876543212", Role: RoleAdvocate, Location: "Pune"}},
	}
	for _, s := range seed {
		if _, err := store.Create(ctx, s.uid, s.params); err != nil {
			t.Fatalf("seed %s failed: %v", s.uid, err)
		}
	}

	res, err := store.Search(ctx, SearchFilters{Role: RoleBuilder})
	if err != nil {
		t.Fatalf("role search failed: %v", err)
	}
	if res.Total != 2 {
		t.Errorf("role filter: expected 2, got %d", res.Total)
	}

	res, err = store.Search(ctx, SearchFilters{Role: RoleBuilder, Location: "Pune"})
	if err != nil {
		t.Fatalf("conjunctive search failed: %v", err)
	}
	if res.Total != 1 || res.Profiles[0].ID != "uid-s1" {
		t.Errorf("conjunctive filter: total=%d", res.Total)
	}

	res, err = store.Search(ctx, SearchFilters{Search: "verma"})
	if err != nil {
		t.Fatalf("free-text search failed: %v", err)
	}
	if res.Total != 2 {
		t.Errorf("free-text filter: expected 2 (name + serviceName), got %d", res.Total)
	}

	res, err = store.Search(ctx, SearchFilters{Role: AllRoles, Location: AllLocations})
	if err != nil {
		t.Fatalf("sentinel search failed: %v", err)
	}
	if res.Total != 3 {
		t.Errorf("sentinels must not filter: expected 3, got %d", res.Total)
	}
}
