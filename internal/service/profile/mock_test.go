package profile

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func seedProfiles(m *MockProfileService, n int) {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	roles := Roles()
	for i := 0; i < n; i++ {
		m.Seed(&Profile{
			ID:        fmt.Sprintf("user-%03d", i),
			Name:      fmt.Sprintf("Provider %d", i),
			Email:     fmt.Sprintf("p%d@example.com", i),
			Phone:     "9876543210",
			Role:      roles[i%len(roles)],
			Location:  []string{"Pune", "Mumbai", "Nagpur"}[i%3],
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
}

func TestMockCreateAndGet(t *testing.T) {
	ctx := context.Background()
	m := NewMockProfileService()

	p, err := m.Create(ctx, "uid-1", CreateParams{
		Name:  "  Asha Verma  ",
		Email: " ASHA@Example.COM ",
		Phone: "987-654-3210",
		Role:  RoleBuilder,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if p.ID != "uid-1" {
		t.Errorf("expected ID to equal user ID, got %q", p.ID)
	}
	if p.Email != "asha@example.com" {
		t.Errorf("expected normalized email, got %q", p.Email)
	}
	if p.Phone != "9876543210" {
		t.Errorf("expected digits-only phone, got %q", p.Phone)
	}
	if p.Name != "Asha Verma" {
		t.Errorf("expected trimmed name, got %q", p.Name)
	}
	if p.CreatedAt.IsZero() || !p.CreatedAt.Equal(p.UpdatedAt) {
		t.Errorf("expected createdAt == updatedAt on create, got %v / %v", p.CreatedAt, p.UpdatedAt)
	}

	got, err := m.Get(ctx, "uid-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "Asha Verma" {
		t.Errorf("get returned %q", got.Name)
	}
}

func TestMockCreateConflict(t *testing.T) {
	ctx := context.Background()
	m := NewMockProfileService()

	params := CreateParams{Name: "Asha", Email: "a@b.co", Phone: "9876543210", Role: RoleBuilder}
	if _, err := m.Create(ctx, "uid-1", params); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := m.Create(ctx, "uid-1", params); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestMockGetNotFound(t *testing.T) {
	m := NewMockProfileService()
	if _, err := m.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMockUpdatePartial(t *testing.T) {
	ctx := context.Background()
	m := NewMockProfileService()
	strptr := func(s string) *string { return &s }

	if _, err := m.Create(ctx, "uid-1", CreateParams{
		Name: "Asha", Email: "a@b.co", Phone: "9876543210", Role: RoleBuilder, Bio: "old bio",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	p, err := m.Update(ctx, "uid-1", UpdateParams{
		Bio:   strptr("  new bio  "),
		Phone: strptr("987-000-1122"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if p.Bio != "new bio" {
		t.Errorf("bio: got %q", p.Bio)
	}
	if p.Phone != "9870001122" {
		t.Errorf("phone: got %q", p.Phone)
	}
	// Unset fields must be left untouched.
	if p.Name != "Asha" || p.Role != RoleBuilder {
		t.Errorf("unset fields changed: name=%q role=%q", p.Name, p.Role)
	}
	if !p.UpdatedAt.After(p.CreatedAt) && !p.UpdatedAt.Equal(p.CreatedAt) {
		t.Errorf("updatedAt went backwards: %v < %v", p.UpdatedAt, p.CreatedAt)
	}
}

func TestMockUpdateNotFound(t *testing.T) {
	m := NewMockProfileService()
	strptr := func(s string) *string { return &s }
	if _, err := m.Update(context.Background(), "missing", UpdateParams{Name: strptr("X")}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMockSearchOrdering(t *testing.T) {
	ctx := context.Background()
	m := NewMockProfileService()
	seedProfiles(m, 5)

	res, err := m.Search(ctx, SearchFilters{})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if res.Total != 5 {
		t.Fatalf("expected total 5, got %d", res.Total)
	}
	for i := 1; i < len(res.Profiles); i++ {
		if res.Profiles[i].CreatedAt.After(res.Profiles[i-1].CreatedAt) {
			t.Fatalf("results not in createdAt descending order at index %d", i)
		}
	}
	if res.Profiles[0].ID != "user-004" {
		t.Errorf("expected newest profile first, got %q", res.Profiles[0].ID)
	}
}

func TestMockSearchFiltersAreConjunctive(t *testing.T) {
	ctx := context.Background()
	m := NewMockProfileService()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	m.Seed(&Profile{ID: "a", Name: "Asha", Role: RoleBuilder, Location: "Pune", CreatedAt: base})
	m.Seed(&Profile{ID: "b", Name: "Birju", Role: RoleBuilder, Location: "Mumbai", CreatedAt: base.Add(time.Minute)})
	m.Seed(&Profile{ID: "c", Name: "Chitra", Role: RoleAdvocate, Location: "Pune", CreatedAt: base.Add(2 * time.Minute)})

	res, err := m.Search(ctx, SearchFilters{Role: RoleBuilder, Location: "Pune"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if res.Total != 1 || res.Profiles[0].ID != "a" {
		t.Fatalf("expected only profile a, got total=%d %v", res.Total, res.Profiles)
	}
}

func TestMockSearchSentinels(t *testing.T) {
	ctx := context.Background()
	m := NewMockProfileService()
	seedProfiles(m, 6)

	res, err := m.Search(ctx, SearchFilters{Role: AllRoles, Location: AllLocations})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if res.Total != 6 {
		t.Fatalf("sentinels must not filter: expected 6, got %d", res.Total)
	}
}

func TestMockSearchFreeText(t *testing.T) {
	ctx := context.Background()
	m := NewMockProfileService()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	m.Seed(&Profile{ID: "a", Name: "Asha Verma", ServiceName: "Dream Homes", Bio: "custom villas", CreatedAt: base})
	m.Seed(&Profile{ID: "b", Name: "Birju", ServiceName: "Verma Interiors", Bio: "", CreatedAt: base.Add(time.Minute)})
	m.Seed(&Profile{ID: "c", Name: "Chitra", ServiceName: "", Bio: "dream kitchens by verma", CreatedAt: base.Add(2 * time.Minute)})
	m.Seed(&Profile{ID: "d", Name: "Deepak", ServiceName: "Solid Build", Bio: "", CreatedAt: base.Add(3 * time.Minute)})

	// Matches name, serviceName, or bio, case-insensitively.
	res, err := m.Search(ctx, SearchFilters{Search: "VERMA"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if res.Total != 3 {
		t.Fatalf("expected 3 matches, got %d", res.Total)
	}
	for _, p := range res.Profiles {
		if p.ID == "d" {
			t.Error("profile d should not match")
		}
	}
}

func TestMockSearchPagination(t *testing.T) {
	ctx := context.Background()
	m := NewMockProfileService()
	seedProfiles(m, 45)

	res, err := m.Search(ctx, SearchFilters{Limit: 20, Offset: 0})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if res.Total != 45 || len(res.Profiles) != 20 {
		t.Fatalf("page 1: total=%d len=%d", res.Total, len(res.Profiles))
	}

	res, err = m.Search(ctx, SearchFilters{Limit: 20, Offset: 40})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if res.Total != 45 || len(res.Profiles) != 5 {
		t.Fatalf("last page: total=%d len=%d", res.Total, len(res.Profiles))
	}

	// Offset beyond the result set yields an empty window, not an error.
	res, err = m.Search(ctx, SearchFilters{Limit: 20, Offset: 100})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if res.Total != 45 || len(res.Profiles) != 0 {
		t.Fatalf("overshoot: total=%d len=%d", res.Total, len(res.Profiles))
	}
}

func TestMockSearchDefaultLimit(t *testing.T) {
	ctx := context.Background()
	m := NewMockProfileService()
	seedProfiles(m, 30)

	res, err := m.Search(ctx, SearchFilters{})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(res.Profiles) != 20 {
		t.Fatalf("expected default limit 20, got %d", len(res.Profiles))
	}
	if res.Total != 30 {
		t.Fatalf("expected total 30, got %d", res.Total)
	}
}

func TestMockSearchEmpty(t *testing.T) {
	m := NewMockProfileService()
	res, err := m.Search(context.Background(), SearchFilters{Search: "nobody"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if res.Total != 0 || len(res.Profiles) != 0 {
		t.Fatalf("expected empty result, got total=%d len=%d", res.Total, len(res.Profiles))
	}
}
