package profile

import (
	"context"
	"errors"
	"time"
)

// Service errors
var (
	ErrNotFound      = errors.New("profile not found")
	ErrAlreadyExists = errors.New("profile already exists")
)

// Filter sentinels meaning "no filter applied".
const (
	AllLocations = "All Locations"
	AllRoles     = "All Roles"
)

// Profile represents a service provider's public-facing record.
// There is exactly one profile per authenticated identity; ID equals the
// identity's UID and never changes.
type Profile struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Role         string
	ServiceName  string
	Bio          string
	Location     string
	Price        string
	ProfileImage string
	BannerImage  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateParams for creating a profile. Email comes from the verified
// identity, never from the request payload.
type CreateParams struct {
	Name         string
	Email        string
	Phone        string
	Role         string
	ServiceName  string
	Bio          string
	Location     string
	Price        string
	ProfileImage string
	BannerImage  string
}

// UpdateParams for updating a profile. Nil fields are left untouched.
// Email is immutable from this subsystem and has no update field.
type UpdateParams struct {
	Name         *string
	Phone        *string
	Role         *string
	ServiceName  *string
	Bio          *string
	Location     *string
	Price        *string
	ProfileImage *string
	BannerImage  *string
}

// Empty reports whether no field is set.
func (p UpdateParams) Empty() bool {
	return p.Name == nil &&
		p.Phone == nil &&
		p.Role == nil &&
		p.ServiceName == nil &&
		p.Bio == nil &&
		p.Location == nil &&
		p.Price == nil &&
		p.ProfileImage == nil &&
		p.BannerImage == nil
}

// SearchFilters narrow a marketplace search. Zero values and the
// AllLocations/AllRoles sentinels mean "no filter". Limit defaults to 20,
// Offset to 0.
type SearchFilters struct {
	Search   string
	Location string
	Role     string
	Limit    int
	Offset   int
}

func (f SearchFilters) limit() int {
	if f.Limit <= 0 {
		return 20
	}
	return f.Limit
}

func (f SearchFilters) offset() int {
	if f.Offset < 0 {
		return 0
	}
	return f.Offset
}

// SearchResult is one window of matching profiles, ordered by creation time
// descending, plus the total match count before windowing.
type SearchResult struct {
	Profiles []*Profile
	Total    int
}

// Service defines profile operations.
//
// Implementations must normalize input data:
//   - Email: lowercase and trim whitespace
//   - Phone: digits only
//
// Create must treat the insert itself as the authority for duplicate
// detection; any pre-check is a fast path, not a guarantee.
type Service interface {
	Create(ctx context.Context, userID string, params CreateParams) (*Profile, error)
	Get(ctx context.Context, userID string) (*Profile, error)
	Update(ctx context.Context, userID string, params UpdateParams) (*Profile, error)
	Search(ctx context.Context, filters SearchFilters) (*SearchResult, error)
}
