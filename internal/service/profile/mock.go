package profile

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/propmandi/marketplace-api/internal/platform/pagination"
)

// MockProfileService implements Service in memory for unit tests.
type MockProfileService struct {
	mu       sync.RWMutex
	profiles map[string]*Profile
}

// NewMockProfileService creates a new mock service.
func NewMockProfileService() *MockProfileService {
	return &MockProfileService{
		profiles: make(map[string]*Profile),
	}
}

func (m *MockProfileService) Create(_ context.Context, userID string, params CreateParams) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.profiles[userID]; exists {
		return nil, ErrAlreadyExists
	}

	now := time.Now().UTC()
	p := &Profile{
		ID:           userID,
		Name:         strings.TrimSpace(params.Name),
		Email:        strings.ToLower(strings.TrimSpace(params.Email)),
		Phone:        digitsOnly(params.Phone),
		Role:         params.Role,
		ServiceName:  strings.TrimSpace(params.ServiceName),
		Bio:          strings.TrimSpace(params.Bio),
		Location:     strings.TrimSpace(params.Location),
		Price:        strings.TrimSpace(params.Price),
		ProfileImage: strings.TrimSpace(params.ProfileImage),
		BannerImage:  strings.TrimSpace(params.BannerImage),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.profiles[userID] = p
	return p, nil
}

func (m *MockProfileService) Get(_ context.Context, userID string) (*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, exists := m.profiles[userID]
	if !exists {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *MockProfileService) Update(_ context.Context, userID string, params UpdateParams) (*Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, exists := m.profiles[userID]
	if !exists {
		return nil, ErrNotFound
	}

	if params.Name != nil {
		p.Name = strings.TrimSpace(*params.Name)
	}
	if params.Phone != nil {
		p.Phone = digitsOnly(*params.Phone)
	}
	if params.Role != nil {
		p.Role = *params.Role
	}
	if params.ServiceName != nil {
		p.ServiceName = strings.TrimSpace(*params.ServiceName)
	}
	if params.Bio != nil {
		p.Bio = strings.TrimSpace(*params.Bio)
	}
	if params.Location != nil {
		p.Location = strings.TrimSpace(*params.Location)
	}
	if params.Price != nil {
		p.Price = strings.TrimSpace(*params.Price)
	}
	if params.ProfileImage != nil {
		p.ProfileImage = strings.TrimSpace(*params.ProfileImage)
	}
	if params.BannerImage != nil {
		p.BannerImage = strings.TrimSpace(*params.BannerImage)
	}
	p.UpdatedAt = time.Now().UTC()
	return p, nil
}

func (m *MockProfileService) Search(_ context.Context, filters SearchFilters) (*SearchResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(filters.Search))

	matched := make([]*Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		if filters.Role != "" && filters.Role != AllRoles && p.Role != filters.Role {
			continue
		}
		if filters.Location != "" && filters.Location != AllLocations && p.Location != filters.Location {
			continue
		}
		if needle != "" && !matchesSearch(p, needle) {
			continue
		}
		matched = append(matched, p)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	windowed, page := pagination.Window(matched, filters.limit(), filters.offset())

	return &SearchResult{
		Profiles: windowed,
		Total:    page.Total,
	}, nil
}

// Seed inserts a fully specified profile, bypassing normalization. Useful for
// search tests that need fixed timestamps.
func (m *MockProfileService) Seed(p *Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.ID] = p
}

// Clear removes all profiles (useful for test cleanup).
func (m *MockProfileService) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = make(map[string]*Profile)
}

// Compile-time interface check
var _ Service = (*MockProfileService)(nil)
