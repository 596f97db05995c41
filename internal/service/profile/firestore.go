package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	applog "github.com/propmandi/marketplace-api/internal/platform/logging"
	"github.com/propmandi/marketplace-api/internal/platform/pagination"
)

const profilesCollection = "profiles"

// categorizeError converts errors to audit-safe categories.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	default:
		return "internal_error"
	}
}

// firestoreProfile maps to the Firestore document structure. Field names are
// snake_case at the storage boundary; the application-facing Profile type is
// the camelCase side of that mapping.
type firestoreProfile struct {
	Name         string    `firestore:"name"`
	Email        string    `firestore:"email"`
	Phone        string    `firestore:"phone"`
	Role         string    `firestore:"role"`
	ServiceName  string    `firestore:"service_name"`
	Bio          string    `firestore:"bio"`
	Location     string    `firestore:"location"`
	Price        string    `firestore:"price"`
	ProfileImage string    `firestore:"profile_image"`
	BannerImage  string    `firestore:"banner_image"`
	CreatedAt    time.Time `firestore:"created_at"`
	UpdatedAt    time.Time `firestore:"updated_at"`
}

func (fp firestoreProfile) toProfile(id string) *Profile {
	return &Profile{
		ID:           id,
		Name:         fp.Name,
		Email:        fp.Email,
		Phone:        fp.Phone,
		Role:         fp.Role,
		ServiceName:  fp.ServiceName,
		Bio:          fp.Bio,
		Location:     fp.Location,
		Price:        fp.Price,
		ProfileImage: fp.ProfileImage,
		BannerImage:  fp.BannerImage,
		CreatedAt:    fp.CreatedAt,
		UpdatedAt:    fp.UpdatedAt,
	}
}

// FirestoreStore implements Service using Firestore with transactions.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a new Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Create creates a new profile inside a transaction. The transactional
// existence read plus write makes the insert the authority for duplicate
// detection; concurrent creates for the same identity cannot both commit.
func (s *FirestoreStore) Create(ctx context.Context, userID string, params CreateParams) (*Profile, error) {
	docRef := s.client.Collection(profilesCollection).Doc(userID)
	now := time.Now().UTC()

	var result *Profile

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err == nil && doc.Exists() {
			return ErrAlreadyExists
		}
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}

		fp := firestoreProfile{
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

		if err := tx.Set(docRef, fp); err != nil {
			return err
		}

		result = fp.toProfile(userID)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "create", userID, "profile", userID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "create", userID, "profile", userID, "success", nil)

	return result, nil
}

// Get retrieves a profile by user ID.
func (s *FirestoreStore) Get(ctx context.Context, userID string) (*Profile, error) {
	docRef := s.client.Collection(profilesCollection).Doc(userID)
	doc, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var fp firestoreProfile
	if err := doc.DataTo(&fp); err != nil {
		return nil, err
	}

	return fp.toProfile(userID), nil
}

// Update applies the supplied fields inside a transaction and bumps
// UpdatedAt. Nil fields are untouched.
func (s *FirestoreStore) Update(ctx context.Context, userID string, params UpdateParams) (*Profile, error) {
	docRef := s.client.Collection(profilesCollection).Doc(userID)

	var result *Profile

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}

		var fp firestoreProfile
		if err := doc.DataTo(&fp); err != nil {
			return err
		}

		applyUpdate(&fp, params)
		fp.UpdatedAt = time.Now().UTC()

		if err := tx.Set(docRef, fp); err != nil {
			return err
		}

		result = fp.toProfile(userID)
		return nil
	})
	if err != nil {
		applog.LogAuditEvent(ctx, "update", userID, "profile", userID, "failure",
			map[string]any{"error": categorizeError(err)})
		return nil, err
	}

	applog.LogAuditEvent(ctx, "update", userID, "profile", userID, "success", nil)

	return result, nil
}

func applyUpdate(fp *firestoreProfile, params UpdateParams) {
	if params.Name != nil {
		fp.Name = strings.TrimSpace(*params.Name)
	}
	if params.Phone != nil {
		fp.Phone = digitsOnly(*params.Phone)
	}
	if params.Role != nil {
		fp.Role = *params.Role
	}
	if params.ServiceName != nil {
		fp.ServiceName = strings.TrimSpace(*params.ServiceName)
	}
	if params.Bio != nil {
		fp.Bio = strings.TrimSpace(*params.Bio)
	}
	if params.Location != nil {
		fp.Location = strings.TrimSpace(*params.Location)
	}
	if params.Price != nil {
		fp.Price = strings.TrimSpace(*params.Price)
	}
	if params.ProfileImage != nil {
		fp.ProfileImage = strings.TrimSpace(*params.ProfileImage)
	}
	if params.BannerImage != nil {
		fp.BannerImage = strings.TrimSpace(*params.BannerImage)
	}
}

// Search runs the marketplace query. Role and location equality filters are
// pushed into the Firestore query together with the created_at descending
// order; the free-text substring match has no Firestore counterpart and is
// applied over the streamed results before windowing, so Total reflects the
// full filtered count.
func (s *FirestoreStore) Search(ctx context.Context, filters SearchFilters) (*SearchResult, error) {
	q := s.client.Collection(profilesCollection).Query
	if filters.Role != "" && filters.Role != AllRoles {
		q = q.Where("role", "==", filters.Role)
	}
	if filters.Location != "" && filters.Location != AllLocations {
		q = q.Where("location", "==", filters.Location)
	}
	q = q.OrderBy("created_at", firestore.Desc)

	needle := strings.ToLower(strings.TrimSpace(filters.Search))

	var matched []*Profile
	iter := q.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}

		var fp firestoreProfile
		if err := doc.DataTo(&fp); err != nil {
			return nil, err
		}
		p := fp.toProfile(doc.Ref.ID)
		if needle != "" && !matchesSearch(p, needle) {
			continue
		}
		matched = append(matched, p)
	}

	windowed, page := pagination.Window(matched, filters.limit(), filters.offset())

	return &SearchResult{
		Profiles: windowed,
		Total:    page.Total,
	}, nil
}

// matchesSearch reports whether needle (already lowercased) appears in the
// profile's name, service name, or bio.
func matchesSearch(p *Profile, needle string) bool {
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.ServiceName), needle) ||
		strings.Contains(strings.ToLower(p.Bio), needle)
}

func digitsOnly(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// Compile-time interface check
var _ Service = (*FirestoreStore)(nil)
