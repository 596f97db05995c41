package profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/propmandi/marketplace-api/internal/platform/auth"
	"github.com/propmandi/marketplace-api/internal/respond"
	profilesvc "github.com/propmandi/marketplace-api/internal/service/profile"
)

const selfSentinel = "me"

// Register registers profile endpoints.
func Register(api huma.API, svc profilesvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-profile",
		Method:        http.MethodPost,
		Path:          "/profiles",
		Summary:       "Create the caller's profile",
		Description:   "Creates the profile for the authenticated user. Each identity owns at most one profile.",
		Tags:          []string{"Profiles"},
		DefaultStatus: http.StatusCreated,
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProfileCreateInput) (*ProfileCreateOutput, error) {
		user := auth.UserFromContext(ctx)

		candidate := profilesvc.Sanitize(profilesvc.Candidate{
			Name:         input.Body.Name,
			Email:        user.Email,
			Phone:        input.Body.Phone,
			Role:         input.Body.Role,
			ServiceName:  input.Body.ServiceName,
			Bio:          input.Body.Bio,
			Location:     input.Body.Location,
			Price:        input.Body.Price,
			ProfileImage: input.Body.ProfileImage,
			BannerImage:  input.Body.BannerImage,
		})
		fieldErrors := profilesvc.Validate(candidate)
		// The email comes from the verified identity, never the payload, so
		// it is not a field the caller can fix. Phone-auth accounts have no
		// email at all; their profiles store an empty one.
		delete(fieldErrors, "email")
		if len(fieldErrors) > 0 {
			return nil, respond.ValidationError(ctx, "invalid profile data", fieldErrors)
		}

		created, err := svc.Create(ctx, user.UID, profilesvc.CreateParams{
			Name:         candidate.Name,
			Email:        candidate.Email,
			Phone:        candidate.Phone,
			Role:         candidate.Role,
			ServiceName:  candidate.ServiceName,
			Bio:          candidate.Bio,
			Location:     candidate.Location,
			Price:        candidate.Price,
			ProfileImage: candidate.ProfileImage,
			BannerImage:  candidate.BannerImage,
		})
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &ProfileCreateOutput{
			Location: "/profiles/" + created.ID,
			Body: MutationData{
				Message: "Profile created successfully",
				Profile: toHTTPProfile(created),
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPut,
		Path:        "/profiles",
		Summary:     "Update the caller's profile",
		Description: "Updates fields on the authenticated user's profile. Only provided fields are touched.",
		Tags:        []string{"Profiles"},
		Security: []map[string][]string{
			{"bearerAuth": {}},
		},
	}, func(ctx context.Context, input *ProfileUpdateInput) (*ProfileUpdateOutput, error) {
		user := auth.UserFromContext(ctx)

		params := profilesvc.UpdateParams{
			Name:         input.Body.Name,
			Phone:        input.Body.Phone,
			Role:         input.Body.Role,
			ServiceName:  input.Body.ServiceName,
			Bio:          input.Body.Bio,
			Location:     input.Body.Location,
			Price:        input.Body.Price,
			ProfileImage: input.Body.ProfileImage,
			BannerImage:  input.Body.BannerImage,
		}
		if params.Empty() {
			return nil, respond.Error(ctx, http.StatusBadRequest, respond.CodeValidation,
				"No valid fields provided for update", nil)
		}
		if fieldErrors := profilesvc.ValidatePartial(params); len(fieldErrors) > 0 {
			return nil, respond.ValidationError(ctx, "invalid profile data", fieldErrors)
		}

		updated, err := svc.Update(ctx, user.UID, params)
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &ProfileUpdateOutput{
			Body: MutationData{
				Message: "Profile updated successfully",
				Profile: toHTTPProfile(updated),
			},
		}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/profiles/{id}",
		Summary:     "Get a profile",
		Description: "Retrieves a profile by ID. Anonymous callers may read any profile; \"me\" requires authentication.",
		Tags:        []string{"Profiles"},
	}, func(ctx context.Context, input *ProfileGetInput) (*ProfileGetOutput, error) {
		targetID := input.ID
		if targetID == selfSentinel {
			user := auth.UserFromContext(ctx)
			if user == nil {
				return nil, respond.Error(ctx, http.StatusUnauthorized, "UNAUTHORIZED",
					"authentication required to read your own profile", nil)
			}
			targetID = user.UID
		}

		p, err := svc.Get(ctx, targetID)
		if err != nil {
			return nil, mapServiceError(ctx, err)
		}
		return &ProfileGetOutput{
			Body: GetData{Profile: toHTTPProfile(p)},
		}, nil
	})
}

func mapServiceError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, profilesvc.ErrNotFound):
		return respond.Error(ctx, http.StatusNotFound, "NOT_FOUND", "profile not found", nil)
	case errors.Is(err, profilesvc.ErrAlreadyExists):
		return respond.Error(ctx, http.StatusConflict, "CONFLICT", "profile already exists for this user", nil)
	default:
		return respond.Error(ctx, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal error", nil, err)
	}
}
