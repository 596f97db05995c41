package marketplace

import (
	"context"
	"net/http"
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/propmandi/marketplace-api/internal/platform/pagination"
	"github.com/propmandi/marketplace-api/internal/respond"
	profilesvc "github.com/propmandi/marketplace-api/internal/service/profile"
)

// Register wires the marketplace search route into the provided API router.
func Register(api huma.API, svc profilesvc.Service) {
	huma.Register(api, huma.Operation{
		OperationID: "search-marketplace",
		Method:      http.MethodGet,
		Path:        "/marketplace",
		Summary:     "Search service provider profiles",
		Description: "Filters profiles by free text, location, and role, ordered newest first. " +
			"No filter combination fails; an empty result set is a valid response.",
		Tags: []string{"Marketplace"},
	}, func(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
		limit := input.DefaultLimit()
		offset := input.DefaultOffset()

		result, err := svc.Search(ctx, profilesvc.SearchFilters{
			Search:   input.Search,
			Location: input.Location,
			Role:     input.Role,
			Limit:    limit,
			Offset:   offset,
		})
		if err != nil {
			return nil, respond.Error(ctx, http.StatusInternalServerError,
				"INTERNAL_SERVER_ERROR", "failed to search profiles", nil, err)
		}

		cards := make([]Card, len(result.Profiles))
		for i, p := range result.Profiles {
			cards[i] = toCard(p)
		}

		page := pagination.NewPage(result.Total, limit, offset)

		query := url.Values{}
		if input.Search != "" {
			query.Set("search", input.Search)
		}
		if input.Location != "" {
			query.Set("location", input.Location)
		}
		if input.Role != "" {
			query.Set("role", input.Role)
		}

		return &SearchOutput{
			Link: pagination.BuildLinkHeader("/marketplace", query, page),
			Body: SearchData{
				Profiles:   cards,
				Pagination: page,
			},
		}, nil
	})
}
