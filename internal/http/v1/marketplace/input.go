package marketplace

import "github.com/propmandi/marketplace-api/internal/platform/pagination"

// SearchInput defines query parameters for marketplace search.
type SearchInput struct {
	pagination.Params
	Search   string `query:"search"   doc:"Free-text filter on name, service name, and bio (case-insensitive substring)" example:"plumbing"`
	Location string `query:"location" doc:"Exact location filter; \"All Locations\" disables it"                         example:"Pune"`
	Role     string `query:"role"     doc:"Exact role filter; \"All Roles\" disables it"                                 example:"Builder"`
}
