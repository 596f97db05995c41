package marketplace

import (
	"github.com/propmandi/marketplace-api/internal/platform/pagination"
	"github.com/propmandi/marketplace-api/internal/platform/timeutil"

	profilesvc "github.com/propmandi/marketplace-api/internal/service/profile"
)

// Card is the public listing shape of a profile. Contact details (email,
// phone) are deliberately absent from marketplace browsing.
type Card struct {
	ID           string        `json:"id"           doc:"Profile identifier"  example:"user-123"`
	Name         string        `json:"name"         doc:"Display name"        example:"Asha Verma"`
	Role         string        `json:"role"         doc:"Service role"        example:"Builder"`
	ServiceName  string        `json:"serviceName"  doc:"Offered service"     example:"Verma Constructions"`
	Bio          string        `json:"bio"          doc:"Short description"   example:"Residential projects since 2008"`
	Location     string        `json:"location"     doc:"City or area served" example:"Pune"`
	Price        string        `json:"price"        doc:"Display price text"  example:"From ₹1500/visit"`
	ProfileImage string        `json:"profileImage" doc:"Profile image URL"   example:"https://cdn.example.com/p.jpg"`
	BannerImage  string        `json:"bannerImage"  doc:"Banner image URL"    example:"https://cdn.example.com/b.jpg"`
	CreatedAt    timeutil.Time `json:"createdAt"    doc:"Creation timestamp"  example:"2024-01-15T10:30:00.000Z"`
}

// SearchData is the response body for a marketplace search.
type SearchData struct {
	Profiles   []Card          `json:"profiles"   doc:"One window of matching profiles, newest first"`
	Pagination pagination.Page `json:"pagination" doc:"Window metadata"`
}

// SearchOutput is the response wrapper with pagination Link header.
type SearchOutput struct {
	Link string `header:"Link" doc:"RFC 8288 pagination links"`
	Body SearchData
}

func toCard(p *profilesvc.Profile) Card {
	return Card{
		ID:           p.ID,
		Name:         p.Name,
		Role:         p.Role,
		ServiceName:  p.ServiceName,
		Bio:          p.Bio,
		Location:     p.Location,
		Price:        p.Price,
		ProfileImage: p.ProfileImage,
		BannerImage:  p.BannerImage,
		CreatedAt:    timeutil.Time{Time: p.CreatedAt},
	}
}
