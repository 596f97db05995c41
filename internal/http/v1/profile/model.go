package profile

import (
	"github.com/propmandi/marketplace-api/internal/platform/timeutil"

	profilesvc "github.com/propmandi/marketplace-api/internal/service/profile"
)

// Profile represents a profile response.
type Profile struct {
	ID           string        `json:"id"           doc:"Unique identifier, equals the owner's UID" example:"user-123"`
	Name         string        `json:"name"         doc:"Display name"                              example:"Asha Verma"`
	Email        string        `json:"email"        doc:"Email address"                             example:"asha@example.com"`
	Phone        string        `json:"phone"        doc:"10-digit mobile number"                    example:"9876543210"`
	Role         string        `json:"role"         doc:"Service role"                              example:"Builder"`
	ServiceName  string        `json:"serviceName"  doc:"Offered service name"                      example:"Verma Constructions"`
	Bio          string        `json:"bio"          doc:"Short description"                         example:"Residential projects since 2008"`
	Location     string        `json:"location"     doc:"City or area served"                       example:"Pune"`
	Price        string        `json:"price"        doc:"Display price text"                        example:"From ₹1500/visit"`
	ProfileImage string        `json:"profileImage" doc:"Profile image URL"                         example:"https://cdn.example.com/p.jpg"`
	BannerImage  string        `json:"bannerImage"  doc:"Banner image URL"                          example:"https://cdn.example.com/b.jpg"`
	CreatedAt    timeutil.Time `json:"createdAt"    doc:"Creation timestamp"                        example:"2024-01-15T10:30:00.000Z"`
	UpdatedAt    timeutil.Time `json:"updatedAt"    doc:"Last update timestamp"                     example:"2024-01-15T10:30:00.000Z"`
}

func toHTTPProfile(p *profilesvc.Profile) Profile {
	return Profile{
		ID:           p.ID,
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Role:         p.Role,
		ServiceName:  p.ServiceName,
		Bio:          p.Bio,
		Location:     p.Location,
		Price:        p.Price,
		ProfileImage: p.ProfileImage,
		BannerImage:  p.BannerImage,
		CreatedAt:    timeutil.Time{Time: p.CreatedAt},
		UpdatedAt:    timeutil.Time{Time: p.UpdatedAt},
	}
}
