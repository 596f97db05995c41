package routes

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/propmandi/marketplace-api/internal/http/v1/marketplace"
	"github.com/propmandi/marketplace-api/internal/http/v1/profile"
	"github.com/propmandi/marketplace-api/internal/platform/auth"
	profilesvc "github.com/propmandi/marketplace-api/internal/service/profile"
)

// Register wires all HTTP routes into the provided API router. Dependencies
// are passed in explicitly so tests can substitute fakes.
func Register(
	api huma.API,
	verifier auth.Verifier,
	profileService profilesvc.Service,
) {
	api.UseMiddleware(auth.NewAuthMiddleware(api, verifier))

	registerHealth(api)
	profile.Register(api, profileService)
	marketplace.Register(api, profileService)
}

// HealthData models the success payload for the health route.
type HealthData struct {
	Message string `json:"message" doc:"Health status message" example:"healthy"`
}

// HealthOutput is the response wrapper for the health endpoint.
type HealthOutput struct {
	Body HealthData
}

func registerHealth(api huma.API) {
	huma.Get(api, "/health", func(_ context.Context, _ *struct{}) (*HealthOutput, error) {
		return &HealthOutput{Body: HealthData{Message: "healthy"}}, nil
	})
}
