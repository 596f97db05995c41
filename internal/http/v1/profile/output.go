package profile

// MutationData is the response body for profile mutations.
type MutationData struct {
	Message string  `json:"message" doc:"Human-readable result" example:"Profile created successfully"`
	Profile Profile `json:"profile" doc:"The resulting profile record"`
}

// ProfileCreateOutput for POST /profiles (201 Created)
type ProfileCreateOutput struct {
	Location string `header:"Location" doc:"URL of created profile"`
	Body     MutationData
}

// ProfileUpdateOutput for PUT /profiles
type ProfileUpdateOutput struct {
	Body MutationData
}

// GetData is the response body for profile reads.
type GetData struct {
	Profile Profile `json:"profile" doc:"The requested profile record"`
}

// ProfileGetOutput for GET /profiles/{id}
type ProfileGetOutput struct {
	Body GetData
}
