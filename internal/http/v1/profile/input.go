package profile

// Field-level rules are enforced by the profile validator so every failure is
// collected into one response; the schema deliberately carries no constraint
// tags that would reject field by field at decode time.

// ProfileCreateInput for POST /profiles. All fields are schema-optional and
// unknown keys are tolerated (a payload-supplied email is ignored; the stored
// email always comes from the verified identity).
type ProfileCreateInput struct {
	Body struct {
		_ struct{} `json:"-" additionalProperties:"true"`

		Name         string `json:"name,omitempty"         doc:"Display name, 2-100 characters" example:"Asha Verma"`
		Phone        string `json:"phone,omitempty"        doc:"10-digit Indian mobile number"  example:"9876543210"`
		Role         string `json:"role,omitempty"         doc:"Service role"                   example:"Builder"`
		ServiceName  string `json:"serviceName,omitempty"  doc:"Offered service name"           example:"Verma Constructions"`
		Bio          string `json:"bio,omitempty"          doc:"Short description"              example:"Residential projects since 2008"`
		Location     string `json:"location,omitempty"     doc:"City or area served"            example:"Pune"`
		Price        string `json:"price,omitempty"        doc:"Display price text"             example:"From ₹1500/visit"`
		ProfileImage string `json:"profileImage,omitempty" doc:"Profile image URL"              example:"https://cdn.example.com/p.jpg"`
		BannerImage  string `json:"bannerImage,omitempty"  doc:"Banner image URL"               example:"https://cdn.example.com/b.jpg"`
	}
}

// ProfileUpdateInput for PUT /profiles. Absent fields are left untouched.
type ProfileUpdateInput struct {
	Body struct {
		_ struct{} `json:"-" additionalProperties:"true"`

		Name         *string `json:"name,omitempty"         doc:"Display name, 2-100 characters" example:"Asha Verma"`
		Phone        *string `json:"phone,omitempty"        doc:"10-digit Indian mobile number"  example:"9876543210"`
		Role         *string `json:"role,omitempty"         doc:"Service role"                   example:"Builder"`
		ServiceName  *string `json:"serviceName,omitempty"  doc:"Offered service name"           example:"Verma Constructions"`
		Bio          *string `json:"bio,omitempty"          doc:"Short description"              example:"Residential projects since 2008"`
		Location     *string `json:"location,omitempty"     doc:"City or area served"            example:"Pune"`
		Price        *string `json:"price,omitempty"        doc:"Display price text"             example:"From ₹1500/visit"`
		ProfileImage *string `json:"profileImage,omitempty" doc:"Profile image URL"              example:"https://cdn.example.com/p.jpg"`
		BannerImage  *string `json:"bannerImage,omitempty"  doc:"Banner image URL"               example:"https://cdn.example.com/b.jpg"`
	}
}

// ProfileGetInput for GET /profiles/{id}. The "me" sentinel resolves to the
// authenticated caller.
type ProfileGetInput struct {
	ID string `path:"id" doc:"Profile ID or \"me\" for the caller's own profile" example:"me"`
}
