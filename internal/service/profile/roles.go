package profile

// Service roles. These are the wire values, matched case-sensitively on both
// the HTTP and storage boundaries. Defined once here so the gateways, the
// validator, and the client SDK cannot drift apart.
const (
	RoleProperty360 = "Property 360"
	RoleBuilder     = "Builder"
	RoleAdvocate    = "Advocate"
	RoleLandowner   = "Landowner"
	RoleSociety     = "Society"
	RoleInterior    = "Interior"
	RoleConsulting  = "Consulting"
)

var validRoles = []string{
	RoleProperty360,
	RoleBuilder,
	RoleAdvocate,
	RoleLandowner,
	RoleSociety,
	RoleInterior,
	RoleConsulting,
}

// Roles returns the fixed set of service roles.
func Roles() []string {
	out := make([]string, len(validRoles))
	copy(out, validRoles)
	return out
}

// ValidRole reports whether role is a member of the fixed role set.
func ValidRole(role string) bool {
	for _, r := range validRoles {
		if role == r {
			return true
		}
	}
	return false
}
