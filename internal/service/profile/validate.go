package profile

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// phoneRe matches a 10-digit Indian mobile number after non-digits are stripped.
	phoneRe = regexp.MustCompile(`^[6-9]\d{9}$`)
	// emailRe is the simple local@domain.tld shape; full RFC parsing is not the goal.
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigit = regexp.MustCompile(`\D`)
)

// Field length caps, counted in characters, not bytes. Names, bios, and
// prices in this domain routinely carry multi-byte text ("₹", Devanagari).
const (
	nameMinLen     = 2
	nameMaxLen     = 100
	serviceMaxLen  = 200
	bioMaxLen      = 1000
	locationMaxLen = 100
	priceMaxLen    = 50
	passwordMinLen = 6
	passwordMaxLen = 128
)

// Candidate is a profile record under validation. Password and
// ConfirmPassword are nil when the caller did not supply them (profile
// mutations); registration flows set both.
type Candidate struct {
	Name         string
	Email        string
	Phone        string
	Role         string
	ServiceName  string
	Bio          string
	Location     string
	Price        string
	ProfileImage string
	BannerImage  string

	Password        *string
	ConfirmPassword *string
}

// Sanitize normalizes a candidate: strings are trimmed, email lowercased,
// phone reduced to digits. It never fails and is idempotent.
func Sanitize(c Candidate) Candidate {
	return Candidate{
		Name:         strings.TrimSpace(c.Name),
		Email:        strings.ToLower(strings.TrimSpace(c.Email)),
		Phone:        nonDigit.ReplaceAllString(c.Phone, ""),
		Role:         strings.TrimSpace(c.Role),
		ServiceName:  strings.TrimSpace(c.ServiceName),
		Bio:          strings.TrimSpace(c.Bio),
		Location:     strings.TrimSpace(c.Location),
		Price:        strings.TrimSpace(c.Price),
		ProfileImage: strings.TrimSpace(c.ProfileImage),
		BannerImage:  strings.TrimSpace(c.BannerImage),

		Password:        c.Password,
		ConfirmPassword: c.ConfirmPassword,
	}
}

// Validate checks every rule independently and returns one message per failed
// field. The candidate is valid iff the returned map is empty. Pure: no I/O,
// no mutation, deterministic.
func Validate(c Candidate) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(c.Name)
	switch {
	case name == "":
		errs["name"] = "Name is required"
	case utf8.RuneCountInString(name) < nameMinLen:
		errs["name"] = fmt.Sprintf("Name must be at least %d characters long", nameMinLen)
	case utf8.RuneCountInString(name) > nameMaxLen:
		errs["name"] = fmt.Sprintf("Name must be less than %d characters", nameMaxLen)
	}

	email := strings.TrimSpace(c.Email)
	if email == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(email) {
		errs["email"] = "Please enter a valid email address"
	}

	if strings.TrimSpace(c.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if !ValidPhone(c.Phone) {
		errs["phone"] = "Please enter a valid 10-digit Indian mobile number starting with 6, 7, 8, or 9"
	}

	if c.Role == "" {
		errs["role"] = "Please select a service role"
	} else if !ValidRole(c.Role) {
		errs["role"] = "Please select a valid service role"
	}

	if utf8.RuneCountInString(c.ServiceName) > serviceMaxLen {
		errs["serviceName"] = fmt.Sprintf("Service name must be less than %d characters", serviceMaxLen)
	}
	if utf8.RuneCountInString(c.Bio) > bioMaxLen {
		errs["bio"] = fmt.Sprintf("Bio must be less than %d characters", bioMaxLen)
	}
	if utf8.RuneCountInString(c.Location) > locationMaxLen {
		errs["location"] = fmt.Sprintf("Location must be less than %d characters", locationMaxLen)
	}
	if utf8.RuneCountInString(c.Price) > priceMaxLen {
		errs["price"] = fmt.Sprintf("Price must be less than %d characters", priceMaxLen)
	}

	if !ValidImageURL(c.ProfileImage) {
		errs["profileImage"] = "Profile image must be a valid URL"
	}
	if !ValidImageURL(c.BannerImage) {
		errs["bannerImage"] = "Banner image must be a valid URL"
	}

	if c.Password != nil {
		switch pw := *c.Password; {
		case pw == "":
			errs["password"] = "Password is required"
		case utf8.RuneCountInString(pw) < passwordMinLen:
			errs["password"] = fmt.Sprintf("Password must be at least %d characters long", passwordMinLen)
		case utf8.RuneCountInString(pw) > passwordMaxLen:
			errs["password"] = fmt.Sprintf("Password must be less than %d characters", passwordMaxLen)
		}
	}
	if c.ConfirmPassword != nil {
		pw := ""
		if c.Password != nil {
			pw = *c.Password
		}
		if *c.ConfirmPassword != pw {
			errs["confirmPassword"] = "Passwords do not match"
		}
	}

	return errs
}

// ValidatePartial checks only the fields present in an update. Nil fields
// are neither validated nor mentioned. Same rules and messages as Validate.
func ValidatePartial(params UpdateParams) map[string]string {
	errs := make(map[string]string)

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		switch {
		case name == "":
			errs["name"] = "Name is required"
		case utf8.RuneCountInString(name) < nameMinLen:
			errs["name"] = fmt.Sprintf("Name must be at least %d characters long", nameMinLen)
		case utf8.RuneCountInString(name) > nameMaxLen:
			errs["name"] = fmt.Sprintf("Name must be less than %d characters", nameMaxLen)
		}
	}
	if params.Phone != nil && !ValidPhone(*params.Phone) {
		errs["phone"] = "Please enter a valid 10-digit Indian mobile number starting with 6, 7, 8, or 9"
	}
	if params.Role != nil && !ValidRole(*params.Role) {
		errs["role"] = "Please select a valid service role"
	}
	if params.ServiceName != nil && utf8.RuneCountInString(*params.ServiceName) > serviceMaxLen {
		errs["serviceName"] = fmt.Sprintf("Service name must be less than %d characters", serviceMaxLen)
	}
	if params.Bio != nil && utf8.RuneCountInString(*params.Bio) > bioMaxLen {
		errs["bio"] = fmt.Sprintf("Bio must be less than %d characters", bioMaxLen)
	}
	if params.Location != nil && utf8.RuneCountInString(*params.Location) > locationMaxLen {
		errs["location"] = fmt.Sprintf("Location must be less than %d characters", locationMaxLen)
	}
	if params.Price != nil && utf8.RuneCountInString(*params.Price) > priceMaxLen {
		errs["price"] = fmt.Sprintf("Price must be less than %d characters", priceMaxLen)
	}
	if params.ProfileImage != nil && !ValidImageURL(*params.ProfileImage) {
		errs["profileImage"] = "Profile image must be a valid URL"
	}
	if params.BannerImage != nil && !ValidImageURL(*params.BannerImage) {
		errs["bannerImage"] = "Banner image must be a valid URL"
	}

	return errs
}

// ValidPhone reports whether the input, after stripping non-digits, is a
// valid 10-digit Indian mobile number.
func ValidPhone(phone string) bool {
	return phoneRe.MatchString(nonDigit.ReplaceAllString(phone, ""))
}

// ValidImageURL reports whether the input parses as an absolute URL.
// Empty input is valid since image fields are optional.
func ValidImageURL(raw string) bool {
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// FormatPhone renders a normalized 10-digit number for display as
// "+91 XXXXX XXXXX". Anything else is returned unchanged.
func FormatPhone(phone string) string {
	cleaned := nonDigit.ReplaceAllString(phone, "")
	if len(cleaned) == 10 {
		return "+91 " + cleaned[:5] + " " + cleaned[5:]
	}
	return phone
}
