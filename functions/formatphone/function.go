// Package formatphone provides an HTTP Cloud Function that normalizes and
// formats Indian mobile numbers for display.
package formatphone

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

// phonePattern matches the main project's validation rule: 10 digits
// starting with 6-9, after stripping formatting.
var (
	phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)
	nonDigit     = regexp.MustCompile(`\D`)
)

func init() {
	functions.HTTP("FormatPhone", formatHandler)
}

// Request represents the optional request body.
type Request struct {
	Phone string `json:"phone"`
}

// Response represents the function response.
type Response struct {
	Phone     string `json:"phone"`
	Formatted string `json:"formatted"`
	Valid     bool   `json:"valid"`
}

func formatHandler(w http.ResponseWriter, r *http.Request) {
	var req Request
	if r.Body != nil && r.ContentLength > 0 {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	phone := req.Phone
	if phone == "" {
		phone = r.URL.Query().Get("phone")
	}

	digits := nonDigit.ReplaceAllString(phone, "")
	resp := Response{Phone: phone}
	if phonePattern.MatchString(digits) {
		resp.Valid = true
		resp.Formatted = "+91 " + digits[:5] + " " + digits[5:]
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
