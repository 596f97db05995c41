// Package client is a typed Go consumer of the marketplace API: one Client
// for the four gateway calls, plus Resource for view-facing loading state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/propmandi/marketplace-api/internal/platform/pagination"
)

const userAgent = "marketplace-client"

// APIError is a decoded error envelope from the server.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details []FieldDetail
}

// FieldDetail is one field-level issue from a validation failure.
type FieldDetail struct {
	Field string `json:"field,omitempty"`
	Issue string `json:"issue"`
}

func (e *APIError) Error() string {
	if e == nil {
		return "marketplace api error"
	}
	if e.Message != "" {
		return fmt.Sprintf("marketplace api error (status=%d code=%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("marketplace api error (status=%d code=%s)", e.Status, e.Code)
}

// Profile is the application-facing profile record.
type Profile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	ServiceName  string    `json:"serviceName"`
	Bio          string    `json:"bio"`
	Location     string    `json:"location"`
	Price        string    `json:"price"`
	ProfileImage string    `json:"profileImage"`
	BannerImage  string    `json:"bannerImage"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// ProfileData is the mutable field set for create and update calls.
// Nil fields are omitted from the request, so updates touch only what is set.
type ProfileData struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Role         *string `json:"role,omitempty"`
	ServiceName  *string `json:"serviceName,omitempty"`
	Bio          *string `json:"bio,omitempty"`
	Location     *string `json:"location,omitempty"`
	Price        *string `json:"price,omitempty"`
	ProfileImage *string `json:"profileImage,omitempty"`
	BannerImage  *string `json:"bannerImage,omitempty"`
}

// SearchFilters narrow a marketplace search. Zero values mean no filter and
// default windowing.
type SearchFilters struct {
	Search   string
	Location string
	Role     string
	Limit    int
	Offset   int
}

// SearchResult is one page of marketplace results.
type SearchResult struct {
	Profiles   []Profile       `json:"profiles"`
	Pagination pagination.Page `json:"pagination"`
}

// TokenSource supplies the bearer token for authenticated calls. Returning
// an empty string sends the request unauthenticated.
type TokenSource func(ctx context.Context) (string, error)

// Client calls the marketplace API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTokenSource sets the bearer token supplier for authenticated requests.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// NewClient creates a new marketplace API client.
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    "http://localhost:8080",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type mutationResponse struct {
	Message string  `json:"message"`
	Profile Profile `json:"profile"`
}

type getResponse struct {
	Profile Profile `json:"profile"`
}

// CreateProfile creates the caller's profile.
func (c *Client) CreateProfile(ctx context.Context, data ProfileData) (*Profile, error) {
	var out mutationResponse
	if err := c.do(ctx, http.MethodPost, "/profiles", nil, data, true, &out); err != nil {
		return nil, err
	}
	return &out.Profile, nil
}

// UpdateProfile applies a partial update to the caller's profile.
func (c *Client) UpdateProfile(ctx context.Context, data ProfileData) (*Profile, error) {
	var out mutationResponse
	if err := c.do(ctx, http.MethodPut, "/profiles", nil, data, true, &out); err != nil {
		return nil, err
	}
	return &out.Profile, nil
}

// GetProfile fetches a profile by ID, or the caller's own with "me".
func (c *Client) GetProfile(ctx context.Context, profileID string) (*Profile, error) {
	var out getResponse
	if err := c.do(ctx, http.MethodGet, "/profiles/"+url.PathEscape(profileID), nil, nil, true, &out); err != nil {
		return nil, err
	}
	return &out.Profile, nil
}

// SearchProfiles runs a marketplace search. Always anonymous.
func (c *Client) SearchProfiles(ctx context.Context, filters SearchFilters) (*SearchResult, error) {
	q := url.Values{}
	if filters.Search != "" {
		q.Set("search", filters.Search)
	}
	if filters.Location != "" {
		q.Set("location", filters.Location)
	}
	if filters.Role != "" {
		q.Set("role", filters.Role)
	}
	if filters.Limit > 0 {
		q.Set("limit", strconv.Itoa(filters.Limit))
	}
	if filters.Offset > 0 {
		q.Set("offset", strconv.Itoa(filters.Offset))
	}

	var out SearchResult
	if err := c.do(ctx, http.MethodGet, "/marketplace", q, nil, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, authed bool, target any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed && c.tokens != nil {
		token, err := c.tokens(ctx)
		if err != nil {
			return fmt.Errorf("resolving token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling marketplace api: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return apiErrorFromResponse(resp)
	}

	if target == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func apiErrorFromResponse(resp *http.Response) *APIError {
	apiErr := &APIError{
		Status:  resp.StatusCode,
		Code:    "UNKNOWN",
		Message: http.StatusText(resp.StatusCode),
	}

	var envelope struct {
		Error struct {
			Code    string        `json:"code"`
			Message string        `json:"message"`
			Details []FieldDetail `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Code != "" {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		apiErr.Details = envelope.Error.Details
	}
	return apiErr
}
