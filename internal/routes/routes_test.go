package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"github.com/propmandi/marketplace-api/internal/platform/auth"
	"github.com/propmandi/marketplace-api/internal/respond"
	profilesvc "github.com/propmandi/marketplace-api/internal/service/profile"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	respond.Install()

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	api := humachi.New(router, huma.DefaultConfig("Test API", "test"))
	Register(api, &auth.MockVerifier{User: auth.TestUser()}, profilesvc.NewMockProfileService())
	return router
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Message != "healthy" {
		t.Errorf("message: got %q", body.Message)
	}
}

func TestRoutesRegistered(t *testing.T) {
	router := newTestRouter(t)

	// Marketplace search is anonymous and always succeeds.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/marketplace", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET /marketplace: got %d", rec.Code)
	}

	// Profile creation is mounted behind auth.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/profiles", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("POST /profiles without token: got %d", rec.Code)
	}

	// Unknown paths fall through to the shared 404 envelope.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /nope: got %d", rec.Code)
	}
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode 404 body: %v", err)
	}
	if env.Error.Code != "NOT_FOUND" {
		t.Errorf("404 code: got %q", env.Error.Code)
	}
}
