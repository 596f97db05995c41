package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns a middleware that permits any origin, matching the public
// marketplace browsing use case. OPTIONS preflight requests short-circuit
// inside the cors handler and never reach the routed handlers.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Client-Info",
		},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	})
}
