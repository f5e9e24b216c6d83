package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS lets the dashboard front end call the API from its own origin.
// With no origins given every origin is allowed.
func CORS(allowedOrigins ...string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-ID",
			"traceparent",
		},
		ExposedHeaders: []string{"Link", "X-Request-ID"},
		MaxAge:         300,
	})
}
