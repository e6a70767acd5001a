package cors

import (
	"net/http"

	"github.com/go-chi/cors"
)

const maxAgeSeconds = 300

// Middleware открывает API для фронтенда календаря с перечисленных origin.
func Middleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions, http.MethodHead},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Retry-After", "X-RateLimit-Limit"},
		AllowCredentials: false,
		MaxAge:           maxAgeSeconds,
	})
}
