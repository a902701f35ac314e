package middleware

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/rs/cors"
)

// CORS allows browser clients to call the API with bearer tokens. Cookies are
// never used, so credentials stay disabled even for explicit origins.
func CORS(origins []string) func(http.Handler) http.Handler {
	allowed := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin = strings.TrimRight(strings.TrimSpace(origin), "/"); origin != "" {
			allowed = append(allowed, origin)
		}
	}
	if len(allowed) == 0 || slices.Contains(allowed, "*") {
		allowed = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: allowed,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Accept-Language", "X-Request-ID"},
		ExposedHeaders: []string{"Content-Language", "X-Request-ID", "Retry-After"},
		MaxAge:         int((12 * time.Hour).Seconds()),
	}).Handler
}
