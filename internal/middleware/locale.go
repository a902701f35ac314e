package middleware

import (
	"net/http"

	"golang.org/x/text/language"

	"cashflow-api/internal/i18n"
)

// Locale resolves Accept-Language to a supported locale and echoes it in
// Content-Language.
func Locale(fallback language.Tag) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag := i18n.Match(r.Header.Get("Accept-Language"), fallback)
			w.Header().Set("Content-Language", tag.String())
			next.ServeHTTP(w, r.WithContext(i18n.WithLocale(r.Context(), tag)))
		})
	}
}
