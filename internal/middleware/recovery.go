package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"cashflow-api/internal/i18n"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}
				slog.ErrorContext(r.Context(), "panic recovered", "error", fmt.Sprintf("%v", recovered), "stack", string(debug.Stack()))
				writeError(w, r, http.StatusInternalServerError, i18n.KeyInternalError, "Unexpected server error.")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
