package middleware

import (
	"encoding/json"
	"net/http"

	"cashflow-api/internal/i18n"
	"cashflow-api/internal/model"
)

// writeError renders the error envelope in the request locale.
func writeError(w http.ResponseWriter, r *http.Request, status int, code string, fallback string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    code,
			Message: i18n.Translate(i18n.FromContext(r.Context()), code, fallback),
		},
	})
}
