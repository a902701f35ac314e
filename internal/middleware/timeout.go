package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"golang.org/x/text/language"

	"cashflow-api/internal/i18n"
	"cashflow-api/internal/model"
)

// Timeout bounds handler execution. The timeout body is rendered once in the
// default locale because http.TimeoutHandler takes a fixed message.
func Timeout(timeout time.Duration, locale language.Tag) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	body, _ := json.Marshal(model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    i18n.KeyTimeout,
			Message: i18n.Translate(locale, i18n.KeyTimeout, "The request took too long."),
		},
	})

	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, string(body))
	}
}
