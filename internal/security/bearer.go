package security

import (
	"strings"

	"cashflow-api/internal/model"
)

const bearerPrefix = "Bearer "

// ExtractBearerToken returns the token carried by an Authorization header
// value. The scheme must be exactly "Bearer " with a non-blank remainder.
func ExtractBearerToken(header string) (string, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", model.ErrMissingOrMalformedToken
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" {
		return "", model.ErrMissingOrMalformedToken
	}

	return token, nil
}
