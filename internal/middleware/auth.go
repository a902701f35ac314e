package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"cashflow-api/internal/i18n"
	"cashflow-api/internal/metrics"
	"cashflow-api/internal/model"
	"cashflow-api/internal/security"
)

type tokenValidator interface {
	Validate(tokenString string) (model.Identity, error)
}

type contextKey string

const identityContextKey contextKey = "identity"

type AuthMiddleware struct {
	validator tokenValidator
}

func NewAuthMiddleware(validator tokenValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

// RequireAuth admits requests carrying a valid bearer token and stores the
// resolved identity in the request context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := security.ExtractBearerToken(r.Header.Get("Authorization"))
		if err == nil {
			var identity model.Identity
			identity, err = m.validator.Validate(token)
			if err == nil {
				next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
				return
			}
		}

		reason := security.RejectionReason(err)
		metrics.RecordTokenRejection(reason)
		slog.WarnContext(r.Context(), "request rejected", "reason", reason, "path", r.URL.Path)
		writeError(w, r, http.StatusUnauthorized, i18n.KeyUnauthorized, "Authentication required.")
	})
}

func (m *AuthMiddleware) RequireRoles(allowedRoles ...model.Role) func(http.Handler) http.Handler {
	roleSet := make(map[model.Role]struct{}, len(allowedRoles))
	for _, role := range allowedRoles {
		roleSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				writeError(w, r, http.StatusUnauthorized, i18n.KeyUnauthorized, "Authentication required.")
				return
			}

			if _, exists := roleSet[identity.Role]; !exists {
				writeError(w, r, http.StatusForbidden, i18n.KeyForbidden, "You do not have access to this resource.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func WithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

func IdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(model.Identity)
	return identity, ok
}
