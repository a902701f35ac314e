package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cashflow-api/internal/model"
)

// SigningSecret is the symmetric key shared by token issue and validation.
// It is built once at startup and never changes afterwards.
type SigningSecret struct {
	key []byte
}

func NewSigningSecret(raw string) (SigningSecret, error) {
	if raw == "" {
		return SigningSecret{}, fmt.Errorf("%w: signing secret is empty", model.ErrConfiguration)
	}

	return SigningSecret{key: []byte(raw)}, nil
}

func (s SigningSecret) Len() int {
	return len(s.key)
}

type TokenOptions struct {
	// TTL of zero issues tokens without an exp claim.
	TTL time.Duration
	// Issuer and Audience are only set and enforced when non-empty.
	Issuer   string
	Audience string
	Now      func() time.Time
}

type accessClaims struct {
	Role model.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 access tokens. It holds no mutable
// state and is safe for concurrent use.
type TokenService struct {
	secret   SigningSecret
	ttl      time.Duration
	issuer   string
	audience string
	now      func() time.Time
	parser   *jwt.Parser
}

func NewTokenService(secret SigningSecret, opts TokenOptions) (*TokenService, error) {
	if secret.Len() == 0 {
		return nil, fmt.Errorf("%w: token service requires a signing secret", model.ErrConfiguration)
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	parserOptions := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
		jwt.WithLeeway(0),
		jwt.WithTimeFunc(now),
	}
	if opts.TTL > 0 {
		parserOptions = append(parserOptions, jwt.WithExpirationRequired())
	}
	if opts.Issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(opts.Issuer))
	}
	if opts.Audience != "" {
		parserOptions = append(parserOptions, jwt.WithAudience(opts.Audience))
	}

	return &TokenService{
		secret:   secret,
		ttl:      opts.TTL,
		issuer:   opts.Issuer,
		audience: opts.Audience,
		now:      now,
		parser:   jwt.NewParser(parserOptions...),
	}, nil
}

func (s *TokenService) Generate(user model.User) (string, error) {
	if user.ID <= 0 {
		return "", fmt.Errorf("issue token: invalid user id %d", user.ID)
	}
	if !user.Role.Valid() {
		return "", fmt.Errorf("issue token: unknown role %q", user.Role)
	}

	issuedAt := s.now()
	claims := accessClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  strconv.FormatInt(user.ID, 10),
			IssuedAt: jwt.NewNumericDate(issuedAt),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(s.ttl))
	}
	if s.issuer != "" {
		claims.Issuer = s.issuer
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Validate verifies signature, structure and expiry and returns the identity
// carried by the token. Every failure wraps model.ErrInvalidToken.
func (s *TokenService) Validate(tokenString string) (model.Identity, error) {
	claims := &accessClaims{}
	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret.key, nil
	})
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: %w", model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return model.Identity{}, model.ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return model.Identity{}, fmt.Errorf("%w: bad subject", model.ErrInvalidToken)
	}
	if !claims.Role.Valid() {
		return model.Identity{}, fmt.Errorf("%w: unknown role", model.ErrInvalidToken)
	}

	return model.Identity{UserID: userID, Role: claims.Role}, nil
}

// RejectionReason buckets a Validate error for metrics and logs.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return "signature"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, model.ErrMissingOrMalformedToken):
		return "missing"
	default:
		return "claims"
	}
}
