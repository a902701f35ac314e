package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cashflow-api/internal/metrics"
	"cashflow-api/internal/model"
)

type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
}

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext string, digest string) bool
	DecoyDigest() string
}

type TokenIssuer interface {
	Generate(user model.User) (string, error)
}

type AuthService struct {
	users  UserFinder
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewAuthService(users UserFinder, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Login exchanges credentials for an access token. It never mutates state.
func (s *AuthService) Login(ctx context.Context, email string, password string) (model.LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	found := err == nil
	if err != nil && !errors.Is(err, model.ErrUserNotFound) {
		metrics.RecordLogin(metrics.LoginFailed)
		return model.LoginResult{}, fmt.Errorf("login lookup: %w", err)
	}

	// An unknown email still pays for a full bcrypt comparison.
	digest := s.hasher.DecoyDigest()
	if found {
		digest = user.PasswordHash
	}
	matched := s.hasher.Verify(password, digest)

	if !found || !matched {
		metrics.RecordLogin(metrics.LoginInvalidCredentials)
		slog.WarnContext(ctx, "login rejected")
		return model.LoginResult{}, errInvalidCredentials()
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		metrics.RecordLogin(metrics.LoginFailed)
		return model.LoginResult{}, fmt.Errorf("issue token: %w", err)
	}

	metrics.RecordLogin(metrics.LoginSucceeded)
	slog.InfoContext(ctx, "login succeeded", "user_id", user.ID, "role", user.Role)

	return model.LoginResult{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
		Token:  token,
	}, nil
}
