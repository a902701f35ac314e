package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cashflow-api/internal/model"
)

type UserReader interface {
	FindByID(ctx context.Context, id int64) (model.User, error)
}

type UserWriter interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, u model.User) (model.User, error)
}

type UserService struct {
	reader UserReader
	writer UserWriter
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewUserService(reader UserReader, writer UserWriter, hasher PasswordHasher, tokens TokenIssuer) *UserService {
	return &UserService{reader: reader, writer: writer, hasher: hasher, tokens: tokens}
}

// Register creates a team member account and signs it in.
func (s *UserService) Register(ctx context.Context, req model.RegisterUserRequest) (model.LoginResult, error) {
	user, err := s.create(ctx, strings.TrimSpace(req.Name), req.Email, req.Password, model.RoleTeamMember)
	if err != nil {
		return model.LoginResult{}, err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("issue token: %w", err)
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID)
	return model.LoginResult{UserID: user.ID, Name: user.Name, Role: user.Role, Token: token}, nil
}

func (s *UserService) Profile(ctx context.Context, actor model.Identity) (model.Profile, error) {
	user, err := s.reader.FindByID(ctx, actor.UserID)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.Profile{}, errUserNotFound()
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("load profile: %w", err)
	}

	return model.Profile{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}, nil
}

// EnsureAdmin creates the bootstrap admin account unless the email is
// already registered. It reports whether an account was created.
func (s *UserService) EnsureAdmin(ctx context.Context, name string, email string, password string) (bool, error) {
	exists, err := s.writer.ExistsByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("check admin: %w", err)
	}
	if exists {
		return false, nil
	}

	user, err := s.create(ctx, name, email, password, model.RoleAdmin)
	if errors.Is(err, model.ErrUserAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	slog.InfoContext(ctx, "admin account created", "user_id", user.ID)
	return true, nil
}

func (s *UserService) create(ctx context.Context, name string, email string, password string, role model.Role) (model.User, error) {
	email = strings.TrimSpace(email)

	exists, err := s.writer.ExistsByEmail(ctx, email)
	if err != nil {
		return model.User{}, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return model.User{}, errEmailRegistered()
	}

	digest, err := s.hasher.Hash(password)
	if errors.Is(err, model.ErrInvalidInput) {
		return model.User{}, errInvalidInput()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.writer.Create(ctx, model.User{
		Name:         name,
		Email:        email,
		PasswordHash: digest,
		Role:         role,
	})
	if errors.Is(err, model.ErrUserAlreadyExists) {
		return model.User{}, errEmailRegistered()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}
