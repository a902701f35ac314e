package handler

import (
	"context"
	"net/http"

	"cashflow-api/internal/i18n"
	"cashflow-api/internal/middleware"
	"cashflow-api/internal/model"
	"cashflow-api/internal/validation"
)

type userService interface {
	Register(ctx context.Context, req model.RegisterUserRequest) (model.LoginResult, error)
	Profile(ctx context.Context, actor model.Identity) (model.Profile, error)
}

type UserHandler struct {
	service   userService
	validator *validation.Validator
}

func NewUserHandler(service userService, validator *validation.Validator) *UserHandler {
	return &UserHandler{service: service, validator: validator}
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload model.RegisterUserRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	if failures := h.validator.Struct(i18n.FromContext(r.Context()), payload); failures != nil {
		writeValidationError(w, r, failures)
		return
	}

	result, err := h.service.Register(r.Context(), payload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusCreated, result)
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, model.ErrMissingOrMalformedToken)
		return
	}

	profile, err := h.service.Profile(r.Context(), actor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, profile)
}
