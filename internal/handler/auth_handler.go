package handler

import (
	"context"
	"net/http"

	"cashflow-api/internal/i18n"
	"cashflow-api/internal/model"
	"cashflow-api/internal/validation"
)

type loginService interface {
	Login(ctx context.Context, email string, password string) (model.LoginResult, error)
}

type AuthHandler struct {
	service   loginService
	validator *validation.Validator
}

func NewAuthHandler(service loginService, validator *validation.Validator) *AuthHandler {
	return &AuthHandler{service: service, validator: validator}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload model.LoginRequest
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, r, err)
		return
	}

	if failures := h.validator.Struct(i18n.FromContext(r.Context()), payload); failures != nil {
		writeValidationError(w, r, failures)
		return
	}

	result, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, http.StatusOK, result)
}
