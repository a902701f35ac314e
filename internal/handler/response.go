package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"cashflow-api/internal/i18n"
	"cashflow-api/internal/model"
	"cashflow-api/pkg/apierror"
)

const maxBodyBytes = 1 << 20

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, model.APIResponse{Success: true, Data: data})
}

func writeJSON(w http.ResponseWriter, status int, body model.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError renders err as the error envelope in the request locale.
// Unclassified errors are logged and reported as 500 without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	locale := i18n.FromContext(r.Context())
	status := http.StatusInternalServerError
	body := &model.APIError{Code: i18n.KeyInternalError}

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = i18n.Translate(locale, apiErr.Code, apiErr.Message)
		body.Details = apiErr.Details
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		body.Code = i18n.KeyInvalidCredentials
	case errors.Is(err, model.ErrMissingOrMalformedToken), errors.Is(err, model.ErrInvalidToken):
		status = http.StatusUnauthorized
		body.Code = i18n.KeyUnauthorized
	case errors.Is(err, model.ErrForbidden):
		status = http.StatusForbidden
		body.Code = i18n.KeyForbidden
	case errors.Is(err, model.ErrExpenseNotFound):
		status = http.StatusNotFound
		body.Code = i18n.KeyExpenseNotFound
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		body.Code = i18n.KeyUserNotFound
	case errors.Is(err, model.ErrUserAlreadyExists):
		status = http.StatusConflict
		body.Code = i18n.KeyEmailRegistered
	case errors.Is(err, model.ErrInvalidInput):
		status = http.StatusBadRequest
		body.Code = i18n.KeyBadRequest
	default:
		slog.ErrorContext(r.Context(), "unhandled error", "error", err.Error(), "path", r.URL.Path)
	}

	if body.Message == "" {
		body.Message = i18n.Translate(locale, body.Code, "")
	}

	writeJSON(w, status, model.APIResponse{Success: false, Error: body})
}

func writeValidationError(w http.ResponseWriter, r *http.Request, failures []model.FieldFailure) {
	writeJSON(w, http.StatusBadRequest, model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    i18n.KeyValidationFailed,
			Message: i18n.Translate(i18n.FromContext(r.Context()), i18n.KeyValidationFailed, ""),
			Fields:  failures,
		},
	})
}

// decodeJSON reads a single JSON document of bounded size into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return apierror.Wrap(model.ErrInvalidInput, i18n.KeyBadRequest, "The request body could not be read.", http.StatusBadRequest)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apierror.Wrap(model.ErrInvalidInput, i18n.KeyBadRequest, "The request body could not be read.", http.StatusBadRequest)
	}
	return nil
}

func RouteNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    i18n.KeyRouteNotFound,
			Message: i18n.Translate(i18n.FromContext(r.Context()), i18n.KeyRouteNotFound, ""),
		},
	})
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, model.APIResponse{
		Success: false,
		Error: &model.APIError{
			Code:    i18n.KeyMethodNotAllowed,
			Message: i18n.Translate(i18n.FromContext(r.Context()), i18n.KeyMethodNotAllowed, ""),
		},
	})
}
