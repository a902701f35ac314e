package service

import (
	"net/http"

	"cashflow-api/internal/i18n"
	"cashflow-api/internal/model"
	"cashflow-api/pkg/apierror"
)

// Both unknown email and wrong password resolve to this one error so a
// caller cannot tell which check failed.
func errInvalidCredentials() *apierror.APIError {
	return apierror.Wrap(model.ErrInvalidCredentials, i18n.KeyInvalidCredentials, "Email or password invalid.", http.StatusUnauthorized)
}

func errForbidden() *apierror.APIError {
	return apierror.Wrap(model.ErrForbidden, i18n.KeyForbidden, "You do not have access to this resource.", http.StatusForbidden)
}

func errExpenseNotFound() *apierror.APIError {
	return apierror.Wrap(model.ErrExpenseNotFound, i18n.KeyExpenseNotFound, "Expense not found.", http.StatusNotFound)
}

func errUserNotFound() *apierror.APIError {
	return apierror.Wrap(model.ErrUserNotFound, i18n.KeyUserNotFound, "User not found.", http.StatusNotFound)
}

// errInvalidInput covers values that pass request validation but are
// refused by the hasher or the store.
func errInvalidInput() *apierror.APIError {
	return apierror.Wrap(model.ErrInvalidInput, i18n.KeyValidationFailed, "The request is invalid.", http.StatusBadRequest)
}

func errEmailRegistered() *apierror.APIError {
	return apierror.Wrap(model.ErrUserAlreadyExists, i18n.KeyEmailRegistered, "The email is already registered.", http.StatusConflict)
}
