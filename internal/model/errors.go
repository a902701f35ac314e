package model

import "errors"

var (
	// User related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token related errors
	ErrMissingOrMalformedToken = errors.New("missing or malformed bearer token")
	ErrInvalidToken            = errors.New("invalid token")

	// Access related errors
	ErrForbidden = errors.New("forbidden")

	// Expense related errors
	ErrExpenseNotFound = errors.New("expense not found")

	// Startup errors
	ErrConfiguration = errors.New("configuration fault")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
