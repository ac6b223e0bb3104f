package user

import (
	"errors"
	"net/http"
)

var (
	// Validation errors
	ErrMissingFields = errors.New("required fields are missing")
	ErrNameTooShort  = errors.New("given and family name must be longer than 2 characters")
	ErrInvalidGender = errors.New("gender is not in the accepted set")
	ErrNoFields      = errors.New("no fields provided for update")

	// Business rule errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this name pair already exists")
)

// ErrorMessage maps a domain error to the exact client-facing message. The
// wording is part of the public contract and is kept verbatim from the
// previous implementation of this API.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "Missing required fields"
	case errors.Is(err, ErrNameTooShort):
		return "givenName and familyName should have more than 2 character"
	case errors.Is(err, ErrInvalidGender):
		return "Please enter a valid gender"
	case errors.Is(err, ErrNoFields):
		return "Please provide at least one field to update"
	case errors.Is(err, ErrUserNotFound):
		return "User not found"
	default:
		return "Internal Server Error"
	}
}

// ToHTTPStatus maps a domain error to its status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrNameTooShort),
		errors.Is(err, ErrInvalidGender),
		errors.Is(err, ErrNoFields):
		return http.StatusBadRequest
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
