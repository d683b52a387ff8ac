package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password. Login callers receive this single error so that the two
	// failure modes stay indistinguishable to the client.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrValidationUsernameTooShort = errors.New("username must be at least 2 characters")
	ErrValidationPasswordTooShort = errors.New("password must be at least 5 characters")

	ErrValidationNoTitleProvided   = errors.New("no story title provided")
	ErrValidationNoContentProvided = errors.New("no content provided")
	ErrValidationNoFieldsProvided  = errors.New("no profile fields provided")
)
