package apperrors

import "errors"

var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrDuplicateIdentity  = errors.New("email or username already in use")
	ErrAccountNotFound    = errors.New("account does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("required field is empty")
	ErrPasswordTooLong    = errors.New("password is too long")
)
