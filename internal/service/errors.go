package service

import (
	"errors"
	"matchday/internal/apperrors"
)

var validationErrors = []error{
	apperrors.ErrMissingFields,
	apperrors.ErrPasswordTooLong,
	apperrors.ErrPasswordMismatch,
	apperrors.ErrDuplicateIdentity,
	apperrors.ErrAccountNotFound,
	apperrors.ErrInvalidCredentials,
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
