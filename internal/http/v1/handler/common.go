package handler

import (
	"errors"
	"log/slog"
	"matchday/internal/apperrors"
	"matchday/internal/http/v1/views"
	"matchday/internal/lib/logger/sl"
	"matchday/internal/session"
	"net/http"
)

const (
	pathHome  = "/app/"
	pathLogin = "/app/login/"
)

type SessionManager interface {
	Load(r *http.Request) (session.Data, error)
	Authenticate(w http.ResponseWriter, r *http.Request, username string) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

// formErrors maps validation failures to the message shown on the form.
var formErrors = []struct {
	err     error
	message string
}{
	{apperrors.ErrMissingFields, "All fields are required"},
	{apperrors.ErrPasswordTooLong, "Password must be at most 72 bytes"},
	{apperrors.ErrPasswordMismatch, "Passwords must match"},
	{apperrors.ErrDuplicateIdentity, "Email and/or username is already in use"},
	{apperrors.ErrAccountNotFound, "Account does not exist"},
	{apperrors.ErrInvalidCredentials, "Incorrect password"},
}

// formMessage reports the user facing message for err, or false when err is
// not a validation failure.
func formMessage(err error) (string, bool) {
	for _, fe := range formErrors {
		if errors.Is(err, fe.err) {
			return fe.message, true
		}
	}
	return "", false
}

func redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, path, http.StatusFound)
}

func writeServerError(w http.ResponseWriter, log *slog.Logger, msg string, err error) {
	log.Error(msg, sl.Err(err))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func render(w http.ResponseWriter, log *slog.Logger, renderer *views.Renderer, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderer.Render(w, page, data); err != nil {
		writeServerError(w, log, "failed to render page", err)
	}
}
