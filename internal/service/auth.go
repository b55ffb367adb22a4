package service

import (
	"context"
	"fmt"
	"log/slog"
	"matchday/internal/apperrors"
	"matchday/internal/domain/models"
	"matchday/internal/lib/logger/sl"
)

type AuthService struct {
	log    *slog.Logger
	users  CredentialProvider
	hasher PasswordHasher
}

type CredentialProvider interface {
	FindByIdentity(ctx context.Context, email, username string) ([]models.User, error)
	FindByUsername(ctx context.Context, username string) ([]models.User, error)
	Register(ctx context.Context, user models.User) error
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) (bool, error)
}

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

type RegisterInput struct {
	Email          string
	Username       string
	Password       string
	PasswordRepeat string
	Team           string
}

func NewAuthService(
	log *slog.Logger,
	users CredentialProvider,
	hasher PasswordHasher) *AuthService {
	return &AuthService{
		log:    log,
		users:  users,
		hasher: hasher,
	}
}

// Register creates an account. Validation failures are returned as
// apperrors sentinels; anything else is an infrastructure failure.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	const op = "service.auth.Register"

	log := s.log.With(
		slog.String("op", op),
		slog.String("username", in.Username),
	)

	log.Info("attempting to register user")

	if in.Email == "" || in.Username == "" || in.Password == "" || in.Team == "" {
		log.Info("registration rejected: missing fields")
		return fmt.Errorf("%s: %w", op, apperrors.ErrMissingFields)
	}

	if len(in.Password) > MaxPasswordBytes {
		log.Info("registration rejected: password too long")
		return fmt.Errorf("%s: %w", op, apperrors.ErrPasswordTooLong)
	}

	if in.Password != in.PasswordRepeat {
		log.Info("registration rejected: passwords do not match")
		return fmt.Errorf("%s: %w", op, apperrors.ErrPasswordMismatch)
	}

	existing, err := s.users.FindByIdentity(ctx, in.Email, in.Username)
	if err != nil {
		log.Error("failed to check existing users", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(existing) > 0 {
		log.Info("registration rejected: identity in use")
		return fmt.Errorf("%s: %w", op, apperrors.ErrDuplicateIdentity)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		log.Error("failed to hash password", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	err = s.users.Register(ctx, models.User{
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
		Team:         in.Team,
	})
	if err != nil {
		if isValidationError(err) {
			log.Info("registration rejected: identity in use")
		} else {
			log.Error("failed to insert user", sl.Err(err))
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered successfully", slog.String("team", in.Team))

	return nil
}

// Login checks username and password against the stored hash.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	const op = "service.auth.Login"

	log := s.log.With(
		slog.String("op", op),
		slog.String("username", username),
	)

	log.Info("attempting to log in")

	users, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		log.Error("failed to find user", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(users) == 0 {
		log.Info("login rejected: account does not exist")
		return fmt.Errorf("%s: %w", op, apperrors.ErrAccountNotFound)
	}

	ok, err := s.hasher.Verify(password, users[0].PasswordHash)
	if err != nil {
		log.Error("failed to verify password", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if !ok {
		log.Info("login rejected: incorrect password")
		return fmt.Errorf("%s: %w", op, apperrors.ErrInvalidCredentials)
	}

	log.Info("user logged in")

	return nil
}
