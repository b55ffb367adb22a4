package service

import (
	"context"
	"fmt"
	"log/slog"
	"matchday/internal/lib/logger/sl"
)

type UserService struct {
	log          *slog.Logger
	userProvider UserProvider
}

type UserProvider interface {
	UpdateTeam(ctx context.Context, username, team string) (int64, error)
	DeleteByUsername(ctx context.Context, username string) (int64, error)
}

func NewUserService(
	log *slog.Logger,
	userProvider UserProvider) *UserService {
	return &UserService{
		log:          log,
		userProvider: userProvider,
	}
}

// ChangeTeam points username at team. Updating a user that no longer exists
// is not an error.
func (s *UserService) ChangeTeam(ctx context.Context, username, team string) error {
	const op = "service.user.ChangeTeam"

	log := s.log.With(
		slog.String("op", op),
		slog.String("username", username),
		slog.String("team", team),
	)

	log.Info("attempting to change team")

	affected, err := s.userProvider.UpdateTeam(ctx, username, team)
	if err != nil {
		log.Error("failed to change team", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	if affected == 0 {
		log.Warn("no user row updated")
		return nil
	}

	log.Info("team changed successfully")

	return nil
}

func (s *UserService) DeleteAccount(ctx context.Context, username string) error {
	const op = "service.user.DeleteAccount"

	log := s.log.With(
		slog.String("op", op),
		slog.String("username", username),
	)

	log.Info("attempting to delete account")

	affected, err := s.userProvider.DeleteByUsername(ctx, username)
	if err != nil {
		log.Error("failed to delete account", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("account deleted", slog.Int64("rows", affected))

	return nil
}
