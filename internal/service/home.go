package service

import (
	"context"
	"fmt"
	"log/slog"
	"matchday/internal/apperrors"
	"matchday/internal/domain/models"
	"matchday/internal/lib/logger/sl"
)

type HomeService struct {
	log     *slog.Logger
	users   ProfileProvider
	matches MatchProvider
	teams   TeamProvider
}

type ProfileProvider interface {
	FindByUsername(ctx context.Context, username string) ([]models.User, error)
}

type MatchProvider interface {
	FindByTeam(ctx context.Context, team string) ([]models.Match, error)
}

func NewHomeService(
	log *slog.Logger,
	users ProfileProvider,
	matches MatchProvider,
	teams TeamProvider) *HomeService {
	return &HomeService{
		log:     log,
		users:   users,
		matches: matches,
		teams:   teams,
	}
}

// Home composes the home page for username. It returns
// apperrors.ErrAccountNotFound when the account is gone, e.g. deleted from
// another client while this session was still logged in.
func (s *HomeService) Home(ctx context.Context, username string) (*models.HomeView, error) {
	const op = "service.home.Home"

	log := s.log.With(
		slog.String("op", op),
		slog.String("username", username),
	)

	users, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		log.Error("failed to find user", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(users) == 0 {
		log.Warn("logged in session refers to missing account")
		return nil, fmt.Errorf("%s: %w", op, apperrors.ErrAccountNotFound)
	}
	if len(users) > 1 {
		log.Warn("username matches several accounts, using the first", slog.Int("count", len(users)))
	}
	user := users[0]

	matches, err := s.matches.FindByTeam(ctx, user.Team)
	if err != nil {
		log.Error("failed to find matches", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	teams, err := s.teams.ListOrderedByName(ctx)
	if err != nil {
		log.Error("failed to list teams", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Debug("home view composed", slog.Int("match_count", len(matches)))

	return &models.HomeView{
		Email:    user.Email,
		Username: user.Username,
		Team:     user.Team,
		Matches:  matches,
		Teams:    teams,
	}, nil
}
