package service

import (
	"context"
	"fmt"
	"log/slog"
	"matchday/internal/domain/models"
	"matchday/internal/lib/logger/sl"
)

type TeamService struct {
	log      *slog.Logger
	teamRepo TeamProvider
}

type TeamProvider interface {
	ListOrderedByName(ctx context.Context) ([]models.Team, error)
}

func NewTeamService(
	log *slog.Logger,
	teamRepo TeamProvider) *TeamService {
	return &TeamService{
		log:      log,
		teamRepo: teamRepo,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]models.Team, error) {
	const op = "service.team.ListTeams"

	teams, err := s.teamRepo.ListOrderedByName(ctx)
	if err != nil {
		s.log.Error("failed to list teams", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return teams, nil
}
