package repo

import (
	"context"
	"fmt"
	"github.com/jmoiron/sqlx"
	"matchday/internal/domain/models"
)

type MatchRepo struct {
	storage *sqlx.DB
}

func NewMatchRepo(storage *sqlx.DB) *MatchRepo {
	return &MatchRepo{storage: storage}
}

// FindByTeam returns matches where team plays on either side, earliest first.
func (r *MatchRepo) FindByTeam(ctx context.Context, team string) ([]models.Match, error) {
	const op = "repo.match.FindByTeam"

	query := `
		SELECT id, team1, team2, stage, venue, kickoff
		FROM matches
		WHERE team1 = ? OR team2 = ?
		ORDER BY kickoff, id`

	var matches []models.Match
	if err := r.storage.SelectContext(ctx, &matches, r.storage.Rebind(query), team, team); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return matches, nil
}
