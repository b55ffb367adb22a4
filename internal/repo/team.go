package repo

import (
	"context"
	"fmt"
	"github.com/jmoiron/sqlx"
	"matchday/internal/domain/models"
)

type TeamRepo struct {
	storage *sqlx.DB
}

func NewTeamRepo(storage *sqlx.DB) *TeamRepo {
	return &TeamRepo{storage: storage}
}

func (r *TeamRepo) ListOrderedByName(ctx context.Context) ([]models.Team, error) {
	const op = "repo.team.ListOrderedByName"

	query := `SELECT name, group_name FROM teams ORDER BY name`

	var teams []models.Team
	if err := r.storage.SelectContext(ctx, &teams, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return teams, nil
}
