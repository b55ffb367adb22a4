package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/jmoiron/sqlx"
	"matchday/internal/apperrors"
	"matchday/internal/domain/models"
	"time"
)

type SessionRepo struct {
	storage *sqlx.DB
}

func NewSessionRepo(storage *sqlx.DB) *SessionRepo {
	return &SessionRepo{storage: storage}
}

type sessionRow struct {
	ID        string `db:"id"`
	LoggedIn  bool   `db:"logged_in"`
	Username  string `db:"username"`
	ExpiresAt int64  `db:"expires_at"`
}

func (r *SessionRepo) Find(ctx context.Context, id string) (models.Session, error) {
	const op = "repo.session.Find"

	query := `SELECT id, logged_in, username, expires_at FROM sessions WHERE id = ?`

	var row sessionRow
	err := r.storage.GetContext(ctx, &row, r.storage.Rebind(query), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, fmt.Errorf("%s: %w", op, apperrors.ErrSessionNotFound)
		}
		return models.Session{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.Session{
		ID:        row.ID,
		LoggedIn:  row.LoggedIn,
		Username:  row.Username,
		ExpiresAt: time.Unix(row.ExpiresAt, 0),
	}, nil
}

func (r *SessionRepo) Save(ctx context.Context, s models.Session) error {
	const op = "repo.session.Save"

	query := `
		INSERT INTO sessions (id, logged_in, username, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (id)
		DO UPDATE SET
			logged_in = EXCLUDED.logged_in,
			username = EXCLUDED.username,
			expires_at = EXCLUDED.expires_at
	`

	_, err := r.storage.ExecContext(ctx, r.storage.Rebind(query), s.ID, s.LoggedIn, s.Username, s.ExpiresAt.Unix())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *SessionRepo) Delete(ctx context.Context, id string) error {
	const op = "repo.session.Delete"

	query := `DELETE FROM sessions WHERE id = ?`

	if _, err := r.storage.ExecContext(ctx, r.storage.Rebind(query), id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *SessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	const op = "repo.session.DeleteExpired"

	query := `DELETE FROM sessions WHERE expires_at <= ?`

	result, err := r.storage.ExecContext(ctx, r.storage.Rebind(query), now.Unix())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return rowsAffected, nil
}
