package repo

import (
	"context"
	"errors"
	"fmt"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"matchday/internal/apperrors"
	"matchday/internal/domain/models"
)

const (
	selectUserByIdentity = `SELECT email, username, password, team FROM users WHERE email = ? OR username = ?`
	selectUserByUsername = `SELECT email, username, password, team FROM users WHERE username = ?`
	insertUser           = `INSERT INTO users (email, username, password, team) VALUES (?, ?, ?, ?)`
)

type UserRepo struct {
	storage *sqlx.DB
}

func NewUserRepo(storage *sqlx.DB) *UserRepo {
	return &UserRepo{storage: storage}
}

func (r *UserRepo) FindByIdentity(ctx context.Context, email, username string) ([]models.User, error) {
	const op = "repo.user.FindByIdentity"

	users, err := r.findByIdentity(ctx, r.storage, email, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

func (r *UserRepo) FindByUsername(ctx context.Context, username string) ([]models.User, error) {
	const op = "repo.user.FindByUsername"

	var users []models.User
	err := r.storage.SelectContext(ctx, &users, r.storage.Rebind(selectUserByUsername), username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

// Insert adds a user without the duplicate check. Registration goes through
// Register, which runs the check and the insert in one transaction.
func (r *UserRepo) Insert(ctx context.Context, user models.User) error {
	const op = "repo.user.Insert"

	if err := r.insert(ctx, r.storage, user); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Register runs the duplicate check and the insert in one transaction.
// A concurrent registration that slips past the check still trips the
// UNIQUE constraints and reports ErrDuplicateIdentity.
func (r *UserRepo) Register(ctx context.Context, user models.User) error {
	const op = "repo.user.Register"

	tx, err := r.storage.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	existing, err := r.findByIdentity(ctx, tx, user.Email, user.Username)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(existing) > 0 {
		return fmt.Errorf("%s: %w", op, apperrors.ErrDuplicateIdentity)
	}

	if err := r.insert(ctx, tx, user); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: failed to commit transaction: %w", op, err)
	}

	return nil
}

func (r *UserRepo) UpdateTeam(ctx context.Context, username, team string) (int64, error) {
	const op = "repo.user.UpdateTeam"

	query := `UPDATE users SET team = ? WHERE username = ?`

	result, err := r.storage.ExecContext(ctx, r.storage.Rebind(query), team, username)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return rowsAffected, nil
}

func (r *UserRepo) DeleteByUsername(ctx context.Context, username string) (int64, error) {
	const op = "repo.user.DeleteByUsername"

	query := `DELETE FROM users WHERE username = ?`

	result, err := r.storage.ExecContext(ctx, r.storage.Rebind(query), username)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return rowsAffected, nil
}

func (r *UserRepo) findByIdentity(ctx context.Context, q sqlx.QueryerContext, email, username string) ([]models.User, error) {
	var users []models.User
	if err := sqlx.SelectContext(ctx, q, &users, r.storage.Rebind(selectUserByIdentity), email, username); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) insert(ctx context.Context, e sqlx.ExecerContext, user models.User) error {
	_, err := e.ExecContext(ctx, r.storage.Rebind(insertUser), user.Email, user.Username, user.PasswordHash, user.Team)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrDuplicateIdentity
		}
		return err
	}
	return nil
}

func isDuplicateKeyError(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	return false
}
