// Package share implements the workout-share repository: tokenized share
// links with their lifecycle state and the admin listing surface.
package share

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kvolkov/gymtrack-backend/internal/adapter/postgres"
	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides workout-share persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new share repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const shareColumns = `id, token, user_id, from_date, to_date, expires_at, is_active, created_at, updated_at`

const createShareSQL = `
INSERT INTO workout_shares (token, user_id, from_date, to_date, expires_at, is_active)
VALUES ($1, $2, $3, $4, $5, true)
RETURNING ` + shareColumns

const findLatestByRangeSQL = `
SELECT ` + shareColumns + `
FROM workout_shares
WHERE user_id = $1 AND from_date = $2 AND to_date = $3
ORDER BY created_at DESC
LIMIT 1`

const renewShareSQL = `
UPDATE workout_shares
SET is_active = true, expires_at = $2, updated_at = now()
WHERE id = $1
RETURNING ` + shareColumns

const getByTokenSQL = `
SELECT ws.id, ws.token, ws.user_id, ws.from_date, ws.to_date, ws.expires_at,
       ws.is_active, ws.created_at, ws.updated_at,
       u.id, u.username
FROM workout_shares ws
JOIN users u ON u.id = ws.user_id
WHERE ws.token = $1`

const countCreatedTodaySQL = `
SELECT count(*) FROM workout_shares
WHERE user_id = $1 AND created_at >= $2`

const setActiveSQL = `
UPDATE workout_shares SET is_active = $2, updated_at = now() WHERE id = $1`

const deleteShareSQL = `DELETE FROM workout_shares WHERE id = $1`

// Create inserts a new active share link.
func (r *Repo) Create(ctx context.Context, s *domain.WorkoutShare) (*domain.WorkoutShare, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanShare(q.QueryRow(ctx, createShareSQL,
		s.Token, s.UserID, s.FromDate, s.ToDate, s.ExpiresAt))
	if err != nil {
		return nil, mapError(err, "workout_share", s.Token)
	}
	return created, nil
}

// FindLatestByRange returns the newest share for the exact (user, from, to)
// range regardless of state, or domain.ErrNotFound.
func (r *Repo) FindLatestByRange(ctx context.Context, userID int64, from, to time.Time) (*domain.WorkoutShare, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanShare(q.QueryRow(ctx, findLatestByRangeSQL, userID, from, to))
	if err != nil {
		return nil, mapError(err, "workout_share", userID)
	}
	return s, nil
}

// Renew reactivates a share in place with a fresh expiry, keeping its token.
func (r *Repo) Renew(ctx context.Context, id int64, expiresAt *time.Time) (*domain.WorkoutShare, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanShare(q.QueryRow(ctx, renewShareSQL, id, expiresAt))
	if err != nil {
		return nil, mapError(err, "workout_share", id)
	}
	return s, nil
}

// GetByToken resolves a token to its share with the owner's public profile.
func (r *Repo) GetByToken(ctx context.Context, token uuid.UUID) (*domain.WorkoutShare, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		s     domain.WorkoutShare
		owner domain.PublicProfile
	)
	err := q.QueryRow(ctx, getByTokenSQL, token).Scan(
		&s.ID, &s.Token, &s.UserID, &s.FromDate, &s.ToDate, &s.ExpiresAt,
		&s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		&owner.ID, &owner.Username,
	)
	if err != nil {
		return nil, mapError(err, "workout_share", token)
	}
	s.Owner = &owner
	return &s, nil
}

// CountCreatedSince counts the user's shares inserted at or after since.
// Renewals do not touch created_at and therefore do not count.
func (r *Repo) CountCreatedSince(ctx context.Context, userID int64, since time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, countCreatedTodaySQL, userID, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count workout_shares: %w", err)
	}
	return n, nil
}

// List returns shares for the admin surface, newest first, with owner
// profiles.
func (r *Repo) List(ctx context.Context, filter domain.ShareListFilter) ([]domain.WorkoutShare, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.
		Select(
			"ws.id", "ws.token", "ws.user_id", "ws.from_date", "ws.to_date",
			"ws.expires_at", "ws.is_active", "ws.created_at", "ws.updated_at",
			"u.id", "u.username",
		).
		From("workout_shares ws").
		Join("users u ON u.id = ws.user_id").
		OrderBy("ws.created_at DESC")

	if filter.UserID != nil {
		builder = builder.Where(squirrel.Eq{"ws.user_id": *filter.UserID})
	}
	if filter.IsActive != nil {
		builder = builder.Where(squirrel.Eq{"ws.is_active": *filter.IsActive})
	}
	if filter.Search != "" {
		pattern := filter.Search + "%"
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"ws.token::text": pattern},
			squirrel.ILike{"u.username": pattern},
		})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build share list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list workout_shares: %w", err)
	}
	defer rows.Close()

	var shares []domain.WorkoutShare
	for rows.Next() {
		var (
			s     domain.WorkoutShare
			owner domain.PublicProfile
		)
		if err := rows.Scan(
			&s.ID, &s.Token, &s.UserID, &s.FromDate, &s.ToDate,
			&s.ExpiresAt, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
			&owner.ID, &owner.Username,
		); err != nil {
			return nil, fmt.Errorf("scan workout_share: %w", err)
		}
		s.Owner = &owner
		shares = append(shares, s)
	}
	return shares, rows.Err()
}

// SetActive toggles a share's active flag.
func (r *Repo) SetActive(ctx context.Context, id int64, active bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, setActiveSQL, id, active)
	if err != nil {
		return mapError(err, "workout_share", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workout_share %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a share permanently.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteShareSQL, id)
	if err != nil {
		return mapError(err, "workout_share", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workout_share %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanShare(row pgx.Row) (*domain.WorkoutShare, error) {
	var s domain.WorkoutShare
	if err := row.Scan(
		&s.ID, &s.Token, &s.UserID, &s.FromDate, &s.ToDate,
		&s.ExpiresAt, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %v: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, id, err)
}
