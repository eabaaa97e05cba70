// Package exercise implements the Exercise and MuscleGroup repositories
// using PostgreSQL. Reference data is read-only at runtime.
package exercise

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kvolkov/gymtrack-backend/internal/adapter/postgres"
	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// Repo provides read access to exercises and muscle groups.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new exercise repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const exerciseJoin = `
SELECT e.id, e.muscle_group_id, e.name, e.description, e.steps, e.video_url,
       mg.id, mg.name, mg.description
FROM exercises e
JOIN muscle_groups mg ON mg.id = e.muscle_group_id`

// GetByID returns an exercise with its muscle group.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanExercise(q.QueryRow(ctx, exerciseJoin+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("exercise %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("exercise %d: %w", id, err)
	}
	return e, nil
}

// List returns exercises matching the filter, ordered by name.
func (r *Repo) List(ctx context.Context, filter domain.ExerciseFilter) ([]domain.Exercise, error) {
	builder := psql.
		Select("e.id", "e.muscle_group_id", "e.name", "e.description", "e.steps", "e.video_url",
			"mg.id", "mg.name", "mg.description").
		From("exercises e").
		Join("muscle_groups mg ON mg.id = e.muscle_group_id").
		OrderBy("e.name ASC")

	if filter.MuscleGroupID != nil {
		builder = builder.Where(squirrel.Eq{"e.muscle_group_id": *filter.MuscleGroupID})
	}
	if filter.Search != "" {
		builder = builder.Where(squirrel.ILike{"e.name": "%" + filter.Search + "%"})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build exercise list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []domain.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, *e)
	}
	return exercises, rows.Err()
}

// ListMuscleGroups returns all muscle groups ordered by name.
func (r *Repo) ListMuscleGroups(ctx context.Context) ([]domain.MuscleGroup, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT id, name, description FROM muscle_groups ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list muscle_groups: %w", err)
	}
	defer rows.Close()

	var groups []domain.MuscleGroup
	for rows.Next() {
		var mg domain.MuscleGroup
		if err := rows.Scan(&mg.ID, &mg.Name, &mg.Description); err != nil {
			return nil, fmt.Errorf("scan muscle_group: %w", err)
		}
		groups = append(groups, mg)
	}
	return groups, rows.Err()
}

func scanExercise(row pgx.Row) (*domain.Exercise, error) {
	var (
		e  domain.Exercise
		mg domain.MuscleGroup
	)
	if err := row.Scan(
		&e.ID, &e.MuscleGroupID, &e.Name, &e.Description, &e.Steps, &e.VideoURL,
		&mg.ID, &mg.Name, &mg.Description,
	); err != nil {
		return nil, err
	}
	e.MuscleGroup = &mg
	return &e, nil
}
