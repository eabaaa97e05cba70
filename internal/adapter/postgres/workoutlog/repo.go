// Package workoutlog implements the WorkoutLog aggregate repository using
// PostgreSQL: log headers plus their exercise-log set rows. The set-level
// operations are shaped for the reconciler: id listings, positional lookup
// ordered by ascending id, and delete-everything-not-kept.
package workoutlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kvolkov/gymtrack-backend/internal/adapter/postgres"
	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// Repo provides workout-log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new workout-log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Log header SQL
// ---------------------------------------------------------------------------

const logColumns = `id, user_id, workout_day_id, workout_name, completed_date, notes, is_manual, created_at`

const getHeaderSQL = `
SELECT ` + logColumns + ` FROM workout_logs WHERE id = $1 AND user_id = $2`

const findByDayAndDateSQL = `
SELECT ` + logColumns + `
FROM workout_logs
WHERE user_id = $1 AND workout_day_id = $2 AND completed_date = $3`

const createLogSQL = `
INSERT INTO workout_logs (user_id, workout_day_id, workout_name, completed_date, notes, is_manual)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + logColumns

const deleteLogSQL = `DELETE FROM workout_logs WHERE id = $1 AND user_id = $2`

const countSetsSQL = `SELECT count(*) FROM exercise_logs WHERE workout_log_id = $1`

// getWithDaySQL joins the scheduled day header and its muscle group for
// planned logs; both sides are NULL for manual logs.
const getWithDaySQL = `
SELECT wl.id, wl.user_id, wl.workout_day_id, wl.workout_name, wl.completed_date,
       wl.notes, wl.is_manual, wl.created_at,
       wd.id, wd.plan_id, wd.day_number, wd.day_name, wd.muscle_group_id,
       mg.id, mg.name, mg.description
FROM workout_logs wl
LEFT JOIN workout_days wd ON wd.id = wl.workout_day_id
LEFT JOIN muscle_groups mg ON mg.id = wd.muscle_group_id
WHERE wl.id = $1 AND wl.user_id = $2`

// ---------------------------------------------------------------------------
// Set SQL
// ---------------------------------------------------------------------------

const setColumns = `id, workout_log_id, exercise_id, set_number, reps_completed, weight_kg, notes, created_at`

const listSetIDsSQL = `
SELECT id FROM exercise_logs WHERE workout_log_id = $1 ORDER BY id ASC`

// findByPositionSQL orders by ascending id so the caller can apply the
// first-match-wins policy when legacy duplicates exist.
const findByPositionSQL = `
SELECT id FROM exercise_logs
WHERE workout_log_id = $1 AND exercise_id = $2 AND set_number = $3
ORDER BY id ASC`

const insertSetSQL = `
INSERT INTO exercise_logs (workout_log_id, exercise_id, set_number, reps_completed, weight_kg, notes)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

const updateSetSQL = `
UPDATE exercise_logs
SET exercise_id = $2, set_number = $3, reps_completed = $4, weight_kg = $5, notes = $6
WHERE id = $1`

const deleteSetsNotInSQL = `
DELETE FROM exercise_logs WHERE workout_log_id = $1 AND NOT (id = ANY($2::bigint[]))`

const deleteAllSetsSQL = `DELETE FROM exercise_logs WHERE workout_log_id = $1`

const deleteSetsByIDSQL = `DELETE FROM exercise_logs WHERE id = ANY($1::bigint[])`

// listSetsSQL returns the canonical post-reconciliation view: rows with
// exercise and muscle-group joins, ordered by (exercise_id, set_number).
const listSetsSQL = `
SELECT el.id, el.workout_log_id, el.exercise_id, el.set_number, el.reps_completed,
       el.weight_kg, el.notes, el.created_at,
       e.id, e.muscle_group_id, e.name, e.description, e.steps, e.video_url,
       mg.id, mg.name, mg.description
FROM exercise_logs el
JOIN exercises e ON e.id = el.exercise_id
JOIN muscle_groups mg ON mg.id = e.muscle_group_id
WHERE el.workout_log_id = $1
ORDER BY el.exercise_id ASC, el.set_number ASC`

const getSetOwnedSQL = `
SELECT el.id, el.workout_log_id, el.exercise_id, el.set_number, el.reps_completed,
       el.weight_kg, el.notes, el.created_at
FROM exercise_logs el
JOIN workout_logs wl ON wl.id = el.workout_log_id
WHERE el.id = $1 AND wl.user_id = $2`

const deleteSetSQL = `DELETE FROM exercise_logs WHERE id = $1`

// ---------------------------------------------------------------------------
// Log header operations
// ---------------------------------------------------------------------------

// GetHeader returns the bare log row scoped to its owner.
func (r *Repo) GetHeader(ctx context.Context, userID, id int64) (*domain.WorkoutLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLog(q.QueryRow(ctx, getHeaderSQL, id, userID))
	if err != nil {
		return nil, mapError(err, "workout_log", id)
	}
	return l, nil
}

// GetWithDay returns the log with its scheduled day header and muscle group
// (nil for manual logs) and its canonical set rows.
func (r *Repo) GetWithDay(ctx context.Context, userID, id int64) (*domain.WorkoutLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		l      domain.WorkoutLog
		dayID  *int64
		planID *int64
		dayNum *int
		dayNm  *string
		dayMG  *int64
		mgID   *int64
		mgName *string
		mgDesc *string
	)
	err := q.QueryRow(ctx, getWithDaySQL, id, userID).Scan(
		&l.ID, &l.UserID, &l.WorkoutDayID, &l.WorkoutName, &l.CompletedDate,
		&l.Notes, &l.IsManual, &l.CreatedAt,
		&dayID, &planID, &dayNum, &dayNm, &dayMG,
		&mgID, &mgName, &mgDesc,
	)
	if err != nil {
		return nil, mapError(err, "workout_log", id)
	}

	if dayID != nil {
		day := domain.WorkoutDay{
			ID:            *dayID,
			PlanID:        *planID,
			DayNumber:     *dayNum,
			DayName:       *dayNm,
			MuscleGroupID: dayMG,
		}
		if mgID != nil {
			day.MuscleGroup = &domain.MuscleGroup{ID: *mgID, Name: *mgName, Description: mgDesc}
		}
		l.WorkoutDay = &day
	}

	sets, err := r.ListSets(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	l.ExerciseLogs = sets

	return &l, nil
}

// FindByDayAndDate returns the planned log for (user, day, date), or
// domain.ErrNotFound.
func (r *Repo) FindByDayAndDate(ctx context.Context, userID, dayID int64, date time.Time) (*domain.WorkoutLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLog(q.QueryRow(ctx, findByDayAndDateSQL, userID, dayID, date))
	if err != nil {
		return nil, mapError(err, "workout_log", dayID)
	}
	return l, nil
}

// Create inserts a new log header and returns the persisted row.
func (r *Repo) Create(ctx context.Context, l *domain.WorkoutLog) (*domain.WorkoutLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanLog(q.QueryRow(ctx, createLogSQL,
		l.UserID, l.WorkoutDayID, l.WorkoutName, l.CompletedDate, l.Notes, l.IsManual))
	if err != nil {
		return nil, mapError(err, "workout_log", l.UserID)
	}
	return created, nil
}

// UpdateHeader applies a partial update and returns the new row.
func (r *Repo) UpdateHeader(ctx context.Context, id int64, upd domain.WorkoutLogUpdate) (*domain.WorkoutLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql := `UPDATE workout_logs SET
  workout_name   = COALESCE($2, workout_name),
  completed_date = COALESCE($3, completed_date),
  notes          = CASE WHEN $5 THEN NULL ELSE COALESCE($4, notes) END
WHERE id = $1
RETURNING ` + logColumns

	l, err := scanLog(q.QueryRow(ctx, sql, id, upd.WorkoutName, upd.CompletedDate, upd.Notes, upd.ClearNotes))
	if err != nil {
		return nil, mapError(err, "workout_log", id)
	}
	return l, nil
}

// Delete removes the log; exercise_logs cascade.
func (r *Repo) Delete(ctx context.Context, userID, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteLogSQL, id, userID)
	if err != nil {
		return mapError(err, "workout_log", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workout_log %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// CountSets returns the number of set rows for the log.
func (r *Repo) CountSets(ctx context.Context, logID int64) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, countSetsSQL, logID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count exercise_logs: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Set operations
// ---------------------------------------------------------------------------

// ListSetIDs returns all persisted set row ids for the log, ascending.
func (r *Repo) ListSetIDs(ctx context.Context, logID int64) ([]int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSetIDsSQL, logID)
	if err != nil {
		return nil, fmt.Errorf("list exercise_log ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan exercise_log id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// FindByPosition returns ids of rows matching (exercise, set-number) for the
// log, ordered by ascending id. Multiple results mean legacy duplicates.
func (r *Repo) FindByPosition(ctx context.Context, logID, exerciseID int64, setNumber int) ([]int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, findByPositionSQL, logID, exerciseID, setNumber)
	if err != nil {
		return nil, fmt.Errorf("find exercise_log by position: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan exercise_log id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// InsertSet inserts a new set row and returns its id.
func (r *Repo) InsertSet(ctx context.Context, s *domain.ExerciseLog) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var id int64
	err := q.QueryRow(ctx, insertSetSQL,
		s.WorkoutLogID, s.ExerciseID, s.SetNumber, s.RepsCompleted, s.WeightKg, s.Notes,
	).Scan(&id)
	if err != nil {
		return 0, mapError(err, "exercise_log", s.WorkoutLogID)
	}
	return id, nil
}

// UpdateSet rewrites all mutable fields of a set row in place.
func (r *Repo) UpdateSet(ctx context.Context, id int64, s *domain.ExerciseLog) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateSetSQL, id, s.ExerciseID, s.SetNumber, s.RepsCompleted, s.WeightKg, s.Notes)
	if err != nil {
		return mapError(err, "exercise_log", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("exercise_log %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UpdateSetPartial applies a partial update to a single set row.
func (r *Repo) UpdateSetPartial(ctx context.Context, id int64, upd domain.ExerciseSetUpdate) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql := `UPDATE exercise_logs SET
  reps_completed = COALESCE($2, reps_completed),
  weight_kg      = COALESCE($3, weight_kg),
  notes          = COALESCE($4, notes)
WHERE id = $1`

	tag, err := q.Exec(ctx, sql, id, upd.RepsCompleted, upd.WeightKg, upd.Notes)
	if err != nil {
		return mapError(err, "exercise_log", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("exercise_log %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteSetsNotIn removes every set row for the log whose id is not in kept.
// An empty kept set clears the log entirely.
func (r *Repo) DeleteSetsNotIn(ctx context.Context, logID int64, kept []int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var err error
	if len(kept) == 0 {
		_, err = q.Exec(ctx, deleteAllSetsSQL, logID)
	} else {
		_, err = q.Exec(ctx, deleteSetsNotInSQL, logID, kept)
	}
	if err != nil {
		return fmt.Errorf("delete unkept exercise_logs: %w", err)
	}
	return nil
}

// DeleteSetsByID removes the given set rows.
func (r *Repo) DeleteSetsByID(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteSetsByIDSQL, ids); err != nil {
		return fmt.Errorf("delete exercise_logs: %w", err)
	}
	return nil
}

// DeleteSet removes one set row.
func (r *Repo) DeleteSet(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSetSQL, id)
	if err != nil {
		return mapError(err, "exercise_log", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("exercise_log %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// GetSetOwned returns a set row, requiring the parent log to belong to userID.
func (r *Repo) GetSetOwned(ctx context.Context, userID, setID int64) (*domain.ExerciseLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.ExerciseLog
	err := q.QueryRow(ctx, getSetOwnedSQL, setID, userID).Scan(
		&s.ID, &s.WorkoutLogID, &s.ExerciseID, &s.SetNumber,
		&s.RepsCompleted, &s.WeightKg, &s.Notes, &s.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err, "exercise_log", setID)
	}
	return &s, nil
}

// ListSets returns the canonical set rows for the log with exercise and
// muscle-group joins, ordered by (exercise_id, set_number).
func (r *Repo) ListSets(ctx context.Context, logID int64) ([]domain.ExerciseLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSetsSQL, logID)
	if err != nil {
		return nil, fmt.Errorf("list exercise_logs: %w", err)
	}
	defer rows.Close()

	var sets []domain.ExerciseLog
	for rows.Next() {
		s, err := scanSetWithExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exercise_log: %w", err)
		}
		sets = append(sets, *s)
	}
	return sets, rows.Err()
}

func scanLog(row pgx.Row) (*domain.WorkoutLog, error) {
	var l domain.WorkoutLog
	if err := row.Scan(
		&l.ID, &l.UserID, &l.WorkoutDayID, &l.WorkoutName,
		&l.CompletedDate, &l.Notes, &l.IsManual, &l.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}

func scanSetWithExercise(row pgx.Row) (*domain.ExerciseLog, error) {
	var (
		s  domain.ExerciseLog
		e  domain.Exercise
		mg domain.MuscleGroup
	)
	if err := row.Scan(
		&s.ID, &s.WorkoutLogID, &s.ExerciseID, &s.SetNumber,
		&s.RepsCompleted, &s.WeightKg, &s.Notes, &s.CreatedAt,
		&e.ID, &e.MuscleGroupID, &e.Name, &e.Description, &e.Steps, &e.VideoURL,
		&mg.ID, &mg.Name, &mg.Description,
	); err != nil {
		return nil, err
	}
	e.MuscleGroup = &mg
	s.Exercise = &e
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
