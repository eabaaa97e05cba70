// Package plan implements the workout-plan repository: plans, their
// scheduled days and the planned exercises per day.
package plan

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kvolkov/gymtrack-backend/internal/adapter/postgres"
	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// Repo provides workout-plan persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new plan repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const planColumns = `id, user_id, name, start_date, end_date, duration, training_type, split, notes, is_active, created_at`

const getPlanSQL = `
SELECT ` + planColumns + ` FROM workout_plans WHERE id = $1 AND user_id = $2`

const listPlansSQL = `
SELECT ` + planColumns + ` FROM workout_plans WHERE user_id = $1 ORDER BY created_at DESC`

const getActivePlanSQL = `
SELECT ` + planColumns + ` FROM workout_plans WHERE user_id = $1 AND is_active ORDER BY created_at DESC LIMIT 1`

const createPlanSQL = `
INSERT INTO workout_plans (user_id, name, start_date, end_date, duration, training_type, split, notes, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + planColumns

const deactivatePlansSQL = `UPDATE workout_plans SET is_active = false WHERE user_id = $1`

const activatePlanSQL = `UPDATE workout_plans SET is_active = true WHERE id = $1 AND user_id = $2`

const deletePlanSQL = `DELETE FROM workout_plans WHERE id = $1 AND user_id = $2`

const dayColumns = `id, plan_id, day_number, day_name, muscle_group_id`

const createDaySQL = `
INSERT INTO workout_days (plan_id, day_number, day_name, muscle_group_id)
VALUES ($1, $2, $3, $4)
RETURNING ` + dayColumns

const getDaySQL = `
SELECT wd.id, wd.plan_id, wd.day_number, wd.day_name, wd.muscle_group_id
FROM workout_days wd
JOIN workout_plans wp ON wp.id = wd.plan_id
WHERE wd.id = $1 AND wp.user_id = $2`

const createDayExerciseSQL = `
INSERT INTO workout_day_exercises (workout_day_id, exercise_id, sets, reps, rest_seconds, order_index)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

const deleteDaySQL = `
DELETE FROM workout_days wd
USING workout_plans wp
WHERE wd.id = $1 AND wp.id = wd.plan_id AND wp.user_id = $2`

const deleteDayExerciseSQL = `
DELETE FROM workout_day_exercises wde
USING workout_days wd, workout_plans wp
WHERE wde.id = $1 AND wd.id = wde.workout_day_id AND wp.id = wd.plan_id AND wp.user_id = $2`

const nextDayExerciseOrderSQL = `
SELECT COALESCE(MAX(order_index) + 1, 0) FROM workout_day_exercises WHERE workout_day_id = $1`

// listDaysSQL loads the day headers of a plan with their muscle groups.
const listDaysSQL = `
SELECT wd.id, wd.plan_id, wd.day_number, wd.day_name, wd.muscle_group_id,
       mg.id, mg.name, mg.description
FROM workout_days wd
LEFT JOIN muscle_groups mg ON mg.id = wd.muscle_group_id
WHERE wd.plan_id = $1
ORDER BY wd.day_number ASC`

// listDayExercisesSQL loads the planned exercises of one day, in plan order.
const listDayExercisesSQL = `
SELECT wde.id, wde.workout_day_id, wde.exercise_id, wde.sets, wde.reps, wde.rest_seconds, wde.order_index,
       e.id, e.muscle_group_id, e.name, e.description, e.steps, e.video_url,
       mg.id, mg.name, mg.description
FROM workout_day_exercises wde
JOIN exercises e ON e.id = wde.exercise_id
JOIN muscle_groups mg ON mg.id = e.muscle_group_id
WHERE wde.workout_day_id = $1
ORDER BY wde.order_index ASC, wde.id ASC`

// GetByID returns the plan header scoped to its owner.
func (r *Repo) GetByID(ctx context.Context, userID, id int64) (*domain.WorkoutPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPlan(q.QueryRow(ctx, getPlanSQL, id, userID))
	if err != nil {
		return nil, mapError(err, "workout_plan", id)
	}
	return p, nil
}

// GetFull returns the plan with its days and each day's planned exercises.
func (r *Repo) GetFull(ctx context.Context, userID, id int64) (*domain.WorkoutPlan, error) {
	p, err := r.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	days, err := r.listDays(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Days = days
	return p, nil
}

// List returns all of the user's plan headers, newest first.
func (r *Repo) List(ctx context.Context, userID int64) ([]domain.WorkoutPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listPlansSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list workout_plans: %w", err)
	}
	defer rows.Close()

	var plans []domain.WorkoutPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workout_plan: %w", err)
		}
		plans = append(plans, *p)
	}
	return plans, rows.Err()
}

// GetActive returns the user's active plan with days and exercises, or
// domain.ErrNotFound when no plan is active.
func (r *Repo) GetActive(ctx context.Context, userID int64) (*domain.WorkoutPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanPlan(q.QueryRow(ctx, getActivePlanSQL, userID))
	if err != nil {
		return nil, mapError(err, "workout_plan", userID)
	}
	days, err := r.listDays(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Days = days
	return p, nil
}

// Create inserts the plan header and returns the persisted row.
func (r *Repo) Create(ctx context.Context, p *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanPlan(q.QueryRow(ctx, createPlanSQL,
		p.UserID, p.Name, p.StartDate, p.EndDate, p.Duration, p.TrainingType, p.Split, p.Notes, p.IsActive))
	if err != nil {
		return nil, mapError(err, "workout_plan", p.UserID)
	}
	return created, nil
}

// CreateDay inserts one scheduled day for the plan.
func (r *Repo) CreateDay(ctx context.Context, d *domain.WorkoutDay) (*domain.WorkoutDay, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var created domain.WorkoutDay
	err := q.QueryRow(ctx, createDaySQL, d.PlanID, d.DayNumber, d.DayName, d.MuscleGroupID).Scan(
		&created.ID, &created.PlanID, &created.DayNumber, &created.DayName, &created.MuscleGroupID,
	)
	if err != nil {
		return nil, mapError(err, "workout_day", d.PlanID)
	}
	return &created, nil
}

// CreateDayExercise inserts one planned exercise and returns its id.
func (r *Repo) CreateDayExercise(ctx context.Context, e *domain.WorkoutDayExercise) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var id int64
	err := q.QueryRow(ctx, createDayExerciseSQL,
		e.WorkoutDayID, e.ExerciseID, e.Sets, e.Reps, e.RestSeconds, e.OrderIndex,
	).Scan(&id)
	if err != nil {
		return 0, mapError(err, "workout_day_exercise", e.WorkoutDayID)
	}
	return id, nil
}

// GetDay returns a single day header, requiring the parent plan to belong
// to userID.
func (r *Repo) GetDay(ctx context.Context, userID, dayID int64) (*domain.WorkoutDay, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var d domain.WorkoutDay
	err := q.QueryRow(ctx, getDaySQL, dayID, userID).Scan(
		&d.ID, &d.PlanID, &d.DayNumber, &d.DayName, &d.MuscleGroupID,
	)
	if err != nil {
		return nil, mapError(err, "workout_day", dayID)
	}
	return &d, nil
}

// GetDayFull returns a day with its planned exercises.
func (r *Repo) GetDayFull(ctx context.Context, userID, dayID int64) (*domain.WorkoutDay, error) {
	d, err := r.GetDay(ctx, userID, dayID)
	if err != nil {
		return nil, err
	}
	exercises, err := r.ListDayExercises(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	d.Exercises = exercises
	return d, nil
}

// DeleteDay removes one scheduled day, requiring the parent plan to belong
// to userID. Planned exercises cascade.
func (r *Repo) DeleteDay(ctx context.Context, userID, dayID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteDaySQL, dayID, userID)
	if err != nil {
		return mapError(err, "workout_day", dayID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workout_day %d: %w", dayID, domain.ErrNotFound)
	}
	return nil
}

// DeleteDayExercise removes one planned exercise, scoped to the plan owner.
func (r *Repo) DeleteDayExercise(ctx context.Context, userID, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteDayExerciseSQL, id, userID)
	if err != nil {
		return mapError(err, "workout_day_exercise", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workout_day_exercise %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// NextDayExerciseOrder returns the order_index the next planned exercise of
// the day should take.
func (r *Repo) NextDayExerciseOrder(ctx context.Context, dayID int64) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var next int
	if err := q.QueryRow(ctx, nextDayExerciseOrderSQL, dayID).Scan(&next); err != nil {
		return 0, mapError(err, "workout_day", dayID)
	}
	return next, nil
}

// Activate marks the plan active after deactivating the user's other plans.
// Callers run this inside a transaction.
func (r *Repo) Activate(ctx context.Context, userID, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deactivatePlansSQL, userID); err != nil {
		return fmt.Errorf("deactivate workout_plans: %w", err)
	}
	tag, err := q.Exec(ctx, activatePlanSQL, id, userID)
	if err != nil {
		return mapError(err, "workout_plan", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workout_plan %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes the plan; days and planned exercises cascade.
func (r *Repo) Delete(ctx context.Context, userID, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deletePlanSQL, id, userID)
	if err != nil {
		return mapError(err, "workout_plan", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("workout_plan %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListDayExercises returns the planned exercises of one day, in plan order.
func (r *Repo) ListDayExercises(ctx context.Context, dayID int64) ([]domain.WorkoutDayExercise, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listDayExercisesSQL, dayID)
	if err != nil {
		return nil, fmt.Errorf("list workout_day_exercises: %w", err)
	}
	defer rows.Close()

	var exercises []domain.WorkoutDayExercise
	for rows.Next() {
		var (
			we domain.WorkoutDayExercise
			e  domain.Exercise
			mg domain.MuscleGroup
		)
		if err := rows.Scan(
			&we.ID, &we.WorkoutDayID, &we.ExerciseID, &we.Sets, &we.Reps, &we.RestSeconds, &we.OrderIndex,
			&e.ID, &e.MuscleGroupID, &e.Name, &e.Description, &e.Steps, &e.VideoURL,
			&mg.ID, &mg.Name, &mg.Description,
		); err != nil {
			return nil, fmt.Errorf("scan workout_day_exercise: %w", err)
		}
		e.MuscleGroup = &mg
		we.Exercise = &e
		exercises = append(exercises, we)
	}
	return exercises, rows.Err()
}

func (r *Repo) listDays(ctx context.Context, planID int64) ([]domain.WorkoutDay, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listDaysSQL, planID)
	if err != nil {
		return nil, fmt.Errorf("list workout_days: %w", err)
	}
	defer rows.Close()

	var days []domain.WorkoutDay
	for rows.Next() {
		var (
			d      domain.WorkoutDay
			mgID   *int64
			mgName *string
			mgDesc *string
		)
		if err := rows.Scan(
			&d.ID, &d.PlanID, &d.DayNumber, &d.DayName, &d.MuscleGroupID,
			&mgID, &mgName, &mgDesc,
		); err != nil {
			return nil, fmt.Errorf("scan workout_day: %w", err)
		}
		if mgID != nil {
			d.MuscleGroup = &domain.MuscleGroup{ID: *mgID, Name: *mgName, Description: mgDesc}
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range days {
		exercises, err := r.ListDayExercises(ctx, days[i].ID)
		if err != nil {
			return nil, err
		}
		days[i].Exercises = exercises
	}
	return days, nil
}

func scanPlan(row pgx.Row) (*domain.WorkoutPlan, error) {
	var p domain.WorkoutPlan
	if err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.StartDate, &p.EndDate,
		&p.Duration, &p.TrainingType, &p.Split, &p.Notes, &p.IsActive, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &p, nil
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
