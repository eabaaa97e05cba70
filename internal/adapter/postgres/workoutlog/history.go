package workoutlog

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/kvolkov/gymtrack-backend/internal/adapter/postgres"
	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// ListByDateRange returns full logs (headers, schedule context, set rows)
// within [from, to] ordered by date ascending. Feeds the history aggregation
// and shared-view rendering.
func (r *Repo) ListByDateRange(ctx context.Context, userID int64, from, to time.Time) ([]domain.WorkoutLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
SELECT wl.id, wl.user_id, wl.workout_day_id, wl.workout_name, wl.completed_date,
       wl.notes, wl.is_manual, wl.created_at,
       wd.id, wd.plan_id, wd.day_number, wd.day_name, wd.muscle_group_id,
       mg.id, mg.name, mg.description
FROM workout_logs wl
LEFT JOIN workout_days wd ON wd.id = wl.workout_day_id
LEFT JOIN muscle_groups mg ON mg.id = wd.muscle_group_id
WHERE wl.user_id = $1 AND wl.completed_date >= $2 AND wl.completed_date <= $3
ORDER BY wl.completed_date ASC, wl.id ASC`

	rows, err := q.Query(ctx, sql, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list workout_logs by range: %w", err)
	}
	defer rows.Close()

	var logs []domain.WorkoutLog
	for rows.Next() {
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
		if err := rows.Scan(
			&l.ID, &l.UserID, &l.WorkoutDayID, &l.WorkoutName, &l.CompletedDate,
			&l.Notes, &l.IsManual, &l.CreatedAt,
			&dayID, &planID, &dayNum, &dayNm, &dayMG,
			&mgID, &mgName, &mgDesc,
		); err != nil {
			return nil, fmt.Errorf("scan workout_log: %w", err)
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
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range logs {
		sets, err := r.ListSets(ctx, logs[i].ID)
		if err != nil {
			return nil, err
		}
		logs[i].ExerciseLogs = sets
	}
	return logs, nil
}

// ListExercisePoints returns all recorded sets of one exercise for the user,
// oldest-first, optionally bounded by a date window.
func (r *Repo) ListExercisePoints(ctx context.Context, userID, exerciseID int64, from, to *time.Time) ([]domain.ExerciseProgressPoint, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := psql.
		Select("wl.completed_date", "wl.id", "el.set_number", "el.reps_completed", "el.weight_kg").
		From("exercise_logs el").
		Join("workout_logs wl ON wl.id = el.workout_log_id").
		Where(squirrel.Eq{"wl.user_id": userID, "el.exercise_id": exerciseID}).
		OrderBy("wl.completed_date ASC", "el.set_number ASC")

	if from != nil {
		builder = builder.Where(squirrel.GtOrEq{"wl.completed_date": *from})
	}
	if to != nil {
		builder = builder.Where(squirrel.LtOrEq{"wl.completed_date": *to})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build exercise progress query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercise points: %w", err)
	}
	defer rows.Close()

	var points []domain.ExerciseProgressPoint
	for rows.Next() {
		var p domain.ExerciseProgressPoint
		if err := rows.Scan(&p.Date, &p.WorkoutLogID, &p.SetNumber, &p.RepsCompleted, &p.WeightKg); err != nil {
			return nil, fmt.Errorf("scan exercise point: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// ListCompletedDates returns the distinct dates the user trained,
// newest-first. Used for streak computation.
func (r *Repo) ListCompletedDates(ctx context.Context, userID int64) ([]time.Time, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
SELECT DISTINCT completed_date FROM workout_logs
WHERE user_id = $1
ORDER BY completed_date DESC`

	rows, err := q.Query(ctx, sql, userID)
	if err != nil {
		return nil, fmt.Errorf("list completed dates: %w", err)
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan completed date: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// GetOverallStats returns lifetime counters for the user.
func (r *Repo) GetOverallStats(ctx context.Context, userID int64) (*domain.OverallStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	const sql = `
SELECT count(DISTINCT wl.id),
       count(el.id),
       COALESCE(sum(el.reps_completed * el.weight_kg), 0),
       min(wl.completed_date),
       max(wl.completed_date)
FROM workout_logs wl
LEFT JOIN exercise_logs el ON el.workout_log_id = wl.id
WHERE wl.user_id = $1`

	var s domain.OverallStats
	err := q.QueryRow(ctx, sql, userID).Scan(
		&s.TotalWorkouts, &s.TotalSets, &s.TotalVolumeKg, &s.FirstWorkout, &s.LastWorkout,
	)
	if err != nil {
		return nil, fmt.Errorf("get overall stats: %w", err)
	}
	return &s, nil
}
