package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateUser inserts a user with a throwaway password hash and returns its id.
func CreateUser(t *testing.T, pool *pgxpool.Pool, username string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO users (username, password_hash, user_type)
		VALUES ($1, 'x', 'user')
		RETURNING id`, username).Scan(&id)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return id
}

// CreateAdmin inserts an admin user and returns its id.
func CreateAdmin(t *testing.T, pool *pgxpool.Pool, username string) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO users (username, password_hash, user_type)
		VALUES ($1, 'x', 'admin')
		RETURNING id`, username).Scan(&id)
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return id
}

// CreateManualLog inserts a manual workout log and returns its id.
func CreateManualLog(t *testing.T, pool *pgxpool.Pool, userID int64, name string, date time.Time) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO workout_logs (user_id, workout_name, completed_date, is_manual)
		VALUES ($1, $2, $3, true)
		RETURNING id`, userID, name, date).Scan(&id)
	if err != nil {
		t.Fatalf("seed workout log: %v", err)
	}
	return id
}

// CreateSet inserts an exercise-log row and returns its id.
func CreateSet(t *testing.T, pool *pgxpool.Pool, logID, exerciseID int64, setNumber, reps int, weight float64) int64 {
	t.Helper()

	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO exercise_logs (workout_log_id, exercise_id, set_number, reps_completed, weight_kg)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, logID, exerciseID, setNumber, reps, weight).Scan(&id)
	if err != nil {
		t.Fatalf("seed exercise log: %v", err)
	}
	return id
}

// CreateShare inserts a workout share and returns its id and token.
func CreateShare(t *testing.T, pool *pgxpool.Pool, userID int64, from, to time.Time, expiresAt *time.Time, active bool) (int64, uuid.UUID) {
	t.Helper()

	token := uuid.New()
	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO workout_shares (token, user_id, from_date, to_date, expires_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`, token, userID, from, to, expiresAt, active).Scan(&id)
	if err != nil {
		t.Fatalf("seed share: %v", err)
	}
	return id, token
}

// FirstExerciseID returns the id of an exercise from the seeded catalog.
func FirstExerciseID(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()

	var id int64
	if err := pool.QueryRow(context.Background(),
		`SELECT id FROM exercises ORDER BY id ASC LIMIT 1`).Scan(&id); err != nil {
		t.Fatalf("lookup exercise: %v", err)
	}
	return id
}
