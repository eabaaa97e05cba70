package workoutlog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvolkov/gymtrack-backend/internal/adapter/postgres/testhelper"
	"github.com/kvolkov/gymtrack-backend/internal/adapter/postgres/workoutlog"
	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

func uniqueName(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8]
}

// seedPlanWithDay creates a minimal plan with one scheduled day directly in
// the DB and returns the day id.
func seedPlanWithDay(t *testing.T, pool *pgxpool.Pool, userID int64) int64 {
	t.Helper()
	ctx := context.Background()

	var planID int64
	err := pool.QueryRow(ctx, `
		INSERT INTO workout_plans (user_id, name, start_date)
		VALUES ($1, 'Test Plan', '2025-03-01')
		RETURNING id`, userID).Scan(&planID)
	require.NoError(t, err)

	var dayID int64
	err = pool.QueryRow(ctx, `
		INSERT INTO workout_days (plan_id, day_number, day_name)
		VALUES ($1, 1, 'Push')
		RETURNING id`, planID).Scan(&dayID)
	require.NoError(t, err)

	return dayID
}

func TestRepo_Create_AndGetHeader(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := workoutlog.New(pool)
	ctx := context.Background()

	userID := testhelper.CreateUser(t, pool, uniqueName("wl-create"))

	notes := "felt strong"
	workoutName := "Push Day"
	created, err := repo.Create(ctx, &domain.WorkoutLog{
		UserID:        userID,
		WorkoutName:   &workoutName,
		CompletedDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Notes:         &notes,
		IsManual:      true,
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, userID, created.UserID)
	require.NotNil(t, created.WorkoutName)
	assert.Equal(t, "Push Day", *created.WorkoutName)
	assert.Equal(t, "2025-03-10", created.CompletedDate.Format("2006-01-02"))
	assert.True(t, created.IsManual)
	require.NotNil(t, created.Notes)
	assert.Equal(t, "felt strong", *created.Notes)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetHeader(ctx, userID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestRepo_GetHeader_ScopedToOwner(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := workoutlog.New(pool)
	ctx := context.Background()

	owner := testhelper.CreateUser(t, pool, uniqueName("wl-owner"))
	other := testhelper.CreateUser(t, pool, uniqueName("wl-other"))
	logID := testhelper.CreateManualLog(t, pool, owner, "Push", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	_, err := repo.GetHeader(ctx, other, logID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "expected ErrNotFound, got: %v", err)
}

func TestRepo_FindByDayAndDate(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := workoutlog.New(pool)
	ctx := context.Background()

	userID := testhelper.CreateUser(t, pool, uniqueName("wl-day"))
	dayID := seedPlanWithDay(t, pool, userID)
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	workoutName := "Push"
	created, err := repo.Create(ctx, &domain.WorkoutLog{
		UserID:        userID,
		WorkoutDayID:  &dayID,
		WorkoutName:   &workoutName,
		CompletedDate: date,
	})
	require.NoError(t, err)

	got, err := repo.FindByDayAndDate(ctx, userID, dayID, date)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	// Another date on the same day has no log.
	_, err = repo.FindByDayAndDate(ctx, userID, dayID, date.AddDate(0, 0, 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRepo_UpdateHeader_PartialAndClearNotes(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := workoutlog.New(pool)
	ctx := context.Background()

	userID := testhelper.CreateUser(t, pool, uniqueName("wl-upd"))
	logID := testhelper.CreateManualLog(t, pool, userID, "Push", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	notes := "tough one"
	name := "Push v2"
	updated, err := repo.UpdateHeader(ctx, logID, domain.WorkoutLogUpdate{WorkoutName: &name, Notes: &notes})
	require.NoError(t, err)
	require.NotNil(t, updated.WorkoutName)
	assert.Equal(t, "Push v2", *updated.WorkoutName)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "tough one", *updated.Notes)
	assert.Equal(t, "2025-03-10", updated.CompletedDate.Format("2006-01-02"), "untouched fields keep their values")

	cleared, err := repo.UpdateHeader(ctx, logID, domain.WorkoutLogUpdate{ClearNotes: true})
	require.NoError(t, err)
	assert.Nil(t, cleared.Notes)
	require.NotNil(t, cleared.WorkoutName)
	assert.Equal(t, "Push v2", *cleared.WorkoutName)
}

func TestRepo_FindByPosition_OrderedByID(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := workoutlog.New(pool)
	ctx := context.Background()

	userID := testhelper.CreateUser(t, pool, uniqueName("wl-pos"))
	logID := testhelper.CreateManualLog(t, pool, userID, "Push", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	exID := testhelper.FirstExerciseID(t, pool)

	// Two rows at the same (exercise, set_number) position.
	first := testhelper.CreateSet(t, pool, logID, exID, 1, 10, 50)
	second := testhelper.CreateSet(t, pool, logID, exID, 1, 12, 55)

	ids, err := repo.FindByPosition(ctx, logID, exID, 1)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, []int64{first, second}, ids, "duplicates come back in ascending id order")

	ids, err = repo.FindByPosition(ctx, logID, exID, 2)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRepo_DeleteSetsNotIn(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := workoutlog.New(pool)
	ctx := context.Background()

	userID := testhelper.CreateUser(t, pool, uniqueName("wl-keep"))
	logID := testhelper.CreateManualLog(t, pool, userID, "Push", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	exID := testhelper.FirstExerciseID(t, pool)

	a := testhelper.CreateSet(t, pool, logID, exID, 1, 10, 50)
	b := testhelper.CreateSet(t, pool, logID, exID, 2, 10, 50)
	c := testhelper.CreateSet(t, pool, logID, exID, 3, 10, 50)

	require.NoError(t, repo.DeleteSetsNotIn(ctx, logID, []int64{a, c}))

	ids, err := repo.ListSetIDs(ctx, logID)
	require.NoError(t, err)
	assert.Equal(t, []int64{a, c}, ids)
	_ = b

	// Empty kept set clears the log.
	require.NoError(t, repo.DeleteSetsNotIn(ctx, logID, nil))
	ids, err = repo.ListSetIDs(ctx, logID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRepo_DeleteSetsNotIn_ScopedToLog(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := workoutlog.New(pool)
	ctx := context.Background()

	userID := testhelper.CreateUser(t, pool, uniqueName("wl-scope"))
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	logA := testhelper.CreateManualLog(t, pool, userID, "A", date)
	logB := testhelper.CreateManualLog(t, pool, userID, "B", date.AddDate(0, 0, 1))
	exID := testhelper.FirstExerciseID(t, pool)

	setA := testhelper.CreateSet(t, pool, logA, exID, 1, 10, 50)
	setB := testhelper.CreateSet(t, pool, logB, exID, 1, 10, 50)

	require.NoError(t, repo.DeleteSetsNotIn(ctx, logA, nil))

	ids, err := repo.ListSetIDs(ctx, logB)
	require.NoError(t, err)
	assert.Equal(t, []int64{setB}, ids, "other logs keep their rows")
	_ = setA
}

func TestRepo_ListSets_CanonicalOrderWithJoins(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := workoutlog.New(pool)
	ctx := context.Background()

	userID := testhelper.CreateUser(t, pool, uniqueName("wl-order"))
	logID := testhelper.CreateManualLog(t, pool, userID, "Push", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	var exA, exB int64
	rows, err := pool.Query(ctx, `SELECT id FROM exercises ORDER BY id ASC LIMIT 2`)
	require.NoError(t, err)
	defer rows.Close()
	require.True(t, rows.Next())
	require.NoError(t, rows.Scan(&exA))
	require.True(t, rows.Next())
	require.NoError(t, rows.Scan(&exB))
	rows.Close()

	// Insert out of canonical order.
	testhelper.CreateSet(t, pool, logID, exB, 1, 8, 60)
	testhelper.CreateSet(t, pool, logID, exA, 2, 10, 50)
	testhelper.CreateSet(t, pool, logID, exA, 1, 10, 50)

	sets, err := repo.ListSets(ctx, logID)
	require.NoError(t, err)
	require.Len(t, sets, 3)

	assert.Equal(t, exA, sets[0].ExerciseID)
	assert.Equal(t, 1, sets[0].SetNumber)
	assert.Equal(t, exA, sets[1].ExerciseID)
	assert.Equal(t, 2, sets[1].SetNumber)
	assert.Equal(t, exB, sets[2].ExerciseID)

	for _, s := range sets {
		require.NotNil(t, s.Exercise)
		assert.NotEmpty(t, s.Exercise.Name)
		require.NotNil(t, s.Exercise.MuscleGroup)
		assert.NotEmpty(t, s.Exercise.MuscleGroup.Name)
	}
}

func TestRepo_GetSetOwned(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := workoutlog.New(pool)
	ctx := context.Background()

	owner := testhelper.CreateUser(t, pool, uniqueName("wl-setowner"))
	other := testhelper.CreateUser(t, pool, uniqueName("wl-setother"))
	logID := testhelper.CreateManualLog(t, pool, owner, "Push", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	exID := testhelper.FirstExerciseID(t, pool)
	setID := testhelper.CreateSet(t, pool, logID, exID, 1, 10, 52.5)

	got, err := repo.GetSetOwned(ctx, owner, setID)
	require.NoError(t, err)
	assert.Equal(t, setID, got.ID)
	assert.Equal(t, 10, got.RepsCompleted)
	assert.InDelta(t, 52.5, got.WeightKg, 0.001)

	_, err = repo.GetSetOwned(ctx, other, setID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "expected ErrNotFound, got: %v", err)
}

func TestRepo_UpdateSetPartial(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := workoutlog.New(pool)
	ctx := context.Background()

	userID := testhelper.CreateUser(t, pool, uniqueName("wl-partial"))
	logID := testhelper.CreateManualLog(t, pool, userID, "Push", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	exID := testhelper.FirstExerciseID(t, pool)
	setID := testhelper.CreateSet(t, pool, logID, exID, 1, 10, 50)

	reps := 12
	require.NoError(t, repo.UpdateSetPartial(ctx, setID, domain.ExerciseSetUpdate{RepsCompleted: &reps}))

	got, err := repo.GetSetOwned(ctx, userID, setID)
	require.NoError(t, err)
	assert.Equal(t, 12, got.RepsCompleted)
	assert.InDelta(t, 50, got.WeightKg, 0.001, "weight untouched by partial update")
}

func TestRepo_Delete_CascadesSets(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := workoutlog.New(pool)
	ctx := context.Background()

	userID := testhelper.CreateUser(t, pool, uniqueName("wl-cascade"))
	logID := testhelper.CreateManualLog(t, pool, userID, "Push", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	exID := testhelper.FirstExerciseID(t, pool)
	setID := testhelper.CreateSet(t, pool, logID, exID, 1, 10, 50)

	require.NoError(t, repo.Delete(ctx, userID, logID))

	var n int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT count(*) FROM exercise_logs WHERE id = $1`, setID).Scan(&n))
	assert.Zero(t, n, "set rows cascade with the log")

	err := repo.Delete(ctx, userID, logID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
