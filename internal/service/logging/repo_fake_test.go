package logging

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// fakeLogRepo is an in-memory logRepo. Row ids are assigned sequentially so
// tests can assert the "lowest id first" ordering the store guarantees.
type fakeLogRepo struct {
	mu     sync.Mutex
	nextID int64
	logs   map[int64]*domain.WorkoutLog
	sets   map[int64]*domain.ExerciseLog
}

var _ logRepo = &fakeLogRepo{}

func newFakeLogRepo() *fakeLogRepo {
	return &fakeLogRepo{
		nextID: 1,
		logs:   make(map[int64]*domain.WorkoutLog),
		sets:   make(map[int64]*domain.ExerciseLog),
	}
}

func (f *fakeLogRepo) nextIDLocked() int64 {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeLogRepo) addLog(l domain.WorkoutLog) *domain.WorkoutLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	l.ID = f.nextIDLocked()
	f.logs[l.ID] = &l
	return &l
}

func (f *fakeLogRepo) addSet(s domain.ExerciseLog) *domain.ExerciseLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = f.nextIDLocked()
	f.sets[s.ID] = &s
	return &s
}

func (f *fakeLogRepo) GetHeader(_ context.Context, userID, id int64) (*domain.WorkoutLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.logs[id]
	if !ok || l.UserID != userID {
		return nil, domain.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLogRepo) GetWithDay(ctx context.Context, userID, id int64) (*domain.WorkoutLog, error) {
	l, err := f.GetHeader(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	l.ExerciseLogs, _ = f.ListSets(ctx, l.ID)
	return l, nil
}

func (f *fakeLogRepo) FindByDayAndDate(_ context.Context, userID, dayID int64, date time.Time) (*domain.WorkoutLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.logs {
		if l.UserID == userID && l.WorkoutDayID != nil && *l.WorkoutDayID == dayID && l.CompletedDate.Equal(date) {
			cp := *l
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeLogRepo) Create(_ context.Context, l *domain.WorkoutLog) (*domain.WorkoutLog, error) {
	cp := *l
	f.mu.Lock()
	defer f.mu.Unlock()
	cp.ID = f.nextIDLocked()
	f.logs[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeLogRepo) UpdateHeader(_ context.Context, id int64, upd domain.WorkoutLogUpdate) (*domain.WorkoutLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.logs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if upd.WorkoutName != nil {
		name := *upd.WorkoutName
		l.WorkoutName = &name
	}
	if upd.CompletedDate != nil {
		l.CompletedDate = *upd.CompletedDate
	}
	if upd.ClearNotes {
		l.Notes = nil
	} else if upd.Notes != nil {
		notes := *upd.Notes
		l.Notes = &notes
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLogRepo) Delete(_ context.Context, userID, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.logs[id]
	if !ok || l.UserID != userID {
		return domain.ErrNotFound
	}
	delete(f.logs, id)
	for sid, s := range f.sets {
		if s.WorkoutLogID == id {
			delete(f.sets, sid)
		}
	}
	return nil
}

func (f *fakeLogRepo) ListSetIDs(_ context.Context, logID int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []int64
	for _, s := range f.sets {
		if s.WorkoutLogID == logID {
			ids = append(ids, s.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (f *fakeLogRepo) FindByPosition(_ context.Context, logID, exerciseID int64, setNumber int) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []int64
	for _, s := range f.sets {
		if s.WorkoutLogID == logID && s.ExerciseID == exerciseID && s.SetNumber == setNumber {
			ids = append(ids, s.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (f *fakeLogRepo) InsertSet(_ context.Context, s *domain.ExerciseLog) (int64, error) {
	cp := *s
	f.mu.Lock()
	defer f.mu.Unlock()
	cp.ID = f.nextIDLocked()
	f.sets[cp.ID] = &cp
	return cp.ID, nil
}

func (f *fakeLogRepo) UpdateSet(_ context.Context, id int64, s *domain.ExerciseLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.sets[id]
	if !ok {
		return domain.ErrNotFound
	}
	row.ExerciseID = s.ExerciseID
	row.SetNumber = s.SetNumber
	row.RepsCompleted = s.RepsCompleted
	row.WeightKg = s.WeightKg
	row.Notes = s.Notes
	return nil
}

func (f *fakeLogRepo) UpdateSetPartial(_ context.Context, id int64, upd domain.ExerciseSetUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.sets[id]
	if !ok {
		return domain.ErrNotFound
	}
	if upd.RepsCompleted != nil {
		row.RepsCompleted = *upd.RepsCompleted
	}
	if upd.WeightKg != nil {
		row.WeightKg = *upd.WeightKg
	}
	if upd.Notes != nil {
		notes := *upd.Notes
		row.Notes = &notes
	}
	return nil
}

func (f *fakeLogRepo) DeleteSetsNotIn(_ context.Context, logID int64, kept []int64) error {
	keep := make(map[int64]struct{}, len(kept))
	for _, id := range kept {
		keep[id] = struct{}{}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, s := range f.sets {
		if s.WorkoutLogID != logID {
			continue
		}
		if _, ok := keep[id]; !ok {
			delete(f.sets, id)
		}
	}
	return nil
}

func (f *fakeLogRepo) DeleteSetsByID(_ context.Context, ids []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		delete(f.sets, id)
	}
	return nil
}

func (f *fakeLogRepo) DeleteSet(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sets[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.sets, id)
	return nil
}

func (f *fakeLogRepo) GetSetOwned(_ context.Context, userID, setID int64) (*domain.ExerciseLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sets[setID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	l, ok := f.logs[s.WorkoutLogID]
	if !ok || l.UserID != userID {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeLogRepo) ListSets(_ context.Context, logID int64) ([]domain.ExerciseLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.ExerciseLog
	for _, s := range f.sets {
		if s.WorkoutLogID == logID {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ExerciseID != out[j].ExerciseID {
			return out[i].ExerciseID < out[j].ExerciseID
		}
		if out[i].SetNumber != out[j].SetNumber {
			return out[i].SetNumber < out[j].SetNumber
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// ---------------------------------------------------------------------------
// planRepo / txManager mocks
// ---------------------------------------------------------------------------

var _ planRepo = &planRepoMock{}

type planRepoMock struct {
	GetDayFunc func(ctx context.Context, userID, dayID int64) (*domain.WorkoutDay, error)

	calls struct {
		GetDay []struct {
			UserID int64
			DayID  int64
		}
	}
	lockGetDay sync.RWMutex
}

func (mock *planRepoMock) GetDay(ctx context.Context, userID, dayID int64) (*domain.WorkoutDay, error) {
	if mock.GetDayFunc == nil {
		panic("planRepoMock.GetDayFunc: method is nil but planRepo.GetDay was just called")
	}
	callInfo := struct {
		UserID int64
		DayID  int64
	}{UserID: userID, DayID: dayID}
	mock.lockGetDay.Lock()
	mock.calls.GetDay = append(mock.calls.GetDay, callInfo)
	mock.lockGetDay.Unlock()
	return mock.GetDayFunc(ctx, userID, dayID)
}

func (mock *planRepoMock) GetDayCalls() []struct {
	UserID int64
	DayID  int64
} {
	mock.lockGetDay.RLock()
	calls := mock.calls.GetDay
	mock.lockGetDay.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}
