package plan

import (
	"context"
	"sync"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

// planRepoMock is a hand-written mock of planRepo.
type planRepoMock struct {
	GetByIDFunc           func(ctx context.Context, userID, id int64) (*domain.WorkoutPlan, error)
	GetFullFunc           func(ctx context.Context, userID, id int64) (*domain.WorkoutPlan, error)
	ListFunc              func(ctx context.Context, userID int64) ([]domain.WorkoutPlan, error)
	GetActiveFunc         func(ctx context.Context, userID int64) (*domain.WorkoutPlan, error)
	CreateFunc            func(ctx context.Context, p *domain.WorkoutPlan) (*domain.WorkoutPlan, error)
	CreateDayFunc         func(ctx context.Context, d *domain.WorkoutDay) (*domain.WorkoutDay, error)
	CreateDayExerciseFunc func(ctx context.Context, e *domain.WorkoutDayExercise) (int64, error)
	GetDayFunc            func(ctx context.Context, userID, dayID int64) (*domain.WorkoutDay, error)
	GetDayFullFunc        func(ctx context.Context, userID, dayID int64) (*domain.WorkoutDay, error)
	DeleteDayFunc         func(ctx context.Context, userID, dayID int64) error
	DeleteDayExerciseFunc func(ctx context.Context, userID, id int64) error
	NextOrderFunc         func(ctx context.Context, dayID int64) (int, error)
	ActivateFunc          func(ctx context.Context, userID, id int64) error
	DeleteFunc            func(ctx context.Context, userID, id int64) error

	mu    sync.RWMutex
	calls struct {
		Create            []*domain.WorkoutPlan
		CreateDay         []*domain.WorkoutDay
		CreateDayExercise []*domain.WorkoutDayExercise
		Activate          []struct{ UserID, ID int64 }
	}
}

var _ planRepo = &planRepoMock{}

func (m *planRepoMock) GetByID(ctx context.Context, userID, id int64) (*domain.WorkoutPlan, error) {
	if m.GetByIDFunc == nil {
		panic("planRepoMock.GetByIDFunc: method is nil but planRepo.GetByID was called")
	}
	return m.GetByIDFunc(ctx, userID, id)
}

func (m *planRepoMock) GetFull(ctx context.Context, userID, id int64) (*domain.WorkoutPlan, error) {
	if m.GetFullFunc == nil {
		panic("planRepoMock.GetFullFunc: method is nil but planRepo.GetFull was called")
	}
	return m.GetFullFunc(ctx, userID, id)
}

func (m *planRepoMock) List(ctx context.Context, userID int64) ([]domain.WorkoutPlan, error) {
	if m.ListFunc == nil {
		panic("planRepoMock.ListFunc: method is nil but planRepo.List was called")
	}
	return m.ListFunc(ctx, userID)
}

func (m *planRepoMock) GetActive(ctx context.Context, userID int64) (*domain.WorkoutPlan, error) {
	if m.GetActiveFunc == nil {
		panic("planRepoMock.GetActiveFunc: method is nil but planRepo.GetActive was called")
	}
	return m.GetActiveFunc(ctx, userID)
}

func (m *planRepoMock) Create(ctx context.Context, p *domain.WorkoutPlan) (*domain.WorkoutPlan, error) {
	if m.CreateFunc == nil {
		panic("planRepoMock.CreateFunc: method is nil but planRepo.Create was called")
	}
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, p)
	m.mu.Unlock()
	return m.CreateFunc(ctx, p)
}

func (m *planRepoMock) CreateDay(ctx context.Context, d *domain.WorkoutDay) (*domain.WorkoutDay, error) {
	if m.CreateDayFunc == nil {
		panic("planRepoMock.CreateDayFunc: method is nil but planRepo.CreateDay was called")
	}
	m.mu.Lock()
	copied := *d
	m.calls.CreateDay = append(m.calls.CreateDay, &copied)
	m.mu.Unlock()
	return m.CreateDayFunc(ctx, d)
}

func (m *planRepoMock) CreateDayExercise(ctx context.Context, e *domain.WorkoutDayExercise) (int64, error) {
	if m.CreateDayExerciseFunc == nil {
		panic("planRepoMock.CreateDayExerciseFunc: method is nil but planRepo.CreateDayExercise was called")
	}
	m.mu.Lock()
	copied := *e
	m.calls.CreateDayExercise = append(m.calls.CreateDayExercise, &copied)
	m.mu.Unlock()
	return m.CreateDayExerciseFunc(ctx, e)
}

func (m *planRepoMock) GetDay(ctx context.Context, userID, dayID int64) (*domain.WorkoutDay, error) {
	if m.GetDayFunc == nil {
		panic("planRepoMock.GetDayFunc: method is nil but planRepo.GetDay was called")
	}
	return m.GetDayFunc(ctx, userID, dayID)
}

func (m *planRepoMock) DeleteDay(ctx context.Context, userID, dayID int64) error {
	if m.DeleteDayFunc == nil {
		panic("planRepoMock.DeleteDayFunc: method is nil but planRepo.DeleteDay was called")
	}
	return m.DeleteDayFunc(ctx, userID, dayID)
}

func (m *planRepoMock) DeleteDayExercise(ctx context.Context, userID, id int64) error {
	if m.DeleteDayExerciseFunc == nil {
		panic("planRepoMock.DeleteDayExerciseFunc: method is nil but planRepo.DeleteDayExercise was called")
	}
	return m.DeleteDayExerciseFunc(ctx, userID, id)
}

func (m *planRepoMock) NextDayExerciseOrder(ctx context.Context, dayID int64) (int, error) {
	if m.NextOrderFunc == nil {
		panic("planRepoMock.NextOrderFunc: method is nil but planRepo.NextDayExerciseOrder was called")
	}
	return m.NextOrderFunc(ctx, dayID)
}

func (m *planRepoMock) GetDayFull(ctx context.Context, userID, dayID int64) (*domain.WorkoutDay, error) {
	if m.GetDayFullFunc == nil {
		panic("planRepoMock.GetDayFullFunc: method is nil but planRepo.GetDayFull was called")
	}
	return m.GetDayFullFunc(ctx, userID, dayID)
}

func (m *planRepoMock) Activate(ctx context.Context, userID, id int64) error {
	if m.ActivateFunc == nil {
		panic("planRepoMock.ActivateFunc: method is nil but planRepo.Activate was called")
	}
	m.mu.Lock()
	m.calls.Activate = append(m.calls.Activate, struct{ UserID, ID int64 }{userID, id})
	m.mu.Unlock()
	return m.ActivateFunc(ctx, userID, id)
}

func (m *planRepoMock) Delete(ctx context.Context, userID, id int64) error {
	if m.DeleteFunc == nil {
		panic("planRepoMock.DeleteFunc: method is nil but planRepo.Delete was called")
	}
	return m.DeleteFunc(ctx, userID, id)
}

func (m *planRepoMock) CreateCalls() []*domain.WorkoutPlan {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.Create
}

func (m *planRepoMock) CreateDayCalls() []*domain.WorkoutDay {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.CreateDay
}

func (m *planRepoMock) CreateDayExerciseCalls() []*domain.WorkoutDayExercise {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.CreateDayExercise
}

func (m *planRepoMock) ActivateCalls() []struct{ UserID, ID int64 } {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.Activate
}

// txManagerMock is a hand-written mock of txManager.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	mu    sync.RWMutex
	calls struct {
		RunInTx int
	}
}

var _ txManager = &txManagerMock{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was called")
	}
	m.mu.Lock()
	m.calls.RunInTx++
	m.mu.Unlock()
	return m.RunInTxFunc(ctx, fn)
}

func (m *txManagerMock) RunInTxCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls.RunInTx
}

func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}
