package share

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

var _ shareRepo = &shareRepoMock{}

type shareRepoMock struct {
	CreateFunc            func(ctx context.Context, s *domain.WorkoutShare) (*domain.WorkoutShare, error)
	FindLatestByRangeFunc func(ctx context.Context, userID int64, from, to time.Time) (*domain.WorkoutShare, error)
	RenewFunc             func(ctx context.Context, id int64, expiresAt *time.Time) (*domain.WorkoutShare, error)
	GetByTokenFunc        func(ctx context.Context, token uuid.UUID) (*domain.WorkoutShare, error)
	CountCreatedSinceFunc func(ctx context.Context, userID int64, since time.Time) (int, error)
	ListFunc              func(ctx context.Context, filter domain.ShareListFilter) ([]domain.WorkoutShare, error)
	SetActiveFunc         func(ctx context.Context, id int64, active bool) error
	DeleteFunc            func(ctx context.Context, id int64) error

	calls struct {
		Create            []struct{ Share *domain.WorkoutShare }
		FindLatestByRange []struct {
			UserID   int64
			From, To time.Time
		}
		Renew []struct {
			ID        int64
			ExpiresAt *time.Time
		}
		GetByToken        []struct{ Token uuid.UUID }
		CountCreatedSince []struct {
			UserID int64
			Since  time.Time
		}
		List      []struct{ Filter domain.ShareListFilter }
		SetActive []struct {
			ID     int64
			Active bool
		}
		Delete []struct{ ID int64 }
	}
	mu sync.RWMutex
}

func (mock *shareRepoMock) Create(ctx context.Context, s *domain.WorkoutShare) (*domain.WorkoutShare, error) {
	if mock.CreateFunc == nil {
		panic("shareRepoMock.CreateFunc: method is nil but shareRepo.Create was just called")
	}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Share *domain.WorkoutShare }{Share: s})
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *shareRepoMock) CreateCalls() []struct{ Share *domain.WorkoutShare } {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Create
}

func (mock *shareRepoMock) FindLatestByRange(ctx context.Context, userID int64, from, to time.Time) (*domain.WorkoutShare, error) {
	if mock.FindLatestByRangeFunc == nil {
		panic("shareRepoMock.FindLatestByRangeFunc: method is nil but shareRepo.FindLatestByRange was just called")
	}
	callInfo := struct {
		UserID   int64
		From, To time.Time
	}{UserID: userID, From: from, To: to}
	mock.mu.Lock()
	mock.calls.FindLatestByRange = append(mock.calls.FindLatestByRange, callInfo)
	mock.mu.Unlock()
	return mock.FindLatestByRangeFunc(ctx, userID, from, to)
}

func (mock *shareRepoMock) FindLatestByRangeCalls() []struct {
	UserID   int64
	From, To time.Time
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.FindLatestByRange
}

func (mock *shareRepoMock) Renew(ctx context.Context, id int64, expiresAt *time.Time) (*domain.WorkoutShare, error) {
	if mock.RenewFunc == nil {
		panic("shareRepoMock.RenewFunc: method is nil but shareRepo.Renew was just called")
	}
	callInfo := struct {
		ID        int64
		ExpiresAt *time.Time
	}{ID: id, ExpiresAt: expiresAt}
	mock.mu.Lock()
	mock.calls.Renew = append(mock.calls.Renew, callInfo)
	mock.mu.Unlock()
	return mock.RenewFunc(ctx, id, expiresAt)
}

func (mock *shareRepoMock) RenewCalls() []struct {
	ID        int64
	ExpiresAt *time.Time
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Renew
}

func (mock *shareRepoMock) GetByToken(ctx context.Context, token uuid.UUID) (*domain.WorkoutShare, error) {
	if mock.GetByTokenFunc == nil {
		panic("shareRepoMock.GetByTokenFunc: method is nil but shareRepo.GetByToken was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByToken = append(mock.calls.GetByToken, struct{ Token uuid.UUID }{Token: token})
	mock.mu.Unlock()
	return mock.GetByTokenFunc(ctx, token)
}

func (mock *shareRepoMock) GetByTokenCalls() []struct{ Token uuid.UUID } {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.GetByToken
}

func (mock *shareRepoMock) CountCreatedSince(ctx context.Context, userID int64, since time.Time) (int, error) {
	if mock.CountCreatedSinceFunc == nil {
		panic("shareRepoMock.CountCreatedSinceFunc: method is nil but shareRepo.CountCreatedSince was just called")
	}
	callInfo := struct {
		UserID int64
		Since  time.Time
	}{UserID: userID, Since: since}
	mock.mu.Lock()
	mock.calls.CountCreatedSince = append(mock.calls.CountCreatedSince, callInfo)
	mock.mu.Unlock()
	return mock.CountCreatedSinceFunc(ctx, userID, since)
}

func (mock *shareRepoMock) CountCreatedSinceCalls() []struct {
	UserID int64
	Since  time.Time
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.CountCreatedSince
}

func (mock *shareRepoMock) List(ctx context.Context, filter domain.ShareListFilter) ([]domain.WorkoutShare, error) {
	if mock.ListFunc == nil {
		panic("shareRepoMock.ListFunc: method is nil but shareRepo.List was just called")
	}
	mock.mu.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Filter domain.ShareListFilter }{Filter: filter})
	mock.mu.Unlock()
	return mock.ListFunc(ctx, filter)
}

func (mock *shareRepoMock) ListCalls() []struct{ Filter domain.ShareListFilter } {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.List
}

func (mock *shareRepoMock) SetActive(ctx context.Context, id int64, active bool) error {
	if mock.SetActiveFunc == nil {
		panic("shareRepoMock.SetActiveFunc: method is nil but shareRepo.SetActive was just called")
	}
	callInfo := struct {
		ID     int64
		Active bool
	}{ID: id, Active: active}
	mock.mu.Lock()
	mock.calls.SetActive = append(mock.calls.SetActive, callInfo)
	mock.mu.Unlock()
	return mock.SetActiveFunc(ctx, id, active)
}

func (mock *shareRepoMock) SetActiveCalls() []struct {
	ID     int64
	Active bool
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.SetActive
}

func (mock *shareRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("shareRepoMock.DeleteFunc: method is nil but shareRepo.Delete was just called")
	}
	mock.mu.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID int64 }{ID: id})
	mock.mu.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *shareRepoMock) DeleteCalls() []struct{ ID int64 } {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Delete
}

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	ListByDateRangeFunc func(ctx context.Context, userID int64, from, to time.Time) ([]domain.WorkoutLog, error)

	calls struct {
		ListByDateRange []struct {
			UserID   int64
			From, To time.Time
		}
	}
	mu sync.RWMutex
}

func (mock *logRepoMock) ListByDateRange(ctx context.Context, userID int64, from, to time.Time) ([]domain.WorkoutLog, error) {
	if mock.ListByDateRangeFunc == nil {
		panic("logRepoMock.ListByDateRangeFunc: method is nil but logRepo.ListByDateRange was just called")
	}
	callInfo := struct {
		UserID   int64
		From, To time.Time
	}{UserID: userID, From: from, To: to}
	mock.mu.Lock()
	mock.calls.ListByDateRange = append(mock.calls.ListByDateRange, callInfo)
	mock.mu.Unlock()
	return mock.ListByDateRangeFunc(ctx, userID, from, to)
}

func (mock *logRepoMock) ListByDateRangeCalls() []struct {
	UserID   int64
	From, To time.Time
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.ListByDateRange
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}

func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}
