package auth

import (
	"context"
	"sync"

	"github.com/kvolkov/gymtrack-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc       func(ctx context.Context, id int64) (*domain.User, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	CreateFunc        func(ctx context.Context, username, passwordHash string, userType domain.UserType) (*domain.User, error)

	calls struct {
		GetByID       []struct{ ID int64 }
		GetByUsername []struct{ Username string }
		Create        []struct {
			Username     string
			PasswordHash string
			UserType     domain.UserType
		}
	}
	mu sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID int64 }{ID: id})
	mock.mu.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct{ ID int64 } {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.GetByID
}

func (mock *userRepoMock) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetByUsernameFunc == nil {
		panic("userRepoMock.GetByUsernameFunc: method is nil but userRepo.GetByUsername was just called")
	}
	mock.mu.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, struct{ Username string }{Username: username})
	mock.mu.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *userRepoMock) GetByUsernameCalls() []struct{ Username string } {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.GetByUsername
}

func (mock *userRepoMock) Create(ctx context.Context, username, passwordHash string, userType domain.UserType) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Username     string
		PasswordHash string
		UserType     domain.UserType
	}{Username: username, PasswordHash: passwordHash, UserType: userType}
	mock.mu.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.mu.Unlock()
	return mock.CreateFunc(ctx, username, passwordHash, userType)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Username     string
	PasswordHash string
	UserType     domain.UserType
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.Create
}

var _ passwordHasher = &passwordHasherMock{}

type passwordHasherMock struct {
	HashFunc    func(password string) (string, error)
	CompareFunc func(hash, password string) bool
}

func (mock *passwordHasherMock) Hash(password string) (string, error) {
	if mock.HashFunc == nil {
		panic("passwordHasherMock.HashFunc: method is nil but passwordHasher.Hash was just called")
	}
	return mock.HashFunc(password)
}

func (mock *passwordHasherMock) Compare(hash, password string) bool {
	if mock.CompareFunc == nil {
		panic("passwordHasherMock.CompareFunc: method is nil but passwordHasher.Compare was just called")
	}
	return mock.CompareFunc(hash, password)
}

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateAccessTokenFunc  func(userID int64, role string) (string, error)
	GenerateRefreshTokenFunc func(userID int64, role string) (string, error)
	ValidateTokenFunc        func(token, expectedType string) (int64, string, error)

	calls struct {
		GenerateAccessToken []struct {
			UserID int64
			Role   string
		}
		GenerateRefreshToken []struct {
			UserID int64
			Role   string
		}
		ValidateToken []struct {
			Token        string
			ExpectedType string
		}
	}
	mu sync.RWMutex
}

func (mock *jwtManagerMock) GenerateAccessToken(userID int64, role string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but jwtManager.GenerateAccessToken was just called")
	}
	callInfo := struct {
		UserID int64
		Role   string
	}{UserID: userID, Role: role}
	mock.mu.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.mu.Unlock()
	return mock.GenerateAccessTokenFunc(userID, role)
}

func (mock *jwtManagerMock) GenerateAccessTokenCalls() []struct {
	UserID int64
	Role   string
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.GenerateAccessToken
}

func (mock *jwtManagerMock) GenerateRefreshToken(userID int64, role string) (string, error) {
	if mock.GenerateRefreshTokenFunc == nil {
		panic("jwtManagerMock.GenerateRefreshTokenFunc: method is nil but jwtManager.GenerateRefreshToken was just called")
	}
	callInfo := struct {
		UserID int64
		Role   string
	}{UserID: userID, Role: role}
	mock.mu.Lock()
	mock.calls.GenerateRefreshToken = append(mock.calls.GenerateRefreshToken, callInfo)
	mock.mu.Unlock()
	return mock.GenerateRefreshTokenFunc(userID, role)
}

func (mock *jwtManagerMock) GenerateRefreshTokenCalls() []struct {
	UserID int64
	Role   string
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.GenerateRefreshToken
}

func (mock *jwtManagerMock) ValidateToken(token, expectedType string) (int64, string, error) {
	if mock.ValidateTokenFunc == nil {
		panic("jwtManagerMock.ValidateTokenFunc: method is nil but jwtManager.ValidateToken was just called")
	}
	callInfo := struct {
		Token        string
		ExpectedType string
	}{Token: token, ExpectedType: expectedType}
	mock.mu.Lock()
	mock.calls.ValidateToken = append(mock.calls.ValidateToken, callInfo)
	mock.mu.Unlock()
	return mock.ValidateTokenFunc(token, expectedType)
}

func (mock *jwtManagerMock) ValidateTokenCalls() []struct {
	Token        string
	ExpectedType string
} {
	mock.mu.RLock()
	defer mock.mu.RUnlock()
	return mock.calls.ValidateToken
}
