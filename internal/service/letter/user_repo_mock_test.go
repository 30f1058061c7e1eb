package letter

import (
	"context"
	"sync"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id string) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
