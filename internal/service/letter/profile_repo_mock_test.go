package letter

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetByIDForOwnerFunc func(ctx context.Context, id uuid.UUID, ownerID string) (*domain.StudentProfile, error)

	calls struct {
		GetByIDForOwner []struct {
			Ctx     context.Context
			ID      uuid.UUID
			OwnerID string
		}
	}
	lockGetByIDForOwner sync.RWMutex
}

func (mock *profileRepoMock) GetByIDForOwner(ctx context.Context, id uuid.UUID, ownerID string) (*domain.StudentProfile, error) {
	if mock.GetByIDForOwnerFunc == nil {
		panic("profileRepoMock.GetByIDForOwnerFunc: method is nil but profileRepo.GetByIDForOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		OwnerID string
	}{Ctx: ctx, ID: id, OwnerID: ownerID}
	mock.lockGetByIDForOwner.Lock()
	mock.calls.GetByIDForOwner = append(mock.calls.GetByIDForOwner, callInfo)
	mock.lockGetByIDForOwner.Unlock()
	return mock.GetByIDForOwnerFunc(ctx, id, ownerID)
}

func (mock *profileRepoMock) GetByIDForOwnerCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	OwnerID string
} {
	mock.lockGetByIDForOwner.RLock()
	calls := mock.calls.GetByIDForOwner
	mock.lockGetByIDForOwner.RUnlock()
	return calls
}
