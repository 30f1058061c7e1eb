package identity

import (
	"context"
	"sync"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc        func(ctx context.Context, id string) (*domain.User, error)
	CreateFunc         func(ctx context.Context, u domain.User) (*domain.User, error)
	UpdateIdentityFunc func(ctx context.Context, id, email string, firstName, lastName *string) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		Create []struct {
			Ctx context.Context
			U   domain.User
		}
		UpdateIdentity []struct {
			Ctx       context.Context
			ID        string
			Email     string
			FirstName *string
			LastName  *string
		}
	}
	lockGetByID        sync.RWMutex
	lockCreate         sync.RWMutex
	lockUpdateIdentity sync.RWMutex
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

func (mock *userRepoMock) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   domain.User
	}{Ctx: ctx, U: u}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateIdentity(ctx context.Context, id, email string, firstName, lastName *string) (*domain.User, error) {
	if mock.UpdateIdentityFunc == nil {
		panic("userRepoMock.UpdateIdentityFunc: method is nil but userRepo.UpdateIdentity was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        string
		Email     string
		FirstName *string
		LastName  *string
	}{Ctx: ctx, ID: id, Email: email, FirstName: firstName, LastName: lastName}
	mock.lockUpdateIdentity.Lock()
	mock.calls.UpdateIdentity = append(mock.calls.UpdateIdentity, callInfo)
	mock.lockUpdateIdentity.Unlock()
	return mock.UpdateIdentityFunc(ctx, id, email, firstName, lastName)
}

func (mock *userRepoMock) UpdateIdentityCalls() []struct {
	Ctx       context.Context
	ID        string
	Email     string
	FirstName *string
	LastName  *string
} {
	mock.lockUpdateIdentity.RLock()
	calls := mock.calls.UpdateIdentity
	mock.lockUpdateIdentity.RUnlock()
	return calls
}
