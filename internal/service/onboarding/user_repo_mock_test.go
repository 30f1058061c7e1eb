package onboarding

import (
	"context"
	"sync"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id string) (*domain.User, error)
	CompleteOnboardingFunc func(ctx context.Context, id string) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		CompleteOnboarding []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockGetByID            sync.RWMutex
	lockCompleteOnboarding sync.RWMutex
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

func (mock *userRepoMock) CompleteOnboarding(ctx context.Context, id string) (*domain.User, error) {
	if mock.CompleteOnboardingFunc == nil {
		panic("userRepoMock.CompleteOnboardingFunc: method is nil but userRepo.CompleteOnboarding was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockCompleteOnboarding.Lock()
	mock.calls.CompleteOnboarding = append(mock.calls.CompleteOnboarding, callInfo)
	mock.lockCompleteOnboarding.Unlock()
	return mock.CompleteOnboardingFunc(ctx, id)
}

func (mock *userRepoMock) CompleteOnboardingCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockCompleteOnboarding.RLock()
	calls := mock.calls.CompleteOnboarding
	mock.lockCompleteOnboarding.RUnlock()
	return calls
}
