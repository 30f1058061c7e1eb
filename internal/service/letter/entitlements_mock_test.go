package letter

import (
	"context"
	"sync"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

var _ entitlements = &entitlementsMock{}

type entitlementsMock struct {
	CheckFunc   func(u *domain.User) domain.Quota
	ReserveFunc func(ctx context.Context, userID string) (domain.Quota, error)

	calls struct {
		Check []struct {
			U *domain.User
		}
		Reserve []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockCheck   sync.RWMutex
	lockReserve sync.RWMutex
}

func (mock *entitlementsMock) Check(u *domain.User) domain.Quota {
	if mock.CheckFunc == nil {
		panic("entitlementsMock.CheckFunc: method is nil but entitlements.Check was just called")
	}
	callInfo := struct {
		U *domain.User
	}{U: u}
	mock.lockCheck.Lock()
	mock.calls.Check = append(mock.calls.Check, callInfo)
	mock.lockCheck.Unlock()
	return mock.CheckFunc(u)
}

func (mock *entitlementsMock) CheckCalls() []struct {
	U *domain.User
} {
	mock.lockCheck.RLock()
	calls := mock.calls.Check
	mock.lockCheck.RUnlock()
	return calls
}

func (mock *entitlementsMock) Reserve(ctx context.Context, userID string) (domain.Quota, error) {
	if mock.ReserveFunc == nil {
		panic("entitlementsMock.ReserveFunc: method is nil but entitlements.Reserve was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockReserve.Lock()
	mock.calls.Reserve = append(mock.calls.Reserve, callInfo)
	mock.lockReserve.Unlock()
	return mock.ReserveFunc(ctx, userID)
}

func (mock *entitlementsMock) ReserveCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockReserve.RLock()
	calls := mock.calls.Reserve
	mock.lockReserve.RUnlock()
	return calls
}
