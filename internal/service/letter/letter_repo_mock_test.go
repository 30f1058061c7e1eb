package letter

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

var _ letterRepo = &letterRepoMock{}

type letterRepoMock struct {
	CreateFunc              func(ctx context.Context, l domain.GeneratedLetter) (*domain.GeneratedLetter, error)
	GetByIDForOwnerFunc     func(ctx context.Context, id uuid.UUID, ownerID string) (*domain.GeneratedLetter, error)
	GetByIdempotencyKeyFunc func(ctx context.Context, ownerID string, key string) (*domain.GeneratedLetter, error)
	ListByOwnerFunc         func(ctx context.Context, ownerID string, f domain.LetterFilter) ([]domain.GeneratedLetter, error)
	CountByOwnerFunc        func(ctx context.Context, ownerID string, f domain.LetterFilter) (int, error)
	SetFavoriteFunc         func(ctx context.Context, id uuid.UUID, ownerID string, favorite bool) (*domain.GeneratedLetter, error)
	SetFeedbackFunc         func(ctx context.Context, id uuid.UUID, ownerID string, rating int) (*domain.GeneratedLetter, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			L   domain.GeneratedLetter
		}
		GetByIDForOwner []struct {
			Ctx     context.Context
			ID      uuid.UUID
			OwnerID string
		}
		GetByIdempotencyKey []struct {
			Ctx     context.Context
			OwnerID string
			Key     string
		}
		ListByOwner []struct {
			Ctx     context.Context
			OwnerID string
			F       domain.LetterFilter
		}
		CountByOwner []struct {
			Ctx     context.Context
			OwnerID string
			F       domain.LetterFilter
		}
		SetFavorite []struct {
			Ctx      context.Context
			ID       uuid.UUID
			OwnerID  string
			Favorite bool
		}
		SetFeedback []struct {
			Ctx     context.Context
			ID      uuid.UUID
			OwnerID string
			Rating  int
		}
	}
	lockCreate              sync.RWMutex
	lockGetByIDForOwner     sync.RWMutex
	lockGetByIdempotencyKey sync.RWMutex
	lockListByOwner         sync.RWMutex
	lockCountByOwner        sync.RWMutex
	lockSetFavorite         sync.RWMutex
	lockSetFeedback         sync.RWMutex
}

func (mock *letterRepoMock) Create(ctx context.Context, l domain.GeneratedLetter) (*domain.GeneratedLetter, error) {
	if mock.CreateFunc == nil {
		panic("letterRepoMock.CreateFunc: method is nil but letterRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		L   domain.GeneratedLetter
	}{Ctx: ctx, L: l}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, l)
}

func (mock *letterRepoMock) CreateCalls() []struct {
	Ctx context.Context
	L   domain.GeneratedLetter
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *letterRepoMock) GetByIDForOwner(ctx context.Context, id uuid.UUID, ownerID string) (*domain.GeneratedLetter, error) {
	if mock.GetByIDForOwnerFunc == nil {
		panic("letterRepoMock.GetByIDForOwnerFunc: method is nil but letterRepo.GetByIDForOwner was just called")
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

func (mock *letterRepoMock) GetByIDForOwnerCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	OwnerID string
} {
	mock.lockGetByIDForOwner.RLock()
	calls := mock.calls.GetByIDForOwner
	mock.lockGetByIDForOwner.RUnlock()
	return calls
}

func (mock *letterRepoMock) GetByIdempotencyKey(ctx context.Context, ownerID string, key string) (*domain.GeneratedLetter, error) {
	if mock.GetByIdempotencyKeyFunc == nil {
		panic("letterRepoMock.GetByIdempotencyKeyFunc: method is nil but letterRepo.GetByIdempotencyKey was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID string
		Key     string
	}{Ctx: ctx, OwnerID: ownerID, Key: key}
	mock.lockGetByIdempotencyKey.Lock()
	mock.calls.GetByIdempotencyKey = append(mock.calls.GetByIdempotencyKey, callInfo)
	mock.lockGetByIdempotencyKey.Unlock()
	return mock.GetByIdempotencyKeyFunc(ctx, ownerID, key)
}

func (mock *letterRepoMock) GetByIdempotencyKeyCalls() []struct {
	Ctx     context.Context
	OwnerID string
	Key     string
} {
	mock.lockGetByIdempotencyKey.RLock()
	calls := mock.calls.GetByIdempotencyKey
	mock.lockGetByIdempotencyKey.RUnlock()
	return calls
}

func (mock *letterRepoMock) ListByOwner(ctx context.Context, ownerID string, f domain.LetterFilter) ([]domain.GeneratedLetter, error) {
	if mock.ListByOwnerFunc == nil {
		panic("letterRepoMock.ListByOwnerFunc: method is nil but letterRepo.ListByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID string
		F       domain.LetterFilter
	}{Ctx: ctx, OwnerID: ownerID, F: f}
	mock.lockListByOwner.Lock()
	mock.calls.ListByOwner = append(mock.calls.ListByOwner, callInfo)
	mock.lockListByOwner.Unlock()
	return mock.ListByOwnerFunc(ctx, ownerID, f)
}

func (mock *letterRepoMock) ListByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID string
	F       domain.LetterFilter
} {
	mock.lockListByOwner.RLock()
	calls := mock.calls.ListByOwner
	mock.lockListByOwner.RUnlock()
	return calls
}

func (mock *letterRepoMock) CountByOwner(ctx context.Context, ownerID string, f domain.LetterFilter) (int, error) {
	if mock.CountByOwnerFunc == nil {
		panic("letterRepoMock.CountByOwnerFunc: method is nil but letterRepo.CountByOwner was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		OwnerID string
		F       domain.LetterFilter
	}{Ctx: ctx, OwnerID: ownerID, F: f}
	mock.lockCountByOwner.Lock()
	mock.calls.CountByOwner = append(mock.calls.CountByOwner, callInfo)
	mock.lockCountByOwner.Unlock()
	return mock.CountByOwnerFunc(ctx, ownerID, f)
}

func (mock *letterRepoMock) CountByOwnerCalls() []struct {
	Ctx     context.Context
	OwnerID string
	F       domain.LetterFilter
} {
	mock.lockCountByOwner.RLock()
	calls := mock.calls.CountByOwner
	mock.lockCountByOwner.RUnlock()
	return calls
}

func (mock *letterRepoMock) SetFavorite(ctx context.Context, id uuid.UUID, ownerID string, favorite bool) (*domain.GeneratedLetter, error) {
	if mock.SetFavoriteFunc == nil {
		panic("letterRepoMock.SetFavoriteFunc: method is nil but letterRepo.SetFavorite was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		OwnerID  string
		Favorite bool
	}{Ctx: ctx, ID: id, OwnerID: ownerID, Favorite: favorite}
	mock.lockSetFavorite.Lock()
	mock.calls.SetFavorite = append(mock.calls.SetFavorite, callInfo)
	mock.lockSetFavorite.Unlock()
	return mock.SetFavoriteFunc(ctx, id, ownerID, favorite)
}

func (mock *letterRepoMock) SetFavoriteCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	OwnerID  string
	Favorite bool
} {
	mock.lockSetFavorite.RLock()
	calls := mock.calls.SetFavorite
	mock.lockSetFavorite.RUnlock()
	return calls
}

func (mock *letterRepoMock) SetFeedback(ctx context.Context, id uuid.UUID, ownerID string, rating int) (*domain.GeneratedLetter, error) {
	if mock.SetFeedbackFunc == nil {
		panic("letterRepoMock.SetFeedbackFunc: method is nil but letterRepo.SetFeedback was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		OwnerID string
		Rating  int
	}{Ctx: ctx, ID: id, OwnerID: ownerID, Rating: rating}
	mock.lockSetFeedback.Lock()
	mock.calls.SetFeedback = append(mock.calls.SetFeedback, callInfo)
	mock.lockSetFeedback.Unlock()
	return mock.SetFeedbackFunc(ctx, id, ownerID, rating)
}

func (mock *letterRepoMock) SetFeedbackCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	OwnerID string
	Rating  int
} {
	mock.lockSetFeedback.RLock()
	calls := mock.calls.SetFeedback
	mock.lockSetFeedback.RUnlock()
	return calls
}
