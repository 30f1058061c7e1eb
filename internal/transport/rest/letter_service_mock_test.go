package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
	"github.com/heartmarshall/visaletter-backend/internal/service/letter"
)

var _ letterService = &letterServiceMock{}

type letterServiceMock struct {
	GenerateFunc    func(ctx context.Context, input letter.GenerateInput) (*letter.GenerateResult, error)
	GetFunc         func(ctx context.Context, id uuid.UUID) (*domain.GeneratedLetter, error)
	ListFunc        func(ctx context.Context, input letter.ListInput) (*letter.ListResult, error)
	SetFavoriteFunc func(ctx context.Context, id uuid.UUID, favorite bool) (*domain.GeneratedLetter, error)
	SetFeedbackFunc func(ctx context.Context, id uuid.UUID, rating int) (*domain.GeneratedLetter, error)

	calls struct {
		Generate []struct {
			Ctx   context.Context
			Input letter.GenerateInput
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input letter.ListInput
		}
		SetFavorite []struct {
			Ctx      context.Context
			ID       uuid.UUID
			Favorite bool
		}
		SetFeedback []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Rating int
		}
	}
	lockGenerate    sync.RWMutex
	lockGet         sync.RWMutex
	lockList        sync.RWMutex
	lockSetFavorite sync.RWMutex
	lockSetFeedback sync.RWMutex
}

func (mock *letterServiceMock) Generate(ctx context.Context, input letter.GenerateInput) (*letter.GenerateResult, error) {
	if mock.GenerateFunc == nil {
		panic("letterServiceMock.GenerateFunc: method is nil but letterService.Generate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input letter.GenerateInput
	}{Ctx: ctx, Input: input}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, input)
}

func (mock *letterServiceMock) GenerateCalls() []struct {
	Ctx   context.Context
	Input letter.GenerateInput
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *letterServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.GeneratedLetter, error) {
	if mock.GetFunc == nil {
		panic("letterServiceMock.GetFunc: method is nil but letterService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *letterServiceMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *letterServiceMock) List(ctx context.Context, input letter.ListInput) (*letter.ListResult, error) {
	if mock.ListFunc == nil {
		panic("letterServiceMock.ListFunc: method is nil but letterService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input letter.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *letterServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input letter.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *letterServiceMock) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*domain.GeneratedLetter, error) {
	if mock.SetFavoriteFunc == nil {
		panic("letterServiceMock.SetFavoriteFunc: method is nil but letterService.SetFavorite was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ID       uuid.UUID
		Favorite bool
	}{Ctx: ctx, ID: id, Favorite: favorite}
	mock.lockSetFavorite.Lock()
	mock.calls.SetFavorite = append(mock.calls.SetFavorite, callInfo)
	mock.lockSetFavorite.Unlock()
	return mock.SetFavoriteFunc(ctx, id, favorite)
}

func (mock *letterServiceMock) SetFavoriteCalls() []struct {
	Ctx      context.Context
	ID       uuid.UUID
	Favorite bool
} {
	mock.lockSetFavorite.RLock()
	calls := mock.calls.SetFavorite
	mock.lockSetFavorite.RUnlock()
	return calls
}

func (mock *letterServiceMock) SetFeedback(ctx context.Context, id uuid.UUID, rating int) (*domain.GeneratedLetter, error) {
	if mock.SetFeedbackFunc == nil {
		panic("letterServiceMock.SetFeedbackFunc: method is nil but letterService.SetFeedback was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Rating int
	}{Ctx: ctx, ID: id, Rating: rating}
	mock.lockSetFeedback.Lock()
	mock.calls.SetFeedback = append(mock.calls.SetFeedback, callInfo)
	mock.lockSetFeedback.Unlock()
	return mock.SetFeedbackFunc(ctx, id, rating)
}

func (mock *letterServiceMock) SetFeedbackCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Rating int
} {
	mock.lockSetFeedback.RLock()
	calls := mock.calls.SetFeedback
	mock.lockSetFeedback.RUnlock()
	return calls
}
