package strategy

import (
	"context"
	"sync"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

var _ Generator = &generatorMock{}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)

	calls struct {
		Generate []struct {
			Ctx context.Context
			Req domain.GenerationRequest
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *generatorMock) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	if mock.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but Generator.Generate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Req domain.GenerationRequest
	}{Ctx: ctx, Req: req}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, req)
}

func (mock *generatorMock) GenerateCalls() []struct {
	Ctx context.Context
	Req domain.GenerationRequest
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
