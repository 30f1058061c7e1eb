// Package letter orchestrates letter generation and exposes the owner's
// letter history.
package letter

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
	"github.com/heartmarshall/visaletter-backend/internal/strategy"
)

// DefaultGenerationTimeout bounds a single text-generation call when the
// caller configures none.
const DefaultGenerationTimeout = 90 * time.Second

type profileRepo interface {
	GetByIDForOwner(ctx context.Context, id uuid.UUID, ownerID string) (*domain.StudentProfile, error)
}

type letterRepo interface {
	Create(ctx context.Context, l domain.GeneratedLetter) (*domain.GeneratedLetter, error)
	GetByIDForOwner(ctx context.Context, id uuid.UUID, ownerID string) (*domain.GeneratedLetter, error)
	GetByIdempotencyKey(ctx context.Context, ownerID, key string) (*domain.GeneratedLetter, error)
	ListByOwner(ctx context.Context, ownerID string, f domain.LetterFilter) ([]domain.GeneratedLetter, error)
	CountByOwner(ctx context.Context, ownerID string, f domain.LetterFilter) (int, error)
	SetFavorite(ctx context.Context, id uuid.UUID, ownerID string, favorite bool) (*domain.GeneratedLetter, error)
	SetFeedback(ctx context.Context, id uuid.UUID, ownerID string, rating int) (*domain.GeneratedLetter, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type entitlements interface {
	Check(u *domain.User) domain.Quota
	Reserve(ctx context.Context, userID string) (domain.Quota, error)
}

type strategyRegistry interface {
	Resolve(country domain.Country, letterType domain.LetterType) (strategy.Strategy, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type generationMetrics interface {
	GenerationObserved(country, letterType, outcome string, elapsed time.Duration)
	WordCountOutOfRange(country, letterType string)
}

// Generation outcomes reported to metrics.
const (
	OutcomeSuccess          = "success"
	OutcomeReplayed         = "replayed"
	OutcomeProfileNotFound  = "profile_not_found"
	OutcomeQuotaExceeded    = "quota_exceeded"
	OutcomeStrategyGap      = "strategy_gap"
	OutcomeGenerationFailed = "generation_failed"
	OutcomeError            = "error"
)

// Config holds the orchestrator's tunables.
type Config struct {
	GenerationTimeout time.Duration
}

// Service implements letter generation and the letter history view.
type Service struct {
	log        *slog.Logger
	users      userRepo
	profiles   profileRepo
	letters    letterRepo
	quota      entitlements
	strategies strategyRegistry
	gen        strategy.Generator
	tx         txManager
	metrics    generationMetrics
	cfg        Config
	now        func() time.Time
}

// NewService creates a new letter service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	profiles profileRepo,
	letters letterRepo,
	quota entitlements,
	strategies strategyRegistry,
	gen strategy.Generator,
	tx txManager,
	metrics generationMetrics,
	cfg Config,
) *Service {
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = DefaultGenerationTimeout
	}
	return &Service{
		log:        logger.With("service", "letter"),
		users:      users,
		profiles:   profiles,
		letters:    letters,
		quota:      quota,
		strategies: strategies,
		gen:        gen,
		tx:         tx,
		metrics:    metrics,
		cfg:        cfg,
		now:        time.Now,
	}
}
