// Package onboarding tracks completion of the first-run flow.
package onboarding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
	"github.com/heartmarshall/visaletter-backend/pkg/ctxutil"
)

type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	CompleteOnboarding(ctx context.Context, id string) (*domain.User, error)
}

// Service implements the onboarding state machine. The only transition it
// exposes is to COMPLETED at the final step.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new onboarding service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "onboarding"),
		users: users,
	}
}

// Complete marks the authenticated user's onboarding as COMPLETED at step 8.
// Calling it again is a no-op that returns the unchanged user.
func (s *Service) Complete(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("onboarding.Complete: %w", err)
	}
	if current.IsOnboarded() && current.OnboardingStep == domain.OnboardingCompletedStep {
		return current, nil
	}

	updated, err := s.users.CompleteOnboarding(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("onboarding.Complete: %w", err)
	}

	s.log.InfoContext(ctx, "onboarding completed",
		slog.String("user_id", userID),
		slog.String("from_status", current.OnboardingStatus.String()),
		slog.Int("from_step", current.OnboardingStep),
	)
	return updated, nil
}
