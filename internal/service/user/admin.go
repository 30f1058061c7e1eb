package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

// SetSubscriptionInput selects a user by ID or email and the new tier.
// A nil Limit keeps the current letters limit.
type SetSubscriptionInput struct {
	UserID string
	Email  string
	Tier   domain.SubscriptionType
	Limit  *int
}

// Validate validates the set subscription input.
func (i SetSubscriptionInput) Validate() error {
	var errs []domain.FieldError

	if (i.UserID == "") == (strings.TrimSpace(i.Email) == "") {
		errs = append(errs, domain.FieldError{Field: "user", Message: "exactly one of user id or email is required"})
	}
	if !i.Tier.IsValid() {
		errs = append(errs, domain.FieldError{Field: "tier", Message: "unknown subscription tier"})
	}
	if i.Limit != nil && *i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetSubscription changes a user's tier and optionally the letters limit.
// It is an operator action and is not scoped to the caller.
// Email lookups that match several accounts fail with domain.ErrConflict.
func (s *Service) SetSubscription(ctx context.Context, input SetSubscriptionInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 1: Resolve the target user.
	target, err := s.resolveTarget(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("user.SetSubscription: %w", err)
	}

	// Step 2: Apply.
	limit := target.LettersLimit
	if input.Limit != nil {
		limit = *input.Limit
	}

	updated, err := s.users.SetSubscription(ctx, target.ID, input.Tier, limit)
	if err != nil {
		return nil, fmt.Errorf("user.SetSubscription: %w", err)
	}

	s.log.InfoContext(ctx, "subscription updated",
		slog.String("user_id", updated.ID),
		slog.String("from_tier", target.SubscriptionType.String()),
		slog.String("to_tier", updated.SubscriptionType.String()),
		slog.Int("letters_limit", updated.LettersLimit),
	)

	return updated, nil
}

func (s *Service) resolveTarget(ctx context.Context, input SetSubscriptionInput) (*domain.User, error) {
	if input.UserID != "" {
		return s.users.GetByID(ctx, input.UserID)
	}

	matches, err := s.users.FindByEmail(ctx, strings.TrimSpace(input.Email))
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("user with email %q: %w", input.Email, domain.ErrNotFound)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("%d users share email %q, use the user id: %w", len(matches), input.Email, domain.ErrConflict)
	}
}
