package letter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
	"github.com/heartmarshall/visaletter-backend/pkg/ctxutil"
)

// List returns the authenticated user's letters, newest first.
// Every call reads the store; nothing is cached.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	f := input.filter()

	letters, err := s.letters.ListByOwner(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("letter.List: %w", err)
	}

	total, err := s.letters.CountByOwner(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("letter.List: count: %w", err)
	}

	return &ListResult{Letters: letters, Total: total}, nil
}

// Get returns one of the authenticated user's letters. A letter owned by
// someone else is reported exactly like a missing one.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.GeneratedLetter, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	l, err := s.letters.GetByIDForOwner(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("letter.Get: %w", err)
	}
	return l, nil
}

// SetFavorite marks or unmarks an owned letter as favorite.
func (s *Service) SetFavorite(ctx context.Context, id uuid.UUID, favorite bool) (*domain.GeneratedLetter, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	l, err := s.letters.SetFavorite(ctx, id, userID, favorite)
	if err != nil {
		return nil, fmt.Errorf("letter.SetFavorite: %w", err)
	}
	return l, nil
}

// SetFeedback records the user's 1..5 rating of an owned letter.
func (s *Service) SetFeedback(ctx context.Context, id uuid.UUID, rating int) (*domain.GeneratedLetter, error) {
	if err := validateRating(rating); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	l, err := s.letters.SetFeedback(ctx, id, userID, rating)
	if err != nil {
		return nil, fmt.Errorf("letter.SetFeedback: %w", err)
	}

	s.log.InfoContext(ctx, "letter feedback recorded",
		slog.String("user_id", userID),
		slog.String("letter_id", id.String()),
		slog.Int("rating", rating),
	)
	return l, nil
}
