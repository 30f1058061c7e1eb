package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
	"github.com/heartmarshall/visaletter-backend/pkg/ctxutil"
)

// Me is the authenticated user together with the current quota.
type Me struct {
	User  *domain.User
	Quota domain.Quota
}

// GetMe returns the authenticated user and quota.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetMe(ctx context.Context) (*Me, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetMe: %w", err)
	}

	return &Me{User: u, Quota: s.quota.Check(u)}, nil
}

// SetTargetCountry records the authenticated user's destination country.
// A nil country clears it.
func (s *Service) SetTargetCountry(ctx context.Context, country *domain.Country) (*domain.User, error) {
	if country != nil && !country.IsValid() {
		return nil, domain.NewValidationError("country", "unknown country")
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.SetTargetCountry(ctx, userID, country)
	if err != nil {
		return nil, fmt.Errorf("user.SetTargetCountry: %w", err)
	}

	s.log.InfoContext(ctx, "target country updated", slog.String("user_id", userID))
	return u, nil
}
