package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) ([]domain.User, error)
	SetTargetCountry(ctx context.Context, id string, country *domain.Country) (*domain.User, error)
	SetSubscription(ctx context.Context, id string, tier domain.SubscriptionType, limit int) (*domain.User, error)
}

// quotaChecker derives a user's quota.
type quotaChecker interface {
	Check(u *domain.User) domain.Quota
}

// Service implements account operations of the authenticated user and
// operator-side subscription changes.
type Service struct {
	log   *slog.Logger
	users userRepo
	quota quotaChecker
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, quota quotaChecker) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		quota: quota,
	}
}
