// Package entitlement decides whether a user may generate another letter and
// consumes quota when a letter is saved.
package entitlement

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

type quotaRepo interface {
	ReserveLetter(ctx context.Context, id string, unlimitedTiers []string) (*domain.User, error)
}

// Tracker computes quotas and reserves letters against them.
type Tracker struct {
	log       *slog.Logger
	repo      quotaRepo
	unlimited []string
}

// NewTracker creates a tracker. Users on any of unlimitedTiers bypass the
// letters limit; their counter still increments.
func NewTracker(logger *slog.Logger, repo quotaRepo, unlimitedTiers []string) *Tracker {
	tiers := make([]string, 0, len(unlimitedTiers))
	for _, t := range unlimitedTiers {
		tiers = append(tiers, strings.ToLower(strings.TrimSpace(t)))
	}
	return &Tracker{
		log:       logger.With("service", "entitlement"),
		repo:      repo,
		unlimited: tiers,
	}
}

// IsUnlimited reports whether the tier bypasses the letters limit.
func (t *Tracker) IsUnlimited(tier domain.SubscriptionType) bool {
	return slices.Contains(t.unlimited, strings.ToLower(string(tier)))
}

// Check derives the user's quota without touching the store. It is a
// pre-check only: Reserve is the authoritative decision.
func (t *Tracker) Check(u *domain.User) domain.Quota {
	return domain.ComputeQuota(u.LettersGenerated, u.LettersLimit, t.IsUnlimited(u.SubscriptionType))
}

// Reserve consumes one letter of quota with a single conditional update.
// Call it inside the transaction that persists the letter so a rollback
// returns the reservation. Returns domain.ErrQuotaExceeded with no state
// change when the limit is reached.
func (t *Tracker) Reserve(ctx context.Context, userID string) (domain.Quota, error) {
	u, err := t.repo.ReserveLetter(ctx, userID, t.unlimited)
	if err != nil {
		return domain.Quota{}, fmt.Errorf("entitlement.Reserve: %w", err)
	}

	q := t.Check(u)
	t.log.DebugContext(ctx, "letter reserved",
		slog.String("user_id", userID),
		slog.Int("letters_generated", u.LettersGenerated),
		slog.Int("remaining", q.Remaining),
	)
	return q, nil
}
