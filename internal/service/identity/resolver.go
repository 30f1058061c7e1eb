// Package identity maps verified identity-provider claims to application users.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/visaletter-backend/internal/auth"
	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	UpdateIdentity(ctx context.Context, id, email string, firstName, lastName *string) (*domain.User, error)
}

// Resolver upserts the user behind a session on every authenticated request.
type Resolver struct {
	log       *slog.Logger
	users     userRepo
	freeLimit int
	now       func() time.Time
}

// NewResolver creates a resolver. freeLettersLimit is the limit given to new users.
func NewResolver(logger *slog.Logger, users userRepo, freeLettersLimit int) *Resolver {
	return &Resolver{
		log:       logger.With("service", "identity"),
		users:     users,
		freeLimit: freeLettersLimit,
		now:       time.Now,
	}
}

// Resolve returns the user for claims. nil claims is the anonymous case and
// returns (nil, nil). Claims without an email fail with
// domain.ErrMissingRequiredClaim.
func (r *Resolver) Resolve(ctx context.Context, claims *auth.Claims) (*domain.User, error) {
	if claims == nil {
		return nil, nil
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("identity.Resolve: subject: %w", domain.ErrMissingRequiredClaim)
	}
	email := strings.TrimSpace(claims.Email)
	if email == "" {
		return nil, fmt.Errorf("identity.Resolve: email: %w", domain.ErrMissingRequiredClaim)
	}

	// Step 1: Existing user, refreshed if the IdP attributes changed.
	user, err := r.users.GetByID(ctx, claims.Subject)
	if err == nil {
		return r.refresh(ctx, user, email, claims)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("identity.Resolve: get user: %w", err)
	}

	// Step 2: First login.
	now := r.now().UTC()
	created, err := r.users.Create(ctx, domain.NewUser(claims.Subject, email, claims.GivenName, claims.FamilyName, r.freeLimit, now))
	if err == nil {
		r.log.InfoContext(ctx, "user created on first login",
			slog.String("user_id", created.ID),
		)
		return created, nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return nil, fmt.Errorf("identity.Resolve: create user: %w", err)
	}

	// Step 3: A concurrent first request created the row; read the winner's.
	user, err = r.users.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("identity.Resolve: re-fetch after race: %w", err)
	}
	return user, nil
}

func (r *Resolver) refresh(ctx context.Context, user *domain.User, email string, claims *auth.Claims) (*domain.User, error) {
	if user.Email == email && sameName(user.FirstName, claims.GivenName) && sameName(user.LastName, claims.FamilyName) {
		return user, nil
	}

	updated, err := r.users.UpdateIdentity(ctx, user.ID, email, claims.GivenName, claims.FamilyName)
	if err != nil {
		return nil, fmt.Errorf("identity.Resolve: refresh identity: %w", err)
	}

	r.log.InfoContext(ctx, "user identity refreshed", slog.String("user_id", user.ID))
	return updated, nil
}

func sameName(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
