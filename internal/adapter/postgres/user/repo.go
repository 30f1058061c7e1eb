// Package user implements the User repository using PostgreSQL.
// The users row also carries the letter quota counter, so quota reservation
// lives here.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/visaletter-backend/internal/adapter/postgres"
	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository. db is used when ctx carries no transaction.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const userColumns = `id, email, first_name, last_name, subscription_type,
	letters_generated, letters_limit, target_country,
	onboarding_status, onboarding_step, created_at, updated_at`

type userRow struct {
	ID               string    `db:"id"`
	Email            string    `db:"email"`
	FirstName        *string   `db:"first_name"`
	LastName         *string   `db:"last_name"`
	SubscriptionType string    `db:"subscription_type"`
	LettersGenerated int       `db:"letters_generated"`
	LettersLimit     int       `db:"letters_limit"`
	TargetCountry    *string   `db:"target_country"`
	OnboardingStatus string    `db:"onboarding_status"`
	OnboardingStep   int       `db:"onboarding_step"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	u := &domain.User{
		ID:               r.ID,
		Email:            r.Email,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		SubscriptionType: domain.SubscriptionType(r.SubscriptionType),
		LettersGenerated: r.LettersGenerated,
		LettersLimit:     r.LettersLimit,
		OnboardingStatus: domain.OnboardingStatus(r.OnboardingStatus),
		OnboardingStep:   r.OnboardingStep,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if r.TargetCountry != nil {
		c := domain.Country(*r.TargetCountry)
		u.TargetCountry = &c
	}
	return u
}

func (r *Repo) getOne(ctx context.Context, id string, sql string, args ...any) (*domain.User, error) {
	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Identity
// ---------------------------------------------------------------------------

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

// GetByID returns a user by IdP subject.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, id, getByIDSQL, id)
}

const createSQL = `
INSERT INTO users (id, email, first_name, last_name, subscription_type,
	letters_generated, letters_limit, onboarding_status, onboarding_step,
	created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + userColumns

// Create inserts a new user. A concurrent insert of the same subject
// surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	return r.getOne(ctx, u.ID, createSQL,
		u.ID, u.Email, u.FirstName, u.LastName, string(u.SubscriptionType),
		u.LettersGenerated, u.LettersLimit, string(u.OnboardingStatus), u.OnboardingStep,
		u.CreatedAt, u.UpdatedAt,
	)
}

const updateIdentitySQL = `
UPDATE users
SET email = $2, first_name = $3, last_name = $4, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

// UpdateIdentity refreshes the IdP-provided identity attributes.
func (r *Repo) UpdateIdentity(ctx context.Context, id, email string, firstName, lastName *string) (*domain.User, error) {
	return r.getOne(ctx, id, updateIdentitySQL, id, email, firstName, lastName)
}

const findByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1) ORDER BY created_at`

// FindByEmail returns every user registered with email, case-insensitively.
// Email is not unique across identity providers.
func (r *Repo) FindByEmail(ctx context.Context, email string) ([]domain.User, error) {
	var rows []userRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, findByEmailSQL, email); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = *row.toDomain()
	}
	return users, nil
}

// ---------------------------------------------------------------------------
// Entitlement
// ---------------------------------------------------------------------------

// The row lock taken by this UPDATE serialises concurrent reservations for
// the same user; the WHERE clause is re-evaluated against the committed row.
const reserveLetterSQL = `
UPDATE users
SET letters_generated = letters_generated + 1, updated_at = now()
WHERE id = $1
  AND (letters_generated < letters_limit OR subscription_type = ANY($2))
RETURNING ` + userColumns

const userExistsSQL = `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`

// ReserveLetter atomically increments the user's generated-letters counter
// if quota remains. Tiers in unlimitedTiers bypass the limit.
// Returns domain.ErrQuotaExceeded when the limit is reached and
// domain.ErrNotFound when the user does not exist.
func (r *Repo) ReserveLetter(ctx context.Context, id string, unlimitedTiers []string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if unlimitedTiers == nil {
		unlimitedTiers = []string{}
	}

	var row userRow
	err := pgxscan.Get(ctx, q, &row, reserveLetterSQL, id, unlimitedTiers)
	if err == nil {
		return row.toDomain(), nil
	}
	if !pgxscan.NotFound(err) {
		return nil, postgres.MapError(err, "user", id)
	}

	var exists bool
	if err := q.QueryRow(ctx, userExistsSQL, id).Scan(&exists); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	if !exists {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil, fmt.Errorf("user %s: %w", id, domain.ErrQuotaExceeded)
}

const setSubscriptionSQL = `
UPDATE users
SET subscription_type = $2, letters_limit = $3, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

// SetSubscription changes the user's tier and letters limit. The counter is
// left untouched, so downgrading below the current count yields zero remaining.
func (r *Repo) SetSubscription(ctx context.Context, id string, tier domain.SubscriptionType, limit int) (*domain.User, error) {
	return r.getOne(ctx, id, setSubscriptionSQL, id, string(tier), limit)
}

// ---------------------------------------------------------------------------
// Onboarding & preferences
// ---------------------------------------------------------------------------

// updated_at only moves on the first completion so repeated calls are no-ops.
const completeOnboardingSQL = `
UPDATE users
SET onboarding_status = 'COMPLETED',
    onboarding_step = $2,
    updated_at = CASE WHEN onboarding_status = 'COMPLETED' AND onboarding_step = $2
                      THEN updated_at ELSE now() END
WHERE id = $1
RETURNING ` + userColumns

// CompleteOnboarding marks onboarding COMPLETED at the final step.
func (r *Repo) CompleteOnboarding(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, id, completeOnboardingSQL, id, domain.OnboardingCompletedStep)
}

const setTargetCountrySQL = `
UPDATE users
SET target_country = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

// SetTargetCountry records the user's preferred destination. nil clears it.
func (r *Repo) SetTargetCountry(ctx context.Context, id string, country *domain.Country) (*domain.User, error) {
	var v *string
	if country != nil {
		s := string(*country)
		v = &s
	}
	return r.getOne(ctx, id, setTargetCountrySQL, id, v)
}
