package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UserOption customises a seeded user.
type UserOption func(u *domain.User)

// WithQuota sets the seeded user's counter and limit.
func WithQuota(generated, limit int) UserOption {
	return func(u *domain.User) {
		u.LettersGenerated = generated
		u.LettersLimit = limit
	}
}

// WithSubscription sets the seeded user's tier.
func WithSubscription(tier domain.SubscriptionType) UserOption {
	return func(u *domain.User) { u.SubscriptionType = tier }
}

// WithEmail sets the seeded user's email.
func WithEmail(email string) UserOption {
	return func(u *domain.User) { u.Email = email }
}

// SeedUser creates a free-tier user with a 3-letter limit unless overridden.
func SeedUser(t *testing.T, pool *pgxpool.Pool, opts ...UserOption) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	first := "Test"
	user := domain.NewUser("idp|"+suffix, "testuser-"+suffix+"@example.com", &first, nil, 3, now)
	for _, opt := range opts {
		opt(&user)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, first_name, last_name, subscription_type,
			letters_generated, letters_limit, onboarding_status, onboarding_step, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		user.ID, user.Email, user.FirstName, user.LastName, string(user.SubscriptionType),
		user.LettersGenerated, user.LettersLimit, string(user.OnboardingStatus), user.OnboardingStep,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedProfile creates a student profile owned by userID.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, userID string) domain.StudentProfile {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.StudentProfile{
		ID:     uuid.New(),
		UserID: userID,
		Data: map[string]any{
			"fullName":       "Test Student",
			"nationality":    "Indian",
			"course":         "Master of Data Science",
			"institution":    "University of Melbourne",
			"gapExplanation": "Worked as a software engineer for two years.",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO student_profiles (id, user_id, data, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.UserID, p.Data, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile insert: %v", err)
	}

	return p
}

// CountLetters returns how many letters userID owns.
func CountLetters(t *testing.T, pool *pgxpool.Pool, userID string) int {
	t.Helper()
	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM generated_letters WHERE user_id = $1`, userID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountLetters: %v", err)
	}
	return n
}
