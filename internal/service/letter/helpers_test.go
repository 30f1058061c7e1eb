package letter

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
	"github.com/heartmarshall/visaletter-backend/internal/strategy"
	"github.com/heartmarshall/visaletter-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Test helpers
// ---------------------------------------------------------------------------

const testUserID = "idp|ann"

var testProfileID = uuid.MustParse("0b6f8d4e-93a5-4d36-9f53-4d1f3cc8f0a1")

type txMarker struct{}

func words(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func ptr[T any](v T) *T { return &v }

type metricsRecorder struct {
	mu         sync.Mutex
	outcomes   []string
	outOfRange int
}

func (m *metricsRecorder) GenerationObserved(country, letterType, outcome string, elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

func (m *metricsRecorder) WordCountOutOfRange(country, letterType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outOfRange++
}

func (m *metricsRecorder) Outcomes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.outcomes...)
}

type testDeps struct {
	users    *userRepoMock
	profiles *profileRepoMock
	letters  *letterRepoMock
	quota    *entitlementsMock
	gen      *generatorMock
	tx       *txManagerMock
	metrics  *metricsRecorder
	timeout  time.Duration
}

// newDeps returns dependencies for a successful Australian explanation letter
// by a free user with three letters left.
func newDeps() *testDeps {
	return &testDeps{
		users: &userRepoMock{
			GetByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
				return &domain.User{ID: id, SubscriptionType: domain.SubscriptionFree, LettersLimit: 3}, nil
			},
		},
		profiles: &profileRepoMock{
			GetByIDForOwnerFunc: func(ctx context.Context, id uuid.UUID, ownerID string) (*domain.StudentProfile, error) {
				return &domain.StudentProfile{ID: id, UserID: ownerID, Data: map[string]any{"fullName": "Ann Lee"}}, nil
			},
		},
		letters: &letterRepoMock{
			CreateFunc: func(ctx context.Context, l domain.GeneratedLetter) (*domain.GeneratedLetter, error) {
				return &l, nil
			},
			GetByIdempotencyKeyFunc: func(ctx context.Context, ownerID, key string) (*domain.GeneratedLetter, error) {
				return nil, domain.ErrNotFound
			},
		},
		quota: &entitlementsMock{
			CheckFunc: func(u *domain.User) domain.Quota {
				return domain.ComputeQuota(u.LettersGenerated, u.LettersLimit, false)
			},
			ReserveFunc: func(ctx context.Context, userID string) (domain.Quota, error) {
				return domain.Quota{Allowed: true, Remaining: 2}, nil
			},
		},
		gen: &generatorMock{
			GenerateFunc: func(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
				return &domain.GenerationResult{Content: words(1200), Model: "test-model"}, nil
			},
		},
		tx: &txManagerMock{
			RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
				return fn(context.WithValue(ctx, txMarker{}, true))
			},
		},
		metrics: &metricsRecorder{},
		timeout: time.Second,
	}
}

func (d *testDeps) service() *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewService(logger, d.users, d.profiles, d.letters, d.quota, strategy.DefaultRegistry(),
		d.gen, d.tx, d.metrics, Config{GenerationTimeout: d.timeout})
}

func authCtx() context.Context {
	return ctxutil.WithUserID(context.Background(), testUserID)
}

func validInput() GenerateInput {
	return GenerateInput{
		ProfileID:  testProfileID,
		Country:    domain.CountryAustralia,
		LetterType: domain.LetterTypeExplanation,
	}
}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txMarker{}).(bool)
	return v
}
