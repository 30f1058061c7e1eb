package letter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
	"github.com/heartmarshall/visaletter-backend/internal/strategy"
	"github.com/heartmarshall/visaletter-backend/pkg/ctxutil"
)

// errIdempotencyRace rolls back a transaction that lost the insert race for
// its idempotency key.
var errIdempotencyRace = errors.New("idempotency key taken by a concurrent request")

// Generate produces and saves one letter for the authenticated user.
//
// Nothing is written unless the letter is saved: the quota reservation and
// the insert share one transaction, and every failure before it (profile,
// quota pre-check, strategy, text generation) leaves the store untouched.
func (s *Service) Generate(ctx context.Context, input GenerateInput) (*GenerateResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	country, letterType := string(input.Country), string(input.LetterType)
	start := s.now()
	observe := func(outcome string) {
		s.metrics.GenerationObserved(country, letterType, outcome, s.now().Sub(start))
	}

	// Step 0: A repeated idempotency key returns the stored letter.
	if input.IdempotencyKey != "" {
		res, err := s.replay(ctx, userID, input)
		switch {
		case err == nil:
			observe(OutcomeReplayed)
			return res, nil
		case !errors.Is(err, domain.ErrNotFound):
			observe(OutcomeError)
			return nil, fmt.Errorf("letter.Generate: %w", err)
		}
	}

	// Step 1: Load the profile, scoped to the owner.
	profile, err := s.profiles.GetByIDForOwner(ctx, input.ProfileID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			observe(OutcomeProfileNotFound)
			return nil, fmt.Errorf("letter.Generate: %w", domain.ErrProfileNotFound)
		}
		observe(OutcomeError)
		return nil, fmt.Errorf("letter.Generate: get profile: %w", err)
	}

	// Step 2: Quota pre-check. Reserve in step 5 is the authoritative one.
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		observe(OutcomeError)
		return nil, fmt.Errorf("letter.Generate: get user: %w", err)
	}
	if !s.quota.Check(user).Allowed {
		observe(OutcomeQuotaExceeded)
		return nil, fmt.Errorf("letter.Generate: %w", domain.ErrQuotaExceeded)
	}

	// Step 3: Resolve the strategy.
	strat, err := s.strategies.Resolve(input.Country, input.LetterType)
	if err != nil {
		observe(OutcomeStrategyGap)
		return nil, fmt.Errorf("letter.Generate: %w", err)
	}

	// Step 4: Generate under the configured timeout.
	draft, elapsed, err := s.draft(ctx, strat, profile)
	if err != nil {
		if ctx.Err() != nil {
			observe(OutcomeError)
			return nil, fmt.Errorf("letter.Generate: %w", ctx.Err())
		}
		observe(OutcomeGenerationFailed)
		s.log.WarnContext(ctx, "letter generation failed",
			slog.String("user_id", userID),
			slog.String("strategy", strat.Key().String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("letter.Generate: %w: %w", domain.ErrGenerationFailed, err)
	}

	if !draft.InRange() {
		s.metrics.WordCountOutOfRange(country, letterType)
		s.log.WarnContext(ctx, "letter word count outside strategy range",
			slog.String("strategy", strat.Key().String()),
			slog.Int("word_count", draft.WordCount),
			slog.Int("min", draft.WordRange.Min),
			slog.Int("max", draft.WordRange.Max),
		)
	}

	// Step 5: Reserve quota and save the letter atomically.
	letter := s.newLetter(userID, profile.ID, input, draft, elapsed)

	var (
		saved *domain.GeneratedLetter
		quota domain.Quota
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		q, err := s.quota.Reserve(txCtx, userID)
		if err != nil {
			return fmt.Errorf("reserve: %w", err)
		}

		created, err := s.letters.Create(txCtx, letter)
		if err != nil {
			if input.IdempotencyKey != "" && errors.Is(err, domain.ErrAlreadyExists) {
				return errIdempotencyRace
			}
			return fmt.Errorf("create letter: %w", err)
		}

		saved, quota = created, q
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errIdempotencyRace):
			res, rerr := s.replay(ctx, userID, input)
			if rerr != nil {
				observe(OutcomeError)
				return nil, fmt.Errorf("letter.Generate: replay after race: %w", rerr)
			}
			observe(OutcomeReplayed)
			return res, nil
		case errors.Is(err, domain.ErrQuotaExceeded):
			// Lost the race for the last letter while generating. The draft is discarded.
			observe(OutcomeQuotaExceeded)
			return nil, fmt.Errorf("letter.Generate: %w", domain.ErrQuotaExceeded)
		default:
			observe(OutcomeError)
			return nil, fmt.Errorf("letter.Generate: %w", err)
		}
	}

	// Step 6: Report.
	observe(OutcomeSuccess)
	s.log.InfoContext(ctx, "letter generated",
		slog.String("user_id", userID),
		slog.String("letter_id", saved.ID.String()),
		slog.String("strategy", strat.Key().String()),
		slog.String("model", saved.ModelUsed),
		slog.Int("word_count", draft.WordCount),
		slog.Duration("elapsed", elapsed),
		slog.Int("remaining", quota.Remaining),
	)

	return &GenerateResult{Letter: saved, Quota: quota}, nil
}

func (s *Service) draft(ctx context.Context, strat strategy.Strategy, profile *domain.StudentProfile) (*strategy.Draft, time.Duration, error) {
	genCtx, cancel := context.WithTimeout(ctx, s.cfg.GenerationTimeout)
	defer cancel()

	start := s.now()
	draft, err := strat.Generate(genCtx, s.gen, profile)
	return draft, s.now().Sub(start), err
}

func (s *Service) newLetter(userID string, profileID uuid.UUID, input GenerateInput, draft *strategy.Draft, elapsed time.Duration) domain.GeneratedLetter {
	ms := int(elapsed.Milliseconds())
	words := draft.WordCount

	l := domain.GeneratedLetter{
		ID:             uuid.New(),
		UserID:         userID,
		ProfileID:      &profileID,
		LetterType:     input.LetterType,
		Country:        input.Country,
		Title:          draft.Title,
		Content:        draft.Content,
		ModelUsed:      draft.Model,
		GenerationTime: &ms,
		WordCount:      &words,
		CreatedAt:      s.now().UTC(),
	}
	if input.IdempotencyKey != "" {
		key := input.IdempotencyKey
		l.IdempotencyKey = &key
	}
	return l
}

// replay returns the letter stored under the input's idempotency key with
// the user's current quota. A key reused for a different request is a
// domain.ErrConflict.
func (s *Service) replay(ctx context.Context, userID string, input GenerateInput) (*GenerateResult, error) {
	stored, err := s.letters.GetByIdempotencyKey(ctx, userID, input.IdempotencyKey)
	if err != nil {
		return nil, err
	}

	if stored.Country != input.Country || stored.LetterType != input.LetterType ||
		stored.ProfileID == nil || *stored.ProfileID != input.ProfileID {
		return nil, fmt.Errorf("idempotency key reused for a different letter: %w", domain.ErrConflict)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &GenerateResult{Letter: stored, Quota: s.quota.Check(user), Replayed: true}, nil
}
