package letter

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

// Paging bounds for List.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// MaxIdempotencyKeyLength bounds the optional Idempotency-Key.
const MaxIdempotencyKeyLength = 128

// GenerateInput holds parameters for a generation request.
type GenerateInput struct {
	ProfileID  uuid.UUID
	Country    domain.Country
	LetterType domain.LetterType
	// IdempotencyKey is optional. Repeating it returns the stored letter.
	IdempotencyKey string
}

// Validate validates the generate input. Country and letter type values
// outside the known enums are left to the strategy registry, which reports
// them as unsupported combinations.
func (i GenerateInput) Validate() error {
	var errs []domain.FieldError

	if i.ProfileID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "profile_id", Message: "required"})
	}
	if i.Country == "" {
		errs = append(errs, domain.FieldError{Field: "country", Message: "required"})
	}
	if i.LetterType == "" {
		errs = append(errs, domain.FieldError{Field: "letter_type", Message: "required"})
	}
	if len(i.IdempotencyKey) > MaxIdempotencyKeyLength {
		errs = append(errs, domain.FieldError{Field: "idempotency_key", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GenerateResult is a persisted letter plus the quota left after it.
type GenerateResult struct {
	Letter *domain.GeneratedLetter
	Quota  domain.Quota
	// Replayed is true when an earlier request with the same idempotency
	// key produced the letter.
	Replayed bool
}

// ListInput holds parameters for the letter history.
type ListInput struct {
	Country       *domain.Country
	LetterType    *domain.LetterType
	FavoritesOnly bool
	Limit         int
	Offset        int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Country != nil && !i.Country.IsValid() {
		errs = append(errs, domain.FieldError{Field: "country", Message: "unknown country"})
	}
	if i.LetterType != nil && !i.LetterType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "letter_type", Message: "unknown letter type"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive"})
	} else if i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be at most 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) filter() domain.LetterFilter {
	limit := i.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}
	return domain.LetterFilter{
		Country:       i.Country,
		LetterType:    i.LetterType,
		FavoritesOnly: i.FavoritesOnly,
		Limit:         limit,
		Offset:        i.Offset,
	}
}

// ListResult is one page of the owner's letters.
type ListResult struct {
	Letters []domain.GeneratedLetter
	Total   int
}

func validateRating(rating int) error {
	if rating < domain.MinFeedbackRating || rating > domain.MaxFeedbackRating {
		return domain.NewValidationError("rating", "must be between 1 and 5")
	}
	return nil
}
