package domain

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedLetter is a persisted letter with its generation provenance.
// Only FeedbackRating and IsFavorite change after creation.
type GeneratedLetter struct {
	ID             uuid.UUID
	UserID         string
	ProfileID      *uuid.UUID
	LetterType     LetterType
	Country        Country
	Title          string
	Content        string
	ModelUsed      string
	GenerationTime *int // milliseconds
	WordCount      *int
	CreatedAt      time.Time
	FeedbackRating *int
	IsFavorite     bool
	IdempotencyKey *string
}

// Feedback rating bounds.
const (
	MinFeedbackRating = 1
	MaxFeedbackRating = 5
)

// LetterFilter narrows an owner's letter listing.
type LetterFilter struct {
	Country       *Country
	LetterType    *LetterType
	FavoritesOnly bool
	Limit         int
	Offset        int
}

// WordRange is the declared word-count contract of a letter strategy.
type WordRange struct {
	Min int
	Max int
}

// Contains reports whether n falls inside the range (inclusive).
func (r WordRange) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}
