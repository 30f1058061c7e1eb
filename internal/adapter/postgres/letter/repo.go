// Package letter implements generated-letter persistence using PostgreSQL.
// Every read and write is scoped by owner: a letter owned by another user is
// reported as domain.ErrNotFound.
package letter

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/visaletter-backend/internal/adapter/postgres"
	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

const table = "generated_letters"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{
	"id", "user_id", "profile_id", "letter_type", "country", "title", "content",
	"model_used", "generation_time", "word_count", "created_at",
	"feedback_rating", "is_favorite", "idempotency_key",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides letter persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new letter repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type letterRow struct {
	ID             uuid.UUID  `db:"id"`
	UserID         string     `db:"user_id"`
	ProfileID      *uuid.UUID `db:"profile_id"`
	LetterType     string     `db:"letter_type"`
	Country        string     `db:"country"`
	Title          string     `db:"title"`
	Content        string     `db:"content"`
	ModelUsed      string     `db:"model_used"`
	GenerationTime *int       `db:"generation_time"`
	WordCount      *int       `db:"word_count"`
	CreatedAt      time.Time  `db:"created_at"`
	FeedbackRating *int       `db:"feedback_rating"`
	IsFavorite     bool       `db:"is_favorite"`
	IdempotencyKey *string    `db:"idempotency_key"`
}

func (r letterRow) toDomain() domain.GeneratedLetter {
	return domain.GeneratedLetter{
		ID:             r.ID,
		UserID:         r.UserID,
		ProfileID:      r.ProfileID,
		LetterType:     domain.LetterType(r.LetterType),
		Country:        domain.Country(r.Country),
		Title:          r.Title,
		Content:        r.Content,
		ModelUsed:      r.ModelUsed,
		GenerationTime: r.GenerationTime,
		WordCount:      r.WordCount,
		CreatedAt:      r.CreatedAt,
		FeedbackRating: r.FeedbackRating,
		IsFavorite:     r.IsFavorite,
		IdempotencyKey: r.IdempotencyKey,
	}
}

func (r *Repo) getOne(ctx context.Context, id any, b sq.Sqlizer) (*domain.GeneratedLetter, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row letterRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "letter", id)
	}
	l := row.toDomain()
	return &l, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a letter. A second letter with the same (user, idempotency
// key) surfaces as domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, l domain.GeneratedLetter) (*domain.GeneratedLetter, error) {
	b := psql.Insert(table).
		Columns(columns...).
		Values(
			l.ID, l.UserID, l.ProfileID, string(l.LetterType), string(l.Country), l.Title, l.Content,
			l.ModelUsed, l.GenerationTime, l.WordCount, l.CreatedAt,
			l.FeedbackRating, l.IsFavorite, l.IdempotencyKey,
		).
		Suffix(returning)

	return r.getOne(ctx, l.ID, b)
}

// SetFavorite toggles the favorite flag on an owned letter.
func (r *Repo) SetFavorite(ctx context.Context, id uuid.UUID, ownerID string, favorite bool) (*domain.GeneratedLetter, error) {
	b := psql.Update(table).
		Set("is_favorite", favorite).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Suffix(returning)

	return r.getOne(ctx, id, b)
}

// SetFeedback records a 1..5 rating on an owned letter.
func (r *Repo) SetFeedback(ctx context.Context, id uuid.UUID, ownerID string, rating int) (*domain.GeneratedLetter, error) {
	b := psql.Update(table).
		Set("feedback_rating", rating).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Suffix(returning)

	return r.getOne(ctx, id, b)
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByIDForOwner returns a letter only if ownerID owns it.
func (r *Repo) GetByIDForOwner(ctx context.Context, id uuid.UUID, ownerID string) (*domain.GeneratedLetter, error) {
	b := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"id": id, "user_id": ownerID})

	return r.getOne(ctx, id, b)
}

// GetByIdempotencyKey returns the owner's letter created under key.
func (r *Repo) GetByIdempotencyKey(ctx context.Context, ownerID, key string) (*domain.GeneratedLetter, error) {
	b := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": ownerID, "idempotency_key": key})

	return r.getOne(ctx, key, b)
}

func applyFilter(b sq.SelectBuilder, ownerID string, f domain.LetterFilter) sq.SelectBuilder {
	b = b.Where(sq.Eq{"user_id": ownerID})
	if f.Country != nil {
		b = b.Where(sq.Eq{"country": string(*f.Country)})
	}
	if f.LetterType != nil {
		b = b.Where(sq.Eq{"letter_type": string(*f.LetterType)})
	}
	if f.FavoritesOnly {
		b = b.Where(sq.Eq{"is_favorite": true})
	}
	return b
}

// ListByOwner returns the owner's letters, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID string, f domain.LetterFilter) ([]domain.GeneratedLetter, error) {
	b := applyFilter(psql.Select(columns...).From(table), ownerID, f).
		OrderBy("created_at DESC", "id DESC")
	if f.Limit > 0 {
		b = b.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		b = b.Offset(uint64(f.Offset))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []letterRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "letters of user", ownerID)
	}

	letters := make([]domain.GeneratedLetter, len(rows))
	for i, row := range rows {
		letters[i] = row.toDomain()
	}
	return letters, nil
}

// CountByOwner returns how many letters match the filter, ignoring paging.
func (r *Repo) CountByOwner(ctx context.Context, ownerID string, f domain.LetterFilter) (int, error) {
	query, args, err := applyFilter(psql.Select("count(*)").From(table), ownerID, f).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "letters of user", ownerID)
	}
	return n, nil
}
