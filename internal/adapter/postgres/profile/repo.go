// Package profile implements read access to student profiles.
package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/visaletter-backend/internal/adapter/postgres"
	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var columns = []string{"id", "user_id", "data", "created_at", "updated_at"}

// Repo provides student-profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type profileRow struct {
	ID        uuid.UUID      `db:"id"`
	UserID    string         `db:"user_id"`
	Data      map[string]any `db:"data"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r profileRow) toDomain() *domain.StudentProfile {
	data := r.Data
	if data == nil {
		data = map[string]any{}
	}
	return &domain.StudentProfile{
		ID:        r.ID,
		UserID:    r.UserID,
		Data:      data,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// GetByIDForOwner returns the profile only if ownerID owns it. A profile
// owned by someone else is indistinguishable from a missing one:
// both return domain.ErrProfileNotFound.
func (r *Repo) GetByIDForOwner(ctx context.Context, id uuid.UUID, ownerID string) (*domain.StudentProfile, error) {
	query, args, err := psql.Select(columns...).
		From("student_profiles").
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row profileRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		mapped := postgres.MapError(err, "profile", id)
		if errors.Is(mapped, domain.ErrNotFound) {
			return nil, fmt.Errorf("profile %s: %w", id, domain.ErrProfileNotFound)
		}
		return nil, mapped
	}
	return row.toDomain(), nil
}

// Create stores a profile. Profile management is owned elsewhere; this is
// used by seeding and tests.
func (r *Repo) Create(ctx context.Context, p domain.StudentProfile) (*domain.StudentProfile, error) {
	if p.Data == nil {
		p.Data = map[string]any{}
	}
	query, args, err := psql.Insert("student_profiles").
		Columns(columns...).
		Values(p.ID, p.UserID, p.Data, p.CreatedAt, p.UpdatedAt).
		Suffix("RETURNING id, user_id, data, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row profileRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "profile", p.ID)
	}
	return row.toDomain(), nil
}
