package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/visaletter-backend/internal/domain"
)

// SQLSTATE codes with a domain meaning.
var sqlStateErrors = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
}

// MapError wraps err with the entity and id it concerns and translates
// no-rows and constraint violations into domain sentinels. Anything else,
// context errors included, is wrapped unchanged. id is any printable key.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		err = domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if mapped, ok := sqlStateErrors[pgErr.Code]; ok {
			err = mapped
		}
	}

	return fmt.Errorf("%s %v: %w", entity, id, err)
}
