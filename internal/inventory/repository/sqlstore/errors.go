package sqlstore

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"fridge-inventory/internal/inventory/repository"
)

// mapConstraint translates driver constraint errors into repository sentinels.
// It returns nil for every other error.
func mapConstraint(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w: %s", repository.ErrDuplicate, pgErr.ConstraintName)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w: %s", repository.ErrReferenced, pgErr.ConstraintName)
		case "23514": // check_violation
			return fmt.Errorf("%w: %s", repository.ErrCheckViolation, pgErr.ConstraintName)
		}
		return nil
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return repository.ErrDuplicate
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY, sqlite3.SQLITE_CONSTRAINT_TRIGGER:
			// ON DELETE RESTRICT is reported as a trigger constraint.
			return repository.ErrReferenced
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			return repository.ErrCheckViolation
		}
	}
	return nil
}
