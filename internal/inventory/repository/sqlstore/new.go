package sqlstore

import (
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"fridge-inventory/internal/inventory/repository"
	"fridge-inventory/pkg/log"
)

// Dialect selects SQL flavour details.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

type implRepository struct {
	db      *sql.DB
	dialect Dialect
	sb      sq.StatementBuilderType
	l       log.Logger
	now     func() time.Time
	newID   func() string
}

// New creates a database/sql backed Repository for the inventory domain.
func New(db *sql.DB, dialect Dialect, l log.Logger) repository.Repository {
	if db == nil {
		panic("inventory/repository/sqlstore: db is required")
	}

	var format sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		format = sq.Dollar
	}

	return &implRepository{
		db:      db,
		dialect: dialect,
		sb:      sq.StatementBuilder.PlaceholderFormat(format),
		l:       l,
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		newID:   func() string { return uuid.NewString() },
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("inventory/repository/sqlstore.%s", method)
}
