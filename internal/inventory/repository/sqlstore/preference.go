package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	repo "fridge-inventory/internal/inventory/repository"
)

const preferencesTable = "user_preferences"

// GetDefaultShelfID returns "" when no preference row exists or it is unset.
func (r *implRepository) GetDefaultShelfID(ctx context.Context, userID string) (string, error) {
	query, args, err := r.sb.Select("default_shelf_id").
		From(preferencesTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("GetDefaultShelfID"), err)
		return "", repo.ErrFailedToGet
	}

	var shelfID sql.NullString
	if err := r.q(ctx).QueryRowContext(ctx, query, args...).Scan(&shelfID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetDefaultShelfID"), err)
		return "", repo.ErrFailedToGet
	}
	return shelfID.String, nil
}

// SetDefaultShelfID upserts the preference. An empty shelfID clears it.
func (r *implRepository) SetDefaultShelfID(ctx context.Context, userID, shelfID string) error {
	value := sql.NullString{String: shelfID, Valid: shelfID != ""}

	query, args, err := r.sb.Insert(preferencesTable).
		Columns("user_id", "default_shelf_id", "updated_at").
		Values(userID, value, r.now()).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET default_shelf_id = EXCLUDED.default_shelf_id, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("SetDefaultShelfID"), err)
		return repo.ErrFailedToUpdate
	}

	if _, err := r.q(ctx).ExecContext(ctx, query, args...); err != nil {
		if mapped := mapConstraint(err); mapped != nil {
			return mapped
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetDefaultShelfID"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
