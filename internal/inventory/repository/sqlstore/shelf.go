package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	repo "fridge-inventory/internal/inventory/repository"
	"fridge-inventory/internal/model"
)

const (
	shelvesTable  = "shelves"
	shelfColumns  = "id, container_id, name, position, created_at"
	shelfOrdering = "position, created_at"
)

// CreateShelf inserts a new Shelf. A taken position yields ErrDuplicate.
func (r *implRepository) CreateShelf(ctx context.Context, opt repo.CreateShelfOptions) (model.Shelf, error) {
	query, args, err := r.sb.Insert(shelvesTable).
		Columns("id", "container_id", "name", "position", "created_at").
		Values(r.newID(), opt.ContainerID, opt.Name, opt.Position, r.now()).
		Suffix("RETURNING " + shelfColumns).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("CreateShelf"), err)
		return model.Shelf{}, repo.ErrFailedToInsert
	}

	var row shelfRow
	if err := sqlscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		if mapped := mapConstraint(err); mapped != nil {
			return model.Shelf{}, mapped
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateShelf"), err)
		return model.Shelf{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetShelf returns the shelf with its container, or a zero value when not found.
func (r *implRepository) GetShelf(ctx context.Context, opt repo.GetShelfOptions) (model.ShelfLocation, error) {
	where := sq.Eq{"s.id": opt.ID}
	if opt.UserID != "" {
		where["c.user_id"] = opt.UserID
	}

	query, args, err := r.sb.Select(
		"s.id", "s.container_id", "s.name", "s.position", "s.created_at",
		"c.user_id AS container_user_id", "c.name AS container_name",
		"c.kind AS container_kind", "c.created_at AS container_created_at",
	).
		From("shelves s").
		Join("containers c ON c.id = s.container_id").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("GetShelf"), err)
		return model.ShelfLocation{}, repo.ErrFailedToGet
	}

	var row shelfLocationRow
	if err := sqlscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return model.ShelfLocation{}, nil
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetShelf"), err)
		return model.ShelfLocation{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListShelves returns the shelves of a container ordered by position.
func (r *implRepository) ListShelves(ctx context.Context, containerID string) ([]model.Shelf, error) {
	query, args, err := r.sb.Select(shelfColumns).
		From(shelvesTable).
		Where(sq.Eq{"container_id": containerID}).
		OrderBy(shelfOrdering).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("ListShelves"), err)
		return nil, repo.ErrFailedToList
	}

	var rows []shelfRow
	if err := sqlscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListShelves"), err)
		return nil, repo.ErrFailedToList
	}

	shelves := make([]model.Shelf, 0, len(rows))
	for _, row := range rows {
		shelves = append(shelves, row.toModel())
	}
	return shelves, nil
}

// UpdateShelf returns a zero-value Shelf when the row does not exist.
func (r *implRepository) UpdateShelf(ctx context.Context, opt repo.UpdateShelfOptions) (model.Shelf, error) {
	query, args, err := r.sb.Update(shelvesTable).
		Set("name", opt.Name).
		Set("position", opt.Position).
		Where(sq.Eq{"id": opt.ID}).
		Suffix("RETURNING " + shelfColumns).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("UpdateShelf"), err)
		return model.Shelf{}, repo.ErrFailedToUpdate
	}

	var row shelfRow
	if err := sqlscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return model.Shelf{}, nil
		}
		if mapped := mapConstraint(err); mapped != nil {
			return model.Shelf{}, mapped
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateShelf"), err)
		return model.Shelf{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}

// DeleteShelf removes a Shelf by ID. It fails with ErrReferenced while items remain.
func (r *implRepository) DeleteShelf(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "DeleteShelf", shelvesTable, id)
}
