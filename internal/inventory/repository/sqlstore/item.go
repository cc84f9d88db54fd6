package sqlstore

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	repo "fridge-inventory/internal/inventory/repository"
	"fridge-inventory/internal/model"
)

const (
	itemsTable   = "items"
	itemColumns  = "id, shelf_id, name, quantity, created_at"
	itemOrdering = "created_at, id"
)

// CreateItem inserts a new Item. A name already present on the shelf yields ErrDuplicate.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	query, args, err := r.sb.Insert(itemsTable).
		Columns("id", "shelf_id", "name", "quantity", "created_at").
		Values(r.newID(), opt.ShelfID, opt.Name, opt.Quantity, r.now()).
		Suffix("RETURNING " + itemColumns).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}

	var row itemRow
	if err := sqlscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		if mapped := mapConstraint(err); mapped != nil {
			return model.Item{}, mapped
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetItem returns a zero-value Item (ID == "") when not found.
func (r *implRepository) GetItem(ctx context.Context, opt repo.GetItemOptions) (model.Item, error) {
	builder := r.sb.Select("i.id", "i.shelf_id", "i.name", "i.quantity", "i.created_at").
		From("items i").
		Where(sq.Eq{"i.id": opt.ID})
	if opt.UserID != "" {
		builder = builder.
			Join("shelves s ON s.id = i.shelf_id").
			Join("containers c ON c.id = s.container_id").
			Where(sq.Eq{"c.user_id": opt.UserID})
	}

	query, args, err := builder.Limit(1).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("GetItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return r.getItem(ctx, "GetItem", query, args)
}

// FindItemOnShelf returns a zero-value Item when the shelf holds no item with that exact name.
func (r *implRepository) FindItemOnShelf(ctx context.Context, shelfID, name string) (model.Item, error) {
	query, args, err := r.sb.Select(itemColumns).
		From(itemsTable).
		Where(sq.Eq{"shelf_id": shelfID, "name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("FindItemOnShelf"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return r.getItem(ctx, "FindItemOnShelf", query, args)
}

func (r *implRepository) getItem(ctx context.Context, method, query string, args []any) (model.Item, error) {
	var row itemRow
	if err := sqlscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return model.Item{}, nil
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListItems returns the items of a shelf in creation order.
func (r *implRepository) ListItems(ctx context.Context, shelfID string) ([]model.Item, error) {
	query, args, err := r.sb.Select(itemColumns).
		From(itemsTable).
		Where(sq.Eq{"shelf_id": shelfID}).
		OrderBy(itemOrdering).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}

	var rows []itemRow
	if err := sqlscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}

	items := make([]model.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toModel())
	}
	return items, nil
}

// UpdateItem returns a zero-value Item when the row does not exist.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	query, args, err := r.sb.Update(itemsTable).
		Set("shelf_id", opt.ShelfID).
		Set("name", opt.Name).
		Set("quantity", opt.Quantity).
		Where(sq.Eq{"id": opt.ID}).
		Suffix("RETURNING " + itemColumns).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	return r.updateItem(ctx, "UpdateItem", query, args)
}

// IncrementItemQuantity adds delta to the stored quantity in one statement.
func (r *implRepository) IncrementItemQuantity(ctx context.Context, id string, delta int) (model.Item, error) {
	query, args, err := r.sb.Update(itemsTable).
		Set("quantity", sq.Expr("quantity + ?", delta)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + itemColumns).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("IncrementItemQuantity"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	return r.updateItem(ctx, "IncrementItemQuantity", query, args)
}

func (r *implRepository) updateItem(ctx context.Context, method, query string, args []any) (model.Item, error) {
	var row itemRow
	if err := sqlscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return model.Item{}, nil
		}
		if mapped := mapConstraint(err); mapped != nil {
			return model.Item{}, mapped
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}

// DeleteItem removes an Item by ID.
func (r *implRepository) DeleteItem(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "DeleteItem", itemsTable, id)
}

// SearchItems narrows by owner and containers in SQL and matches the name in
// Go, so case folding of non-ASCII names is identical on every driver.
func (r *implRepository) SearchItems(ctx context.Context, opt repo.SearchItemsOptions) ([]model.ItemWithLocation, error) {
	builder := r.sb.Select(
		"i.id", "i.shelf_id", "i.name", "i.quantity", "i.created_at",
		"s.name AS shelf_name", "s.position AS shelf_position",
		"c.id AS container_id", "c.name AS container_name",
	).
		From("items i").
		Join("shelves s ON s.id = i.shelf_id").
		Join("containers c ON c.id = s.container_id").
		Where(sq.Eq{"c.user_id": opt.UserID}).
		OrderBy("c.created_at", "c.id", "s.position", "i.created_at", "i.id")
	if len(opt.ContainerIDs) > 0 {
		builder = builder.Where(sq.Eq{"c.id": opt.ContainerIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("SearchItems"), err)
		return nil, repo.ErrFailedToList
	}

	var rows []itemLocationRow
	if err := sqlscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SearchItems"), err)
		return nil, repo.ErrFailedToList
	}

	term := strings.ToLower(strings.TrimSpace(opt.Term))
	hits := make([]model.ItemWithLocation, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(strings.TrimSpace(row.Name)), term) {
			hits = append(hits, row.toModel())
		}
	}
	return hits, nil
}
