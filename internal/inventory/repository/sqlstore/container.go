package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	repo "fridge-inventory/internal/inventory/repository"
	"fridge-inventory/internal/model"
)

const (
	containersTable   = "containers"
	containerColumns  = "id, user_id, name, kind, created_at"
	containerOrdering = "created_at, id"
)

// CreateContainer inserts a new Container row and returns the created entity.
func (r *implRepository) CreateContainer(ctx context.Context, opt repo.CreateContainerOptions) (model.Container, error) {
	query, args, err := r.sb.Insert(containersTable).
		Columns("id", "user_id", "name", "kind", "created_at").
		Values(r.newID(), opt.UserID, opt.Name, string(opt.Kind), r.now()).
		Suffix("RETURNING " + containerColumns).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("CreateContainer"), err)
		return model.Container{}, repo.ErrFailedToInsert
	}

	var row containerRow
	if err := sqlscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		if mapped := mapConstraint(err); mapped != nil {
			return model.Container{}, mapped
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateContainer"), err)
		return model.Container{}, repo.ErrFailedToInsert
	}
	return row.toModel(), nil
}

// GetContainer returns a zero-value Container (ID == "") when not found.
func (r *implRepository) GetContainer(ctx context.Context, opt repo.GetContainerOptions) (model.Container, error) {
	where := sq.Eq{"id": opt.ID}
	if opt.UserID != "" {
		where["user_id"] = opt.UserID
	}

	query, args, err := r.sb.Select(containerColumns).From(containersTable).Where(where).Limit(1).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("GetContainer"), err)
		return model.Container{}, repo.ErrFailedToGet
	}

	var row containerRow
	if err := sqlscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return model.Container{}, nil
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetContainer"), err)
		return model.Container{}, repo.ErrFailedToGet
	}
	return row.toModel(), nil
}

// ListContainers returns the user's containers in creation order.
func (r *implRepository) ListContainers(ctx context.Context, userID string) ([]model.Container, error) {
	query, args, err := r.sb.Select(containerColumns).
		From(containersTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy(containerOrdering).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("ListContainers"), err)
		return nil, repo.ErrFailedToList
	}

	var rows []containerRow
	if err := sqlscan.Select(ctx, r.q(ctx), &rows, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListContainers"), err)
		return nil, repo.ErrFailedToList
	}

	containers := make([]model.Container, 0, len(rows))
	for _, row := range rows {
		containers = append(containers, row.toModel())
	}
	return containers, nil
}

// ListContainerTrees returns every container of the user with shelves ordered
// by position and items in creation order. Three queries, assembled in memory.
func (r *implRepository) ListContainerTrees(ctx context.Context, userID string) ([]model.ContainerTree, error) {
	containers, err := r.ListContainers(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(containers) == 0 {
		return []model.ContainerTree{}, nil
	}

	shelfQuery, shelfArgs, err := r.sb.Select("s.id", "s.container_id", "s.name", "s.position", "s.created_at").
		From("shelves s").
		Join("containers c ON c.id = s.container_id").
		Where(sq.Eq{"c.user_id": userID}).
		OrderBy("s.position", "s.created_at").
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build shelves: %v", r.dsn("ListContainerTrees"), err)
		return nil, repo.ErrFailedToList
	}

	var shelfRows []shelfRow
	if err := sqlscan.Select(ctx, r.q(ctx), &shelfRows, shelfQuery, shelfArgs...); err != nil {
		r.l.Errorf(ctx, "%s shelves: %v", r.dsn("ListContainerTrees"), err)
		return nil, repo.ErrFailedToList
	}

	itemQuery, itemArgs, err := r.sb.Select("i.id", "i.shelf_id", "i.name", "i.quantity", "i.created_at").
		From("items i").
		Join("shelves s ON s.id = i.shelf_id").
		Join("containers c ON c.id = s.container_id").
		Where(sq.Eq{"c.user_id": userID}).
		OrderBy("i.created_at", "i.id").
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build items: %v", r.dsn("ListContainerTrees"), err)
		return nil, repo.ErrFailedToList
	}

	var itemRows []itemRow
	if err := sqlscan.Select(ctx, r.q(ctx), &itemRows, itemQuery, itemArgs...); err != nil {
		r.l.Errorf(ctx, "%s items: %v", r.dsn("ListContainerTrees"), err)
		return nil, repo.ErrFailedToList
	}

	itemsByShelf := make(map[string][]model.Item)
	for _, row := range itemRows {
		itemsByShelf[row.ShelfID] = append(itemsByShelf[row.ShelfID], row.toModel())
	}

	shelvesByContainer := make(map[string][]model.ShelfWithItems)
	for _, row := range shelfRows {
		shelf := model.ShelfWithItems{Shelf: row.toModel(), Items: itemsByShelf[row.ID]}
		if shelf.Items == nil {
			shelf.Items = []model.Item{}
		}
		shelvesByContainer[row.ContainerID] = append(shelvesByContainer[row.ContainerID], shelf)
	}

	trees := make([]model.ContainerTree, 0, len(containers))
	for _, c := range containers {
		tree := model.ContainerTree{Container: c, Shelves: shelvesByContainer[c.ID]}
		if tree.Shelves == nil {
			tree.Shelves = []model.ShelfWithItems{}
		}
		trees = append(trees, tree)
	}
	return trees, nil
}

// UpdateContainer returns a zero-value Container when the row does not exist.
func (r *implRepository) UpdateContainer(ctx context.Context, opt repo.UpdateContainerOptions) (model.Container, error) {
	query, args, err := r.sb.Update(containersTable).
		Set("name", opt.Name).
		Set("kind", string(opt.Kind)).
		Where(sq.Eq{"id": opt.ID}).
		Suffix("RETURNING " + containerColumns).
		ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn("UpdateContainer"), err)
		return model.Container{}, repo.ErrFailedToUpdate
	}

	var row containerRow
	if err := sqlscan.Get(ctx, r.q(ctx), &row, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return model.Container{}, nil
		}
		if mapped := mapConstraint(err); mapped != nil {
			return model.Container{}, mapped
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateContainer"), err)
		return model.Container{}, repo.ErrFailedToUpdate
	}
	return row.toModel(), nil
}

// DeleteContainer removes a Container by ID. It fails with ErrReferenced while shelves remain.
func (r *implRepository) DeleteContainer(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "DeleteContainer", containersTable, id)
}

func (r *implRepository) deleteByID(ctx context.Context, method, table, id string) error {
	query, args, err := r.sb.Delete(table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		r.l.Errorf(ctx, "%s build: %v", r.dsn(method), err)
		return repo.ErrFailedToDelete
	}

	if _, err := r.q(ctx).ExecContext(ctx, query, args...); err != nil {
		if mapped := mapConstraint(err); mapped != nil {
			return mapped
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
