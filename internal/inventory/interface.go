package inventory

import (
	"context"

	"fridge-inventory/internal/model"
)

// UseCase is the CRUD surface over containers, shelves, items and the default shelf.
// Every call is restricted to the scope's user.
type UseCase interface {
	CreateContainer(ctx context.Context, sc model.Scope, input CreateContainerInput) (model.Container, error)
	ListContainers(ctx context.Context, sc model.Scope) ([]model.ContainerTree, error)
	DetailContainer(ctx context.Context, sc model.Scope, id string) (model.ContainerTree, error)
	UpdateContainer(ctx context.Context, sc model.Scope, input UpdateContainerInput) (model.Container, error)
	DeleteContainer(ctx context.Context, sc model.Scope, id string) error

	CreateShelf(ctx context.Context, sc model.Scope, input CreateShelfInput) (model.Shelf, error)
	UpdateShelf(ctx context.Context, sc model.Scope, input UpdateShelfInput) (model.Shelf, error)
	DeleteShelf(ctx context.Context, sc model.Scope, id string) error

	// AddItem merges into an existing row with the same trimmed name on the shelf.
	AddItem(ctx context.Context, sc model.Scope, input AddItemInput) (AddItemOutput, error)
	// UpdateItem deletes the row when the quantity becomes 0.
	UpdateItem(ctx context.Context, sc model.Scope, input UpdateItemInput) (UpdateItemOutput, error)
	DeleteItem(ctx context.Context, sc model.Scope, id string) error
	MoveItem(ctx context.Context, sc model.Scope, input MoveItemInput) (model.Item, error)

	GetDefaultShelf(ctx context.Context, sc model.Scope) (DefaultShelfOutput, error)
	// SetDefaultShelf clears the preference when shelfID is empty.
	SetDefaultShelf(ctx context.Context, sc model.Scope, shelfID string) (DefaultShelfOutput, error)
}
