package repository

import (
	"context"

	"fridge-inventory/internal/model"
)

// Repository is the composed interface for the inventory data store.
type Repository interface {
	// RunInTx runs fn in one transaction. Repository calls made with the ctx passed to fn join it.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error

	ContainerRepository
	ShelfRepository
	ItemRepository
	PreferenceRepository
}

// ContainerRepository defines data access for containers.
// Getters return a zero value (ID == "") when nothing matches.
type ContainerRepository interface {
	CreateContainer(ctx context.Context, opt CreateContainerOptions) (model.Container, error)
	GetContainer(ctx context.Context, opt GetContainerOptions) (model.Container, error)
	ListContainers(ctx context.Context, userID string) ([]model.Container, error)
	ListContainerTrees(ctx context.Context, userID string) ([]model.ContainerTree, error)
	UpdateContainer(ctx context.Context, opt UpdateContainerOptions) (model.Container, error)
	DeleteContainer(ctx context.Context, id string) error
}

// ShelfRepository defines data access for shelves.
type ShelfRepository interface {
	CreateShelf(ctx context.Context, opt CreateShelfOptions) (model.Shelf, error)
	GetShelf(ctx context.Context, opt GetShelfOptions) (model.ShelfLocation, error)
	ListShelves(ctx context.Context, containerID string) ([]model.Shelf, error)
	UpdateShelf(ctx context.Context, opt UpdateShelfOptions) (model.Shelf, error)
	DeleteShelf(ctx context.Context, id string) error
}

// ItemRepository defines data access for items.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	GetItem(ctx context.Context, opt GetItemOptions) (model.Item, error)
	// FindItemOnShelf matches name exactly.
	FindItemOnShelf(ctx context.Context, shelfID, name string) (model.Item, error)
	ListItems(ctx context.Context, shelfID string) ([]model.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	IncrementItemQuantity(ctx context.Context, id string, delta int) (model.Item, error)
	DeleteItem(ctx context.Context, id string) error
	// SearchItems matches trimmed names case-insensitively by substring.
	SearchItems(ctx context.Context, opt SearchItemsOptions) ([]model.ItemWithLocation, error)
}

// PreferenceRepository stores per-user settings.
type PreferenceRepository interface {
	// GetDefaultShelfID returns "" when the user has no default shelf.
	GetDefaultShelfID(ctx context.Context, userID string) (string, error)
	SetDefaultShelfID(ctx context.Context, userID, shelfID string) error
}
