package repository

import "fridge-inventory/internal/model"

// CreateContainerOptions holds parameters for inserting a new Container.
type CreateContainerOptions struct {
	UserID string
	Name   string
	Kind   model.ContainerKind
}

// GetContainerOptions fetches one container. UserID, when set, restricts the owner.
type GetContainerOptions struct {
	ID     string
	UserID string
}

// UpdateContainerOptions replaces name and kind of a container.
type UpdateContainerOptions struct {
	ID   string
	Name string
	Kind model.ContainerKind
}

// CreateShelfOptions holds parameters for inserting a new Shelf.
type CreateShelfOptions struct {
	ContainerID string
	Name        string
	Position    int
}

// GetShelfOptions fetches one shelf. UserID, when set, restricts the owner.
type GetShelfOptions struct {
	ID     string
	UserID string
}

// UpdateShelfOptions replaces name and position of a shelf.
type UpdateShelfOptions struct {
	ID       string
	Name     string
	Position int
}

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	ShelfID  string
	Name     string
	Quantity int
}

// GetItemOptions fetches one item. UserID, when set, restricts the owner.
type GetItemOptions struct {
	ID     string
	UserID string
}

// UpdateItemOptions replaces every mutable column of an item.
type UpdateItemOptions struct {
	ID       string
	ShelfID  string
	Name     string
	Quantity int
}

// SearchItemsOptions filters a user's items by a name fragment.
// Empty ContainerIDs means every container of the user.
type SearchItemsOptions struct {
	UserID       string
	Term         string
	ContainerIDs []string
}
