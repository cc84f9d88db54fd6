package model

import "time"

// ContainerKind is the type of storage appliance.
type ContainerKind string

const (
	ContainerKindFreezer ContainerKind = "freezer"
	ContainerKindFridge  ContainerKind = "fridge"
)

// IsValid reports whether k is a known kind.
func (k ContainerKind) IsValid() bool {
	return k == ContainerKindFreezer || k == ContainerKindFridge
}

// Container is a fridge or a freezer owned by one user.
type Container struct {
	ID        string
	UserID    string
	Name      string
	Kind      ContainerKind
	CreatedAt time.Time
}

// Shelf is an ordered location inside a container.
type Shelf struct {
	ID          string
	ContainerID string
	Name        string
	Position    int
	CreatedAt   time.Time
}

// Item is a named, counted thing on a shelf. Persisted items always have Quantity > 0.
type Item struct {
	ID        string
	ShelfID   string
	Name      string
	Quantity  int
	CreatedAt time.Time
}

// ShelfWithItems is a shelf and its items in creation order.
type ShelfWithItems struct {
	Shelf
	Items []Item
}

// ContainerTree is a container with its shelves ordered by position.
type ContainerTree struct {
	Container
	Shelves []ShelfWithItems
}

// ShelfLocation is a shelf together with its owning container.
type ShelfLocation struct {
	Shelf     Shelf
	Container Container
}

// ItemWithLocation is a search hit with the display names of where it lives.
type ItemWithLocation struct {
	Item
	ShelfName     string
	ShelfPosition int
	ContainerID   string
	ContainerName string
}
