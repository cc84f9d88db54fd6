package inventory

import (
	"strings"
	"unicode/utf8"

	"fridge-inventory/internal/model"
)

// MaxNameLength is the limit for container, shelf and item names, in runes.
const MaxNameLength = 255

// --- UseCase Inputs ---

type CreateContainerInput struct {
	Name string
	Kind model.ContainerKind
}

// UpdateContainerInput leaves zero-valued fields unchanged.
type UpdateContainerInput struct {
	ID   string
	Name string
	Kind model.ContainerKind
}

type CreateShelfInput struct {
	ContainerID string
	Name        string
	Position    int
}

// UpdateShelfInput leaves zero-valued fields unchanged.
type UpdateShelfInput struct {
	ID       string
	Name     string
	Position int
}

type AddItemInput struct {
	ShelfID  string
	Name     string
	Quantity int
}

// UpdateItemInput leaves nil fields unchanged.
type UpdateItemInput struct {
	ID       string
	Name     *string
	Quantity *int
}

type MoveItemInput struct {
	ID            string
	TargetShelfID string
}

// --- UseCase Outputs ---

type AddItemOutput struct {
	Item   model.Item
	Merged bool
}

type UpdateItemOutput struct {
	Item    model.Item
	Deleted bool
}

// DefaultShelfOutput has a nil Shelf when no default is configured.
type DefaultShelfOutput struct {
	Shelf *model.ShelfLocation
}

// NormalizeName trims s and checks it fits the name limits.
func NormalizeName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return "", ErrInvalidName
	}
	return name, nil
}
