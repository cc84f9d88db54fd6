package inventory

import "errors"

var (
	ErrContainerNotFound  = errors.New("container not found")
	ErrShelfNotFound      = errors.New("shelf not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrInvalidName        = errors.New("name must be 1 to 255 characters")
	ErrInvalidKind        = errors.New("kind must be freezer or fridge")
	ErrInvalidPosition    = errors.New("position must be a positive integer")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrContainerNotEmpty  = errors.New("container still has shelves")
	ErrShelfNotEmpty      = errors.New("shelf still has items")
	ErrShelfPositionTaken = errors.New("shelf position already taken in this container")
)
