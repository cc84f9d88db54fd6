package http

import (
	"errors"
	"net/http"

	"fridge-inventory/internal/inventory"
	pkgErrors "fridge-inventory/pkg/errors"
)

var (
	errContainerNotFound  = pkgErrors.NewHTTPErrorWithStatus(http.StatusNotFound, 120001, "Container not found")
	errShelfNotFound      = pkgErrors.NewHTTPErrorWithStatus(http.StatusNotFound, 120002, "Shelf not found")
	errItemNotFound       = pkgErrors.NewHTTPErrorWithStatus(http.StatusNotFound, 120003, "Item not found")
	errShelfPositionTaken = pkgErrors.NewHTTPErrorWithStatus(http.StatusConflict, 120004, "Shelf position already taken in this container")
	errContainerNotEmpty  = pkgErrors.NewHTTPErrorWithStatus(http.StatusConflict, 120005, "Container still has shelves")
	errShelfNotEmpty      = pkgErrors.NewHTTPErrorWithStatus(http.StatusConflict, 120006, "Shelf still has items")
	errInvalidName        = pkgErrors.NewHTTPError(120007, "Name must be 1 to 255 characters")
	errInvalidKind        = pkgErrors.NewHTTPError(120008, "Kind must be freezer or fridge")
	errInvalidPosition    = pkgErrors.NewHTTPError(120009, "Position must be a positive integer")
	errInvalidQuantity    = pkgErrors.NewHTTPError(120010, "Invalid quantity")
	errMissingID          = pkgErrors.NewHTTPError(120011, "id is required")
)

// mapError translates inventory errors into HTTP errors. Anything unmapped is
// rendered as a masked 500 by response.Error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, inventory.ErrContainerNotFound):
		return errContainerNotFound
	case errors.Is(err, inventory.ErrShelfNotFound):
		return errShelfNotFound
	case errors.Is(err, inventory.ErrItemNotFound):
		return errItemNotFound
	case errors.Is(err, inventory.ErrShelfPositionTaken):
		return errShelfPositionTaken
	case errors.Is(err, inventory.ErrContainerNotEmpty):
		return errContainerNotEmpty
	case errors.Is(err, inventory.ErrShelfNotEmpty):
		return errShelfNotEmpty
	case errors.Is(err, inventory.ErrInvalidName):
		return errInvalidName
	case errors.Is(err, inventory.ErrInvalidKind):
		return errInvalidKind
	case errors.Is(err, inventory.ErrInvalidPosition):
		return errInvalidPosition
	case errors.Is(err, inventory.ErrInvalidQuantity):
		return errInvalidQuantity
	default:
		return err
	}
}
