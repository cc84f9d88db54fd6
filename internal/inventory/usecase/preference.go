package usecase

import (
	"context"
	"errors"

	"fridge-inventory/internal/inventory"
	"fridge-inventory/internal/model"
)

// GetDefaultShelf returns the user's default shelf, if any.
func (uc *implUseCase) GetDefaultShelf(ctx context.Context, sc model.Scope) (inventory.DefaultShelfOutput, error) {
	shelfID, err := uc.repo.GetDefaultShelfID(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetDefaultShelf GetDefaultShelfID: %v", err)
		return inventory.DefaultShelfOutput{}, err
	}
	if shelfID == "" {
		return inventory.DefaultShelfOutput{}, nil
	}

	loc, err := uc.ownedShelf(ctx, sc, shelfID)
	if errors.Is(err, inventory.ErrShelfNotFound) {
		return inventory.DefaultShelfOutput{}, nil
	}
	if err != nil {
		return inventory.DefaultShelfOutput{}, err
	}
	return inventory.DefaultShelfOutput{Shelf: &loc}, nil
}

// SetDefaultShelf points the preference at shelfID, or clears it for "".
func (uc *implUseCase) SetDefaultShelf(ctx context.Context, sc model.Scope, shelfID string) (inventory.DefaultShelfOutput, error) {
	var out inventory.DefaultShelfOutput
	if shelfID != "" {
		loc, err := uc.ownedShelf(ctx, sc, shelfID)
		if err != nil {
			return inventory.DefaultShelfOutput{}, err
		}
		out.Shelf = &loc
	}

	if err := uc.repo.SetDefaultShelfID(ctx, sc.UserID, shelfID); err != nil {
		uc.l.Errorf(ctx, "uc.SetDefaultShelf SetDefaultShelfID: %v", err)
		return inventory.DefaultShelfOutput{}, err
	}
	return out, nil
}
