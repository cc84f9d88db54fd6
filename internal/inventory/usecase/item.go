package usecase

import (
	"context"

	"fridge-inventory/internal/inventory"
	repo "fridge-inventory/internal/inventory/repository"
	"fridge-inventory/internal/model"
)

// AddItem puts quantity of name on a shelf, merging with an existing row of the same name.
func (uc *implUseCase) AddItem(ctx context.Context, sc model.Scope, input inventory.AddItemInput) (inventory.AddItemOutput, error) {
	if input.Quantity <= 0 {
		return inventory.AddItemOutput{}, inventory.ErrInvalidQuantity
	}
	name, err := inventory.NormalizeName(input.Name)
	if err != nil {
		return inventory.AddItemOutput{}, err
	}
	if _, err := uc.ownedShelf(ctx, sc, input.ShelfID); err != nil {
		return inventory.AddItemOutput{}, err
	}

	var out inventory.AddItemOutput
	err = uc.runMerge(ctx, func(ctx context.Context) error {
		item, merged, err := uc.mergeOrCreate(ctx, input.ShelfID, name, input.Quantity)
		if err != nil {
			return err
		}
		out = inventory.AddItemOutput{Item: item, Merged: merged}
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AddItem mergeOrCreate: %v", err)
		return inventory.AddItemOutput{}, err
	}
	return out, nil
}

// UpdateItem changes name and quantity. Quantity 0 deletes the item; renaming
// onto a name already on the shelf merges both rows.
func (uc *implUseCase) UpdateItem(ctx context.Context, sc model.Scope, input inventory.UpdateItemInput) (inventory.UpdateItemOutput, error) {
	if input.Quantity != nil && *input.Quantity < 0 {
		return inventory.UpdateItemOutput{}, inventory.ErrInvalidQuantity
	}

	var out inventory.UpdateItemOutput
	err := uc.repo.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := uc.ownedItem(ctx, sc, input.ID)
		if err != nil {
			return err
		}

		quantity := existing.Quantity
		if input.Quantity != nil {
			quantity = *input.Quantity
		}
		if quantity == 0 {
			if err := uc.repo.DeleteItem(ctx, existing.ID); err != nil {
				return err
			}
			out = inventory.UpdateItemOutput{Item: existing, Deleted: true}
			out.Item.Quantity = 0
			return nil
		}

		name := existing.Name
		if input.Name != nil {
			if name, err = inventory.NormalizeName(*input.Name); err != nil {
				return err
			}
		}

		if name != existing.Name {
			other, err := uc.repo.FindItemOnShelf(ctx, existing.ShelfID, name)
			if err != nil {
				return err
			}
			if other.ID != "" {
				merged, err := uc.absorb(ctx, other, existing, quantity)
				if err != nil {
					return err
				}
				out = inventory.UpdateItemOutput{Item: merged}
				return nil
			}
		}

		item, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
			ID:       existing.ID,
			ShelfID:  existing.ShelfID,
			Name:     name,
			Quantity: quantity,
		})
		if err != nil {
			return err
		}
		out = inventory.UpdateItemOutput{Item: item}
		return nil
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.UpdateItem: %v", err)
		return inventory.UpdateItemOutput{}, err
	}
	return out, nil
}

// DeleteItem removes an item regardless of its quantity.
func (uc *implUseCase) DeleteItem(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uc.ownedItem(ctx, sc, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteItem DeleteItem: %v", err)
		return err
	}
	return nil
}

// MoveItem relocates an item to another shelf of the same user, merging with a
// same-named item already there.
func (uc *implUseCase) MoveItem(ctx context.Context, sc model.Scope, input inventory.MoveItemInput) (model.Item, error) {
	var out model.Item
	err := uc.repo.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := uc.ownedItem(ctx, sc, input.ID)
		if err != nil {
			return err
		}
		if _, err := uc.ownedShelf(ctx, sc, input.TargetShelfID); err != nil {
			return err
		}
		if existing.ShelfID == input.TargetShelfID {
			out = existing
			return nil
		}

		other, err := uc.repo.FindItemOnShelf(ctx, input.TargetShelfID, existing.Name)
		if err != nil {
			return err
		}
		if other.ID != "" {
			out, err = uc.absorb(ctx, other, existing, existing.Quantity)
			return err
		}

		out, err = uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
			ID:       existing.ID,
			ShelfID:  input.TargetShelfID,
			Name:     existing.Name,
			Quantity: existing.Quantity,
		})
		return err
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.MoveItem: %v", err)
		return model.Item{}, err
	}
	return out, nil
}

// absorb adds quantity to target and deletes source.
func (uc *implUseCase) absorb(ctx context.Context, target, source model.Item, quantity int) (model.Item, error) {
	item, err := uc.repo.IncrementItemQuantity(ctx, target.ID, quantity)
	if err != nil {
		return model.Item{}, err
	}
	if err := uc.repo.DeleteItem(ctx, source.ID); err != nil {
		return model.Item{}, err
	}
	return item, nil
}
