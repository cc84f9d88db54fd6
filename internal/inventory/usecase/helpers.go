package usecase

import (
	"context"
	"errors"

	"fridge-inventory/internal/inventory"
	repo "fridge-inventory/internal/inventory/repository"
	"fridge-inventory/internal/model"
)

// maxMergeAttempts bounds the retry when a concurrent insert wins the (shelf, name) race.
const maxMergeAttempts = 2

// coalesce returns the first non-empty string, used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

func (uc *implUseCase) ownedContainer(ctx context.Context, sc model.Scope, id string) (model.Container, error) {
	c, err := uc.repo.GetContainer(ctx, repo.GetContainerOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ownedContainer GetContainer: %v", err)
		return model.Container{}, err
	}
	if c.ID == "" {
		return model.Container{}, inventory.ErrContainerNotFound
	}
	return c, nil
}

func (uc *implUseCase) ownedShelf(ctx context.Context, sc model.Scope, id string) (model.ShelfLocation, error) {
	loc, err := uc.repo.GetShelf(ctx, repo.GetShelfOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ownedShelf GetShelf: %v", err)
		return model.ShelfLocation{}, err
	}
	if loc.Shelf.ID == "" {
		return model.ShelfLocation{}, inventory.ErrShelfNotFound
	}
	return loc, nil
}

func (uc *implUseCase) ownedItem(ctx context.Context, sc model.Scope, id string) (model.Item, error) {
	item, err := uc.repo.GetItem(ctx, repo.GetItemOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ownedItem GetItem: %v", err)
		return model.Item{}, err
	}
	if item.ID == "" {
		return model.Item{}, inventory.ErrItemNotFound
	}
	return item, nil
}

// mergeOrCreate adds quantity to the row named name on shelfID, creating it if absent.
// Must run inside a transaction.
func (uc *implUseCase) mergeOrCreate(ctx context.Context, shelfID, name string, quantity int) (model.Item, bool, error) {
	existing, err := uc.repo.FindItemOnShelf(ctx, shelfID, name)
	if err != nil {
		return model.Item{}, false, err
	}
	if existing.ID != "" {
		item, err := uc.repo.IncrementItemQuantity(ctx, existing.ID, quantity)
		return item, true, err
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{ShelfID: shelfID, Name: name, Quantity: quantity})
	return item, false, err
}

// runMerge runs fn in its own transaction, retrying once when a concurrent
// insert of the same name made the first attempt fail.
func (uc *implUseCase) runMerge(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < maxMergeAttempts; attempt++ {
		err = uc.repo.RunInTx(ctx, fn)
		if !errors.Is(err, repo.ErrDuplicate) {
			return err
		}
	}
	return err
}
