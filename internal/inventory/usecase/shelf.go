package usecase

import (
	"context"
	"errors"

	"fridge-inventory/internal/inventory"
	repo "fridge-inventory/internal/inventory/repository"
	"fridge-inventory/internal/model"
)

// CreateShelf adds a shelf to a container. Positions are unique per container.
func (uc *implUseCase) CreateShelf(ctx context.Context, sc model.Scope, input inventory.CreateShelfInput) (model.Shelf, error) {
	name, err := inventory.NormalizeName(input.Name)
	if err != nil {
		return model.Shelf{}, err
	}
	if input.Position <= 0 {
		return model.Shelf{}, inventory.ErrInvalidPosition
	}
	if _, err := uc.ownedContainer(ctx, sc, input.ContainerID); err != nil {
		return model.Shelf{}, err
	}

	shelf, err := uc.repo.CreateShelf(ctx, repo.CreateShelfOptions{
		ContainerID: input.ContainerID,
		Name:        name,
		Position:    input.Position,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return model.Shelf{}, inventory.ErrShelfPositionTaken
		}
		uc.l.Errorf(ctx, "uc.CreateShelf CreateShelf: %v", err)
		return model.Shelf{}, err
	}
	return shelf, nil
}

// UpdateShelf renames or repositions a shelf.
func (uc *implUseCase) UpdateShelf(ctx context.Context, sc model.Scope, input inventory.UpdateShelfInput) (model.Shelf, error) {
	if input.Position < 0 {
		return model.Shelf{}, inventory.ErrInvalidPosition
	}

	loc, err := uc.ownedShelf(ctx, sc, input.ID)
	if err != nil {
		return model.Shelf{}, err
	}

	name := loc.Shelf.Name
	if input.Name != "" {
		if name, err = inventory.NormalizeName(input.Name); err != nil {
			return model.Shelf{}, err
		}
	}
	position := loc.Shelf.Position
	if input.Position > 0 {
		position = input.Position
	}

	shelf, err := uc.repo.UpdateShelf(ctx, repo.UpdateShelfOptions{ID: loc.Shelf.ID, Name: name, Position: position})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return model.Shelf{}, inventory.ErrShelfPositionTaken
		}
		uc.l.Errorf(ctx, "uc.UpdateShelf UpdateShelf: %v", err)
		return model.Shelf{}, err
	}
	if shelf.ID == "" {
		return model.Shelf{}, inventory.ErrShelfNotFound
	}
	return shelf, nil
}

// DeleteShelf removes an empty shelf. A default-shelf preference pointing at it is cleared by the store.
func (uc *implUseCase) DeleteShelf(ctx context.Context, sc model.Scope, id string) error {
	return uc.repo.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := uc.ownedShelf(ctx, sc, id); err != nil {
			return err
		}

		items, err := uc.repo.ListItems(ctx, id)
		if err != nil {
			uc.l.Errorf(ctx, "uc.DeleteShelf ListItems: %v", err)
			return err
		}
		if len(items) > 0 {
			return inventory.ErrShelfNotEmpty
		}

		if err := uc.repo.DeleteShelf(ctx, id); err != nil {
			if errors.Is(err, repo.ErrReferenced) {
				return inventory.ErrShelfNotEmpty
			}
			uc.l.Errorf(ctx, "uc.DeleteShelf DeleteShelf: %v", err)
			return err
		}
		return nil
	})
}
