package usecase

import (
	"context"
	"errors"

	"fridge-inventory/internal/inventory"
	repo "fridge-inventory/internal/inventory/repository"
	"fridge-inventory/internal/model"
)

// CreateContainer creates a fridge or freezer for the user.
func (uc *implUseCase) CreateContainer(ctx context.Context, sc model.Scope, input inventory.CreateContainerInput) (model.Container, error) {
	name, err := inventory.NormalizeName(input.Name)
	if err != nil {
		return model.Container{}, err
	}
	if !input.Kind.IsValid() {
		return model.Container{}, inventory.ErrInvalidKind
	}

	c, err := uc.repo.CreateContainer(ctx, repo.CreateContainerOptions{UserID: sc.UserID, Name: name, Kind: input.Kind})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateContainer CreateContainer: %v", err)
		return model.Container{}, err
	}
	return c, nil
}

// ListContainers returns the user's whole inventory tree.
func (uc *implUseCase) ListContainers(ctx context.Context, sc model.Scope) ([]model.ContainerTree, error) {
	trees, err := uc.repo.ListContainerTrees(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListContainers ListContainerTrees: %v", err)
		return nil, err
	}
	return trees, nil
}

// DetailContainer returns one container with its shelves and items.
func (uc *implUseCase) DetailContainer(ctx context.Context, sc model.Scope, id string) (model.ContainerTree, error) {
	if _, err := uc.ownedContainer(ctx, sc, id); err != nil {
		return model.ContainerTree{}, err
	}

	trees, err := uc.ListContainers(ctx, sc)
	if err != nil {
		return model.ContainerTree{}, err
	}
	for _, tree := range trees {
		if tree.ID == id {
			return tree, nil
		}
	}
	return model.ContainerTree{}, inventory.ErrContainerNotFound
}

// UpdateContainer renames a container or changes its kind.
func (uc *implUseCase) UpdateContainer(ctx context.Context, sc model.Scope, input inventory.UpdateContainerInput) (model.Container, error) {
	existing, err := uc.ownedContainer(ctx, sc, input.ID)
	if err != nil {
		return model.Container{}, err
	}

	name := existing.Name
	if input.Name != "" {
		if name, err = inventory.NormalizeName(input.Name); err != nil {
			return model.Container{}, err
		}
	}
	kind := existing.Kind
	if input.Kind != "" {
		if !input.Kind.IsValid() {
			return model.Container{}, inventory.ErrInvalidKind
		}
		kind = input.Kind
	}

	c, err := uc.repo.UpdateContainer(ctx, repo.UpdateContainerOptions{ID: existing.ID, Name: name, Kind: kind})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateContainer UpdateContainer: %v", err)
		return model.Container{}, err
	}
	if c.ID == "" {
		return model.Container{}, inventory.ErrContainerNotFound
	}
	return c, nil
}

// DeleteContainer removes an empty container. Containers with shelves are rejected.
func (uc *implUseCase) DeleteContainer(ctx context.Context, sc model.Scope, id string) error {
	return uc.repo.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := uc.ownedContainer(ctx, sc, id); err != nil {
			return err
		}

		shelves, err := uc.repo.ListShelves(ctx, id)
		if err != nil {
			uc.l.Errorf(ctx, "uc.DeleteContainer ListShelves: %v", err)
			return err
		}
		if len(shelves) > 0 {
			return inventory.ErrContainerNotEmpty
		}

		if err := uc.repo.DeleteContainer(ctx, id); err != nil {
			if errors.Is(err, repo.ErrReferenced) {
				return inventory.ErrContainerNotEmpty
			}
			uc.l.Errorf(ctx, "uc.DeleteContainer DeleteContainer: %v", err)
			return err
		}
		return nil
	})
}
