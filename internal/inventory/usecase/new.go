package usecase

import (
	"fridge-inventory/internal/inventory"
	"fridge-inventory/internal/inventory/repository"
	"fridge-inventory/pkg/log"
)

// implUseCase is the private implementation of inventory.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ inventory.UseCase = (*implUseCase)(nil)

// New creates a new inventory UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
