package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")

	// ErrDuplicate is returned when a unique constraint rejects the write.
	ErrDuplicate = errors.New("record already exists")
	// ErrReferenced is returned when a foreign key blocks the write or delete.
	ErrReferenced = errors.New("record is referenced")
	// ErrCheckViolation is returned when a column check constraint fails.
	ErrCheckViolation = errors.New("record violates a check constraint")
)
