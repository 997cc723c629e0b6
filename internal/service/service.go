// Package service implements the domain operations for each aggregate:
// validation against the field constraints, one transaction per write,
// full-field replacement on update and idempotent delete. Uniqueness is
// enforced by the store; collisions surface as apperr.ConflictError.
package service

import (
	"errors"

	"gorm.io/gorm"

	"catalog-service/internal/apperr"
)

// translateDuplicate maps a store-level unique-index violation to a
// conflict. Covers the race where two transactions insert the same
// natural key and the pre-check missed it.
func translateDuplicate(err error, message string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.NewConflict("%s", message)
	}
	return err
}
