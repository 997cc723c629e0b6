// Package repository implements the persistence contract for each
// aggregate. Repositories are stateless; every method takes the *gorm.DB
// handle to run against, so services can pass either the pooled
// connection or an open transaction.
package repository

import (
	"errors"

	"gorm.io/gorm"

	"catalog-service/internal/apperr"
)

// notFound maps GORM's record-not-found to the application sentinel.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	return err
}
