package service

import (
	"gorm.io/gorm"

	"catalog-service/internal/apperr"
	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	"catalog-service/internal/validation"
)

const productLineNameConflict = "Product line with this name already exists"

// ProductLineService implements the domain operations for product lines.
type ProductLineService struct {
	db   *gorm.DB
	repo *repository.ProductLineRepository
}

func NewProductLineService(db *gorm.DB, repo *repository.ProductLineRepository) *ProductLineService {
	return &ProductLineService{db: db, repo: repo}
}

func (s *ProductLineService) Add(line *model.ProductLine) (*model.ProductLine, error) {
	if err := validation.Struct(line); err != nil {
		return nil, err
	}
	line.ID = 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.repo.FindByProductLine(tx, line.ProductLine); err == nil {
			return apperr.NewConflict("%s", productLineNameConflict)
		} else if !apperr.IsNotFound(err) {
			return err
		}
		return translateDuplicate(s.repo.Save(tx, line), productLineNameConflict)
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

func (s *ProductLineService) GetAll() ([]model.ProductLine, error) {
	return s.repo.FindAll(s.db)
}

func (s *ProductLineService) GetByID(id uint) (*model.ProductLine, error) {
	return s.repo.FindByID(s.db, id)
}

func (s *ProductLineService) GetByName(name string) (*model.ProductLine, error) {
	return s.repo.FindByProductLine(s.db, name)
}

// Update replaces every mutable field of the stored line. A changed
// name must not collide with another product line.
func (s *ProductLineService) Update(id uint, incoming *model.ProductLine) (*model.ProductLine, error) {
	if err := validation.Struct(incoming); err != nil {
		return nil, err
	}
	var updated *model.ProductLine
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if incoming.ProductLine != existing.ProductLine {
			if other, err := s.repo.FindByProductLine(tx, incoming.ProductLine); err == nil && other.ID != id {
				return apperr.NewConflict("%s", productLineNameConflict)
			} else if err != nil && !apperr.IsNotFound(err) {
				return err
			}
		}
		existing.ProductLine = incoming.ProductLine
		existing.TextDescription = incoming.TextDescription
		existing.HTMLDescription = incoming.HTMLDescription
		existing.Image = incoming.Image
		if err := translateDuplicate(s.repo.Save(tx, existing), productLineNameConflict); err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ProductLineService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.DeleteByID(tx, id)
	})
}
