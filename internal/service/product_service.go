package service

import (
	"gorm.io/gorm"

	"catalog-service/internal/apperr"
	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	"catalog-service/internal/validation"
)

const productCodeConflict = "Product with this code already exists"

// ProductService implements the domain operations for products.
type ProductService struct {
	db   *gorm.DB
	repo *repository.ProductRepository
}

func NewProductService(db *gorm.DB, repo *repository.ProductRepository) *ProductService {
	return &ProductService{db: db, repo: repo}
}

func (s *ProductService) Add(product *model.Product) (*model.Product, error) {
	if err := validation.Struct(product); err != nil {
		return nil, err
	}
	product.ID = 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.repo.FindByProductCode(tx, product.ProductCode); err == nil {
			return apperr.NewConflict("%s", productCodeConflict)
		} else if !apperr.IsNotFound(err) {
			return err
		}
		return translateDuplicate(s.repo.Save(tx, product), productCodeConflict)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetAll() ([]model.Product, error) {
	return s.repo.FindAll(s.db)
}

func (s *ProductService) GetByID(id uint) (*model.Product, error) {
	return s.repo.FindByID(s.db, id)
}

func (s *ProductService) GetByCode(productCode string) (*model.Product, error) {
	return s.repo.FindByProductCode(s.db, productCode)
}

func (s *ProductService) GetByLine(productLine string) ([]model.Product, error) {
	return s.repo.FindByProductLine(s.db, productLine)
}

// Update replaces every mutable field of the stored product. A changed
// code must not collide with another product.
func (s *ProductService) Update(id uint, incoming *model.Product) (*model.Product, error) {
	if err := validation.Struct(incoming); err != nil {
		return nil, err
	}
	var updated *model.Product
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if incoming.ProductCode != existing.ProductCode {
			if other, err := s.repo.FindByProductCode(tx, incoming.ProductCode); err == nil && other.ID != id {
				return apperr.NewConflict("%s", productCodeConflict)
			} else if err != nil && !apperr.IsNotFound(err) {
				return err
			}
		}
		existing.ProductCode = incoming.ProductCode
		existing.ProductName = incoming.ProductName
		existing.ProductLine = incoming.ProductLine
		existing.ProductScale = incoming.ProductScale
		existing.ProductVendor = incoming.ProductVendor
		existing.ProductDescription = incoming.ProductDescription
		existing.QuantityInStock = incoming.QuantityInStock
		existing.BuyPrice = incoming.BuyPrice
		existing.MSRP = incoming.MSRP
		if err := translateDuplicate(s.repo.Save(tx, existing), productCodeConflict); err != nil {
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

func (s *ProductService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.DeleteByID(tx, id)
	})
}
