package service

import (
	"gorm.io/gorm"

	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	"catalog-service/internal/validation"
)

// OrderDetailService implements the domain operations for order lines.
type OrderDetailService struct {
	db   *gorm.DB
	repo *repository.OrderDetailRepository
}

func NewOrderDetailService(db *gorm.DB, repo *repository.OrderDetailRepository) *OrderDetailService {
	return &OrderDetailService{db: db, repo: repo}
}

func (s *OrderDetailService) Add(detail *model.OrderDetail) (*model.OrderDetail, error) {
	if err := validation.Struct(detail); err != nil {
		return nil, err
	}
	detail.ID = 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.Save(tx, detail)
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *OrderDetailService) GetAll() ([]model.OrderDetail, error) {
	return s.repo.FindAll(s.db)
}

func (s *OrderDetailService) GetByID(id uint) (*model.OrderDetail, error) {
	return s.repo.FindByID(s.db, id)
}

func (s *OrderDetailService) GetByOrderNumber(orderNumber string) ([]model.OrderDetail, error) {
	return s.repo.FindByOrderNumber(s.db, orderNumber)
}

func (s *OrderDetailService) GetByProductCode(productCode string) ([]model.OrderDetail, error) {
	return s.repo.FindByProductCode(s.db, productCode)
}

func (s *OrderDetailService) Update(id uint, incoming *model.OrderDetail) (*model.OrderDetail, error) {
	if err := validation.Struct(incoming); err != nil {
		return nil, err
	}
	var updated *model.OrderDetail
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByID(tx, id)
		if err != nil {
			return err
		}
		existing.OrderNumber = incoming.OrderNumber
		existing.ProductCode = incoming.ProductCode
		existing.QuantityOrdered = incoming.QuantityOrdered
		existing.PriceEach = incoming.PriceEach
		existing.OrderLineNumber = incoming.OrderLineNumber
		if err := s.repo.Save(tx, existing); err != nil {
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

func (s *OrderDetailService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.DeleteByID(tx, id)
	})
}
