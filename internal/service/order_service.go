package service

import (
	"gorm.io/gorm"

	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	"catalog-service/internal/validation"
)

// OrderService implements the domain operations for orders.
type OrderService struct {
	db   *gorm.DB
	repo *repository.OrderRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository) *OrderService {
	return &OrderService{db: db, repo: repo}
}

func (s *OrderService) Add(order *model.Order) (*model.Order, error) {
	if err := validation.Struct(order); err != nil {
		return nil, err
	}
	order.ID = 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.Save(tx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetAll() ([]model.Order, error) {
	return s.repo.FindAll(s.db)
}

func (s *OrderService) GetByID(id uint) (*model.Order, error) {
	return s.repo.FindByID(s.db, id)
}

func (s *OrderService) GetByCustomerNumber(customerNumber string) ([]model.Order, error) {
	return s.repo.FindByCustomerNumber(s.db, customerNumber)
}

func (s *OrderService) GetByStatus(status string) ([]model.Order, error) {
	return s.repo.FindByStatus(s.db, status)
}

// Update replaces every mutable field of the stored order; omitted
// shippedDate and comments are cleared.
func (s *OrderService) Update(id uint, incoming *model.Order) (*model.Order, error) {
	if err := validation.Struct(incoming); err != nil {
		return nil, err
	}
	var updated *model.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByID(tx, id)
		if err != nil {
			return err
		}
		existing.OrderDate = incoming.OrderDate
		existing.RequiredDate = incoming.RequiredDate
		existing.ShippedDate = incoming.ShippedDate
		existing.Status = incoming.Status
		existing.Comments = incoming.Comments
		existing.CustomerNumber = incoming.CustomerNumber
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

func (s *OrderService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.DeleteByID(tx, id)
	})
}
