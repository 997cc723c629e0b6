package repository

import (
	"gorm.io/gorm"

	"catalog-service/internal/model"
)

// OrderRepository persists Order aggregates.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Save(db *gorm.DB, order *model.Order) error {
	return db.Save(order).Error
}

func (r *OrderRepository) FindByID(db *gorm.DB, id uint) (*model.Order, error) {
	var order model.Order
	if err := db.First(&order, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

func (r *OrderRepository) FindAll(db *gorm.DB) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	if err := db.Order("id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) DeleteByID(db *gorm.DB, id uint) error {
	return db.Delete(&model.Order{}, id).Error
}

func (r *OrderRepository) FindByCustomerNumber(db *gorm.DB, customerNumber string) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	if err := db.Where(`"customerNumber" = ?`, customerNumber).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) FindByStatus(db *gorm.DB, status string) ([]model.Order, error) {
	orders := make([]model.Order, 0)
	if err := db.Where(`"status" = ?`, status).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
