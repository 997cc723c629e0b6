package repository

import (
	"gorm.io/gorm"

	"catalog-service/internal/model"
)

// OrderDetailRepository persists OrderDetail aggregates.
type OrderDetailRepository struct{}

func NewOrderDetailRepository() *OrderDetailRepository {
	return &OrderDetailRepository{}
}

func (r *OrderDetailRepository) Save(db *gorm.DB, detail *model.OrderDetail) error {
	return db.Save(detail).Error
}

func (r *OrderDetailRepository) FindByID(db *gorm.DB, id uint) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	if err := db.First(&detail, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &detail, nil
}

func (r *OrderDetailRepository) FindAll(db *gorm.DB) ([]model.OrderDetail, error) {
	details := make([]model.OrderDetail, 0)
	if err := db.Order("id").Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *OrderDetailRepository) DeleteByID(db *gorm.DB, id uint) error {
	return db.Delete(&model.OrderDetail{}, id).Error
}

func (r *OrderDetailRepository) FindByOrderNumber(db *gorm.DB, orderNumber string) ([]model.OrderDetail, error) {
	details := make([]model.OrderDetail, 0)
	if err := db.Where(`"orderNumber" = ?`, orderNumber).Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}

func (r *OrderDetailRepository) FindByProductCode(db *gorm.DB, productCode string) ([]model.OrderDetail, error) {
	details := make([]model.OrderDetail, 0)
	if err := db.Where(`"productCode" = ?`, productCode).Find(&details).Error; err != nil {
		return nil, err
	}
	return details, nil
}
