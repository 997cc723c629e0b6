package repository

import (
	"gorm.io/gorm"

	"catalog-service/internal/model"
)

// PaymentRepository persists Payment aggregates.
type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Save(db *gorm.DB, payment *model.Payment) error {
	return db.Save(payment).Error
}

func (r *PaymentRepository) FindByID(db *gorm.DB, id uint) (*model.Payment, error) {
	var payment model.Payment
	if err := db.First(&payment, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &payment, nil
}

func (r *PaymentRepository) FindAll(db *gorm.DB) ([]model.Payment, error) {
	payments := make([]model.Payment, 0)
	if err := db.Order("id").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *PaymentRepository) DeleteByID(db *gorm.DB, id uint) error {
	return db.Delete(&model.Payment{}, id).Error
}

func (r *PaymentRepository) FindByCustomerNumber(db *gorm.DB, customerNumber string) ([]model.Payment, error) {
	payments := make([]model.Payment, 0)
	if err := db.Where(`"customerNumber" = ?`, customerNumber).Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
