package repository

import (
	"gorm.io/gorm"

	"catalog-service/internal/model"
)

// CustomerRepository persists Customer aggregates.
type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) Save(db *gorm.DB, customer *model.Customer) error {
	return db.Save(customer).Error
}

func (r *CustomerRepository) FindByID(db *gorm.DB, id uint) (*model.Customer, error) {
	var customer model.Customer
	if err := db.First(&customer, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &customer, nil
}

func (r *CustomerRepository) FindAll(db *gorm.DB) ([]model.Customer, error) {
	customers := make([]model.Customer, 0)
	if err := db.Order("id").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerRepository) DeleteByID(db *gorm.DB, id uint) error {
	return db.Delete(&model.Customer{}, id).Error
}

func (r *CustomerRepository) FindByCity(db *gorm.DB, city string) ([]model.Customer, error) {
	customers := make([]model.Customer, 0)
	if err := db.Where(`"city" = ?`, city).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerRepository) FindByCountry(db *gorm.DB, country string) ([]model.Customer, error) {
	customers := make([]model.Customer, 0)
	if err := db.Where(`"country" = ?`, country).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}
