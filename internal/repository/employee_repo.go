package repository

import (
	"gorm.io/gorm"

	"catalog-service/internal/model"
)

// EmployeeRepository persists Employee aggregates.
type EmployeeRepository struct{}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{}
}

func (r *EmployeeRepository) Save(db *gorm.DB, employee *model.Employee) error {
	return db.Save(employee).Error
}

func (r *EmployeeRepository) FindByID(db *gorm.DB, id uint) (*model.Employee, error) {
	var employee model.Employee
	if err := db.First(&employee, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindAll(db *gorm.DB) ([]model.Employee, error) {
	employees := make([]model.Employee, 0)
	if err := db.Order("id").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *EmployeeRepository) DeleteByID(db *gorm.DB, id uint) error {
	return db.Delete(&model.Employee{}, id).Error
}

// FindByEmail returns the single employee holding the unique address.
func (r *EmployeeRepository) FindByEmail(db *gorm.DB, email string) (*model.Employee, error) {
	var employee model.Employee
	if err := db.Where(`"email" = ?`, email).First(&employee).Error; err != nil {
		return nil, notFound(err)
	}
	return &employee, nil
}

func (r *EmployeeRepository) FindByOfficeCode(db *gorm.DB, officeCode string) ([]model.Employee, error) {
	employees := make([]model.Employee, 0)
	if err := db.Where(`"officeCode" = ?`, officeCode).Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}
