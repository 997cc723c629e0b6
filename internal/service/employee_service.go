package service

import (
	"gorm.io/gorm"

	"catalog-service/internal/apperr"
	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	"catalog-service/internal/validation"
)

const employeeEmailConflict = "Employee with this email already exists"

// EmployeeService implements the domain operations for employees.
type EmployeeService struct {
	db   *gorm.DB
	repo *repository.EmployeeRepository
}

func NewEmployeeService(db *gorm.DB, repo *repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{db: db, repo: repo}
}

func (s *EmployeeService) Add(employee *model.Employee) (*model.Employee, error) {
	if err := validation.Struct(employee); err != nil {
		return nil, err
	}
	employee.ID = 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.repo.FindByEmail(tx, employee.Email); err == nil {
			return apperr.NewConflict("%s", employeeEmailConflict)
		} else if !apperr.IsNotFound(err) {
			return err
		}
		return translateDuplicate(s.repo.Save(tx, employee), employeeEmailConflict)
	})
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) GetAll() ([]model.Employee, error) {
	return s.repo.FindAll(s.db)
}

func (s *EmployeeService) GetByID(id uint) (*model.Employee, error) {
	return s.repo.FindByID(s.db, id)
}

func (s *EmployeeService) GetByEmail(email string) (*model.Employee, error) {
	return s.repo.FindByEmail(s.db, email)
}

func (s *EmployeeService) GetByOfficeCode(officeCode string) ([]model.Employee, error) {
	return s.repo.FindByOfficeCode(s.db, officeCode)
}

// Update replaces every mutable field of the stored employee. A changed
// email must not collide with another employee.
func (s *EmployeeService) Update(id uint, incoming *model.Employee) (*model.Employee, error) {
	if err := validation.Struct(incoming); err != nil {
		return nil, err
	}
	var updated *model.Employee
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByID(tx, id)
		if err != nil {
			return err
		}
		if incoming.Email != existing.Email {
			if other, err := s.repo.FindByEmail(tx, incoming.Email); err == nil && other.ID != id {
				return apperr.NewConflict("%s", employeeEmailConflict)
			} else if err != nil && !apperr.IsNotFound(err) {
				return err
			}
		}
		existing.LastName = incoming.LastName
		existing.FirstName = incoming.FirstName
		existing.Extension = incoming.Extension
		existing.Email = incoming.Email
		existing.OfficeCode = incoming.OfficeCode
		existing.ReportsTo = incoming.ReportsTo
		existing.JobTitle = incoming.JobTitle
		if err := translateDuplicate(s.repo.Save(tx, existing), employeeEmailConflict); err != nil {
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

func (s *EmployeeService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.DeleteByID(tx, id)
	})
}
