package service

import (
	"gorm.io/gorm"

	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	"catalog-service/internal/validation"
)

// CustomerService implements the domain operations for customers.
type CustomerService struct {
	db   *gorm.DB
	repo *repository.CustomerRepository
}

func NewCustomerService(db *gorm.DB, repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{db: db, repo: repo}
}

func (s *CustomerService) Add(customer *model.Customer) (*model.Customer, error) {
	if err := validation.Struct(customer); err != nil {
		return nil, err
	}
	customer.ID = 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.Save(tx, customer)
	})
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) GetAll() ([]model.Customer, error) {
	return s.repo.FindAll(s.db)
}

func (s *CustomerService) GetByID(id uint) (*model.Customer, error) {
	return s.repo.FindByID(s.db, id)
}

func (s *CustomerService) GetByCity(city string) ([]model.Customer, error) {
	return s.repo.FindByCity(s.db, city)
}

func (s *CustomerService) GetByCountry(country string) ([]model.Customer, error) {
	return s.repo.FindByCountry(s.db, country)
}

// Update replaces every mutable field of the stored customer; omitted
// optional fields (including creditLimit) are cleared.
func (s *CustomerService) Update(id uint, incoming *model.Customer) (*model.Customer, error) {
	if err := validation.Struct(incoming); err != nil {
		return nil, err
	}
	var updated *model.Customer
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByID(tx, id)
		if err != nil {
			return err
		}
		existing.CustomerName = incoming.CustomerName
		existing.ContactLastName = incoming.ContactLastName
		existing.ContactFirstName = incoming.ContactFirstName
		existing.Phone = incoming.Phone
		existing.AddressLine1 = incoming.AddressLine1
		existing.AddressLine2 = incoming.AddressLine2
		existing.City = incoming.City
		existing.State = incoming.State
		existing.PostalCode = incoming.PostalCode
		existing.Country = incoming.Country
		existing.SalesRepEmployeeNumber = incoming.SalesRepEmployeeNumber
		existing.CreditLimit = incoming.CreditLimit
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

func (s *CustomerService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.DeleteByID(tx, id)
	})
}
