package service

import (
	"gorm.io/gorm"

	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	"catalog-service/internal/validation"
)

// OfficeService implements the domain operations for offices.
type OfficeService struct {
	db   *gorm.DB
	repo *repository.OfficeRepository
}

func NewOfficeService(db *gorm.DB, repo *repository.OfficeRepository) *OfficeService {
	return &OfficeService{db: db, repo: repo}
}

func (s *OfficeService) Add(office *model.Office) (*model.Office, error) {
	if err := validation.Struct(office); err != nil {
		return nil, err
	}
	office.ID = 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.Save(tx, office)
	})
	if err != nil {
		return nil, err
	}
	return office, nil
}

func (s *OfficeService) GetAll() ([]model.Office, error) {
	return s.repo.FindAll(s.db)
}

func (s *OfficeService) GetByID(id uint) (*model.Office, error) {
	return s.repo.FindByID(s.db, id)
}

func (s *OfficeService) GetByCity(city string) ([]model.Office, error) {
	return s.repo.FindByCity(s.db, city)
}

func (s *OfficeService) GetByCountry(country string) ([]model.Office, error) {
	return s.repo.FindByCountry(s.db, country)
}

// Update replaces every mutable field of the stored office with the
// incoming values; omitted optional fields are cleared.
func (s *OfficeService) Update(id uint, incoming *model.Office) (*model.Office, error) {
	if err := validation.Struct(incoming); err != nil {
		return nil, err
	}
	var updated *model.Office
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByID(tx, id)
		if err != nil {
			return err
		}
		existing.City = incoming.City
		existing.Phone = incoming.Phone
		existing.AddressLine1 = incoming.AddressLine1
		existing.AddressLine2 = incoming.AddressLine2
		existing.State = incoming.State
		existing.Country = incoming.Country
		existing.PostalCode = incoming.PostalCode
		existing.Territory = incoming.Territory
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

func (s *OfficeService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.DeleteByID(tx, id)
	})
}
