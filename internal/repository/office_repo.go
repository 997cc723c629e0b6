package repository

import (
	"gorm.io/gorm"

	"catalog-service/internal/model"
)

// OfficeRepository persists Office aggregates.
type OfficeRepository struct{}

func NewOfficeRepository() *OfficeRepository {
	return &OfficeRepository{}
}

// Save inserts the office when its ID is zero, otherwise replaces the
// full row.
func (r *OfficeRepository) Save(db *gorm.DB, office *model.Office) error {
	return db.Save(office).Error
}

func (r *OfficeRepository) FindByID(db *gorm.DB, id uint) (*model.Office, error) {
	var office model.Office
	if err := db.First(&office, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &office, nil
}

func (r *OfficeRepository) FindAll(db *gorm.DB) ([]model.Office, error) {
	offices := make([]model.Office, 0)
	if err := db.Order("id").Find(&offices).Error; err != nil {
		return nil, err
	}
	return offices, nil
}

// DeleteByID removes the row; deleting an absent id is a no-op.
func (r *OfficeRepository) DeleteByID(db *gorm.DB, id uint) error {
	return db.Delete(&model.Office{}, id).Error
}

func (r *OfficeRepository) FindByCity(db *gorm.DB, city string) ([]model.Office, error) {
	offices := make([]model.Office, 0)
	if err := db.Where(`"city" = ?`, city).Find(&offices).Error; err != nil {
		return nil, err
	}
	return offices, nil
}

func (r *OfficeRepository) FindByCountry(db *gorm.DB, country string) ([]model.Office, error) {
	offices := make([]model.Office, 0)
	if err := db.Where(`"country" = ?`, country).Find(&offices).Error; err != nil {
		return nil, err
	}
	return offices, nil
}
