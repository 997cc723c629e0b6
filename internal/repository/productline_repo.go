package repository

import (
	"gorm.io/gorm"

	"catalog-service/internal/model"
)

// ProductLineRepository persists ProductLine aggregates.
type ProductLineRepository struct{}

func NewProductLineRepository() *ProductLineRepository {
	return &ProductLineRepository{}
}

func (r *ProductLineRepository) Save(db *gorm.DB, line *model.ProductLine) error {
	return db.Save(line).Error
}

func (r *ProductLineRepository) FindByID(db *gorm.DB, id uint) (*model.ProductLine, error) {
	var line model.ProductLine
	if err := db.First(&line, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &line, nil
}

func (r *ProductLineRepository) FindAll(db *gorm.DB) ([]model.ProductLine, error) {
	lines := make([]model.ProductLine, 0)
	if err := db.Order("id").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *ProductLineRepository) DeleteByID(db *gorm.DB, id uint) error {
	return db.Delete(&model.ProductLine{}, id).Error
}

// FindByProductLine returns the single line holding the unique name.
func (r *ProductLineRepository) FindByProductLine(db *gorm.DB, name string) (*model.ProductLine, error) {
	var line model.ProductLine
	if err := db.Where(`"productLine" = ?`, name).First(&line).Error; err != nil {
		return nil, notFound(err)
	}
	return &line, nil
}
