package repository

import (
	"gorm.io/gorm"

	"catalog-service/internal/model"
)

// ProductRepository persists Product aggregates.
type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) Save(db *gorm.DB, product *model.Product) error {
	return db.Save(product).Error
}

func (r *ProductRepository) FindByID(db *gorm.DB, id uint) (*model.Product, error) {
	var product model.Product
	if err := db.First(&product, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &product, nil
}

func (r *ProductRepository) FindAll(db *gorm.DB) ([]model.Product, error) {
	products := make([]model.Product, 0)
	if err := db.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) DeleteByID(db *gorm.DB, id uint) error {
	return db.Delete(&model.Product{}, id).Error
}

// FindByProductCode returns the single product holding the unique code.
func (r *ProductRepository) FindByProductCode(db *gorm.DB, productCode string) (*model.Product, error) {
	var product model.Product
	if err := db.Where(`"productCode" = ?`, productCode).First(&product).Error; err != nil {
		return nil, notFound(err)
	}
	return &product, nil
}

func (r *ProductRepository) FindByProductLine(db *gorm.DB, productLine string) ([]model.Product, error) {
	products := make([]model.Product, 0)
	if err := db.Where(`"productLine" = ?`, productLine).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
