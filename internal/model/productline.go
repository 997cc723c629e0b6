package model

// ProductLine represents a family of related products
type ProductLine struct {
	ID              uint    `json:"id" gorm:"primarykey"`
	ProductLine     string  `json:"productLine" gorm:"column:productLine;type:varchar(50);not null;uniqueIndex" validate:"notblank,max=50"`
	TextDescription *string `json:"textDescription" gorm:"column:textDescription;type:varchar(4000)" validate:"omitempty,max=4000"`
	HTMLDescription *string `json:"htmlDescription" gorm:"column:htmlDescription;type:text"`
	Image           *string `json:"image" gorm:"column:image;type:text"`
}

// TableName keeps the classic catalog table name.
func (ProductLine) TableName() string {
	return "productlines"
}
