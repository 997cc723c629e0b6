package model

// Order represents a customer order header
type Order struct {
	ID             uint    `json:"id" gorm:"primarykey"`
	OrderDate      Date    `json:"orderDate" gorm:"column:orderDate;not null" validate:"required"`
	RequiredDate   Date    `json:"requiredDate" gorm:"column:requiredDate;not null" validate:"required"`
	ShippedDate    *Date   `json:"shippedDate" gorm:"column:shippedDate"`
	Status         string  `json:"status" gorm:"column:status;type:varchar(15);not null" validate:"notblank,max=15"`
	Comments       *string `json:"comments" gorm:"column:comments;type:text"`
	CustomerNumber string  `json:"customerNumber" gorm:"column:customerNumber;type:varchar(255);not null" validate:"notblank"`
}
