package model

import "github.com/shopspring/decimal"

// OrderDetail represents a single line item on an order
type OrderDetail struct {
	ID              uint            `json:"id" gorm:"primarykey"`
	OrderNumber     string          `json:"orderNumber" gorm:"column:orderNumber;type:varchar(255);not null" validate:"notblank"`
	ProductCode     string          `json:"productCode" gorm:"column:productCode;type:varchar(15);not null" validate:"notblank,max=15"`
	QuantityOrdered int             `json:"quantityOrdered" gorm:"column:quantityOrdered;not null" validate:"min=1"`
	PriceEach       decimal.Decimal `json:"priceEach" gorm:"column:priceEach;type:numeric(10,2);not null" validate:"dgt0,dscale2"`
	OrderLineNumber int             `json:"orderLineNumber" gorm:"column:orderLineNumber;not null" validate:"min=1"`
}

// TableName keeps the classic catalog table name.
func (OrderDetail) TableName() string {
	return "orderdetails"
}
