package model

import "github.com/shopspring/decimal"

// Product represents the product master data
type Product struct {
	ID                 uint            `json:"id" gorm:"primarykey"`
	ProductCode        string          `json:"productCode" gorm:"column:productCode;type:varchar(15);not null;uniqueIndex" validate:"notblank,max=15"`
	ProductName        string          `json:"productName" gorm:"column:productName;type:varchar(70);not null" validate:"notblank,max=70"`
	ProductLine        string          `json:"productLine" gorm:"column:productLine;type:varchar(50);not null" validate:"notblank,max=50"`
	ProductScale       string          `json:"productScale" gorm:"column:productScale;type:varchar(10);not null" validate:"notblank,max=10"`
	ProductVendor      string          `json:"productVendor" gorm:"column:productVendor;type:varchar(50);not null" validate:"notblank,max=50"`
	ProductDescription string          `json:"productDescription" gorm:"column:productDescription;type:text;not null" validate:"notblank"`
	QuantityInStock    int             `json:"quantityInStock" gorm:"column:quantityInStock;not null" validate:"gte=0"`
	BuyPrice           decimal.Decimal `json:"buyPrice" gorm:"column:buyPrice;type:numeric(10,2);not null" validate:"dgt0,dscale2"`
	MSRP               decimal.Decimal `json:"msrp" gorm:"column:msrp;type:numeric(10,2);not null" validate:"dgt0,dscale2"`
}
