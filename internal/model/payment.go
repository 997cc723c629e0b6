package model

import "github.com/shopspring/decimal"

// Payment represents a check received from a customer
type Payment struct {
	ID             uint            `json:"id" gorm:"primarykey"`
	CustomerNumber string          `json:"customerNumber" gorm:"column:customerNumber;type:varchar(255);not null" validate:"notblank"`
	CheckNumber    string          `json:"checkNumber" gorm:"column:checkNumber;type:varchar(50);not null;uniqueIndex" validate:"notblank,max=50"`
	PaymentDate    Date            `json:"paymentDate" gorm:"column:paymentDate;not null" validate:"required"`
	Amount         decimal.Decimal `json:"amount" gorm:"column:amount;type:numeric(10,2);not null" validate:"dgt0,dscale2"`
}
