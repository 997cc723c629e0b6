package model

import "github.com/shopspring/decimal"

// Customer represents a buyer of catalog products
type Customer struct {
	ID                     uint                `json:"id" gorm:"primarykey"`
	CustomerName           string              `json:"customerName" gorm:"column:customerName;type:varchar(50);not null" validate:"notblank,max=50"`
	ContactLastName        string              `json:"contactLastName" gorm:"column:contactLastName;type:varchar(50);not null" validate:"notblank,max=50"`
	ContactFirstName       string              `json:"contactFirstName" gorm:"column:contactFirstName;type:varchar(50);not null" validate:"notblank,max=50"`
	Phone                  string              `json:"phone" gorm:"column:phone;type:varchar(50);not null" validate:"notblank,max=50"`
	AddressLine1           string              `json:"addressLine1" gorm:"column:addressLine1;type:varchar(50);not null" validate:"notblank,max=50"`
	AddressLine2           *string             `json:"addressLine2" gorm:"column:addressLine2;type:varchar(50)" validate:"omitempty,max=50"`
	City                   string              `json:"city" gorm:"column:city;type:varchar(50);not null" validate:"notblank,max=50"`
	State                  *string             `json:"state" gorm:"column:state;type:varchar(50)" validate:"omitempty,max=50"`
	PostalCode             *string             `json:"postalCode" gorm:"column:postalCode;type:varchar(15)" validate:"omitempty,max=15"`
	Country                string              `json:"country" gorm:"column:country;type:varchar(50);not null" validate:"notblank,max=50"`
	SalesRepEmployeeNumber *string             `json:"salesRepEmployeeNumber" gorm:"column:salesRepEmployeeNumber;type:varchar(50)" validate:"omitempty,max=50"`
	CreditLimit            decimal.NullDecimal `json:"creditLimit" gorm:"column:creditLimit;type:numeric(10,2)" validate:"omitempty,dgte0,dscale2"`
}
