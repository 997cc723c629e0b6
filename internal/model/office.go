package model

// Office represents a sales office location
type Office struct {
	ID           uint    `json:"id" gorm:"primarykey"`
	City         string  `json:"city" gorm:"column:city;type:varchar(50);not null" validate:"notblank,max=50"`
	Phone        string  `json:"phone" gorm:"column:phone;type:varchar(50);not null" validate:"notblank,max=50"`
	AddressLine1 string  `json:"addressLine1" gorm:"column:addressLine1;type:varchar(50);not null" validate:"notblank,max=50"`
	AddressLine2 *string `json:"addressLine2" gorm:"column:addressLine2;type:varchar(50)" validate:"omitempty,max=50"`
	State        *string `json:"state" gorm:"column:state;type:varchar(50)" validate:"omitempty,max=50"`
	Country      string  `json:"country" gorm:"column:country;type:varchar(50);not null" validate:"notblank,max=50"`
	PostalCode   string  `json:"postalCode" gorm:"column:postalCode;type:varchar(15);not null" validate:"notblank,max=15"`
	Territory    string  `json:"territory" gorm:"column:territory;type:varchar(10);not null" validate:"notblank,max=10"`
}
