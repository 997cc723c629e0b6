package model

// Employee represents a member of the sales organization
type Employee struct {
	ID         uint    `json:"id" gorm:"primarykey"`
	LastName   string  `json:"lastName" gorm:"column:lastName;type:varchar(50);not null" validate:"notblank,max=50"`
	FirstName  string  `json:"firstName" gorm:"column:firstName;type:varchar(50);not null" validate:"notblank,max=50"`
	Extension  string  `json:"extension" gorm:"column:extension;type:varchar(10);not null" validate:"notblank,max=10"`
	Email      string  `json:"email" gorm:"column:email;type:varchar(100);not null;uniqueIndex" validate:"notblank,email,max=100"`
	OfficeCode string  `json:"officeCode" gorm:"column:officeCode;type:varchar(10);not null" validate:"notblank,max=10"`
	ReportsTo  *string `json:"reportsTo" gorm:"column:reportsTo;type:varchar(50)" validate:"omitempty,max=50"`
	JobTitle   string  `json:"jobTitle" gorm:"column:jobTitle;type:varchar(50);not null" validate:"notblank,max=50"`
}
