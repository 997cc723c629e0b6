package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	"catalog-service/internal/model"
)

// StrPtr returns a pointer to s for optional string fields.
func StrPtr(s string) *string {
	return &s
}

func ValidOffice() *model.Office {
	return &model.Office{
		City:         "Paris",
		Phone:        "+33 14 723 4404",
		AddressLine1: "43 Rue Jouffroy D'abbans",
		Country:      "France",
		PostalCode:   "75017",
		Territory:    "EMEA",
	}
}

func ValidEmployee() *model.Employee {
	return &model.Employee{
		LastName:   "Bondur",
		FirstName:  "Gerard",
		Extension:  "x5408",
		Email:      "gbondur@classicmodelcars.com",
		OfficeCode: "4",
		JobTitle:   "Sales Manager (EMEA)",
	}
}

func ValidCustomer() *model.Customer {
	return &model.Customer{
		CustomerName:     "Mini Gifts Distributors Ltd.",
		ContactLastName:  "Nelson",
		ContactFirstName: "Susan",
		Phone:            "4155551450",
		AddressLine1:     "5677 Strong St.",
		City:             "San Rafael",
		Country:          "USA",
		CreditLimit:      decimal.NewNullDecimal(decimal.RequireFromString("210500.00")),
	}
}

func ValidOrder() *model.Order {
	return &model.Order{
		OrderDate:      model.NewDate(2024, time.January, 6),
		RequiredDate:   model.NewDate(2024, time.January, 13),
		Status:         "In Process",
		CustomerNumber: "363",
	}
}

func ValidOrderDetail() *model.OrderDetail {
	return &model.OrderDetail{
		OrderNumber:     "10100",
		ProductCode:     "S18_1749",
		QuantityOrdered: 30,
		PriceEach:       decimal.RequireFromString("136.00"),
		OrderLineNumber: 3,
	}
}

func ValidPayment() *model.Payment {
	return &model.Payment{
		CustomerNumber: "103",
		CheckNumber:    "HQ336336",
		PaymentDate:    model.NewDate(2024, time.October, 19),
		Amount:         decimal.RequireFromString("6066.78"),
	}
}

func ValidProductLine() *model.ProductLine {
	return &model.ProductLine{
		ProductLine:     "Classic Cars",
		TextDescription: StrPtr("Attention car enthusiasts: make your wildest car ownership dreams come true."),
	}
}

func ValidProduct() *model.Product {
	return &model.Product{
		ProductCode:        "S10_1678",
		ProductName:        "1969 Harley Davidson Ultimate Chopper",
		ProductLine:        "Motorcycles",
		ProductScale:       "1:10",
		ProductVendor:      "Min Lin Diecast",
		ProductDescription: "This replica features working kickstand, front suspension and gear-shift lever.",
		QuantityInStock:    7933,
		BuyPrice:           decimal.RequireFromString("48.81"),
		MSRP:               decimal.RequireFromString("95.70"),
	}
}
