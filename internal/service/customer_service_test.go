package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/internal/apperr"
	"catalog-service/internal/repository"
	"catalog-service/internal/testutil"
)

func newCustomerService(t *testing.T) *CustomerService {
	return NewCustomerService(testutil.OpenDB(t), repository.NewCustomerRepository())
}

func TestCustomerAddAndGet(t *testing.T) {
	svc := newCustomerService(t)

	created, err := svc.Add(testutil.ValidCustomer())
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.True(t, created.CreditLimit.Valid)
	assert.True(t, created.CreditLimit.Decimal.Equal(decimal.RequireFromString("210500.00")))

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mini Gifts Distributors Ltd.", got.CustomerName)
}

func TestCustomerUpdateClearsCreditLimit(t *testing.T) {
	svc := newCustomerService(t)

	created, err := svc.Add(testutil.ValidCustomer())
	require.NoError(t, err)
	require.True(t, created.CreditLimit.Valid)

	incoming := testutil.ValidCustomer()
	incoming.CreditLimit = decimal.NullDecimal{}
	updated, err := svc.Update(created.ID, incoming)
	require.NoError(t, err)
	assert.False(t, updated.CreditLimit.Valid)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.False(t, got.CreditLimit.Valid)
}

func TestCustomerAddRejectsNegativeCreditLimit(t *testing.T) {
	svc := newCustomerService(t)

	customer := testutil.ValidCustomer()
	customer.CreditLimit = decimal.NewNullDecimal(decimal.RequireFromString("-1.00"))
	_, err := svc.Add(customer)
	ve, ok := apperr.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "creditLimit")
}

func TestCustomerSecondaryLookups(t *testing.T) {
	svc := newCustomerService(t)

	_, err := svc.Add(testutil.ValidCustomer())
	require.NoError(t, err)

	nantes := testutil.ValidCustomer()
	nantes.CustomerName = "Atelier graphique"
	nantes.City = "Nantes"
	nantes.Country = "France"
	_, err = svc.Add(nantes)
	require.NoError(t, err)

	byCity, err := svc.GetByCity("Nantes")
	require.NoError(t, err)
	require.Len(t, byCity, 1)
	assert.Equal(t, "Atelier graphique", byCity[0].CustomerName)

	byCountry, err := svc.GetByCountry("USA")
	require.NoError(t, err)
	require.Len(t, byCountry, 1)

	byCountry, err = svc.GetByCountry("usa")
	require.NoError(t, err)
	assert.Empty(t, byCountry)
}
