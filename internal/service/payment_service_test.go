package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/internal/apperr"
	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	"catalog-service/internal/testutil"
)

func newPaymentService(t *testing.T) *PaymentService {
	return NewPaymentService(testutil.OpenDB(t), repository.NewPaymentRepository())
}

func TestPaymentAddDuplicateCheckNumberConflicts(t *testing.T) {
	svc := newPaymentService(t)

	_, err := svc.Add(testutil.ValidPayment())
	require.NoError(t, err)

	dup := testutil.ValidPayment()
	dup.CustomerNumber = "112"
	_, err = svc.Add(dup)
	ce, ok := apperr.AsConflict(err)
	require.True(t, ok)
	assert.Equal(t, "Payment with this check number already exists", ce.Message)
}

func TestPaymentGetByCustomerNumber(t *testing.T) {
	svc := newPaymentService(t)

	_, err := svc.Add(testutil.ValidPayment())
	require.NoError(t, err)

	second := testutil.ValidPayment()
	second.CheckNumber = "JM555205"
	second.Amount = decimal.RequireFromString("14571.44")
	_, err = svc.Add(second)
	require.NoError(t, err)

	other := testutil.ValidPayment()
	other.CustomerNumber = "112"
	other.CheckNumber = "BO864823"
	_, err = svc.Add(other)
	require.NoError(t, err)

	got, err := svc.GetByCustomerNumber("103")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.GetByCustomerNumber("999")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPaymentUpdateReplacesAmountAndDate(t *testing.T) {
	svc := newPaymentService(t)

	created, err := svc.Add(testutil.ValidPayment())
	require.NoError(t, err)

	incoming := testutil.ValidPayment()
	incoming.PaymentDate = model.NewDate(2024, time.December, 18)
	incoming.Amount = decimal.RequireFromString("1676.14")
	updated, err := svc.Update(created.ID, incoming)
	require.NoError(t, err)
	assert.Equal(t, "2024-12-18", updated.PaymentDate.String())
	assert.True(t, updated.Amount.Equal(decimal.RequireFromString("1676.14")))
}

func TestPaymentAddRejectsNonPositiveAmount(t *testing.T) {
	svc := newPaymentService(t)

	payment := testutil.ValidPayment()
	payment.Amount = decimal.Zero
	_, err := svc.Add(payment)
	ve, ok := apperr.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "amount")
}
