package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/internal/apperr"
	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	"catalog-service/internal/testutil"
)

func newOrderService(t *testing.T) *OrderService {
	return NewOrderService(testutil.OpenDB(t), repository.NewOrderRepository())
}

func TestOrderAddRejectsBlankStatus(t *testing.T) {
	svc := newOrderService(t)

	order := testutil.ValidOrder()
	order.Status = "   "
	_, err := svc.Add(order)
	ve, ok := apperr.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "status")

	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestOrderStatusAndCustomerLookups(t *testing.T) {
	svc := newOrderService(t)

	_, err := svc.Add(testutil.ValidOrder())
	require.NoError(t, err)

	shipped := testutil.ValidOrder()
	shipped.Status = "Shipped"
	shipped.CustomerNumber = "128"
	shippedOn := model.NewDate(2024, time.January, 10)
	shipped.ShippedDate = &shippedOn
	_, err = svc.Add(shipped)
	require.NoError(t, err)

	byStatus, err := svc.GetByStatus("Shipped")
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "128", byStatus[0].CustomerNumber)

	byStatus, err = svc.GetByStatus("shipped")
	require.NoError(t, err)
	assert.Empty(t, byStatus)

	byCustomer, err := svc.GetByCustomerNumber("363")
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
	assert.Equal(t, "In Process", byCustomer[0].Status)
}

func TestOrderUpdateClearsShippedDateAndComments(t *testing.T) {
	svc := newOrderService(t)

	order := testutil.ValidOrder()
	shippedDate := model.NewDate(2024, time.January, 10)
	order.ShippedDate = &shippedDate
	order.Comments = testutil.StrPtr("Check on availability.")
	created, err := svc.Add(order)
	require.NoError(t, err)

	incoming := testutil.ValidOrder()
	updated, err := svc.Update(created.ID, incoming)
	require.NoError(t, err)
	assert.Nil(t, updated.ShippedDate)
	assert.Nil(t, updated.Comments)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ShippedDate)
	assert.Nil(t, got.Comments)
}

func TestOrderDeleteThenGetIsNotFound(t *testing.T) {
	svc := newOrderService(t)

	created, err := svc.Add(testutil.ValidOrder())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.GetByID(created.ID)
	assert.True(t, apperr.IsNotFound(err))
}
