package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/internal/apperr"
	"catalog-service/internal/model"
	"catalog-service/internal/repository"
	"catalog-service/internal/testutil"
)

func newOfficeService(t *testing.T) *OfficeService {
	return NewOfficeService(testutil.OpenDB(t), repository.NewOfficeRepository())
}

func TestOfficeAddAssignsIDAndReads(t *testing.T) {
	svc := newOfficeService(t)

	created, err := svc.Add(testutil.ValidOffice())
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestOfficeAddRejectsInvalidWithoutPersisting(t *testing.T) {
	svc := newOfficeService(t)

	office := testutil.ValidOffice()
	office.Territory = "INTERCONTINENTAL"
	_, err := svc.Add(office)
	ve, ok := apperr.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "territory")

	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestOfficeUpdateReplacesAllFields(t *testing.T) {
	svc := newOfficeService(t)

	original := testutil.ValidOffice()
	original.AddressLine2 = testutil.StrPtr("Floor 2")
	original.State = testutil.StrPtr("Ile-de-France")
	created, err := svc.Add(original)
	require.NoError(t, err)

	incoming := &model.Office{
		ID:           9999, // ignored, stored id wins
		City:         "Lyon",
		Phone:        "+33 4 72 00 00 00",
		AddressLine1: "1 Place Bellecour",
		Country:      "France",
		PostalCode:   "69002",
		Territory:    "EMEA",
	}
	updated, err := svc.Update(created.ID, incoming)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lyon", got.City)
	assert.Nil(t, got.AddressLine2, "omitted optional field must be cleared")
	assert.Nil(t, got.State)
}

func TestOfficeUpdateMissingIDIsNotFound(t *testing.T) {
	svc := newOfficeService(t)
	_, err := svc.Update(42, testutil.ValidOffice())
	assert.True(t, apperr.IsNotFound(err))
}

func TestOfficeDeleteIsIdempotent(t *testing.T) {
	svc := newOfficeService(t)

	created, err := svc.Add(testutil.ValidOffice())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.GetByID(created.ID)
	assert.True(t, apperr.IsNotFound(err))

	// Deleting an id that never existed also succeeds.
	assert.NoError(t, svc.Delete(9000))
}

func TestOfficeSecondaryLookups(t *testing.T) {
	svc := newOfficeService(t)

	paris := testutil.ValidOffice()
	_, err := svc.Add(paris)
	require.NoError(t, err)

	london := testutil.ValidOffice()
	london.City = "London"
	london.Country = "UK"
	london.PostalCode = "EC2N 1HN"
	_, err = svc.Add(london)
	require.NoError(t, err)

	byCity, err := svc.GetByCity("Paris")
	require.NoError(t, err)
	require.Len(t, byCity, 1)
	assert.Equal(t, "Paris", byCity[0].City)

	// Matching is case-sensitive and exact.
	byCity, err = svc.GetByCity("paris")
	require.NoError(t, err)
	assert.Empty(t, byCity)

	byCountry, err := svc.GetByCountry("UK")
	require.NoError(t, err)
	require.Len(t, byCountry, 1)
	assert.Equal(t, "London", byCountry[0].City)
}
