package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/internal/repository"
	"catalog-service/internal/service"
	"catalog-service/internal/testutil"
	"catalog-service/pkg/config"
	"catalog-service/prometheus"
)

func TestMain(m *testing.M) {
	// Metrics are promauto globals, so they are registered once for
	// the whole package.
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	prometheus.InitMetrics(cfg)
	os.Exit(m.Run())
}

// newTestServer assembles the full router over an in-memory store.
func newTestServer(t *testing.T) *echo.Echo {
	db := testutil.OpenDB(t)

	e := echo.New()
	Mount(e,
		NewOfficeHandler(service.NewOfficeService(db, repository.NewOfficeRepository())),
		NewEmployeeHandler(service.NewEmployeeService(db, repository.NewEmployeeRepository())),
		NewCustomerHandler(service.NewCustomerService(db, repository.NewCustomerRepository())),
		NewOrderHandler(service.NewOrderService(db, repository.NewOrderRepository())),
		NewOrderDetailHandler(service.NewOrderDetailService(db, repository.NewOrderDetailRepository())),
		NewPaymentHandler(service.NewPaymentService(db, repository.NewPaymentRepository())),
		NewProductLineHandler(service.NewProductLineService(db, repository.NewProductLineRepository())),
		NewProductHandler(service.NewProductService(db, repository.NewProductRepository())),
	)
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

const officeBody = `{"city":"Paris","phone":"+33 14 723 4404","addressLine1":"43 Rue Jouffroy D'abbans","country":"France","postalCode":"75017","territory":"EMEA"}`

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}

func TestOfficeCreateReadAndCityLookup(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/offices/add", officeBody)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decode(t, rec)
	id := created["id"].(float64)
	require.NotZero(t, id)
	assert.Equal(t, "Paris", created["city"])

	rec = doJSON(e, http.MethodGet, "/api/offices/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Paris", decode(t, rec)["city"])

	rec = doJSON(e, http.MethodGet, "/api/offices/city/Paris", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var offices []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &offices))
	require.Len(t, offices, 1)

	// Lookup is case-sensitive and always returns a JSON array.
	rec = doJSON(e, http.MethodGet, "/api/offices/city/paris", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestEmployeeDuplicateEmailReturnsConflict(t *testing.T) {
	e := newTestServer(t)

	body := `{"lastName":"Bondur","firstName":"Gerard","extension":"x5408","email":"gbondur@classicmodelcars.com","officeCode":"4","jobTitle":"Sales Manager (EMEA)"}`
	rec := doJSON(e, http.MethodPost, "/api/employees/add", body)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/employees/add", body)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Employee with this email already exists", decode(t, rec)["error"])

	rec = doJSON(e, http.MethodGet, "/api/employees", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var employees []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &employees))
	assert.Len(t, employees, 1)
}

func TestCustomerUpdateOmittingCreditLimitClearsIt(t *testing.T) {
	e := newTestServer(t)

	create := `{"customerName":"Mini Gifts Distributors Ltd.","contactLastName":"Nelson","contactFirstName":"Susan","phone":"4155551450","addressLine1":"5677 Strong St.","city":"San Rafael","country":"USA","creditLimit":210500.00}`
	rec := doJSON(e, http.MethodPost, "/api/customers/add", create)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decode(t, rec)
	assert.EqualValues(t, 210500, created["creditLimit"])

	update := `{"customerName":"Mini Gifts Distributors Ltd.","contactLastName":"Nelson","contactFirstName":"Susan","phone":"4155551450","addressLine1":"5677 Strong St.","city":"San Rafael","country":"USA"}`
	rec = doJSON(e, http.MethodPut, "/api/customers/1", update)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode(t, rec)["creditLimit"])

	rec = doJSON(e, http.MethodGet, "/api/customers/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode(t, rec)["creditLimit"])
}

func TestOrderBlankStatusRejectedAndNothingStored(t *testing.T) {
	e := newTestServer(t)

	body := `{"orderDate":"2024-01-06","requiredDate":"2024-01-13","status":"","customerNumber":"363"}`
	rec := doJSON(e, http.MethodPost, "/api/orders/add", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	out := decode(t, rec)
	assert.Equal(t, "validation failed", out["error"])
	fields := out["fields"].(map[string]interface{})
	assert.Contains(t, fields, "status")

	rec = doJSON(e, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestDeleteIsIdempotentAndGetIs404(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/offices/add", officeBody)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/api/offices/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodDelete, "/api/offices/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/offices/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestProductLineNameLookupIsCaseSensitive(t *testing.T) {
	e := newTestServer(t)

	body := `{"productLine":"Classic Cars","textDescription":"Attention car enthusiasts."}`
	rec := doJSON(e, http.MethodPost, "/api/productlines/add", body)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/productlines/name/Classic%20Cars", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Classic Cars", decode(t, rec)["productLine"])

	rec = doJSON(e, http.MethodGet, "/api/productlines/name/classic%20cars", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInvalidIDAndBodyAreBadRequests(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/offices/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid id", decode(t, rec)["error"])

	rec = doJSON(e, http.MethodPost, "/api/offices/add", `{"city":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request data", decode(t, rec)["error"])
}

func TestProductDecimalsSerializeAsNumbers(t *testing.T) {
	e := newTestServer(t)

	body := `{"productCode":"S10_1678","productName":"1969 Harley Davidson Ultimate Chopper","productLine":"Motorcycles","productScale":"1:10","productVendor":"Min Lin Diecast","productDescription":"Working kickstand.","quantityInStock":7933,"buyPrice":48.81,"msrp":95.70}`
	rec := doJSON(e, http.MethodPost, "/api/products/add", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"buyPrice":48.81`)
	assert.Contains(t, rec.Body.String(), `"msrp":95.7`)
}

func TestMetricsEndpointExposesCounters(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/offices/add", officeBody)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "catalog_operations_total")
}
