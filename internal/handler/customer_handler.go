package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"catalog-service/internal/model"
	"catalog-service/internal/service"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"
)

// CustomerHandler serves the /api/customers resource.
type CustomerHandler struct {
	svc *service.CustomerService
}

func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// Register mounts the customer routes on the API group.
func (h *CustomerHandler) Register(api *echo.Group) {
	g := api.Group("/customers")
	g.POST("/add", h.Add)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/city/:city", h.ByCity)
	g.GET("/country/:country", h.ByCountry)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *CustomerHandler) Add(c echo.Context) error {
	var customer model.Customer
	if err := c.Bind(&customer); err != nil {
		return invalidBody(c, err)
	}
	defer prometheus.TrackDBOperation("customer_add")(time.Now())
	created, err := h.svc.Add(&customer)
	if err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("customer created", zap.Uint("id", created.ID), zap.String("name", created.CustomerName))
	prometheus.RecordOperation("customers", "add")
	return c.JSON(http.StatusOK, created)
}

func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.svc.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	customer, err := h.svc.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) ByCity(c echo.Context) error {
	customers, err := h.svc.GetByCity(c.Param("city"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) ByCountry(c echo.Context) error {
	customers, err := h.svc.GetByCountry(c.Param("country"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var customer model.Customer
	if err := c.Bind(&customer); err != nil {
		return invalidBody(c, err)
	}
	defer prometheus.TrackDBOperation("customer_update")(time.Now())
	updated, err := h.svc.Update(id, &customer)
	if err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("customer updated", zap.Uint("id", updated.ID))
	prometheus.RecordOperation("customers", "update")
	return c.JSON(http.StatusOK, updated)
}

func (h *CustomerHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	defer prometheus.TrackDBOperation("customer_delete")(time.Now())
	if err := h.svc.Delete(id); err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("customer deleted", zap.Uint("id", id))
	prometheus.RecordOperation("customers", "delete")
	return c.NoContent(http.StatusNoContent)
}
