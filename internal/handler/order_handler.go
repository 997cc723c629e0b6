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

// OrderHandler serves the /api/orders resource.
type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// Register mounts the order routes on the API group.
func (h *OrderHandler) Register(api *echo.Group) {
	g := api.Group("/orders")
	g.POST("/add", h.Add)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/customer/:customerNumber", h.ByCustomerNumber)
	g.GET("/status/:status", h.ByStatus)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *OrderHandler) Add(c echo.Context) error {
	var order model.Order
	if err := c.Bind(&order); err != nil {
		return invalidBody(c, err)
	}
	defer prometheus.TrackDBOperation("order_add")(time.Now())
	created, err := h.svc.Add(&order)
	if err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("order created", zap.Uint("id", created.ID), zap.String("status", created.Status))
	prometheus.RecordOperation("orders", "add")
	return c.JSON(http.StatusOK, created)
}

func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.svc.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	order, err := h.svc.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ByCustomerNumber(c echo.Context) error {
	orders, err := h.svc.GetByCustomerNumber(c.Param("customerNumber"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) ByStatus(c echo.Context) error {
	orders, err := h.svc.GetByStatus(c.Param("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var order model.Order
	if err := c.Bind(&order); err != nil {
		return invalidBody(c, err)
	}
	defer prometheus.TrackDBOperation("order_update")(time.Now())
	updated, err := h.svc.Update(id, &order)
	if err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("order updated", zap.Uint("id", updated.ID))
	prometheus.RecordOperation("orders", "update")
	return c.JSON(http.StatusOK, updated)
}

func (h *OrderHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	defer prometheus.TrackDBOperation("order_delete")(time.Now())
	if err := h.svc.Delete(id); err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("order deleted", zap.Uint("id", id))
	prometheus.RecordOperation("orders", "delete")
	return c.NoContent(http.StatusNoContent)
}
