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

// PaymentHandler serves the /api/payments resource.
type PaymentHandler struct {
	svc *service.PaymentService
}

func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// Register mounts the payment routes on the API group.
func (h *PaymentHandler) Register(api *echo.Group) {
	g := api.Group("/payments")
	g.POST("/add", h.Add)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/customer/:customerNumber", h.ByCustomerNumber)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *PaymentHandler) Add(c echo.Context) error {
	var payment model.Payment
	if err := c.Bind(&payment); err != nil {
		return invalidBody(c, err)
	}
	defer prometheus.TrackDBOperation("payment_add")(time.Now())
	created, err := h.svc.Add(&payment)
	if err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("payment created", zap.Uint("id", created.ID), zap.String("checkNumber", created.CheckNumber))
	prometheus.RecordOperation("payments", "add")
	return c.JSON(http.StatusOK, created)
}

func (h *PaymentHandler) List(c echo.Context) error {
	payments, err := h.svc.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	payment, err := h.svc.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) ByCustomerNumber(c echo.Context) error {
	payments, err := h.svc.GetByCustomerNumber(c.Param("customerNumber"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var payment model.Payment
	if err := c.Bind(&payment); err != nil {
		return invalidBody(c, err)
	}
	defer prometheus.TrackDBOperation("payment_update")(time.Now())
	updated, err := h.svc.Update(id, &payment)
	if err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("payment updated", zap.Uint("id", updated.ID))
	prometheus.RecordOperation("payments", "update")
	return c.JSON(http.StatusOK, updated)
}

func (h *PaymentHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	defer prometheus.TrackDBOperation("payment_delete")(time.Now())
	if err := h.svc.Delete(id); err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("payment deleted", zap.Uint("id", id))
	prometheus.RecordOperation("payments", "delete")
	return c.NoContent(http.StatusNoContent)
}
