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

// OrderDetailHandler serves the /api/orderdetails resource.
type OrderDetailHandler struct {
	svc *service.OrderDetailService
}

func NewOrderDetailHandler(svc *service.OrderDetailService) *OrderDetailHandler {
	return &OrderDetailHandler{svc: svc}
}

// Register mounts the order-detail routes on the API group.
func (h *OrderDetailHandler) Register(api *echo.Group) {
	g := api.Group("/orderdetails")
	g.POST("/add", h.Add)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/order/:orderNumber", h.ByOrderNumber)
	g.GET("/product/:productCode", h.ByProductCode)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *OrderDetailHandler) Add(c echo.Context) error {
	var detail model.OrderDetail
	if err := c.Bind(&detail); err != nil {
		return invalidBody(c, err)
	}
	defer prometheus.TrackDBOperation("orderdetail_add")(time.Now())
	created, err := h.svc.Add(&detail)
	if err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("order detail created", zap.Uint("id", created.ID), zap.String("orderNumber", created.OrderNumber))
	prometheus.RecordOperation("orderdetails", "add")
	return c.JSON(http.StatusOK, created)
}

func (h *OrderDetailHandler) List(c echo.Context) error {
	details, err := h.svc.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, details)
}

func (h *OrderDetailHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	detail, err := h.svc.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *OrderDetailHandler) ByOrderNumber(c echo.Context) error {
	details, err := h.svc.GetByOrderNumber(c.Param("orderNumber"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, details)
}

func (h *OrderDetailHandler) ByProductCode(c echo.Context) error {
	details, err := h.svc.GetByProductCode(c.Param("productCode"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, details)
}

func (h *OrderDetailHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var detail model.OrderDetail
	if err := c.Bind(&detail); err != nil {
		return invalidBody(c, err)
	}
	defer prometheus.TrackDBOperation("orderdetail_update")(time.Now())
	updated, err := h.svc.Update(id, &detail)
	if err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("order detail updated", zap.Uint("id", updated.ID))
	prometheus.RecordOperation("orderdetails", "update")
	return c.JSON(http.StatusOK, updated)
}

func (h *OrderDetailHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	defer prometheus.TrackDBOperation("orderdetail_delete")(time.Now())
	if err := h.svc.Delete(id); err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("order detail deleted", zap.Uint("id", id))
	prometheus.RecordOperation("orderdetails", "delete")
	return c.NoContent(http.StatusNoContent)
}
