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

// ProductLineHandler serves the /api/productlines resource.
type ProductLineHandler struct {
	svc *service.ProductLineService
}

func NewProductLineHandler(svc *service.ProductLineService) *ProductLineHandler {
	return &ProductLineHandler{svc: svc}
}

// Register mounts the product-line routes on the API group.
func (h *ProductLineHandler) Register(api *echo.Group) {
	g := api.Group("/productlines")
	g.POST("/add", h.Add)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/name/:productLine", h.ByName)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *ProductLineHandler) Add(c echo.Context) error {
	var line model.ProductLine
	if err := c.Bind(&line); err != nil {
		return invalidBody(c, err)
	}
	defer prometheus.TrackDBOperation("productline_add")(time.Now())
	created, err := h.svc.Add(&line)
	if err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("product line created", zap.Uint("id", created.ID), zap.String("name", created.ProductLine))
	prometheus.RecordOperation("productlines", "add")
	return c.JSON(http.StatusOK, created)
}

func (h *ProductLineHandler) List(c echo.Context) error {
	lines, err := h.svc.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, lines)
}

func (h *ProductLineHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	line, err := h.svc.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, line)
}

func (h *ProductLineHandler) ByName(c echo.Context) error {
	line, err := h.svc.GetByName(c.Param("productLine"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, line)
}

func (h *ProductLineHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var line model.ProductLine
	if err := c.Bind(&line); err != nil {
		return invalidBody(c, err)
	}
	defer prometheus.TrackDBOperation("productline_update")(time.Now())
	updated, err := h.svc.Update(id, &line)
	if err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("product line updated", zap.Uint("id", updated.ID))
	prometheus.RecordOperation("productlines", "update")
	return c.JSON(http.StatusOK, updated)
}

func (h *ProductLineHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	defer prometheus.TrackDBOperation("productline_delete")(time.Now())
	if err := h.svc.Delete(id); err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("product line deleted", zap.Uint("id", id))
	prometheus.RecordOperation("productlines", "delete")
	return c.NoContent(http.StatusNoContent)
}
