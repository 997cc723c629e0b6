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

// ProductHandler serves the /api/products resource.
type ProductHandler struct {
	svc *service.ProductService
}

func NewProductHandler(svc *service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Register mounts the product routes on the API group.
func (h *ProductHandler) Register(api *echo.Group) {
	g := api.Group("/products")
	g.POST("/add", h.Add)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/code/:productCode", h.ByCode)
	g.GET("/line/:productLine", h.ByLine)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *ProductHandler) Add(c echo.Context) error {
	var product model.Product
	if err := c.Bind(&product); err != nil {
		return invalidBody(c, err)
	}
	defer prometheus.TrackDBOperation("product_add")(time.Now())
	created, err := h.svc.Add(&product)
	if err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("product created", zap.Uint("id", created.ID), zap.String("productCode", created.ProductCode))
	prometheus.RecordOperation("products", "add")
	return c.JSON(http.StatusOK, created)
}

func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.svc.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	product, err := h.svc.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) ByCode(c echo.Context) error {
	product, err := h.svc.GetByCode(c.Param("productCode"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) ByLine(c echo.Context) error {
	products, err := h.svc.GetByLine(c.Param("productLine"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var product model.Product
	if err := c.Bind(&product); err != nil {
		return invalidBody(c, err)
	}
	defer prometheus.TrackDBOperation("product_update")(time.Now())
	updated, err := h.svc.Update(id, &product)
	if err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("product updated", zap.Uint("id", updated.ID), zap.String("productCode", updated.ProductCode))
	prometheus.RecordOperation("products", "update")
	return c.JSON(http.StatusOK, updated)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	defer prometheus.TrackDBOperation("product_delete")(time.Now())
	if err := h.svc.Delete(id); err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("product deleted", zap.Uint("id", id))
	prometheus.RecordOperation("products", "delete")
	return c.NoContent(http.StatusNoContent)
}
