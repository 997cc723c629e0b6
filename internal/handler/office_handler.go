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

// OfficeHandler serves the /api/offices resource.
type OfficeHandler struct {
	svc *service.OfficeService
}

func NewOfficeHandler(svc *service.OfficeService) *OfficeHandler {
	return &OfficeHandler{svc: svc}
}

// Register mounts the office routes on the API group.
func (h *OfficeHandler) Register(api *echo.Group) {
	g := api.Group("/offices")
	g.POST("/add", h.Add)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/city/:city", h.ByCity)
	g.GET("/country/:country", h.ByCountry)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *OfficeHandler) Add(c echo.Context) error {
	var office model.Office
	if err := c.Bind(&office); err != nil {
		return invalidBody(c, err)
	}
	defer prometheus.TrackDBOperation("office_add")(time.Now())
	created, err := h.svc.Add(&office)
	if err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("office created", zap.Uint("id", created.ID), zap.String("city", created.City))
	prometheus.RecordOperation("offices", "add")
	return c.JSON(http.StatusOK, created)
}

func (h *OfficeHandler) List(c echo.Context) error {
	offices, err := h.svc.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, offices)
}

func (h *OfficeHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	office, err := h.svc.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, office)
}

func (h *OfficeHandler) ByCity(c echo.Context) error {
	offices, err := h.svc.GetByCity(c.Param("city"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, offices)
}

func (h *OfficeHandler) ByCountry(c echo.Context) error {
	offices, err := h.svc.GetByCountry(c.Param("country"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, offices)
}

func (h *OfficeHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var office model.Office
	if err := c.Bind(&office); err != nil {
		return invalidBody(c, err)
	}
	defer prometheus.TrackDBOperation("office_update")(time.Now())
	updated, err := h.svc.Update(id, &office)
	if err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("office updated", zap.Uint("id", updated.ID))
	prometheus.RecordOperation("offices", "update")
	return c.JSON(http.StatusOK, updated)
}

func (h *OfficeHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	defer prometheus.TrackDBOperation("office_delete")(time.Now())
	if err := h.svc.Delete(id); err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("office deleted", zap.Uint("id", id))
	prometheus.RecordOperation("offices", "delete")
	return c.NoContent(http.StatusNoContent)
}
