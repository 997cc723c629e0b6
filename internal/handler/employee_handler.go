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

// EmployeeHandler serves the /api/employees resource.
type EmployeeHandler struct {
	svc *service.EmployeeService
}

func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// Register mounts the employee routes on the API group.
func (h *EmployeeHandler) Register(api *echo.Group) {
	g := api.Group("/employees")
	g.POST("/add", h.Add)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.GET("/email/:email", h.ByEmail)
	g.GET("/office/:officeCode", h.ByOfficeCode)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *EmployeeHandler) Add(c echo.Context) error {
	var employee model.Employee
	if err := c.Bind(&employee); err != nil {
		return invalidBody(c, err)
	}
	defer prometheus.TrackDBOperation("employee_add")(time.Now())
	created, err := h.svc.Add(&employee)
	if err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("employee created", zap.Uint("id", created.ID), zap.String("email", created.Email))
	prometheus.RecordOperation("employees", "add")
	return c.JSON(http.StatusOK, created)
}

func (h *EmployeeHandler) List(c echo.Context) error {
	employees, err := h.svc.GetAll()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	employee, err := h.svc.GetByID(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) ByEmail(c echo.Context) error {
	employee, err := h.svc.GetByEmail(c.Param("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) ByOfficeCode(c echo.Context) error {
	employees, err := h.svc.GetByOfficeCode(c.Param("officeCode"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) Update(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var employee model.Employee
	if err := c.Bind(&employee); err != nil {
		return invalidBody(c, err)
	}
	defer prometheus.TrackDBOperation("employee_update")(time.Now())
	updated, err := h.svc.Update(id, &employee)
	if err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("employee updated", zap.Uint("id", updated.ID))
	prometheus.RecordOperation("employees", "update")
	return c.JSON(http.StatusOK, updated)
}

func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	defer prometheus.TrackDBOperation("employee_delete")(time.Now())
	if err := h.svc.Delete(id); err != nil {
		return writeError(c, err)
	}
	logger.FromEcho(c).Info("employee deleted", zap.Uint("id", id))
	prometheus.RecordOperation("employees", "delete")
	return c.NoContent(http.StatusNoContent)
}
