// Package handler exposes the catalog services over HTTP. Each handler
// binds the JSON body, delegates to its service and maps the outcome to
// the REST contract: 200 with body, 204 for deletes, 400 for validation,
// 404 for absent records, 409 for unique-key conflicts, 500 otherwise.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"catalog-service/internal/apperr"
	"catalog-service/pkg/logger"
)

// parseID reads the numeric :id path parameter.
func parseID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func invalidID(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid id"})
}

func invalidBody(c echo.Context, err error) error {
	logger.FromEcho(c).Warn("invalid request body", zap.Error(err))
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
}

// writeError translates a service error into the HTTP contract.
func writeError(c echo.Context, err error) error {
	if ve, ok := apperr.AsValidation(err); ok {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":  "validation failed",
			"fields": ve.Fields,
		})
	}
	if ce, ok := apperr.AsConflict(err); ok {
		return c.JSON(http.StatusConflict, echo.Map{"error": ce.Message})
	}
	if apperr.IsNotFound(err) {
		return c.NoContent(http.StatusNotFound)
	}
	logger.FromEcho(c).Error("request failed", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}
