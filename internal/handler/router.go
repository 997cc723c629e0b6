package handler

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"catalog-service/internal/middleware"
)

// Registrar is implemented by every resource handler.
type Registrar interface {
	Register(api *echo.Group)
}

// Mount attaches the middleware chain, operational endpoints and every
// resource handler under /api.
func Mount(e *echo.Echo, handlers ...Registrar) {
	e.Use(echomw.Recover())
	e.Use(middleware.RequestIDMiddleware)
	e.Use(middleware.MetricsMiddleware)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", Health)

	api := e.Group("/api")
	for _, h := range handlers {
		h.Register(api)
	}
}
