package main

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"catalog-service/internal/handler"
	"catalog-service/internal/repository"
	"catalog-service/internal/service"
	"catalog-service/pkg/config"
	"catalog-service/pkg/database"
	"catalog-service/pkg/logger"
	"catalog-service/prometheus"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting catalog-service", appConfig.LogFields()...)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")
	db := database.GetDB()

	// Assemble repositories, services and handlers
	officeSvc := service.NewOfficeService(db, repository.NewOfficeRepository())
	employeeSvc := service.NewEmployeeService(db, repository.NewEmployeeRepository())
	customerSvc := service.NewCustomerService(db, repository.NewCustomerRepository())
	orderSvc := service.NewOrderService(db, repository.NewOrderRepository())
	orderDetailSvc := service.NewOrderDetailService(db, repository.NewOrderDetailRepository())
	paymentSvc := service.NewPaymentService(db, repository.NewPaymentRepository())
	productLineSvc := service.NewProductLineService(db, repository.NewProductLineRepository())
	productSvc := service.NewProductService(db, repository.NewProductRepository())

	e := echo.New()
	e.HideBanner = true
	handler.Mount(e,
		handler.NewOfficeHandler(officeSvc),
		handler.NewEmployeeHandler(employeeSvc),
		handler.NewCustomerHandler(customerSvc),
		handler.NewOrderHandler(orderSvc),
		handler.NewOrderDetailHandler(orderDetailSvc),
		handler.NewPaymentHandler(paymentSvc),
		handler.NewProductLineHandler(productLineSvc),
		handler.NewProductHandler(productSvc),
	)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
