package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"catalog-service/pkg/config"
)

var (
	mu       sync.Mutex
	instance *zap.Logger
)

// InitLogger builds the process logger from configuration.
func InitLogger(cfg *config.Config) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stdout"}
	logger, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}
	mu.Lock()
	instance = logger
	mu.Unlock()
}

// GetLogger returns the process logger, building a default production
// logger when InitLogger has not run (tests, tooling).
func GetLogger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = zap.Must(zap.NewProduction())
	}
	return instance
}
