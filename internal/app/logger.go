package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initLogger создает и настраивает логгер
func initLogger(logLevel string) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	switch logLevel {
	case "production":
		logger, err = zap.NewProduction()
	case "", "development":
		logger, err = zap.NewDevelopment()
	default:
		level, parseErr := zapcore.ParseLevel(logLevel)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to init logger: unknown level %q", logLevel)
		}
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = cfg.Build()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	return logger, nil
}
