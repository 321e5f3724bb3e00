package config

import (
	"strings"

	"go.uber.org/zap"
)

var Log *zap.SugaredLogger

// InitLogger builds the global logger for the configured run mode
func InitLogger() error {
	var cfg zap.Config
	switch strings.ToLower(RunMode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	zapLogger, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zapLogger.Sugar()
	return nil
}

func init() {
	if err := InitLogger(); err != nil {
		panic(err)
	}
}
