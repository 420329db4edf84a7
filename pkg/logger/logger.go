package logger

import (
	"github.com/dezh-tech/immortal/pkg/logger"
)

type Config = logger.Config

func InitGlobalLogger(cfg *Config) {
	logger.InitGlobalLogger(cfg)
}

func Info(msg string, args ...any) {
	logger.Info(msg, args...)
}

func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}
