package logger

import (
	"go.uber.org/zap"
)

// LoggerConfig controls construction of the process logger.
type LoggerConfig struct {
	Debug bool
}

// NewLogger creates a zap logger for the process: a development logger with
// debug level enabled when Debug is set, a production logger otherwise. Both
// write to stderr, keeping stdout free for generated output.
func NewLogger(cfg *LoggerConfig) (*zap.Logger, error) {
	if cfg != nil && cfg.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
