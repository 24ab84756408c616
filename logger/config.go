package logger

import (
	"go.uber.org/zap/zapcore"
)

// Config controls the format and level of the process logger.
type Config struct {
	Format string        `mapstructure:"format"`
	Level  zapcore.Level `mapstructure:"level"`
}

// NewConfig returns a new instance of Config with defaults.
func NewConfig() Config {
	return Config{
		Format: "auto",
	}
}
