package logger

import (
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const TimeFormat = time.RFC3339

// New creates a debug-level console logger writing to w. Used by tests and
// as the fallback when no config is given.
func New(w io.Writer) *zap.Logger {
	config := NewConfig()
	config.Level = zapcore.DebugLevel

	l, _ := config.New(w)
	return l
}

// New creates a logger per the config's format and level.
func (c *Config) New(defaultOutput io.Writer) (*zap.Logger, error) {
	w := defaultOutput

	encoder, err := newEncoder(c.Format)
	if err != nil {
		return nil, err
	}

	return zap.New(zapcore.NewCore(
		encoder,
		zapcore.Lock(zapcore.AddSync(w)),
		c.Level,
	), zap.Fields(zap.String("log_id", nextID()))), nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	config := newEncoderConfig()
	switch format {
	case "json":
		return zapcore.NewJSONEncoder(config), nil
	case "console", "auto", "":
		return zapcore.NewConsoleEncoder(config), nil
	default:
		return nil, &unknownFormatError{format: format}
	}
}

func newEncoderConfig() zapcore.EncoderConfig {
	config := zap.NewProductionEncoderConfig()
	config.EncodeTime = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(ts.UTC().Format(TimeFormat))
	}
	config.EncodeDuration = func(d time.Duration, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(d.String())
	}
	return config
}

type unknownFormatError struct {
	format string
}

func (e *unknownFormatError) Error() string {
	return "unknown logging format: " + e.format
}
