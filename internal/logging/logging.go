// Package logging builds the zap loggers used by the console binaries.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the level and destination of log output.
type Config struct {
	Level string // debug, info, warn, error
	File  string // empty means the fallback sink
}

// Sink is the destination used when Config.File is empty.
type Sink int

const (
	// SinkStderr writes to standard error.
	SinkStderr Sink = iota
	// SinkDiscard drops everything. The terminal UI owns stdout and stderr,
	// so it only logs when a file is configured.
	SinkDiscard
)

// ParseLevel converts a level name into a zapcore.Level.
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// New builds a JSON logger for cfg. The returned close function flushes and
// releases the log file, if any.
func New(cfg Config, fallback Sink) (*zap.Logger, func(), error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		output  zapcore.WriteSyncer
		closeFn = func() {}
	)
	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) // #nosec G304 -- path comes from config
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", cfg.File, err)
		}
		output = zapcore.AddSync(f)
		closeFn = func() { _ = f.Close() }
	case fallback == SinkDiscard:
		return zap.NewNop(), closeFn, nil
	default:
		output = zapcore.Lock(os.Stderr)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), output, level)
	logger := zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))

	return logger, func() {
		_ = logger.Sync()
		closeFn()
	}, nil
}
