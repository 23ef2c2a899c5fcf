// File: appconf/logger.go
package appconf

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

func init() {
	mustRegisterEngine(CategoryLogger, "console", newConsoleLogger)
	mustRegisterEngine(CategoryLogger, "null", newNullLogger)
}

// loggerOptions are the options the built-in logger engines understand.
type loggerOptions struct {
	Level string `config:"level"`
}

// slogEngine is a logger engine backed by a structured slog.Logger.
type slogEngine struct {
	name   string
	logger *slog.Logger
}

func (e *slogEngine) EngineName() string {
	return e.name
}

func (e *slogEngine) Logger() *slog.Logger {
	return e.logger
}

// newConsoleLogger builds a JSON logger writing to stderr. The level option
// defaults to info when missing or unrecognized.
func newConsoleLogger(cfg EngineConfig) (Engine, error) {
	var opts loggerOptions
	if err := DecodeOptions(cfg.Options, &opts); err != nil {
		return nil, err
	}

	return &slogEngine{
		name:   cfg.Name,
		logger: newSlogLogger(opts.Level, os.Stderr),
	}, nil
}

// newNullLogger builds a logger that discards everything.
func newNullLogger(cfg EngineConfig) (Engine, error) {
	return &slogEngine{
		name:   cfg.Name,
		logger: newSlogLogger("error", io.Discard),
	}, nil
}

func newSlogLogger(level string, w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
