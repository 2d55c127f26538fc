package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/weissgruber/website/cmd/website/internal/configuration"
)

func setupLogger(config *configuration.Config, version string) {
	options := &slog.HandlerOptions{
		Level: logLevel(config.LogLevel),
	}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, options)

	if version == "development" {
		handler = slog.NewTextHandler(os.Stdout, options)
	}

	slog.SetDefault(slog.New(handler).With("version", version))
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
