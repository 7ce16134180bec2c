package main

import (
	"log/slog"
	"os"
	"strings"

	"calbook/internal/cli"
	"calbook/internal/config"
)

func main() {
	level := slog.LevelInfo
	if cfg, err := config.Load(); err == nil {
		level = parseLogLevel(cfg.LogLevel)
	}

	// Logs go to stderr; stdout carries the operation result line.
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})).With(
		slog.String("service", "calbook"),
	)
	slog.SetDefault(log)

	cli.Execute()
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
