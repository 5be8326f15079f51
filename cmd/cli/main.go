package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/Jaswanthh22/otpauth-cli/internal/buildinfo"
	"github.com/Jaswanthh22/otpauth-cli/internal/client/cli"
	"github.com/Jaswanthh22/otpauth-cli/internal/client/config"
	"github.com/Jaswanthh22/otpauth-cli/internal/logging"
	"github.com/lmittmann/tint"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	log := logging.NewSlogLogger(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	})))

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	start, ok := cli.ParsePage(cfg.StartPage)
	if !ok {
		log.Warn(ctx, "unknown start page, nothing to do", "page", cfg.StartPage)
		return
	}

	if err := app.Run(ctx, start); err != nil {
		log.Error(ctx, "exited with error", "error", err)
		os.Exit(1)
	}
}
