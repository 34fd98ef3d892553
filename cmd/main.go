package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"postboard/config"
	"postboard/internal/app"
	"postboard/pkg/logger"

	"github.com/go-chi/httplog/v2"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	httpLogger := httplog.NewLogger("postboard", httplog.Options{
		JSON:            cfg.Log.JSON,
		LogLevel:        logger.ParseLevel(cfg.Log.Level),
		Concise:         true,
		RequestHeaders:  false,
		QuietDownRoutes: []string{"/healthz", "/readyz"},
	})
	slog.SetDefault(httpLogger.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithLogger(ctx, httpLogger.Logger)

	a, err := app.NewApp(ctx, cfg, httpLogger)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		slog.Error("app stopped with error", "error", err)
		os.Exit(1)
	}
}
