package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/currentlyhq/currently/internal/adapters/sqlite"
	"github.com/currentlyhq/currently/internal/app/services"
	"github.com/currentlyhq/currently/internal/config"
	"github.com/currentlyhq/currently/internal/db"
	"github.com/currentlyhq/currently/internal/observability"
	"github.com/currentlyhq/currently/internal/pinclient"
	"github.com/currentlyhq/currently/internal/server"
	"github.com/currentlyhq/currently/internal/server/routes"
	"github.com/currentlyhq/currently/internal/slackbridge"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	log := slog.New(observability.WrapSlogHandler(
		slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
	))
	slog.SetDefault(log)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return
	}

	if cfg.IsLocalDevelopment() && cfg.Slack.SigningSecret == "" {
		slog.Warn("SLACK_SIGNING_SECRET not set, interaction callbacks will be rejected")
	}

	ctx := context.Background()
	shutdownOtel, err := observability.SetupOpenTelemetry(ctx, log, observability.OpenTelemetryConfig(cfg.Observability))
	if err != nil {
		slog.Error("Failed to set up OpenTelemetry", "error", err)
		return
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOtel(shutdownCtx); err != nil {
			slog.Error("Failed to shut down OpenTelemetry", "error", err)
		}
	}()

	database, err := db.New(cfg.Database.Path)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	store := sqlite.NewStore(database)
	projectDirectory := services.NewProjectDirectoryService(store)
	pinService := services.NewPinService(store)

	slackHandler := slackbridge.NewHandler(
		cfg.Slack.SigningSecret,
		store,
		projectDirectory,
		slackbridge.NewWebAPIDialogOpener(),
		pinclient.New(cfg.PinAPI.BaseURL, cfg.PinAPI.Token),
		log,
	)

	srv := server.New(log)
	srv.RegisterRouter(routes.NewSlackRoutes(slackHandler))
	srv.RegisterRouter(routes.NewPinRoutes(pinService, cfg.PinAPI.Token, log))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("Starting server", "port", cfg.Server.Port)
	slog.Error("Closing server", "error", srv.Start(addr))
}
