package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/config"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	ai "resume-builder/pkg/ai"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))
	cfg := config.Load()
	ctx := context.Background()

	// the export log is optional
	exportsPool, err := infra.NewExportsPool(ctx, cfg.Export.DatabaseURL)
	if err != nil {
		slog.Warn("export log DB not available", "error", err)
		exportsPool = nil
	}
	if exportsPool != nil {
		defer exportsPool.Close()
		if err := migration.RunMigrations(ctx, exportsPool); err != nil {
			slog.Warn("export log migrations failed", "error", err)
		}
	}

	aiClient := ai.NewClient(cfg.AI.ServiceURL, cfg.AI.Agent, cfg.AI.Timeout)
	builder := usecase.NewBuilder(
		repo.NewSessionStore(),
		infra.NewChromedpRenderer(cfg.Export.ChromePath),
		repo.NewExportsRepo(exportsPool),
		aiClient.NewSummaryFormatter(),
		usecase.WithRenderAttempts(cfg.Export.RenderAttempts),
	)

	app := fiber.New(fiber.Config{AppName: "resume-builder"})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	httpadapter.NewHandler(builder).Register(app)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "port", cfg.Server.Port)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-shutdown
	slog.Info("shutting down server")
	sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(sctx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
