package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/multimodal-bug-summarizer/trainer/internal/config"
	"github.com/multimodal-bug-summarizer/trainer/internal/domain"
	"github.com/multimodal-bug-summarizer/trainer/internal/orchestrator"
	gemini_provider "github.com/multimodal-bug-summarizer/trainer/internal/provider/gemini"
	openai_provider "github.com/multimodal-bug-summarizer/trainer/internal/provider/openai"
	"github.com/multimodal-bug-summarizer/trainer/internal/server"
	"github.com/multimodal-bug-summarizer/trainer/internal/telemetry"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	shutdownTracer, err := telemetry.InitTracer("trainer", logger)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			logger.Error("failed to shutdown tracer", slog.String("error", err.Error()))
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Priority order: Gemini first, then OpenAI, then the rule-based
	// fallback inside the orchestrator. Providers with no credential
	// report themselves unavailable and are skipped.
	providers := []domain.Provider{
		gemini_provider.New(cfg.Gemini.APIKey),
		openai_provider.New(cfg.OpenAI.APIKey),
	}
	if cfg.Gemini.APIKey == "" && cfg.OpenAI.APIKey == "" {
		logger.Warn("no AI provider credentials configured, every request will use rule-based analysis")
	}

	orch := orchestrator.New(providers, logger)
	handler := server.NewHandler(orch)

	srv := server.New(cfg.Server.Port, logger)
	srv.Router.Get("/", handler.HandleRoot)
	srv.Router.Get("/health", handler.HandleHealth)
	srv.Router.Post("/inference", handler.HandleInference)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	case <-sigCh:
		logger.Info("shutdown signal received, stopping server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
