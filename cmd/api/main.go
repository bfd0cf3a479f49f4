package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pageza/recipe-chef/backend/config"
	"github.com/pageza/recipe-chef/backend/internal/api"
	"github.com/pageza/recipe-chef/backend/internal/logger"
	"github.com/pageza/recipe-chef/backend/internal/router"
	"github.com/pageza/recipe-chef/backend/internal/server"
	"github.com/pageza/recipe-chef/backend/internal/service"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Setup(cfg)

	if !cfg.HasAPIKey() {
		slog.Warn("no Gemini API key configured; recipe generation will fail until one is provided")
	}

	llmService := service.NewLLMService(service.LLMConfig{
		APIKey:      cfg.GeminiAPIKey,
		BaseURL:     cfg.LLMBaseURL,
		Model:       cfg.LLMModel,
		Temperature: cfg.LLMTemperature,
	})

	engine := router.SetupRouter(cfg,
		api.NewHealthHandler(cfg),
		api.NewLLMHandler(llmService, cfg.LLMTimeout))

	// Create and start server
	srv := server.New(cfg, engine)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	case sig := <-quit:
		slog.Info("received signal", "signal", sig.String())
	}

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
