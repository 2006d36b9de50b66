// Package main implements the entry point for the course advisor API server,
// which recommends courses from an uploaded catalog, scores questionnaire
// answers, and calculates GPAs, with optional LLM-backed ranking enrichment.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusware/course-advisor/internal/api"
	"github.com/campusware/course-advisor/internal/config"
	"github.com/campusware/course-advisor/internal/platform/gemini"
	"github.com/campusware/course-advisor/internal/platform/logger"
	"github.com/campusware/course-advisor/internal/platform/pdfextract"
	"github.com/campusware/course-advisor/internal/questionnaire"
	"github.com/campusware/course-advisor/internal/recommendation"
	"github.com/campusware/course-advisor/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// run loads configuration, wires the application components, and serves HTTP
// until the context is cancelled.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"enrichment_enabled", cfg.LLM.EnrichmentEnabled())

	// The enrichment service is strictly optional: without an API key the
	// rule-based scorer serves every request.
	var enricher recommendation.Enricher
	if cfg.LLM.EnrichmentEnabled() {
		geminiEnricher, err := gemini.NewEnricher(ctx, appLogger, cfg.LLM)
		if err != nil {
			return fmt.Errorf("failed to create enrichment client: %w", err)
		}
		enricher = geminiEnricher
	}

	advisor := service.NewAdvisorService(pdfextract.New(appLogger), enricher, appLogger)
	sessions := service.NewSessionStore()

	router := api.NewRouter(api.RouterDeps{
		Advisor:   advisor,
		Sessions:  sessions,
		Bank:      questionnaire.DefaultBank,
		ModelName: cfg.LLM.ModelName,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	appLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
