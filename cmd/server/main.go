package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/config"
	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/logging"
	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/sentiment"
	"github.com/jordangavi/CUSTOMER-FEEDBACK-ANALYSIS-SENTIMENT-ANALYSIS-Text-Mining-Project/internal/server"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	// The scorer loads its lexicon once here; it is stateless afterwards.
	scorer := sentiment.NewVaderScorer()
	annotator := sentiment.NewAnnotator(scorer, cfg.AnalyzeWorkers)

	srv, err := server.NewServer(cfg, annotator, clock)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
