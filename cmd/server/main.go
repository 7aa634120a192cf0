package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/studyloop/backend/internal/api"
	"github.com/studyloop/backend/internal/infrastructure/config"
	"github.com/studyloop/backend/internal/jobs"
	"github.com/studyloop/backend/internal/service"
	"github.com/studyloop/backend/internal/store"

	_ "github.com/studyloop/backend/docs" // generated swagger docs
)

// @title           StudyLoop API
// @version         1.0
// @description     Spaced-repetition scoring and scheduling backend — record task results, pick review tasks, recommend recaps, and report test statistics.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	resultsSvc := service.NewResultsService(db, logger, nil)
	reviewSvc := service.NewReviewService(db, logger, nil, nil)
	recapSvc := service.NewRecapService(db, logger, nil)
	masterySvc := service.NewMasteryService(db, logger)
	statsSvc := service.NewStatisticsService(db, logger)
	handler := api.NewHandler(db, resultsSvc, reviewSvc, recapSvc, masterySvc, statsSvc, logger)

	cleaner := jobs.NewSessionCleaner(db, logger, cfg.SessionMaxAge)
	if err := cleaner.Start(cfg.CleanupInterval); err != nil {
		logger.Error("failed to start session cleanup", "error", err)
		os.Exit(1)
	}
	defer cleaner.Stop()

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
