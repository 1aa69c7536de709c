package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"horaires.srtgn.tn/internal/app"
	"horaires.srtgn.tn/internal/appconf"
	"horaires.srtgn.tn/internal/clock"
	"horaires.srtgn.tn/internal/engine"
	"horaires.srtgn.tn/internal/logging"
	"horaires.srtgn.tn/internal/metrics"
	"horaires.srtgn.tn/internal/restapi"
	"horaires.srtgn.tn/internal/timetable"
	"horaires.srtgn.tn/internal/translate"
	"horaires.srtgn.tn/internal/webui"
)

// ParseAPIKeys splits a comma-separated string of API keys and trims whitespace from each key.
// Returns an empty slice if the input is empty.
func ParseAPIKeys(apiKeysFlag string) []string {
	if apiKeysFlag == "" {
		return []string{}
	}

	keys := strings.Split(apiKeysFlag, ",")
	for i := range keys {
		keys[i] = strings.TrimSpace(keys[i])
	}
	return keys
}

// BuildApplication creates and initializes the Application with all dependencies.
// This includes creating the logger, loading the timetable, and constructing
// the recommendation engine. Returns an error if the timetable cannot be
// imported.
func BuildApplication(cfg appconf.Config, timetableCfg timetable.Config) (*app.Application, error) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	translator := translate.Default()

	manager, err := timetable.InitManager(context.Background(), timetableCfg, translator)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize timetable manager: %w", err)
	}
	manager.LogStatistics(logger)

	appMetrics := metrics.New()
	snapshot := manager.Snapshot()
	appMetrics.SetTimetable(snapshot.TripCount(), snapshot.LoadedAt())

	coreApp := &app.Application{
		Config:           cfg,
		TimetableConfig:  timetableCfg,
		Logger:           logger,
		Translator:       translator,
		TimetableManager: manager,
		Engine:           engine.NewEngine(translator),
		Clock:            clock.SystemClock{},
		Metrics:          appMetrics,
	}

	return coreApp, nil
}

// CreateServer creates and configures the HTTP server with routes and middleware.
// Sets up both REST API routes and WebUI routes, applies security headers, and adds request logging.
func CreateServer(coreApp *app.Application, cfg appconf.Config) *http.Server {
	api := restapi.NewRestAPI(coreApp)

	webUI := &webui.WebUI{
		Application: coreApp,
	}

	mux := http.NewServeMux()

	api.SetRoutes(mux)
	webUI.SetWebUIRoutes(mux)

	// Wrap with security headers, then request IDs and metrics
	handler := api.WithSecurityHeaders(mux)
	handler = restapi.RequestIDMiddleware(handler)
	if coreApp.Metrics != nil {
		handler = coreApp.Metrics.Middleware(handler)
	}

	// Add request logging middleware (outermost)
	requestLogger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)
	requestLogMiddleware := restapi.NewRequestLoggingMiddleware(requestLogger)
	handler = requestLogMiddleware(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(coreApp.Logger.Handler(), slog.LevelError),
	}

	return srv
}

// Run manages the server lifecycle with graceful shutdown.
// Starts the server in a goroutine, waits for shutdown signals (SIGINT, SIGTERM),
// and performs graceful shutdown with a 30-second timeout.
// Returns an error if the server fails to start or shutdown fails.
func Run(srv *http.Server, manager *timetable.Manager, logger *slog.Logger) error {
	logger.Info("starting server", "addr", srv.Addr)

	// Set up signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Channel to capture server errors
	serverErrors := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Wait for either shutdown signal or server error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down server...")
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	// Shutdown timetable manager
	if manager != nil {
		manager.Shutdown()
	}

	logger.Info("server exited")
	return nil
}
