package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"workout-generator-api/internal/api"
	"workout-generator-api/internal/config"
	"workout-generator-api/internal/logger"
	"workout-generator-api/internal/workout"
)

func main() {
	cfg, envLoaded, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	lm, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer lm.Sync()
	l := lm.Logger(context.Background())

	if !envLoaded {
		l.Info("No .env file found, reading environment variables")
	}

	generator := workout.NewGenerator(workout.DefaultCatalog(), workout.NewDefaultSampler())
	handler := api.NewHandler(generator, lm, cfg.RequestBodyLimit)

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: api.NewServer(handler, lm, cfg.AllowedOrigins),
	}

	go func() {
		l.Info("Server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("ListenAndServe error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	l.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		l.Error("Server forced to shutdown", zap.Error(err))
	}

	l.Info("Server exiting")
}
