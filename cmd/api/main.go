package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/calorielens/backend/config"
	"github.com/pageza/calorielens/backend/internal/classifier"
	"github.com/pageza/calorielens/backend/internal/database"
	"github.com/pageza/calorielens/backend/internal/logger"
	"github.com/pageza/calorielens/backend/internal/server"
	"github.com/pageza/calorielens/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server exited with error", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	ctx := context.Background()

	db, err := database.New(cfg, zl)
	if err != nil {
		return err
	}
	defer database.Close(db) //nolint:errcheck

	if err := database.Migrate(db); err != nil {
		return err
	}

	clf, err := classifier.New(ctx, cfg.Classifier)
	if err != nil {
		return err
	}

	deps := server.Dependencies{DB: db, Classifier: clf}

	if cfg.RedisURL != "" {
		client, err := database.NewRedisClient(ctx, cfg.RedisURL, zl)
		if err != nil {
			zl.Warn("redis unavailable, running without nutrition cache", zap.Error(err))
		} else {
			defer client.Close()
			deps.Redis = client
		}
	}

	if cfg.S3BucketName != "" {
		s3cfg, err := config.NewS3Config(ctx, cfg.AWSRegion, cfg.S3BucketName)
		if err != nil {
			zl.Warn("S3 unavailable, uploads will not be archived", zap.Error(err))
		} else {
			deps.Archive = service.NewS3UploadArchive(s3cfg.Client, s3cfg.BucketName)
		}
	}

	srv, err := server.New(cfg, deps, zl)
	if err != nil {
		return err
	}

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		zl.Info("received signal", zap.String("signal", sig.String()))
	}

	zl.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	zl.Info("server stopped")
	return nil
}
