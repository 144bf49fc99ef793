// Package main runs the event check-in HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gatepass/backend/config"
	"github.com/gatepass/backend/internal/attendees"
	"github.com/gatepass/backend/internal/auth"
	"github.com/gatepass/backend/internal/qr"
	"github.com/gatepass/backend/internal/router"
	"github.com/gatepass/backend/pkg/database"
	"github.com/gatepass/backend/pkg/storage"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()

	var store attendees.Store
	if cfg.Mongo.URI != "" {
		client, db, err := database.NewMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database, logger)
		if err != nil {
			logger.Fatal("mongo", zap.Error(err))
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		repo := attendees.NewRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.Fatal("mongo indexes", zap.Error(err))
		}
		store = repo
	} else {
		logger.Warn("MONGO_URI not set, using in-memory store (records are lost on restart)")
		store = attendees.NewMemoryStore()
	}

	imageStore, qrLocalDir := newImageStore(ctx, cfg, logger)
	qrService := qr.NewService(imageStore, cfg.QR.Size)

	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.JWTExpireHours)
	authHandler := auth.NewHandler(cfg.Auth.ScannerPassword, cfg.Auth.ScannerPasswordHash, jwtService, logger)
	if !authHandler.Enabled() {
		logger.Warn("no scanner password configured, scan endpoints are open")
	}

	attendeeHandler := attendees.NewHandler(store, qrService, cfg.Server.BaseURL, logger)

	engine := router.New(router.Deps{
		Logger:             logger,
		Attendees:          attendeeHandler,
		Auth:               authHandler,
		JWT:                jwtService,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		EventDate:          cfg.Event.Date,
		TZOffsetMinutes:    cfg.Event.TZOffsetMinutes,
		QRLocalDir:         qrLocalDir,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

// newImageStore selects the QR image backend. The second return value is
// the directory to serve under /qr/, non-empty only in local mode.
func newImageStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (qr.ImageStore, string) {
	switch cfg.QR.Storage {
	case "s3":
		if cfg.AWS.Bucket == "" {
			logger.Warn("QR_STORAGE=s3 but AWS_BUCKET_NAME not set, falling back to inline QR images")
			return storage.NewInline(), ""
		}
		s3Store, err := storage.NewS3(ctx, storage.S3Config{
			Region:          cfg.AWS.Region,
			AccessKeyID:     cfg.AWS.AccessKeyID,
			SecretAccessKey: cfg.AWS.SecretAccessKey,
			Bucket:          cfg.AWS.Bucket,
		}, logger)
		if err != nil {
			logger.Warn("s3 disabled, falling back to inline QR images", zap.Error(err))
			return storage.NewInline(), ""
		}
		return s3Store, ""
	case "local":
		localStore, err := storage.NewLocal(cfg.QR.LocalDir, cfg.Server.BaseURL)
		if err != nil {
			logger.Warn("local QR storage disabled, falling back to inline QR images", zap.Error(err))
			return storage.NewInline(), ""
		}
		return localStore, cfg.QR.LocalDir
	default:
		return storage.NewInline(), ""
	}
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
