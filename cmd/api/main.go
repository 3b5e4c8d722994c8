//	@title			CreatorHub API
//	@version		1.0
//	@description	Backend for CreatorHub — a small media-sharing application.
//
//	@host		localhost:3000
//	@BasePath	/

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/creatorhub/service/internal/account"
	"github.com/creatorhub/service/internal/api"
	"github.com/creatorhub/service/internal/config"
	"github.com/creatorhub/service/internal/logger"
	"github.com/creatorhub/service/internal/media"
	"github.com/creatorhub/service/internal/profile"
	"github.com/creatorhub/service/internal/storage"

	_ "github.com/creatorhub/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(!cfg.IsProduction())
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer zlog.Sync()

	// Blob storage: S3-compatible if configured, otherwise local filesystem
	var (
		blobs      storage.Storage
		uploadsDir string
	)
	if cfg.StorageEndpoint != "" {
		minioStore, err := storage.NewMinioStorage(
			cfg.StorageEndpoint,
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			cfg.StorageBucket,
			cfg.StoragePublicBase,
			cfg.StorageUseSSL,
			zlog,
		)
		if err != nil {
			zlog.Fatalw("object storage init failed", "error", err)
		}
		blobs = minioStore
		zlog.Infow("using object storage", "endpoint", cfg.StorageEndpoint, "bucket", cfg.StorageBucket)
	} else {
		localStore, err := storage.NewLocalStorage(cfg.UploadDir)
		if err != nil {
			zlog.Fatalw("local storage init failed", "error", err)
		}
		blobs = localStore
		uploadsDir = localStore.Dir()
		zlog.Infow("using local filesystem storage", "dir", uploadsDir)
	}

	// Wire dependencies: store → service → handler
	registry := media.NewRegistry()
	mediaSvc := media.NewService(registry, blobs, zlog)
	mediaHandler := media.NewHandler(mediaSvc, cfg.MaxUploadBytes)

	profileSvc := profile.NewService(profile.NewStore(), blobs, registry)
	profileHandler := profile.NewHandler(profileSvc, cfg.MaxUploadBytes)

	accountSvc := account.NewService(account.NewDirectory())
	accountHandler := account.NewHandler(accountSvc, profileSvc)

	router := api.NewRouter(api.Deps{
		Config:     cfg,
		Log:        zlog,
		Accounts:   accountHandler,
		Profiles:   profileHandler,
		Media:      mediaHandler,
		UploadsDir: uploadsDir,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zlog.Infow("server listening", "port", cfg.Port, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatalw("server error", "error", err)
		}
	}()

	<-quit
	zlog.Info("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatalw("forced shutdown", "error", err)
	}

	zlog.Info("server stopped")
}
