package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/vbonduro/shoptime/internal/api"
	"github.com/vbonduro/shoptime/internal/config"
	"github.com/vbonduro/shoptime/internal/db"
	"github.com/vbonduro/shoptime/internal/imagestore/local"
	"github.com/vbonduro/shoptime/internal/logging"
	"github.com/vbonduro/shoptime/internal/seed"
	"github.com/vbonduro/shoptime/internal/service"
	"github.com/vbonduro/shoptime/internal/store"
	"github.com/vbonduro/shoptime/internal/web"
	"github.com/vbonduro/shoptime/internal/web/templates"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	itemStore := store.NewItemStore(database)

	if cfg.SeedCatalog {
		if _, err := seed.IfEmpty(ctx, itemStore, seed.DefaultCatalog, logger); err != nil {
			logger.Error("failed to seed catalog", "error", err)
			return
		}
	}

	images, err := local.NewLocalImageStore(cfg.ImagePath)
	if err != nil {
		logger.Error("failed to initialize image store", "error", err)
		return
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	catalog := service.NewCatalogService(itemStore, cfg.AboutConcurrency, logger)
	server := web.NewServer(catalog, templates.FS, images, api.NewServer(catalog, logger), logger)

	if err := server.ListenAndServe(ctx, cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "error", err)
	}
}
