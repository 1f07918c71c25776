package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-friendly-stays/internal/adapters/maps/mapbox"
	"pet-friendly-stays/internal/adapters/storage"
	"pet-friendly-stays/internal/platform/config"
	"pet-friendly-stays/internal/platform/httpclient"
	"pet-friendly-stays/internal/platform/logger"
	"pet-friendly-stays/internal/router"
)

// @title Pet Friendly Stays API
// @version 1.0
// @description Búsqueda de alojamientos pet-friendly, perfiles de mascotas y asistente de viaje.
// @BasePath /
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run arma todo y bloquea hasta el shutdown; main sólo traduce el error a exit code.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("config error", map[string]any{"err": err})
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	if zl, ok := log.(*logger.ZapLogger); ok {
		defer func() { _ = zl.Sync() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backends, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Error("storage error", map[string]any{"driver": cfg.StorageDriver, "err": err})
		return err
	}
	defer func() {
		if err := backends.Close(); err != nil {
			log.Warn("storage close", map[string]any{"err": err})
		}
	}()

	mapCfg := mapbox.Config{Token: cfg.MapboxToken}
	if cfg.MapboxVerifyToken {
		api, err := httpclient.New(cfg.MapboxAPIURL, httpclient.DefaultTimeout)
		if err != nil {
			log.Error("mapbox api url", map[string]any{"url": cfg.MapboxAPIURL, "err": err})
			return err
		}
		mapCfg.API = api
	}
	mapProvider := mapbox.New(mapCfg)
	if !mapProvider.Configured() {
		log.Info("map token not set; map endpoints will ask for one", nil)
	}

	r := router.NewRouter(router.Options{
		Logger:          log,
		KV:              backends.KV,
		Sessions:        backends.Sessions,
		MapProvider:     mapProvider,
		VetDelay:        cfg.VetLookupDelay,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown error", map[string]any{"err": err})
		}
	}()

	log.Info("starting server", map[string]any{"addr": cfg.Addr(), "storage": cfg.StorageDriver})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"err": err})
		return err
	}
	log.Info("server stopped", nil)
	return nil
}
