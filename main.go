package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"food-ordering-api/auth"
	"food-ordering-api/config"
	"food-ordering-api/handlers"
	"food-ordering-api/logging"
	"food-ordering-api/middleware"
	"food-ordering-api/routes"
	"food-ordering-api/service"
	"food-ordering-api/store"
	"food-ordering-api/telemetry"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(cfg.ServiceName, cfg.LogLevel, os.Stdout)
	slog.SetDefault(log)
	log.Info("configuration loaded", "config", cfg.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.SetupTracing(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Warn("tracing shutdown failed", "error", err)
		}
	}()

	// Initialize database
	db, err := store.Open(ctx, cfg.DBPath, log)
	if err != nil {
		return err
	}
	defer db.Close()
	if cfg.SeedData {
		if err := db.Seed(ctx); err != nil {
			return err
		}
	}

	metrics := telemetry.NewMetrics()
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
	coupons := service.NewCoupons(db, metrics, log)
	h := handlers.New(
		service.NewAccounts(db, tokens, log),
		service.NewCatalog(db),
		coupons,
		service.NewOrders(db, db, db, coupons, cfg.Orders, metrics, log),
		service.NewAdmin(db, db, db),
		db,
		log,
	)
	if err := handlers.RegisterValidators(); err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log, metrics), middleware.CORS(cfg.CORSOrigins))
	routes.SetupRoutes(r, h, tokens, metrics)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
