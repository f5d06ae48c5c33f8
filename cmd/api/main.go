package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadp "loan-crm/internal/adapter/http"
	"loan-crm/internal/adapter/middleware"
	"loan-crm/internal/app"
	"loan-crm/internal/config"
	"loan-crm/internal/infrastructure/cache"
	"loan-crm/internal/logger"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(cfg, zl)
	if err != nil {
		zl.Fatal("startup failed", zap.Error(err))
	}
	defer a.Close()

	var mws []echo.MiddlewareFunc
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(ctx, cfg)
		if err != nil {
			zl.Fatal("redis unavailable", zap.Error(err))
		}
		defer rdb.Close()
		ttl := time.Duration(cfg.IdempTTLSecs) * time.Second
		mws = append(mws, middleware.NewIdempotency(rdb, ttl, zl.Named("idempotency")).Middleware())
	} else {
		zl.Info("REDIS_ADDR not set, idempotency middleware disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover(), echomw.BodyLimit("20M"))

	httpadp.Register(e, httpadp.Handlers{
		Health:       httpadp.NewHandler(a.Ping),
		Employees:    httpadp.NewEmployeeHandler(a.Employees),
		Applications: httpadp.NewApplicationHandler(a.Applications, a.Importer),
		Products:     httpadp.NewProductHandler(a.Products),
		Documents:    httpadp.NewDocumentHandler(a.Documents),
		Reports:      httpadp.NewReportHandler(a.Reports),
		Admin:        httpadp.NewAdminHandler(a.Admin),
	}, mws...)

	addr := ":" + cfg.AppPort
	go func() {
		zl.Info("listening", zap.String("addr", addr), zap.String("db_driver", cfg.DBDriver))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}
}
