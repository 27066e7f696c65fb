package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/sujalsuyash/NASDAQ-stock-market/internal/app/di"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/app/router"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/config"
	infradb "github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/db"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/externalapi/supabase"
	"github.com/sujalsuyash/NASDAQ-stock-market/internal/platform/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .envは任意（本番では環境変数を直接渡す）
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Warn("failed to load .env")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	log := logger.Setup(cfg.LogLevel, os.Stdout)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	sbCfg := supabase.LoadConfig()

	// db
	db, err := infradb.OpenDB(sbCfg.DBURL, cfg.RunMigrations, di.Models()...)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() {
			if err := sqlDB.Close(); err != nil {
				log.WithError(err).Error("failed to close database")
			}
		}()
	}

	verifier, err := di.NewTokenVerifier(cfg.AuthVerifier, sbCfg)
	if err != nil {
		log.Fatalf("failed to init token verifier: %v", err)
	}

	if os.Getenv("FINNHUB_KEY") == "" {
		log.Warn("FINNHUB_KEY is not set. Search, profile and quote requests will fail.")
	}

	// Handler
	yahooMarket := di.NewYahooMarket()
	r := router.NewRouter(router.Deps{
		Logger:         log,
		Verifier:       verifier,
		Market:         di.NewMarketHandler(yahooMarket, cfg.LogoHosts),
		Candles:        di.NewCandlesHandler(yahooMarket),
		Wishlist:       di.NewWishlistHandler(db),
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithFields(logrus.Fields{"addr": cfg.Addr(), "env": cfg.Env}).Info("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("server shutdown error: %v", err)
	}
	log.Info("server stopped")
}
