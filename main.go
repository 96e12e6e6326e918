package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"pricing-agent/config"
	httpLayer "pricing-agent/http"
	"pricing-agent/repository"
	"pricing-agent/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
		logger.WithField("addr", cfg.RedisAddr).Info("using redis break-even cache")
	} else {
		cache = repository.NewMemoryCache(cfg.BreakEvenCacheSize)
	}

	quoteRepo := repository.NewQuoteRepositoryMemory()

	pricingService := service.NewPricingService(quoteRepo, logger)
	amortizationService := service.NewAmortizationService(cache, logger)
	sensitivityService := service.NewSensitivityService(pricingService, logger)

	quoteHandler := httpLayer.NewQuoteHandler(pricingService, cfg.TaxRate, logger)
	sensitivityHandler := httpLayer.NewSensitivityHandler(sensitivityService, cfg.TaxRate, logger)
	capitalCostHandler := httpLayer.NewCapitalCostHandler(amortizationService, logger)
	taxHandler := httpLayer.NewTaxHandler(logger)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	router := mux.NewRouter()
	router.Use(rateLimiter.Middleware)

	pricingRouter := router.PathPrefix("/pricing").Subrouter()
	quoteHandler.RegisterRoutes(pricingRouter)
	sensitivityHandler.RegisterRoutes(pricingRouter)

	capitalCostRouter := router.PathPrefix("/capital-cost").Subrouter()
	capitalCostHandler.RegisterRoutes(capitalCostRouter)

	taxRouter := router.PathPrefix("/tax").Subrouter()
	taxHandler.RegisterRoutes(taxRouter)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.WithField("addr", cfg.Addr).Info("pricing API listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.WithError(err).Error("server failed to start")
		return
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("error during server shutdown")
	}

	logger.Info("server exited")
}
