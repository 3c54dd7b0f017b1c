package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lucidmotion/showreel/internal/auth"
	"github.com/lucidmotion/showreel/internal/cache"
	"github.com/lucidmotion/showreel/internal/catalog"
	"github.com/lucidmotion/showreel/internal/config"
	"github.com/lucidmotion/showreel/internal/httpapi"
	"github.com/lucidmotion/showreel/internal/logging"
	"github.com/lucidmotion/showreel/internal/ratelimit"
	"github.com/lucidmotion/showreel/internal/vimeo"
)

// providerMinInterval spaces outbound provider calls so traversal fan-out
// stays inside the provider's rate budget.
const providerMinInterval = 100 * time.Millisecond

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Default().Error("invalid configuration", logging.WithField("error", err.Error()))
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)

	var (
		store   cache.Store
		limiter ratelimit.Limiter
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		store = cache.NewRedis(redisClient, "showreel:")
		limiter = ratelimit.NewShared(redisClient, "showreel:ratelimit:", providerMinInterval)
		logger.Info("using redis backends", logging.WithField("addr", cfg.RedisAddr))
	} else {
		memory := cache.NewMemory()
		defer memory.Stop()
		store = memory
		limiter = ratelimit.NewLocal(providerMinInterval)
	}

	client := vimeo.NewClient(vimeo.Config{
		Token:   cfg.VimeoToken,
		TeamID:  cfg.VimeoTeamID,
		BaseURL: cfg.VimeoBaseURL,
		Timeout: cfg.HTTPTimeout,
	}, limiter, logger)

	svc := catalog.NewService(client, cfg.VimeoRootFolder, store, cfg.CacheTTL, logger)

	var admin *auth.Middleware
	if cfg.AdminJWTSecret != "" {
		admin = auth.NewMiddleware(cfg.AdminJWTSecret, logger)
	}

	api := httpapi.NewCatalogAPI(svc, admin, cfg.PublicBaseURL, logger)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, httpapi.CORSMiddleware(cfg.PublicBaseURL))

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.RequestID(logger, mux),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("catalog service listening", logging.WithField("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", logging.WithField("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown incomplete", logging.WithField("error", err.Error()))
	}
}
