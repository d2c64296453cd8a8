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

	"arenaduo/internal/cache"
	"arenaduo/internal/config"
	"arenaduo/internal/genai"
	"arenaduo/internal/logging"
	"arenaduo/internal/riot"
	"arenaduo/internal/server"
	"arenaduo/internal/tierlist"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf("config load failed: %v", err)
		os.Exit(1)
	}

	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Errorf("invalid redis url: %v", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	store := cache.NewRedisStore(redisClient)
	riotClient := riot.NewClient(cfg.RiotAPIKey)
	tiers := tierlist.NewSource(cfg.TierlistURL, time.Duration(cfg.TierlistTTLSeconds)*time.Second, store)
	gate := genai.NewGate(
		genai.NewClient(cfg.OpenAIURL, cfg.OpenAIKey, cfg.OpenAIModel),
		store,
		time.Duration(cfg.AIVerdictTTLSeconds)*time.Second,
		time.Duration(cfg.AIRoastsTTLSeconds)*time.Second,
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(cfg, riotClient, store, tiers, gate).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Errorf("shutdown failed: %v", err)
		}
	}()

	logger.Infof("listening on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("server ended: %v", err)
		os.Exit(1)
	}
	logger.Infof("server stopped")
}
