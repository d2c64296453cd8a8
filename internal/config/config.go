package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the arena duo service.
type Config struct {
	Addr string

	RiotAPIKey string
	RedisURL   string

	OpenAIKey   string
	OpenAIModel string
	OpenAIURL   string

	TierlistURL string

	DefaultRegion  string
	DefaultMe      string
	DefaultDuo     string
	DefaultMatches int

	CacheTTLSeconds     int
	AIVerdictTTLSeconds int
	AIRoastsTTLSeconds  int
	TierlistTTLSeconds  int
}

// Load builds a Config from environment variables. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:           envOr("ADDR", ":8080"),
		RiotAPIKey:     os.Getenv("RIOT_API_KEY"),
		RedisURL:       os.Getenv("REDIS_URL"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:    envOr("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIURL:      envOr("OPENAI_URL", "https://api.openai.com/v1/chat/completions"),
		TierlistURL:    envOr("TIERLIST_URL", "https://raw.githubusercontent.com/deanyo/league-arena-duo/main/tierlist.json"),
		DefaultRegion:  envOr("DEFAULT_REGION", "euw"),
		DefaultMe:      os.Getenv("DEFAULT_ME"),
		DefaultDuo:     os.Getenv("DEFAULT_DUO"),
		DefaultMatches: envIntOr("DEFAULT_MATCHES", 25),

		CacheTTLSeconds:     envIntOr("CACHE_TTL_SECONDS", 3600),
		AIVerdictTTLSeconds: envIntOr("AI_VERDICT_TTL_SECONDS", 86400),
		AIRoastsTTLSeconds:  envIntOr("AI_ROASTS_TTL_SECONDS", 86400),
		TierlistTTLSeconds:  envIntOr("TIERLIST_TTL_SECONDS", 86400),
	}

	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required")
	}

	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}
