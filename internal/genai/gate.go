package genai

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"arenaduo/internal/cache"
	"arenaduo/internal/duo"
	"arenaduo/internal/logging"
)

// Text sources reported alongside verdicts and roast sets.
const (
	SourceAI       = "ai"
	SourceAICache  = "ai-cache"
	SourceFallback = "ai-fallback"
)

// Gate sits between the request path and the chat model. Generated text is
// cached under a stats fingerprint so identical duo stats reuse the same
// output instead of burning tokens, and every failure path returns the
// deterministic fallback instead of an error.
type Gate struct {
	client     *Client
	store      cache.Store
	verdictTTL time.Duration
	roastTTL   time.Duration
}

// NewGate builds a Gate. A disabled client short-circuits to fallbacks.
func NewGate(client *Client, store cache.Store, verdictTTL, roastTTL time.Duration) *Gate {
	return &Gate{
		client:     client,
		store:      store,
		verdictTTL: verdictTTL,
		roastTTL:   roastTTL,
	}
}

func (g *Gate) key(scope, fingerprint, tone string, names duo.Names) string {
	return cache.Key(scope, map[string]string{
		"key":  fingerprint,
		"tone": tone,
		"me":   names.Me,
		"duo":  names.Duo,
	})
}

// Verdict returns a verdict paragraph and its source. Cache hits on the
// stats fingerprint are served as-is; generation failures fall back to a
// freshly rolled deterministic verdict.
func (g *Gate) Verdict(ctx context.Context, summary duo.Summary, names duo.Names, tone string) (string, string) {
	fallback := func() (string, string) {
		return duo.BuildVerdict(summary, names, tone, duo.VerdictOptions{Fresh: true}), SourceFallback
	}
	if !g.client.Enabled() {
		return fallback()
	}

	key := g.key("ai-verdict", duo.VerdictFingerprint(summary, tone), tone, names)
	if cached, ok, err := g.store.Get(ctx, key); err == nil && ok {
		text := strings.TrimSpace(string(cached))
		if text != "" {
			return text, SourceAICache
		}
	} else if err != nil {
		logging.Logger().Warnf("verdict cache read failed: %v", err)
	}

	text, err := g.client.GenerateVerdict(ctx, summary, names, tone)
	if err != nil {
		logging.Logger().Warnf("verdict generation failed: %v", err)
		return fallback()
	}
	cache.PutAsync(g.store, key, []byte(text), g.verdictTTL)
	return text, SourceAI
}

// Roasts returns a roast set and its source. Cached sets are re-normalized
// on read so a bad cached payload still degrades to fallback.
func (g *Gate) Roasts(ctx context.Context, summary duo.Summary, names duo.Names, tone string, insights duo.Insights, fallback []duo.Roast) ([]duo.Roast, string) {
	if !g.client.Enabled() {
		return fallback, SourceFallback
	}

	key := g.key("ai-roasts", duo.RoastFingerprint(summary, insights, tone), tone, names)
	if cached, ok, err := g.store.Get(ctx, key); err == nil && ok {
		var stored []duo.Roast
		if err := json.Unmarshal(cached, &stored); err == nil {
			if normalized, usable := NormalizeRoasts(stored, fallback); usable {
				return normalized, SourceAICache
			}
		}
	} else if err != nil {
		logging.Logger().Warnf("roast cache read failed: %v", err)
	}

	raw, err := g.client.GenerateRoasts(ctx, summary, names, tone, insights)
	if err != nil {
		logging.Logger().Warnf("roast generation failed: %v", err)
		return fallback, SourceFallback
	}
	normalized, usable := NormalizeRoasts(raw, fallback)
	if !usable {
		return fallback, SourceFallback
	}
	if encoded, err := json.Marshal(normalized); err == nil {
		cache.PutAsync(g.store, key, encoded, g.roastTTL)
	}
	return normalized, SourceAI
}
