// Package tierlist loads the externally hosted champion tier table used for
// the optional meta overlay.
package tierlist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"arenaduo/internal/cache"
	"arenaduo/internal/duo"
	"arenaduo/internal/logging"
)

// aliases normalizes known champion name variants before lookup.
var aliases = map[string]string{
	"wukong":         "monkeyking",
	"nunuwillump":    "nunu",
	"nunuandwillump": "nunu",
}

var tierLetters = []string{"S", "A", "B", "C", "D"}

// document is the hosted tier-list shape. The tiers may sit under a "tiers"
// wrapper or at the top level.
type document struct {
	Tiers map[string][]string `json:"tiers"`
}

// Source fetches the tier list over HTTP and caches the raw document in the
// shared response cache.
type Source struct {
	url        string
	ttl        time.Duration
	store      cache.Store
	httpClient *http.Client
}

// NewSource builds a tier-list source.
func NewSource(url string, ttl time.Duration, store cache.Store) *Source {
	return &Source{
		url:   url,
		ttl:   ttl,
		store: store,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Load returns the current tier table. Fetch failures return an error that
// callers degrade to a nil overlay; they must never fail the request.
func (s *Source) Load(ctx context.Context) (*duo.TierTable, error) {
	raw, err := s.fetchRaw(ctx)
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

func (s *Source) fetchRaw(ctx context.Context) ([]byte, error) {
	key := cache.Key("tierlist", map[string]string{"url": s.url})
	if cached, ok, err := s.store.Get(ctx, key); err == nil && ok {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build tierlist request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tierlist fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tierlist fetch error: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read tierlist: %w", err)
	}

	cache.PutAsync(s.store, key, raw, s.ttl)
	logging.Logger().Debugf("tierlist refreshed from %s (%d bytes)", s.url, len(raw))
	return raw, nil
}

// Parse builds a tier table from a raw tier-list document.
func Parse(raw []byte) (*duo.TierTable, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode tierlist: %w", err)
	}
	tiers := doc.Tiers
	if tiers == nil {
		// No "tiers" wrapper; the letters sit at the top level.
		if err := json.Unmarshal(raw, &tiers); err != nil {
			return nil, fmt.Errorf("decode tierlist: %w", err)
		}
	}

	table := &duo.TierTable{ByChampion: map[string]string{}}
	for _, tier := range tierLetters {
		entries := tiers[tier]
		if entries == nil {
			entries = tiers[strings.ToLower(tier)]
		}
		for _, name := range entries {
			key := duo.NormalizeChampionKey(name)
			if key == "" {
				continue
			}
			if mapped, ok := aliases[key]; ok {
				key = mapped
			}
			table.ByChampion[key] = tier
			table.Entries++
		}
	}
	return table, nil
}
