// Package server exposes the duo report over HTTP: parameter normalization,
// the response cache, and assembly of the JSON payload from the aggregation
// and narrative layers.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"arenaduo/internal/cache"
	"arenaduo/internal/config"
	"arenaduo/internal/duo"
	"arenaduo/internal/logging"
	"arenaduo/internal/riot"
)

// sourceAuto tags verdicts and roasts rendered by the deterministic seeded
// selector.
const sourceAuto = "auto"

// MatchAPI is the slice of the Riot client the duo handler consumes.
type MatchAPI interface {
	ResolvePlayer(ctx context.Context, platform, regional, input string) (*riot.Player, error)
	MatchIDs(ctx context.Context, regional, puuid string, count int) ([]string, error)
	Match(ctx context.Context, regional, matchID string) (*riot.Match, error)
}

// TierSource loads the champion tier table. Failures degrade to no overlay.
type TierSource interface {
	Load(ctx context.Context) (*duo.TierTable, error)
}

// TextGate produces verdict text and roast cards with a source tag. A
// fallback source tag means the deterministic selector supplied the text.
type TextGate interface {
	Verdict(ctx context.Context, summary duo.Summary, names duo.Names, tone string) (string, string)
	Roasts(ctx context.Context, summary duo.Summary, names duo.Names, tone string, insights duo.Insights, fallback []duo.Roast) ([]duo.Roast, string)
}

// Server handles the duo report routes.
type Server struct {
	cfg   *config.Config
	riot  MatchAPI
	store cache.Store
	tiers TierSource
	gate  TextGate
	log   logging.Interface

	responseTTL time.Duration
}

// New wires a Server from its collaborators.
func New(cfg *config.Config, api MatchAPI, store cache.Store, tiers TierSource, gate TextGate) *Server {
	return &Server{
		cfg:         cfg,
		riot:        api,
		store:       store,
		tiers:       tiers,
		gate:        gate,
		log:         logging.Logger(),
		responseTTL: time.Duration(cfg.CacheTTLSeconds) * time.Second,
	}
}

// Handler returns the routed HTTP handler with CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /duo", s.handleDuo)
	mux.HandleFunc("GET /debug", s.handleDebug)
	return withCORS(mux)
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type duoMeta struct {
	Me     string `json:"me"`
	Duo    string `json:"duo"`
	Region string `json:"region"`
}

type responseMeta struct {
	Source        string  `json:"source"`
	UpdatedAt     string  `json:"updatedAt"`
	MatchCount    int     `json:"matchCount"`
	Duo           duoMeta `json:"duo"`
	VerdictSource string  `json:"verdictSource"`
	RoastsSource  string  `json:"roastsSource"`
}

type duoPayload struct {
	Meta     responseMeta    `json:"meta"`
	Summary  duo.Summary     `json:"summary"`
	Blame    duo.BlameResult `json:"blame"`
	Insights duo.Insights    `json:"insights"`
	Roasts   []duo.Roast     `json:"roasts"`
	Matches  []duo.MatchLine `json:"matches"`
	Verdict  string          `json:"verdict"`
}

type errorBody struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable,omitempty"`
}

func (s *Server) handleDuo(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	ctx := r.Context()

	params, err := ParseParams(r, s.cfg)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	s.log.Infof("duo request %s: region=%s me=%s duo=%s matches=%d tone=%s verdict=%s",
		requestID, params.Region, params.Me, params.Duo, params.Matches, params.Tone, params.Verdict)

	// fresh and ai renditions are one-offs; only the canonical auto payload
	// is cacheable.
	cacheKey := s.responseKey(params)
	if params.Verdict == VerdictAuto {
		if cached, ok, err := s.store.Get(ctx, cacheKey); err == nil && ok {
			var payload duoPayload
			if err := json.Unmarshal(cached, &payload); err == nil {
				payload.Meta.Source = "cache"
				s.log.Infof("duo request %s: served from cache", requestID)
				writeJSON(w, http.StatusOK, payload)
				return
			}
		} else if err != nil {
			s.log.Warnf("duo request %s: response cache read failed: %v", requestID, err)
		}
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	me, err := s.riot.ResolvePlayer(ctx, params.Platform, params.Regional, params.Me)
	if err != nil {
		s.writeUpstreamError(w, requestID, "resolve "+params.Me, err)
		return
	}
	partner, err := s.riot.ResolvePlayer(ctx, params.Platform, params.Regional, params.Duo)
	if err != nil {
		s.writeUpstreamError(w, requestID, "resolve "+params.Duo, err)
		return
	}

	scan, err := duo.Scan(ctx, s.riot, params.Regional, *me, *partner, params.Matches)
	if err != nil {
		s.writeUpstreamError(w, requestID, "scan matches", err)
		return
	}

	names := duo.Names{Me: me.Name, Duo: partner.Name}
	summary := duo.BuildSummary(scan.Stats, names, len(scan.Matches))

	var table *duo.TierTable
	if s.tiers != nil {
		table, err = s.tiers.Load(ctx)
		if err != nil {
			s.log.Warnf("duo request %s: tierlist unavailable, skipping meta overlay: %v", requestID, err)
			table = nil
		}
	}
	overlay := duo.BuildMetaOverlay(scan.Stats.Champions, table)

	insights := duo.BuildInsights(scan.Stats, summary, overlay)
	blame := duo.BuildBlame(summary, names, insights)
	fallbackRoasts := duo.BuildRoasts(summary, names, params.Tone, overlay, insights)

	// The seeded selection is what the response cache stores, so identical
	// stats render identical prose regardless of which mode the caller asked
	// for.
	autoVerdict := duo.BuildVerdict(summary, names, params.Tone, duo.VerdictOptions{})

	verdict, verdictSource := autoVerdict, sourceAuto
	roasts, roastsSource := fallbackRoasts, sourceAuto
	switch params.Verdict {
	case VerdictFresh:
		verdict = duo.BuildVerdict(summary, names, params.Tone, duo.VerdictOptions{Fresh: true})
		verdictSource = "fresh"
	case VerdictAI:
		// The two generation calls are independent; run them concurrently
		// and assemble once both land.
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			verdict, verdictSource = s.gate.Verdict(ctx, summary, names, params.Tone)
		}()
		go func() {
			defer wg.Done()
			roasts, roastsSource = s.gate.Roasts(ctx, summary, names, params.Tone, insights, fallbackRoasts)
		}()
		wg.Wait()
	}

	payload := duoPayload{
		Meta: responseMeta{
			Source:     "fresh",
			UpdatedAt:  time.Now().UTC().Format(time.RFC3339),
			MatchCount: len(scan.Matches),
			Duo: duoMeta{
				Me:     me.Name,
				Duo:    partner.Name,
				Region: params.Region,
			},
			VerdictSource: verdictSource,
			RoastsSource:  roastsSource,
		},
		Summary:  summary,
		Blame:    blame,
		Insights: insights,
		Roasts:   roasts,
		Matches:  scan.Matches,
		Verdict:  verdict,
	}

	// Whatever rendition the caller asked for, the cache holds the canonical
	// auto payload.
	canonical := payload
	canonical.Verdict = autoVerdict
	canonical.Roasts = fallbackRoasts
	canonical.Meta.VerdictSource = sourceAuto
	canonical.Meta.RoastsSource = sourceAuto
	if encoded, err := json.Marshal(canonical); err == nil {
		cache.PutAsync(s.store, cacheKey, encoded, s.responseTTL)
	}
	writeJSON(w, http.StatusOK, payload)
}

// responseKey pins the verdict mode to auto so a fresh or ai request never
// shadows the canonical cached payload.
func (s *Server) responseKey(p *Params) string {
	return cache.Key("duo-response", map[string]string{
		"region":  p.Region,
		"me":      p.Me,
		"duo":     p.Duo,
		"matches": strconv.Itoa(p.Matches),
		"tone":    p.Tone,
		"verdict": VerdictAuto,
	})
}

// writeUpstreamError maps Riot failures onto the response: rate limits are
// retryable 429s, upstream client errors keep their status, everything else
// is a bad gateway.
func (s *Server) writeUpstreamError(w http.ResponseWriter, requestID, action string, err error) {
	if errors.Is(err, riot.ErrRateLimited) {
		s.log.Warnf("duo request %s: rate limited during %s", requestID, action)
		writeJSON(w, http.StatusTooManyRequests, errorBody{
			Error:     "riot api rate limit hit, try again shortly",
			Retryable: true,
		})
		return
	}

	s.log.Errorf("duo request %s: %s failed: %v", requestID, action, err)
	status := http.StatusBadGateway
	var upstream *riot.StatusError
	if errors.As(err, &upstream) && upstream.Status >= 400 && upstream.Status < 500 {
		status = upstream.Status
	}
	writeJSON(w, status, errorBody{Error: action + ": " + err.Error()})
}

func (s *Server) handleDebug(w http.ResponseWriter, r *http.Request) {
	region := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("region")))
	if region == "" {
		region = s.cfg.DefaultRegion
	}
	platform, regional, ok := riot.Route(region)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"region":         region,
		"regionKnown":    ok,
		"platform":       platform,
		"regional":       regional,
		"riotKeySet":     s.cfg.RiotAPIKey != "",
		"openAIKeySet":   s.cfg.OpenAIKey != "",
		"tierlistSet":    s.cfg.TierlistURL != "",
		"defaultMatches": s.cfg.DefaultMatches,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Logger().Errorf("write response: %v", err)
	}
}
