package server

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"arenaduo/internal/config"
	"arenaduo/internal/duo"
	"arenaduo/internal/riot"
)

// Verdict modes accepted on the request surface.
const (
	VerdictAuto  = "auto"
	VerdictFresh = "fresh"
	VerdictAI    = "ai"
)

const (
	minMatches = 5
	maxMatches = 50
)

// Params is a fully normalized duo request: routed region, resolved player
// identifiers, clamped match count, valid tone, valid verdict mode.
type Params struct {
	Region   string
	Platform string
	Regional string

	Me  string
	Duo string

	Matches int
	Tone    string
	Verdict string
}

// ParseParams normalizes the /duo query string against configured defaults.
// Unknown regions and missing player names are request errors; everything
// else clamps or falls back silently.
func ParseParams(r *http.Request, cfg *config.Config) (*Params, error) {
	q := r.URL.Query()

	region := strings.ToLower(strings.TrimSpace(q.Get("region")))
	if region == "" {
		region = cfg.DefaultRegion
	}
	platform, regional, ok := riot.Route(region)
	if !ok {
		return nil, fmt.Errorf("unknown region %q", region)
	}

	me := strings.TrimSpace(q.Get("me"))
	if me == "" {
		me = cfg.DefaultMe
	}
	partner := strings.TrimSpace(q.Get("duo"))
	if partner == "" {
		partner = cfg.DefaultDuo
	}
	if me == "" || partner == "" {
		return nil, fmt.Errorf("me and duo players are required")
	}

	return &Params{
		Region:   region,
		Platform: platform,
		Regional: regional,
		Me:       me,
		Duo:      partner,
		Matches:  clampMatches(q.Get("matches"), cfg.DefaultMatches),
		Tone:     duo.NormalizeTone(q.Get("tone")),
		Verdict:  normalizeVerdictMode(q.Get("verdict")),
	}, nil
}

func clampMatches(raw string, fallback int) int {
	count := fallback
	if raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			count = parsed
		}
	}
	if count < minMatches {
		return minMatches
	}
	if count > maxMatches {
		return maxMatches
	}
	return count
}

func normalizeVerdictMode(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case VerdictFresh, "manual":
		return VerdictFresh
	case VerdictAI:
		return VerdictAI
	default:
		return VerdictAuto
	}
}
