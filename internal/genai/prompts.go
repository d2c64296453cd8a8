package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"arenaduo/internal/duo"
)

const arenaContext = "2v2v2v2v2v2v2v2, 8 teams, top 4 is a win, 1st is the crown"

// verdictPrompt is the stats payload handed to the model for verdicts.
type verdictPrompt struct {
	Players       []string       `json:"players"`
	Tone          string         `json:"tone"`
	ArenaContext  string         `json:"arenaContext"`
	Games         int            `json:"games"`
	Top4Wins      int            `json:"top4Wins"`
	Bottom4Losses int            `json:"bottom4Losses"`
	Top4Rate      string         `json:"top4Rate"`
	Firsts        int            `json:"firsts"`
	AvgPlacement  float64        `json:"avgPlacement"`
	FirstDeaths   duo.SideCounts `json:"firstDeaths"`
	UnusedUlts    duo.SideCounts `json:"unusedUlts"`
	ComfortBias   string         `json:"comfortBias"`
	ComfortPick   string         `json:"comfortPick"`
}

// roastPrompt extends the verdict payload with the comparative insights the
// model may roast about.
type roastPrompt struct {
	verdictPrompt
	Streaks    duo.Streaks      `json:"streaks"`
	Placements map[int]int      `json:"placements"`
	Shares     duo.Shares       `json:"shares"`
	Diversity  duo.Diversity    `json:"diversity"`
	Meta       *duo.MetaOverlay `json:"meta"`
}

func buildVerdictPrompt(summary duo.Summary, names duo.Names, tone string) verdictPrompt {
	losses := summary.Games - summary.Wins
	if losses < 0 {
		losses = 0
	}
	return verdictPrompt{
		Players:       []string{names.Me, names.Duo},
		Tone:          tone,
		ArenaContext:  arenaContext,
		Games:         summary.Games,
		Top4Wins:      summary.Wins,
		Bottom4Losses: losses,
		Top4Rate:      duo.FormatPercent(summary.WinRate),
		Firsts:        summary.Firsts,
		AvgPlacement:  float64(int(summary.AvgPlacement*100)) / 100,
		FirstDeaths:   summary.FirstDeaths,
		UnusedUlts:    summary.UnusedUlts,
		ComfortBias:   summary.ComfortBias,
		ComfortPick:   summary.ComfortPick,
	}
}

var verdictSystem = strings.Join([]string{
	"You write short, playful verdicts for League of Legends Arena duos.",
	"Arena is 2v2v2v2 with 8 teams; top 4 is a win; 1st place is the crown.",
	"Use the provided stats only; do not invent numbers or facts.",
	"2-4 sentences, banter not toxic, no profanity or slurs.",
	"Always share blame with Riot or RNG in a light way.",
	"Avoid 'small sample size' unless games < 8.",
}, " ")

var roastSystem = strings.Join([]string{
	"You generate 4 roast cards for League of Legends Arena duos.",
	"Arena is 2v2v2v2 with 8 teams; top 4 is a win; 1st place is the crown.",
	`Output JSON only with schema: {"roasts":[{"title":"...","body":"..."}]}`,
	"Titles: 2-4 words, lowercase. Bodies: 1-2 sentences.",
	"Use only the provided stats; do not invent numbers or facts.",
	"Avoid repeating the same stat focus across cards.",
	"Mention each player at least once across the set.",
	"Include a meta/off-meta card if meta data is present.",
	"No profanity or slurs. Avoid 'small sample size' unless games < 8.",
}, " ")

// GenerateVerdict asks the model for a verdict paragraph. Empty output is
// an error so the caller falls back.
func (c *Client) GenerateVerdict(ctx context.Context, summary duo.Summary, names duo.Names, tone string) (string, error) {
	payload, err := json.MarshalIndent(buildVerdictPrompt(summary, names, tone), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal verdict prompt: %w", err)
	}

	raw, err := c.Complete(ctx, verdictSystem, "Stats JSON:\n"+string(payload), 0.8, 140)
	if err != nil {
		return "", err
	}
	text := collapseWhitespace(raw)
	if text == "" {
		return "", fmt.Errorf("empty verdict from model")
	}
	return text, nil
}

type roastDocument struct {
	Roasts []duo.Roast `json:"roasts"`
}

// GenerateRoasts asks the model for raw roast cards. Schema violations are
// errors so the caller falls back.
func (c *Client) GenerateRoasts(ctx context.Context, summary duo.Summary, names duo.Names, tone string, insights duo.Insights) ([]duo.Roast, error) {
	prompt := roastPrompt{
		verdictPrompt: buildVerdictPrompt(summary, names, tone),
		Streaks:       insights.Streaks,
		Placements:    insights.Placements,
		Shares:        insights.Shares,
		Diversity:     insights.Diversity,
		Meta:          insights.Meta,
	}
	payload, err := json.MarshalIndent(prompt, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal roast prompt: %w", err)
	}

	raw, err := c.Complete(ctx, roastSystem, "Stats JSON:\n"+string(payload), 0.9, 220)
	if err != nil {
		return nil, err
	}

	jsonText := extractJSONBlock(raw)
	if jsonText == "" {
		return nil, fmt.Errorf("no json block in roast response")
	}
	var doc roastDocument
	if err := json.Unmarshal([]byte(jsonText), &doc); err != nil {
		return nil, fmt.Errorf("decode roast response: %w", err)
	}
	if doc.Roasts == nil {
		return nil, fmt.Errorf("roast response missing roasts array")
	}
	return doc.Roasts, nil
}

// NormalizeRoasts cleans model-produced cards: whitespace collapsed, titles
// lowercased, duplicates dropped. Fewer than three usable cards rejects the
// whole set in favor of the deterministic fallback; the second return
// value is false in that case.
func NormalizeRoasts(roasts, fallback []duo.Roast) ([]duo.Roast, bool) {
	var cleaned []duo.Roast
	seen := map[string]bool{}
	for _, roast := range roasts {
		title := collapseWhitespace(roast.Title)
		body := collapseWhitespace(roast.Body)
		if title == "" || body == "" {
			continue
		}
		key := strings.ToLower(title)
		if seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, duo.Roast{Title: key, Body: body})
	}
	if len(cleaned) < 3 {
		return fallback, false
	}
	if len(cleaned) > 4 {
		cleaned = cleaned[:4]
	}
	return cleaned, true
}
