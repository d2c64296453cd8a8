package duo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildSummary(t *testing.T) {
	names := Names{Me: "alpha", Duo: "beta"}

	cases := map[string]struct {
		reason     string
		stats      Accumulator
		matchCount int
		want       Summary
	}{
		"Empty": {
			reason: "An empty accumulator produces all-zero rates and a tied, unknown comfort pick.",
			stats:  NewAccumulator(),
			want: Summary{
				FirstRate:       "0%",
				FirstDeathRate:  "0%",
				ComfortBias:     "tied",
				ComfortPick:     "unknown",
				ComfortPickRate: "0%",
				DuoIdentity:     "scrappy finalists",
			},
		},
		"ComfortLeader": {
			reason: "A strictly higher usage rate names that side as the comfort bias.",
			stats: func() Accumulator {
				acc := NewAccumulator()
				acc.Games = 4
				acc.Wins = 2
				acc.PlacementTotal = 14
				acc.Champions.Me = map[string]int{"Jinx": 3, "Ahri": 1}
				acc.Champions.Duo = map[string]int{"Lux": 2, "Leona": 2}
				return acc
			}(),
			matchCount: 4,
			want: Summary{
				Games:                4,
				Wins:                 2,
				WinRate:              0.5,
				AvgPlacement:         3.5,
				FirstRate:            "0%",
				FirstDeathRate:       "0%",
				ComfortBias:          "alpha",
				ComfortPick:          "Jinx",
				ComfortPickRate:      "75%",
				ComfortPickRateValue: 0.75,
				DuoIdentity:          "chaos enjoyers",
				MatchCount:           4,
			},
		},
		"ComfortTie": {
			reason: "Exactly equal usage rates are tied and the pick falls to the first side's champion.",
			stats: func() Accumulator {
				acc := NewAccumulator()
				acc.Games = 4
				acc.Wins = 3
				acc.PlacementTotal = 8
				acc.Champions.Me = map[string]int{"Ahri": 2, "Zed": 2}
				acc.Champions.Duo = map[string]int{"Jinx": 2, "Lux": 1}
				return acc
			}(),
			matchCount: 4,
			want: Summary{
				Games:                4,
				Wins:                 3,
				WinRate:              0.75,
				AvgPlacement:         2,
				FirstRate:            "0%",
				FirstDeathRate:       "0%",
				ComfortBias:          "tied",
				ComfortPick:          "Ahri",
				ComfortPickRate:      "50%",
				ComfortPickRateValue: 0.5,
				DuoIdentity:          "overconfident climbers",
				MatchCount:           4,
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := BuildSummary(tc.stats, names, tc.matchCount)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("\n%s\nBuildSummary(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestBuildSummaryFirstDeathRate(t *testing.T) {
	acc := NewAccumulator()
	acc.Games = 4
	acc.FirstDeaths = SideCounts{Me: 1, Duo: 3}

	got := BuildSummary(acc, Names{Me: "alpha", Duo: "beta"}, 4)
	if got.FirstDeathRate != "75%" {
		t.Errorf("FirstDeathRate = %q, want the peakier side's 75%%", got.FirstDeathRate)
	}
}

func TestDuoIdentity(t *testing.T) {
	cases := map[string]struct {
		reason       string
		winRate      float64
		avgPlacement float64
		want         string
	}{
		"HighWinRate": {
			reason:       "A 62%+ top 4 rate is the climber identity.",
			winRate:      0.62,
			avgPlacement: 3.0,
			want:         "overconfident climbers",
		},
		"CoinflipBand": {
			reason:       "52-61% sits in the coinflip band.",
			winRate:      0.55,
			avgPlacement: 3.0,
			want:         "coinflip specialists",
		},
		"LowRateGoodPlacement": {
			reason:  "Losing records with strong average placement are scrappy finalists.",
			winRate: 0.4, avgPlacement: 2.1,
			want: "scrappy finalists",
		},
		"Chaos": {
			reason:  "Everything else is chaos.",
			winRate: 0.4, avgPlacement: 4.5,
			want: "chaos enjoyers",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := duoIdentity(tc.winRate, tc.avgPlacement); got != tc.want {
				t.Errorf("\n%s\nduoIdentity(%v, %v) = %q, want %q", tc.reason, tc.winRate, tc.avgPlacement, got, tc.want)
			}
		})
	}
}

func TestTopChampion(t *testing.T) {
	cases := map[string]struct {
		reason string
		counts map[string]int
		want   string
	}{
		"ClearLeader": {
			reason: "The highest count wins.",
			counts: map[string]int{"Jinx": 3, "Lux": 1},
			want:   "Jinx",
		},
		"AlphabeticalTieBreak": {
			reason: "Equal counts break ties alphabetically so the result is deterministic.",
			counts: map[string]int{"Zed": 2, "Ahri": 2, "Lux": 2},
			want:   "Ahri",
		},
		"Empty": {
			reason: "No usage means no champion.",
			counts: map[string]int{},
			want:   "",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, _ := topChampion(tc.counts)
			if got != tc.want {
				t.Errorf("\n%s\ntopChampion(...) = %q, want %q", tc.reason, got, tc.want)
			}
		})
	}
}
