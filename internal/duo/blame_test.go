package duo

import (
	"math"
	"strings"
	"testing"
)

func blameFixture(t *testing.T, mutate func(*Accumulator)) (Summary, Insights) {
	t.Helper()
	acc := NewAccumulator()
	acc.Games = 10
	acc.Wins = 4
	acc.PlacementTotal = 45
	acc.Placements = map[int]int{1: 1, 2: 1, 3: 1, 4: 1, 5: 2, 6: 2, 7: 1, 8: 1}
	acc.Kills = SideCounts{Me: 40, Duo: 30}
	acc.Deaths = SideCounts{Me: 35, Duo: 15}
	acc.Damage = SideCounts{Me: 120000, Duo: 80000}
	acc.DamageTaken = SideCounts{Me: 90000, Duo: 110000}
	acc.Healing = SideCounts{Me: 5000, Duo: 15000}
	if mutate != nil {
		mutate(&acc)
	}
	summary := BuildSummary(acc, Names{Me: "alpha", Duo: "beta"}, acc.Games)
	return summary, BuildInsights(acc, summary, nil)
}

func assertSharesSumToOne(t *testing.T, reason string, got BlameResult) {
	t.Helper()
	sum := got.Me.Share + got.Duo.Share + got.Riot.Share
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("\n%s\nblame shares sum to %v, want 1", reason, sum)
	}
}

func TestBuildBlameDegenerate(t *testing.T) {
	got := BuildBlame(Summary{}, Names{Me: "alpha", Duo: "beta"}, Insights{})

	if got.Me.Share != 0.33 || got.Duo.Share != 0.33 || got.Riot.Share != 0.34 {
		t.Errorf("zero-games shares = %v/%v/%v, want the fixed 0.33/0.33/0.34 split",
			got.Me.Share, got.Duo.Share, got.Riot.Share)
	}
	for _, party := range []BlameParty{got.Me, got.Duo, got.Riot} {
		if party.Reason != "no data yet" {
			t.Errorf("degenerate reason = %q, want %q", party.Reason, "no data yet")
		}
		if party.Breakdown == nil || len(party.Breakdown) != 0 {
			t.Errorf("degenerate breakdown = %v, want empty non-nil", party.Breakdown)
		}
	}
	assertSharesSumToOne(t, "The degenerate case must still sum to 1.", got)
}

func TestBuildBlameSumsToOne(t *testing.T) {
	cases := map[string]struct {
		reason string
		mutate func(*Accumulator)
	}{
		"Typical": {
			reason: "A typical mixed record must normalize to 1.",
		},
		"Dominant": {
			reason: "One side holding every negative stat must still normalize to 1.",
			mutate: func(acc *Accumulator) {
				acc.Deaths = SideCounts{Me: 60, Duo: 5}
				acc.Damage = SideCounts{Me: 10000, Duo: 190000}
				acc.LowItemGames = SideCounts{Me: 6}
				acc.EconomyChampGames = SideCounts{Me: 5}
			},
		},
		"Winning": {
			reason: "A winning record swaps the variance baseline but still normalizes.",
			mutate: func(acc *Accumulator) {
				acc.Wins = 8
			},
		},
		"NoCombat": {
			reason: "Without combat stats only non-combat factors apply, and shares still normalize.",
			mutate: func(acc *Accumulator) {
				acc.Kills = SideCounts{}
				acc.Deaths = SideCounts{}
				acc.Damage = SideCounts{}
				acc.DamageTaken = SideCounts{}
				acc.Healing = SideCounts{}
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			summary, insights := blameFixture(t, tc.mutate)
			got := BuildBlame(summary, Names{Me: "alpha", Duo: "beta"}, insights)
			assertSharesSumToOne(t, tc.reason, got)
		})
	}
}

func TestBuildBlameCombatGate(t *testing.T) {
	summary, insights := blameFixture(t, func(acc *Accumulator) {
		acc.Kills = SideCounts{}
		acc.Deaths = SideCounts{}
		acc.Damage = SideCounts{}
		acc.DamageTaken = SideCounts{}
		acc.Healing = SideCounts{}
	})

	got := BuildBlame(summary, Names{Me: "alpha", Duo: "beta"}, insights)
	for _, party := range []BlameParty{got.Me, got.Duo} {
		for _, factor := range party.Breakdown {
			if factor.Factor == "execution" || factor.Factor == "impact" {
				t.Errorf("factor %q scored without combat stats; combat factors must be gated", factor.Factor)
			}
		}
	}
}

func TestBuildBlameExecutionDominates(t *testing.T) {
	summary, insights := blameFixture(t, func(acc *Accumulator) {
		acc.Deaths = SideCounts{Me: 45, Duo: 5}
	})

	got := BuildBlame(summary, Names{Me: "alpha", Duo: "beta"}, insights)
	if got.Me.Share <= got.Duo.Share {
		t.Errorf("me share %v <= duo share %v, want the death-heavy side blamed more",
			got.Me.Share, got.Duo.Share)
	}
	if !strings.Contains(got.Me.Reason, "grey screen") {
		t.Errorf("me reason = %q, want the execution detail to headline", got.Me.Reason)
	}
}

func TestBuildBlameMetaOnlyWhileLosing(t *testing.T) {
	overlay := &MetaOverlay{
		Me:  MetaSide{Total: 10, MetaRate: 0.9, SRate: 0.5, OffMetaRate: 0.1},
		Duo: MetaSide{Total: 10, MetaRate: 0.9, SRate: 0.5, OffMetaRate: 0.1},
	}

	hasMetaFactor := func(result BlameResult) bool {
		for _, factor := range result.Me.Breakdown {
			if factor.Factor == "meta" {
				return true
			}
		}
		return false
	}

	losingSummary, losingInsights := blameFixture(t, nil)
	losingInsights.Meta = overlay
	if !hasMetaFactor(BuildBlame(losingSummary, Names{Me: "alpha", Duo: "beta"}, losingInsights)) {
		t.Error("losing with an overlay must produce a meta factor")
	}

	winningSummary, winningInsights := blameFixture(t, func(acc *Accumulator) {
		acc.Wins = 8
	})
	winningInsights.Meta = overlay
	if hasMetaFactor(BuildBlame(winningSummary, Names{Me: "alpha", Duo: "beta"}, winningInsights)) {
		t.Error("a winning record must not be blamed for meta habits")
	}
}

func TestPlacementStdDev(t *testing.T) {
	placements := map[int]int{4: 4}
	if got := placementStdDev(placements, 4, 4); got != 0 {
		t.Errorf("placementStdDev of a constant histogram = %v, want 0", got)
	}

	spread := map[int]int{1: 2, 8: 2}
	if got := placementStdDev(spread, 4.5, 4); math.Abs(got-3.5) > 1e-9 {
		t.Errorf("placementStdDev of a 1/8 split = %v, want 3.5", got)
	}
}
