package duo

import (
	"strings"
	"testing"
)

func TestBuildVerdictDeterministic(t *testing.T) {
	summary, _, names := roastFixture(t)

	first := BuildVerdict(summary, names, ToneClassic, VerdictOptions{})
	second := BuildVerdict(summary, names, ToneClassic, VerdictOptions{})
	if first != second {
		t.Errorf("identical inputs must produce byte-identical verdicts:\n%q\n%q", first, second)
	}
}

func TestBuildVerdictNoGames(t *testing.T) {
	names := Names{Me: "alpha", Duo: "beta"}
	got := BuildVerdict(Summary{}, names, ToneClassic, VerdictOptions{})

	if !strings.Contains(got, "no shared arena games") {
		t.Errorf("zero games must explain the empty window, got %q", got)
	}
	if !strings.Contains(got, "alpha") || !strings.Contains(got, "beta") {
		t.Errorf("the empty-window message must still name both players, got %q", got)
	}
}

func TestBuildVerdictContent(t *testing.T) {
	summary, _, names := roastFixture(t)

	cases := map[string]struct {
		reason string
		tone   string
	}{
		"Gentle":  {reason: "Gentle verdicts still carry the full stat line.", tone: ToneGentle},
		"Classic": {reason: "Classic verdicts carry the full stat line.", tone: ToneClassic},
		"Savage":  {reason: "Savage verdicts carry the full stat line.", tone: ToneSavage},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := BuildVerdict(summary, names, tc.tone, VerdictOptions{})
			for _, fragment := range []string{"alpha", "beta", "top 4", "arena games"} {
				if !strings.Contains(got, fragment) {
					t.Errorf("\n%s\nverdict %q missing %q", tc.reason, got, fragment)
				}
			}
		})
	}
}

func TestBuildVerdictFresh(t *testing.T) {
	summary, _, names := roastFixture(t)

	got := BuildVerdict(summary, names, ToneClassic, VerdictOptions{Fresh: true})
	if got == "" {
		t.Error("a fresh verdict must never be empty")
	}
	if !strings.Contains(got, "alpha") {
		t.Errorf("a fresh verdict must still use the real stats, got %q", got)
	}
}

func TestBuildVerdictTiedComfort(t *testing.T) {
	summary, _, names := roastFixture(t)
	summary.ComfortBias = "tied"
	summary.ComfortPick = "Jinx"

	got := BuildVerdict(summary, names, ToneClassic, VerdictOptions{})
	if !strings.Contains(got, "both lean on Jinx") {
		t.Errorf("a tied comfort bias must read as shared, got %q", got)
	}
}

func TestVerdictSeed(t *testing.T) {
	summary, _, _ := roastFixture(t)
	if VerdictSeed(summary) != VerdictSeed(summary) {
		t.Error("VerdictSeed must be a pure function of the summary")
	}

	other := summary
	other.FirstDeaths.Duo++
	if VerdictSeed(summary) == VerdictSeed(other) {
		t.Error("changing the partner's first deaths must change the seed")
	}
}
