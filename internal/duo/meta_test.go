package duo

import (
	"math"
	"testing"
)

func TestNormalizeChampionKey(t *testing.T) {
	cases := map[string]struct {
		reason string
		input  string
		want   string
	}{
		"Plain":      {reason: "Plain names just lowercase.", input: "Jinx", want: "jinx"},
		"Spaced":     {reason: "Spaces are stripped so display and api names share a key.", input: "Miss Fortune", want: "missfortune"},
		"Punctuated": {reason: "Punctuation is stripped.", input: "Kai'Sa", want: "kaisa"},
		"Numbered":   {reason: "Digits survive normalization.", input: "Nunu2", want: "nunu2"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := NormalizeChampionKey(tc.input); got != tc.want {
				t.Errorf("\n%s\nNormalizeChampionKey(%q) = %q, want %q", tc.reason, tc.input, got, tc.want)
			}
		})
	}
}

func denseTable() *TierTable {
	table := &TierTable{ByChampion: map[string]string{
		"jinx": "S", "ahri": "A", "lux": "B", "leona": "C", "draven": "D",
		"senna": "S", "pyke": "A", "zed": "B", "yasuo": "C", "teemo": "D",
	}}
	table.Entries = len(table.ByChampion)
	return table
}

func TestBuildMetaOverlay(t *testing.T) {
	champions := SideChampions{
		Me:  map[string]int{"Jinx": 6, "Lux": 2, "Aurelion Sol": 2},
		Duo: map[string]int{"Leona": 5, "Draven": 5},
	}

	t.Run("NilTable", func(t *testing.T) {
		if got := BuildMetaOverlay(champions, nil); got != nil {
			t.Errorf("a missing table must yield no overlay, got %+v", got)
		}
	})

	t.Run("SparseTable", func(t *testing.T) {
		sparse := &TierTable{ByChampion: map[string]string{"jinx": "S"}, Entries: 1}
		if got := BuildMetaOverlay(champions, sparse); got != nil {
			t.Errorf("a table under ten entries must yield no overlay, got %+v", got)
		}
	})

	t.Run("Rates", func(t *testing.T) {
		got := BuildMetaOverlay(champions, denseTable())
		if got == nil {
			t.Fatal("a dense table must produce an overlay")
		}

		// me: 6 S picks of 10 total; the unranked champion counts off-meta.
		if got.Me.Total != 10 {
			t.Errorf("me total = %d, want 10", got.Me.Total)
		}
		if math.Abs(got.Me.SRate-0.6) > 1e-9 {
			t.Errorf("me sRate = %v, want 0.6", got.Me.SRate)
		}
		if math.Abs(got.Me.MetaRate-0.6) > 1e-9 {
			t.Errorf("me metaRate = %v, want 0.6", got.Me.MetaRate)
		}
		if math.Abs(got.Me.OffMetaRate-0.2) > 1e-9 {
			t.Errorf("me offMetaRate = %v, want the unranked pick counted off-meta", got.Me.OffMetaRate)
		}

		// duo: C and D tiers are both off-meta.
		if math.Abs(got.Duo.OffMetaRate-1.0) > 1e-9 {
			t.Errorf("duo offMetaRate = %v, want 1.0", got.Duo.OffMetaRate)
		}
	})

	t.Run("EmptySide", func(t *testing.T) {
		got := BuildMetaOverlay(SideChampions{Me: map[string]int{}, Duo: map[string]int{}}, denseTable())
		if got == nil {
			t.Fatal("an overlay is still produced for empty usage")
		}
		if got.Me.Total != 0 || got.Me.MetaRate != 0 {
			t.Errorf("an empty side must report zero rates, got %+v", got.Me)
		}
	})
}
