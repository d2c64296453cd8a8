package duo

import "strings"

// minTierEntries is the density gate: tables ranking fewer champions than
// this produce no overlay at all.
const minTierEntries = 10

// NormalizeChampionKey lowercases a champion name and strips everything but
// letters and digits, so "Miss Fortune" and "MissFortune" share a key.
func NormalizeChampionKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// BuildMetaOverlay maps both sides' champion usage through a tier table.
// It returns nil when the table is absent or too sparse to be meaningful.
func BuildMetaOverlay(champions SideChampions, table *TierTable) *MetaOverlay {
	if table == nil || table.ByChampion == nil || table.Entries < minTierEntries {
		return nil
	}
	return &MetaOverlay{
		Me:  metaSide(champions.Me, table),
		Duo: metaSide(champions.Duo, table),
	}
}

func metaSide(counts map[string]int, table *TierTable) MetaSide {
	total := 0
	byTier := map[string]int{}
	for champ, count := range counts {
		total += count
		tier, ok := table.ByChampion[NormalizeChampionKey(champ)]
		if !ok {
			tier = "U"
		}
		byTier[tier] += count
	}

	if total == 0 {
		return MetaSide{}
	}

	s := byTier["S"]
	meta := s + byTier["A"]
	offMeta := byTier["C"] + byTier["D"] + byTier["U"]
	return MetaSide{
		Total:       total,
		SRate:       float64(s) / float64(total),
		MetaRate:    float64(meta) / float64(total),
		OffMetaRate: float64(offMeta) / float64(total),
	}
}
