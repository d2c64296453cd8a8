package duo

// comfortCandidate is one side's most-played champion. Tie-break order is
// the order candidates are listed, not map iteration order.
type comfortCandidate struct {
	side  string
	champ string
	rate  float64
}

// BuildSummary reduces an accumulator into the human-facing summary. Every
// rate defaults to 0 when no games were recorded.
func BuildSummary(stats Accumulator, names Names, matchCount int) Summary {
	games := stats.Games
	winRate := 0.0
	avgPlacement := 0.0
	firstRate := 0.0
	if games > 0 {
		winRate = float64(stats.Wins) / float64(games)
		avgPlacement = float64(stats.PlacementTotal) / float64(games)
		firstRate = float64(stats.Firsts) / float64(games)
	}

	meChamp, meCount := topChampion(stats.Champions.Me)
	duoChamp, duoCount := topChampion(stats.Champions.Duo)
	meRate := 0.0
	duoRate := 0.0
	if games > 0 {
		meRate = float64(meCount) / float64(games)
		duoRate = float64(duoCount) / float64(games)
	}

	candidates := []comfortCandidate{
		{side: names.Me, champ: meChamp, rate: meRate},
		{side: names.Duo, champ: duoChamp, rate: duoRate},
	}
	bias, pick := resolveComfort(candidates)

	firstDeathRate := 0.0
	if games > 0 {
		peak := stats.FirstDeaths.Me
		if stats.FirstDeaths.Duo > peak {
			peak = stats.FirstDeaths.Duo
		}
		firstDeathRate = float64(peak) / float64(games)
	}

	comfortRate := meRate
	if duoRate > comfortRate {
		comfortRate = duoRate
	}

	return Summary{
		Games:                games,
		Wins:                 stats.Wins,
		WinRate:              winRate,
		AvgPlacement:         avgPlacement,
		Firsts:               stats.Firsts,
		FirstRate:            FormatPercent(firstRate),
		FirstDeaths:          stats.FirstDeaths,
		FirstDeathRate:       FormatPercent(firstDeathRate),
		UnusedUlts:           stats.UnusedUlts,
		ComfortBias:          bias,
		ComfortPick:          FormatChampion(pick),
		ComfortPickRate:      FormatPercent(comfortRate),
		ComfortPickRateValue: comfortRate,
		DuoIdentity:          duoIdentity(winRate, avgPlacement),
		Top4Streak:           stats.Top4Streak,
		Bottom4Streak:        stats.Bottom4Streak,
		MatchCount:           matchCount,
	}
}

// resolveComfort picks the comfort bias and pick from ordered candidates.
// Strictly unequal usage rates name the leading side; exactly equal rates
// (including 0/0) are "tied" and the pick falls to the first candidate with
// a non-empty champion name.
func resolveComfort(candidates []comfortCandidate) (bias, pick string) {
	leader := candidates[0]
	tied := false
	for _, c := range candidates[1:] {
		if c.rate > leader.rate {
			leader = c
			tied = false
		} else if c.rate == leader.rate {
			tied = true
		}
	}

	if !tied {
		return leader.side, leader.champ
	}

	for _, c := range candidates {
		if c.champ != "" {
			return "tied", c.champ
		}
	}
	return "tied", "unknown"
}

func topChampion(counts map[string]int) (string, int) {
	name := ""
	best := 0
	for champ, count := range counts {
		if count > best || (count == best && (name == "" || champ < name)) {
			name = champ
			best = count
		}
	}
	if best == 0 {
		return "", 0
	}
	return name, best
}

// duoIdentity labels the pair by thresholding win rate then average
// placement; the first matching rule wins.
func duoIdentity(winRate, avgPlacement float64) string {
	switch {
	case winRate >= 0.62:
		return "overconfident climbers"
	case winRate >= 0.52:
		return "coinflip specialists"
	case avgPlacement <= 2.2:
		return "scrappy finalists"
	default:
		return "chaos enjoyers"
	}
}
