package duo

import "math"

// BuildInsights expands an accumulator into comparative shares, per-game
// rates, and diversity counts. Shares are only computed against non-zero
// totals; a zero total yields 0 for both sides.
func BuildInsights(stats Accumulator, summary Summary, meta *MetaOverlay) Insights {
	games := summary.Games

	kills := totals(stats.Kills)
	assists := totals(stats.Assists)
	deaths := totals(stats.Deaths)
	damage := totals(stats.Damage)
	damageTaken := totals(stats.DamageTaken)
	healing := totals(stats.Healing)
	shielding := totals(stats.Shielding)
	gold := totals(stats.Gold)

	support := MetricTotals{
		Me:    healing.Me + shielding.Me,
		Duo:   healing.Duo + shielding.Duo,
		Total: healing.Total + shielding.Total,
	}

	combined := make(map[string]bool, len(stats.Champions.Me)+len(stats.Champions.Duo))
	for champ := range stats.Champions.Me {
		combined[champ] = true
	}
	for champ := range stats.Champions.Duo {
		combined[champ] = true
	}

	hasCombat := damage.Total > 0 || kills.Total > 0 || assists.Total > 0 || deaths.Total > 0

	return Insights{
		Placements:  stats.Placements,
		Streaks:     Streaks{Top4: stats.Top4Streak, Bottom4: stats.Bottom4Streak},
		Kills:       kills,
		Assists:     assists,
		Deaths:      deaths,
		Damage:      damage,
		DamageTaken: damageTaken,
		Healing:     healing,
		Shielding:   shielding,
		Gold:        gold,
		Shares: Shares{
			Kills:   share(kills),
			Assists: share(assists),
			Deaths:  share(deaths),
			Damage:  share(damage),
			Tank:    share(damageTaken),
			Support: share(support),
		},
		PerGame: PerGame{
			Damage:      perGame(damage.Total, games),
			DamageTaken: perGame(damageTaken.Total, games),
			Deaths:      perGame(deaths.Total, games),
			Kills:       perGame(kills.Total, games),
			Assists:     perGame(assists.Total, games),
		},
		LowItemGames: stats.LowItemGames,
		EconomyPicks: stats.EconomyChampGames,
		Diversity: Diversity{
			Me:       len(stats.Champions.Me),
			Duo:      len(stats.Champions.Duo),
			Combined: len(combined),
		},
		Flags: InsightFlags{HasCombatStats: hasCombat},
		Meta:  meta,
	}
}

func totals(pair SideCounts) MetricTotals {
	return MetricTotals{Me: pair.Me, Duo: pair.Duo, Total: pair.Me + pair.Duo}
}

func share(m MetricTotals) SharePair {
	if m.Total <= 0 {
		return SharePair{}
	}
	return SharePair{
		Me:  float64(m.Me) / float64(m.Total),
		Duo: float64(m.Duo) / float64(m.Total),
	}
}

func perGame(total, games int) int {
	if games <= 0 {
		return 0
	}
	return int(math.Round(float64(total) / float64(games)))
}
