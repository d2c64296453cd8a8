package duo

import (
	"fmt"
	"math"
)

// Pool eligibility thresholds.
const (
	roastTarget       = 4
	dominantThreshold = 0.6
	balancedDelta     = 0.12
	comfortThreshold  = 0.35
	streakThreshold   = 3
	poolSmallMax      = 4
	poolWideMin       = 10
	crownThreshold    = 2
)

// Meta card thresholds.
const (
	highMetaRate = 0.65
	highSRate    = 0.45
	offMetaRate  = 0.55
)

type shareLeader struct {
	name  string
	share float64
}

// pickDominant returns the side holding at least the dominant threshold of
// a share, or nil when the split is contested.
func pickDominant(share SharePair, names Names) *shareLeader {
	if share.Me >= dominantThreshold {
		return &shareLeader{name: names.Me, share: share.Me}
	}
	if share.Duo >= dominantThreshold {
		return &shareLeader{name: names.Duo, share: share.Duo}
	}
	return nil
}

func isBalanced(share SharePair) bool {
	if share.Me == 0 && share.Duo == 0 {
		return false
	}
	return math.Abs(share.Me-share.Duo) <= balancedDelta
}

// addUnique appends a roast unless a card with the same title is already
// present; the first occurrence wins.
func addUnique(list []Roast, roast *Roast) []Roast {
	if roast == nil {
		return list
	}
	for _, existing := range list {
		if existing.Title == roast.Title {
			return list
		}
	}
	return append(list, *roast)
}

// RoastSeed derives the deterministic shuffle seed from the summary stats.
// Identical stats always shuffle identically.
func RoastSeed(summary Summary) int64 {
	return int64(math.Floor(summary.WinRate*1000)) +
		int64(summary.Games)*13 +
		int64(summary.Firsts)*19 +
		int64(summary.FirstDeaths.Duo)*7
}

// BuildRoasts assembles the 4-card roast set: a pool of stat-gated
// candidates shuffled by a stats-derived seed, backfilled from always-safe
// fallback cards when the pool runs short.
func BuildRoasts(summary Summary, names Names, tone string, meta *MetaOverlay, insights Insights) []Roast {
	copySet := toneTableFor(tone)

	var pool []Roast
	var fallback []Roast

	// death share always produces a card. Equal death counts use the tie
	// branch, never a leader's name.
	deathRoast := buildDeathRoast(names, insights, copySet)
	fallback = addUnique(fallback, &deathRoast)

	ultRoast := buildUltRoast(summary, names, copySet)
	fallback = addUnique(fallback, &ultRoast)
	pool = addUnique(pool, &ultRoast)

	comfortBody := copySet.comfortLead(summary.ComfortPick, summary.ComfortPickRate)
	if summary.ComfortBias == "tied" {
		comfortBody = copySet.comfortTie(summary.ComfortPick)
	}
	comfortRoast := Roast{Title: "comfort lock", Body: comfortBody}
	fallback = addUnique(fallback, &comfortRoast)
	if summary.ComfortPickRateValue >= comfortThreshold {
		pool = addUnique(pool, &comfortRoast)
	}

	clutchRoast := Roast{Title: "clutch window", Body: copySet.clutch(summary)}
	fallback = addUnique(fallback, &clutchRoast)
	pool = addUnique(pool, &clutchRoast)

	if summary.FirstDeaths.Me+summary.FirstDeaths.Duo > 0 {
		firstRoast := buildFirstDeathRoast(summary, names, copySet)
		pool = addUnique(pool, &firstRoast)
	}

	pool = addUnique(pool, buildMetaRoast(meta, names, tone))

	// Combat share cards only make sense when combat data exists; without it
	// every split is a misleading 0%/0%.
	if insights.Flags.HasCombatStats {
		if leader := pickDominant(insights.Shares.Damage, names); leader != nil {
			pool = addUnique(pool, &Roast{Title: "damage share", Body: copySet.damageLead(leader.name, leader.share)})
		} else if isBalanced(insights.Shares.Damage) {
			pool = addUnique(pool, &Roast{Title: "damage split", Body: copySet.damageTie})
		}

		if leader := pickDominant(insights.Shares.Tank, names); leader != nil {
			pool = addUnique(pool, &Roast{Title: "frontline tax", Body: copySet.tankLead(leader.name, leader.share)})
		}
		if leader := pickDominant(insights.Shares.Support, names); leader != nil {
			pool = addUnique(pool, &Roast{Title: "pocket medic", Body: copySet.supportLead(leader.name, leader.share)})
		}
		if leader := pickDominant(insights.Shares.Kills, names); leader != nil {
			pool = addUnique(pool, &Roast{Title: "finisher bias", Body: copySet.killLead(leader.name, leader.share)})
		}
		if leader := pickDominant(insights.Shares.Assists, names); leader != nil {
			pool = addUnique(pool, &Roast{Title: "setup artist", Body: copySet.assistLead(leader.name, leader.share)})
		}
		if leader := pickDominant(insights.Shares.Deaths, names); leader != nil {
			pool = addUnique(pool, &Roast{Title: "grey screen", Body: copySet.deathLead(leader.name, leader.share)})
		}
	}

	streaks := insights.Streaks
	if streaks.Top4 >= streakThreshold && streaks.Top4 >= streaks.Bottom4 {
		pool = addUnique(pool, &Roast{Title: "streak watch", Body: copySet.streakHot(streaks.Top4)})
	} else if streaks.Bottom4 >= streakThreshold {
		pool = addUnique(pool, &Roast{Title: "streak watch", Body: copySet.streakCold(streaks.Bottom4)})
	}

	// The 5-9 unique-champion band is unremarkable; only the extremes earn
	// a card.
	diversity := insights.Diversity.Combined
	if diversity > 0 && diversity <= poolSmallMax {
		pool = addUnique(pool, &Roast{Title: "champion pool", Body: copySet.poolSmall(diversity)})
	} else if diversity >= poolWideMin {
		pool = addUnique(pool, &Roast{Title: "champion pool", Body: copySet.poolWide(diversity)})
	}

	if summary.Firsts >= crownThreshold {
		pool = addUnique(pool, &Roast{Title: "crown count", Body: copySet.crownCount(summary.Firsts)})
	}

	shuffled := shuffleRoasts(pool, RoastSeed(summary))
	var selected []Roast
	for i := range shuffled {
		if len(selected) >= roastTarget {
			break
		}
		selected = addUnique(selected, &shuffled[i])
	}
	for i := range fallback {
		if len(selected) >= roastTarget {
			break
		}
		selected = addUnique(selected, &fallback[i])
	}

	if len(selected) > roastTarget {
		selected = selected[:roastTarget]
	}
	return selected
}

func buildDeathRoast(names Names, insights Insights, copySet toneTable) Roast {
	deaths := insights.Deaths
	if deaths.Me == deaths.Duo {
		return Roast{Title: "grey screen", Body: copySet.deathTie}
	}
	leader := names.Me
	share := insights.Shares.Deaths.Me
	if deaths.Duo > deaths.Me {
		leader = names.Duo
		share = insights.Shares.Deaths.Duo
	}
	return Roast{Title: "grey screen", Body: copySet.deathLead(leader, share)}
}

func buildFirstDeathRoast(summary Summary, names Names, copySet toneTable) Roast {
	if summary.FirstDeaths.Me == summary.FirstDeaths.Duo {
		return Roast{Title: "first death trophy", Body: copySet.firstTie}
	}
	leader := names.Me
	if summary.FirstDeaths.Duo > summary.FirstDeaths.Me {
		leader = names.Duo
	}
	return Roast{Title: "first death trophy", Body: copySet.firstLead(leader, summary.FirstDeathRate)}
}

func buildUltRoast(summary Summary, names Names, copySet toneTable) Roast {
	total := summary.UnusedUlts.Me + summary.UnusedUlts.Duo
	if total == 0 {
		return Roast{Title: "ult discipline", Body: copySet.ultClean}
	}
	if summary.UnusedUlts.Me == summary.UnusedUlts.Duo {
		return Roast{Title: "ult hoarder", Body: copySet.ultTie}
	}
	leader := names.Me
	count := summary.UnusedUlts.Me
	if summary.UnusedUlts.Duo > summary.UnusedUlts.Me {
		leader = names.Duo
		count = summary.UnusedUlts.Duo
	}
	return Roast{Title: "ult hoarder", Body: copySet.ultLead(leader, count)}
}

// buildMetaRoast produces the tier-list card, or nil when there is no
// overlay or nothing noteworthy in it.
func buildMetaRoast(meta *MetaOverlay, names Names, tone string) *Roast {
	if meta == nil {
		return nil
	}
	me := meta.Me
	partner := meta.Duo
	if me.Total == 0 && partner.Total == 0 {
		return nil
	}

	metaLead, sLead, offBoth, offLead := metaPhrases(tone)

	leader := shareLeader{name: names.Me, share: me.MetaRate}
	leaderSide := me
	if partner.MetaRate > me.MetaRate {
		leader = shareLeader{name: names.Duo, share: partner.MetaRate}
		leaderSide = partner
	}
	offLeader := shareLeader{name: names.Me, share: me.OffMetaRate}
	if partner.OffMetaRate > me.OffMetaRate {
		offLeader = shareLeader{name: names.Duo, share: partner.OffMetaRate}
	}

	if leaderSide.MetaRate >= highMetaRate {
		body := metaLead(leader.name, leaderSide.MetaRate)
		if leaderSide.SRate >= highSRate {
			body = sLead(leader.name, leaderSide.SRate)
		}
		return &Roast{Title: "tier list habits", Body: body}
	}

	if me.OffMetaRate >= offMetaRate && partner.OffMetaRate >= offMetaRate {
		avg := (me.OffMetaRate + partner.OffMetaRate) / 2
		return &Roast{Title: "off-meta props", Body: offBoth(avg)}
	}
	if offLeader.share >= offMetaRate {
		return &Roast{Title: "off-meta props", Body: offLead(offLeader.name, offLeader.share)}
	}

	return nil
}

func metaPhrases(tone string) (metaLead, sLead func(string, float64) string, offBoth func(float64) string, offLead func(string, float64) string) {
	switch NormalizeTone(tone) {
	case ToneGentle:
		return func(leader string, rate float64) string {
				return fmt.Sprintf("%s leans on S/A tiers in %s of games. safe picks, soft landing.", leader, FormatPercent(rate))
			},
			func(leader string, rate float64) string {
				return fmt.Sprintf("%s is in S-tier %s of the time. comfort is a strategy.", leader, FormatPercent(rate))
			},
			func(rate float64) string {
				return fmt.Sprintf("both skip S/A tiers in %s of games. creative duo energy.", FormatPercent(rate))
			},
			func(leader string, rate float64) string {
				return fmt.Sprintf("%s skips S/A tiers in %s of games. off-meta pride.", leader, FormatPercent(rate))
			}
	case ToneSavage:
		return func(leader string, rate float64) string {
				return fmt.Sprintf("%s locks S/A tiers in %s of games. tier list disciple behavior.", leader, FormatPercent(rate))
			},
			func(leader string, rate float64) string {
				return fmt.Sprintf("%s is on S-tier %s of the time. only the finest labels.", leader, FormatPercent(rate))
			},
			func(rate float64) string {
				return fmt.Sprintf("both skip S/A tiers in %s of games. off-meta chaos enjoyers.", FormatPercent(rate))
			},
			func(leader string, rate float64) string {
				return fmt.Sprintf("%s skips S/A tiers in %s of games. off-meta gremlin energy.", leader, FormatPercent(rate))
			}
	default:
		return func(leader string, rate float64) string {
				return fmt.Sprintf("%s locks S/A tiers in %s of games. meta loyalty program member.", leader, FormatPercent(rate))
			},
			func(leader string, rate float64) string {
				return fmt.Sprintf("%s is on S-tier %s of the time. tier list scout reporting in.", leader, FormatPercent(rate))
			},
			func(rate float64) string {
				return fmt.Sprintf("both skip S/A tiers in %s of games. off-meta respect.", FormatPercent(rate))
			},
			func(leader string, rate float64) string {
				return fmt.Sprintf("%s skips S/A tiers in %s of games. off-meta pride.", leader, FormatPercent(rate))
			}
	}
}
