package duo

import (
	"fmt"
	"math"
)

// Factor scales. The shapes come from the scoring contract; the scales keep
// any single factor from drowning the baseline score of 1.
const (
	executionScale = 2.4
	impactScale    = 2.0
	economyScale   = 1.5
	metaExtreme    = 0.6
	metaMiddling   = 0.25
	metaHighRate   = 0.7
	metaLowRate    = 0.25
	anvilBonus     = 0.45

	frontlineCreditScale = 0.8
	frontlinePenalty     = 0.35
	highTankShare        = 0.68
	lowImpactShare       = 0.32

	minSideScore = 0.2

	losingBaseline  = 1.2
	winningBaseline = 0.6
)

type sideInputs struct {
	name         string
	otherName    string
	deathShare   float64
	damageShare  float64
	supportShare float64
	tankShare    float64
	lowItemRate  float64
	economyRate  float64
	metaRate     float64
	hasMeta      bool
	filler       string
}

// BuildBlame distributes fault for the pair's results across both players
// and the game's variance. The three shares always sum to 1.
func BuildBlame(summary Summary, names Names, insights Insights) BlameResult {
	if summary.Games == 0 {
		noData := func(share float64) BlameParty {
			return BlameParty{Share: share, Reason: "no data yet", Breakdown: []BlameFactor{}}
		}
		return BlameResult{
			Me:   noData(0.33),
			Duo:  noData(0.33),
			Riot: noData(0.34),
		}
	}

	games := float64(summary.Games)

	me := sideInputs{
		name:         names.Me,
		otherName:    names.Duo,
		deathShare:   insights.Shares.Deaths.Me,
		damageShare:  insights.Shares.Damage.Me,
		supportShare: insights.Shares.Support.Me,
		tankShare:    insights.Shares.Tank.Me,
		lowItemRate:  float64(insights.LowItemGames.Me) / games,
		economyRate:  float64(insights.EconomyPicks.Me) / games,
		filler:       "overconfident engages",
	}
	partner := sideInputs{
		name:         names.Duo,
		otherName:    names.Me,
		deathShare:   insights.Shares.Deaths.Duo,
		damageShare:  insights.Shares.Damage.Duo,
		supportShare: insights.Shares.Support.Duo,
		tankShare:    insights.Shares.Tank.Duo,
		lowItemRate:  float64(insights.LowItemGames.Duo) / games,
		economyRate:  float64(insights.EconomyPicks.Duo) / games,
		filler:       "combo addict",
	}
	if insights.Meta != nil {
		me.hasMeta = true
		me.metaRate = insights.Meta.Me.MetaRate
		partner.hasMeta = true
		partner.metaRate = insights.Meta.Duo.MetaRate
	}

	meScore, meParty := scoreSide(me, summary, insights.Flags.HasCombatStats)
	duoScore, duoParty := scoreSide(partner, summary, insights.Flags.HasCombatStats)
	riotScore, riotParty := scoreVariance(summary, insights)

	total := meScore + duoScore + riotScore
	meParty.Share = meScore / total
	duoParty.Share = duoScore / total
	riotParty.Share = riotScore / total

	return BlameResult{Me: meParty, Duo: duoParty, Riot: riotParty}
}

// scoreSide computes one side's raw blame score and its explainable
// breakdown. Factor enumeration order doubles as the tie-break for the
// dominant reason.
func scoreSide(in sideInputs, summary Summary, hasCombat bool) (float64, BlameParty) {
	losing := summary.WinRate < 0.5
	var factors []BlameFactor

	// execution: excess death share above an even split.
	if hasCombat && in.deathShare > 0.5 {
		factors = append(factors, BlameFactor{
			Factor: "execution",
			Score:  (in.deathShare - 0.5) * executionScale,
			Detail: fmt.Sprintf("first to the grey screen (%s death share)", FormatPercent(in.deathShare)),
		})
	}

	// impact deficit: low participation is a penalty, not an excuse.
	carryShare := math.Max(in.damageShare, in.supportShare)
	if hasCombat && carryShare < 0.5 {
		factors = append(factors, BlameFactor{
			Factor: "impact",
			Score:  (0.5 - carryShare) * impactScale,
			Detail: fmt.Sprintf("low participation (%s of damage or support)", FormatPercent(carryShare)),
		})
	}

	if in.lowItemRate > 0 {
		factors = append(factors, BlameFactor{
			Factor: "economy",
			Score:  in.lowItemRate * economyScale,
			Detail: fmt.Sprintf("short builds in %s of games", FormatPercent(in.lowItemRate)),
		})
	}

	// meta is only weighed while the pair is losing. Extreme tier loyalty in
	// either direction is more suspicious than middling usage.
	if losing && in.hasMeta {
		score := metaMiddling
		if in.metaRate >= metaHighRate || in.metaRate <= metaLowRate {
			score = metaExtreme
		}
		factors = append(factors, BlameFactor{
			Factor: "meta",
			Score:  score,
			Detail: fmt.Sprintf("S/A picks in %s of games while losing", FormatPercent(in.metaRate)),
		})
	}

	if losing && in.economyRate >= 0.3 {
		factors = append(factors, BlameFactor{
			Factor: "anvil",
			Score:  anvilBonus,
			Detail: fmt.Sprintf("gold-hungry picks in %s of games", FormatPercent(in.economyRate)),
		})
	}

	score := 1.0
	for _, f := range factors {
		score += f.Score
	}

	// Frontline credit: soaking more than half the incoming damage reduces
	// blame, unless the side is all sponge and no output.
	if in.tankShare > 0.5 {
		credit := (in.tankShare - 0.5) * frontlineCreditScale
		score -= credit
		factors = append(factors, BlameFactor{
			Factor: "frontline",
			Score:  -credit,
			Detail: fmt.Sprintf("absorbs %s of incoming damage", FormatPercent(in.tankShare)),
		})
		if in.tankShare >= highTankShare && carryShare <= lowImpactShare {
			score += frontlinePenalty
			factors = append(factors, BlameFactor{
				Factor: "frontline",
				Score:  frontlinePenalty,
				Detail: fmt.Sprintf("tanking %s without results (%s output)", FormatPercent(in.tankShare), FormatPercent(carryShare)),
			})
		}
	}

	if score < minSideScore {
		score = minSideScore
	}

	return score, BlameParty{
		Reason:    dominantReason(factors, in.filler),
		Breakdown: factors,
	}
}

// dominantReason returns the detail of the highest-scoring core factor.
// Frontline adjustments never headline; earlier factors win ties.
func dominantReason(factors []BlameFactor, filler string) string {
	best := -1.0
	reason := filler
	for _, f := range factors {
		if f.Factor == "frontline" {
			continue
		}
		if f.Score > best && f.Score > 0 {
			best = f.Score
			reason = f.Detail
		}
	}
	return reason
}

func scoreVariance(summary Summary, insights Insights) (float64, BlameParty) {
	games := float64(summary.Games)
	var factors []BlameFactor

	sigma := placementStdDev(insights.Placements, summary.AvgPlacement, games)
	volatility := 0.0
	switch {
	case sigma >= 1.8:
		volatility = 3
	case sigma >= 1.4:
		volatility = 2
	case sigma >= 1.1:
		volatility = 1
	}
	if volatility > 0 {
		factors = append(factors, BlameFactor{
			Factor: "volatility",
			Score:  volatility,
			Detail: fmt.Sprintf("placement swing sigma %.1f", sigma),
		})
	}

	closeExitRate := float64(insights.Placements[5]+insights.Placements[6]) / games
	closeExit := 0.0
	switch {
	case closeExitRate >= 0.4:
		closeExit = 2
	case closeExitRate >= 0.25:
		closeExit = 1
	}
	if closeExit > 0 {
		factors = append(factors, BlameFactor{
			Factor: "closeExits",
			Score:  closeExit,
			Detail: fmt.Sprintf("5th-6th exits in %s of games", FormatPercent(closeExitRate)),
		})
	}

	baseline := winningBaseline
	reason := "balance patch vibes"
	if summary.WinRate < 0.5 {
		baseline = losingBaseline
		reason = "augment rng"
	}
	factors = append(factors, BlameFactor{
		Factor: "baseline",
		Score:  baseline,
		Detail: fmt.Sprintf("top 4 rate %s", FormatPercent(summary.WinRate)),
	})

	score := 1 + volatility + closeExit + baseline
	return score, BlameParty{Reason: reason, Breakdown: factors}
}

// placementStdDev is the population standard deviation of placements,
// computed from the histogram.
func placementStdDev(placements map[int]int, mean, games float64) float64 {
	if games <= 0 {
		return 0
	}
	sum := 0.0
	for placement, count := range placements {
		diff := float64(placement) - mean
		sum += diff * diff * float64(count)
	}
	return math.Sqrt(sum / games)
}
