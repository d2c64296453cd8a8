package duo

import (
	"context"
	"fmt"

	"arenaduo/internal/riot"
)

// lowItemThreshold marks a game as economy-starved when a player finishes
// with fewer filled item slots than this.
const lowItemThreshold = 3

// economyChampions are picks whose output depends heavily on gold leads.
// Usage of these while losing feeds the anvil blame factor.
var economyChampions = map[string]bool{
	"Draven":      true,
	"TwistedFate": true,
	"Gangplank":   true,
	"Pyke":        true,
	"Senna":       true,
}

// MatchSource is the match-data collaborator consumed by the aggregator.
// *riot.Client satisfies it.
type MatchSource interface {
	MatchIDs(ctx context.Context, regional, puuid string, count int) ([]string, error)
	Match(ctx context.Context, regional, matchID string) (*riot.Match, error)
}

// Fold accumulates one match into acc and returns the updated accumulator.
// The second return value is false when the match was skipped: out of scope,
// or either player absent from the participant list. Fold never mutates its
// input, so a single match can be tested in isolation.
func Fold(acc Accumulator, match *riot.Match, mePUUID, duoPUUID string) (Accumulator, bool) {
	if match == nil || !IsArenaMatch(&match.Info) {
		return acc, false
	}
	me := match.ParticipantByPUUID(mePUUID)
	partner := match.ParticipantByPUUID(duoPUUID)
	if me == nil || partner == nil {
		return acc, false
	}

	next := acc
	next.Placements = cloneCounts(acc.Placements)
	next.Champions = SideChampions{
		Me:  cloneCounts(acc.Champions.Me),
		Duo: cloneCounts(acc.Champions.Duo),
	}

	next.Games++
	placement := me.Placement
	next.PlacementTotal += placement
	if placement >= 1 && placement <= 8 {
		next.Placements[placement]++
	}

	if placement >= 1 && placement <= 4 {
		next.Wins++
		next.runTop4++
		next.runBottom4 = 0
		if next.runTop4 > next.Top4Streak {
			next.Top4Streak = next.runTop4
		}
	} else {
		next.runBottom4++
		next.runTop4 = 0
		if next.runBottom4 > next.Bottom4Streak {
			next.Bottom4Streak = next.runBottom4
		}
	}
	if placement == 1 {
		next.Firsts++
	}

	next.Deaths.Me += me.Deaths
	next.Deaths.Duo += partner.Deaths
	// Equal death counts credit neither side's first-death counter.
	if me.Deaths > partner.Deaths {
		next.FirstDeaths.Me++
	} else if partner.Deaths > me.Deaths {
		next.FirstDeaths.Duo++
	}

	if me.Spell4Casts == 0 && me.Deaths > 0 {
		next.UnusedUlts.Me++
	}
	if partner.Spell4Casts == 0 && partner.Deaths > 0 {
		next.UnusedUlts.Duo++
	}

	next.Kills.Me += me.Kills
	next.Kills.Duo += partner.Kills
	next.Assists.Me += me.Assists
	next.Assists.Duo += partner.Assists
	next.Damage.Me += me.TotalDamageDealtToChampions
	next.Damage.Duo += partner.TotalDamageDealtToChampions
	next.DamageTaken.Me += me.TotalDamageTaken
	next.DamageTaken.Duo += partner.TotalDamageTaken
	next.Healing.Me += me.TotalHeal
	next.Healing.Duo += partner.TotalHeal
	next.Shielding.Me += me.TotalDamageShieldedOnTeammate
	next.Shielding.Duo += partner.TotalDamageShieldedOnTeammate
	next.Gold.Me += me.GoldEarned
	next.Gold.Duo += partner.GoldEarned

	meChamp := championOr(me.ChampionName)
	duoChamp := championOr(partner.ChampionName)
	next.Champions.Me[meChamp]++
	next.Champions.Duo[duoChamp]++

	if me.ItemCount() < lowItemThreshold {
		next.LowItemGames.Me++
	}
	if partner.ItemCount() < lowItemThreshold {
		next.LowItemGames.Duo++
	}
	if economyChampions[meChamp] {
		next.EconomyChampGames.Me++
	}
	if economyChampions[duoChamp] {
		next.EconomyChampGames.Duo++
	}

	return next, true
}

// ScanResult pairs the folded accumulator with the per-match display rows.
type ScanResult struct {
	Stats   Accumulator
	Matches []MatchLine
}

// Scan walks a player's recent match ids and folds every in-scope shared
// game into a fresh accumulator, stopping once the requested quota is
// reached. Fetches are strictly sequential: the streak counters depend on
// processing order. Errors from the source abort the scan, including rate
// limiting, which must reach the caller as a retryable condition.
func Scan(ctx context.Context, src MatchSource, regional string, me, partner riot.Player, requested int) (*ScanResult, error) {
	scanCount := requested * 3
	if scanCount < 20 {
		scanCount = 20
	}
	if scanCount > 100 {
		scanCount = 100
	}

	ids, err := src.MatchIDs(ctx, regional, me.PUUID, scanCount)
	if err != nil {
		return nil, fmt.Errorf("fetch match ids: %w", err)
	}

	result := &ScanResult{Stats: NewAccumulator()}
	for _, id := range ids {
		if result.Stats.Games >= requested {
			break
		}
		match, err := src.Match(ctx, regional, id)
		if err != nil {
			return nil, fmt.Errorf("fetch match %s: %w", id, err)
		}

		next, counted := Fold(result.Stats, match, me.PUUID, partner.PUUID)
		if !counted {
			continue
		}
		result.Stats = next
		result.Matches = append(result.Matches, buildMatchLine(match, me.PUUID, partner.PUUID))
	}

	return result, nil
}

func buildMatchLine(match *riot.Match, mePUUID, duoPUUID string) MatchLine {
	me := match.ParticipantByPUUID(mePUUID)
	partner := match.ParticipantByPUUID(duoPUUID)

	result := "loss"
	if me.Placement >= 1 && me.Placement <= 4 {
		result = "win"
	}

	return MatchLine{
		Result:    result,
		Placement: me.Placement,
		Champs:    FormatChampion(championOr(me.ChampionName)) + " + " + FormatChampion(championOr(partner.ChampionName)),
		Highlight: buildHighlight(me, partner),
	}
}

// buildHighlight summarizes a single match's trades.
func buildHighlight(me, partner *riot.Participant) string {
	kills := me.Kills + partner.Kills
	deaths := me.Deaths + partner.Deaths
	if kills >= deaths+6 {
		return "out-traded the lobby"
	}
	if deaths >= kills+4 {
		return "scrapped hard, fell short"
	}
	return "even trades, messy finish"
}

func championOr(name string) string {
	if name == "" {
		return "unknown"
	}
	return name
}

func cloneCounts[K comparable](counts map[K]int) map[K]int {
	out := make(map[K]int, len(counts))
	for k, v := range counts {
		out[k] = v
	}
	return out
}
