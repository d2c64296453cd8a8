package duo

import (
	"fmt"
	"strings"
)

// Tones understood by the narrative selector. Anything else silently maps
// to ToneClassic.
const (
	ToneGentle  = "gentle"
	ToneClassic = "classic"
	ToneSavage  = "savage"
)

// NormalizeTone maps arbitrary input to a supported tone, ignoring case and
// surrounding whitespace.
func NormalizeTone(value string) string {
	switch tone := strings.ToLower(strings.TrimSpace(value)); tone {
	case ToneGentle, ToneSavage:
		return tone
	default:
		return ToneClassic
	}
}

// toneTable holds the phrase templates for one tone.
type toneTable struct {
	firstTie    string
	firstLead   func(leader, rate string) string
	deathTie    string
	deathLead   func(leader string, share float64) string
	ultTie      string
	ultLead     func(leader string, count int) string
	ultClean    string
	comfortTie  func(pick string) string
	comfortLead func(pick, rate string) string
	damageLead  func(leader string, share float64) string
	damageTie   string
	tankLead    func(leader string, share float64) string
	supportLead func(leader string, share float64) string
	assistLead  func(leader string, share float64) string
	killLead    func(leader string, share float64) string
	streakHot   func(streak int) string
	streakCold  func(streak int) string
	poolSmall   func(count int) string
	poolWide    func(count int) string
	crownCount  func(firsts int) string
	clutch      func(summary Summary) string
}

func clutchLine(summary Summary, steady, swingy string) string {
	firsts := formatFirsts(summary.Firsts)
	prefix := smallSamplePrefix(summary.Games)
	vibe := swingy
	if summary.WinRate >= 0.55 {
		vibe = steady
	}
	return fmt.Sprintf("top 4 rate sits at %s with %s. %sthe duo looks %s.",
		FormatPercent(summary.WinRate), firsts, prefix, vibe)
}

var toneTables = map[string]toneTable{
	ToneGentle: {
		firstTie: "both share the first deaths evenly. the data suggests mutual bravery.",
		firstLead: func(leader, rate string) string {
			return fmt.Sprintf("%s takes the first nap in %s. the data suggests early enthusiasm.", leader, rate)
		},
		deathTie: "deaths are split exactly evenly. shared bravery, shared respawns.",
		deathLead: func(leader string, share float64) string {
			return fmt.Sprintf("%s holds %s of the deaths. brave positioning.", leader, FormatPercent(share))
		},
		ultTie: "both are saving ultimates for the perfect moment.",
		ultLead: func(leader string, count int) string {
			return fmt.Sprintf("%s held ultimate in %d rounds. patience, or optimism.", leader, count)
		},
		ultClean: "no unused ult deaths on record. discipline looks good on you.",
		comfortTie: func(pick string) string {
			return fmt.Sprintf("%s appears on both sides. comfort pick energy.", pick)
		},
		comfortLead: func(pick, rate string) string {
			return fmt.Sprintf("%s shows up in %s. leaning into what feels safe.", pick, rate)
		},
		damageLead: func(leader string, share float64) string {
			return fmt.Sprintf("%s handles %s of duo damage. steady carry energy.", leader, FormatPercent(share))
		},
		damageTie: "damage is split almost evenly. shared workload, shared glory.",
		tankLead: func(leader string, share float64) string {
			return fmt.Sprintf("%s absorbs %s of the damage. frontline heart.", leader, FormatPercent(share))
		},
		supportLead: func(leader string, share float64) string {
			return fmt.Sprintf("%s provides %s of the healing and shields. guardian angel duty.", leader, FormatPercent(share))
		},
		assistLead: func(leader string, share float64) string {
			return fmt.Sprintf("%s owns %s of the assists. setup artist energy.", leader, FormatPercent(share))
		},
		killLead: func(leader string, share float64) string {
			return fmt.Sprintf("%s claims %s of the kills. finisher instincts.", leader, FormatPercent(share))
		},
		streakHot: func(streak int) string {
			return fmt.Sprintf("top 4 streak hit %d. momentum is real.", streak)
		},
		streakCold: func(streak int) string {
			return fmt.Sprintf("bottom 4 streak hit %d. the lobby has been rough.", streak)
		},
		poolSmall: func(count int) string {
			return fmt.Sprintf("only %d champions in rotation. comfort zone cozy.", count)
		},
		poolWide: func(count int) string {
			return fmt.Sprintf("%d champions across the scan. variety pack energy.", count)
		},
		crownCount: func(firsts int) string {
			return fmt.Sprintf("%d first-place finishes in the trophy case.", firsts)
		},
		clutch: func(summary Summary) string {
			return clutchLine(summary, "steady", "swingy")
		},
	},
	ToneClassic: {
		firstTie: "both players trade first deaths evenly. the data suggests shared bravery.",
		firstLead: func(leader, rate string) string {
			return fmt.Sprintf("%s is first down in %s. the data suggests early enthusiasm.", leader, rate)
		},
		deathTie: "deaths are split down the middle. co-op grey screens.",
		deathLead: func(leader string, share float64) string {
			return fmt.Sprintf("%s holds %s of the deaths. grey screen familiar.", leader, FormatPercent(share))
		},
		ultTie: "both players are saving ultimates for a future patch.",
		ultLead: func(leader string, count int) string {
			return fmt.Sprintf("%s ended %d games with ultimate unused. preservation society certified.", leader, count)
		},
		ultClean: "no unused ult deaths on record. discipline or paranoia.",
		comfortTie: func(pick string) string {
			return fmt.Sprintf("%s shows up in both rotations. shared comfort pick energy.", pick)
		},
		comfortLead: func(pick, rate string) string {
			return fmt.Sprintf("%s shows up in %s. comfort pick or lifestyle choice.", pick, rate)
		},
		damageLead: func(leader string, share float64) string {
			return fmt.Sprintf("%s deals %s of duo damage. backpack tax applied.", leader, FormatPercent(share))
		},
		damageTie: "damage is split down the middle. shared workload, shared blame.",
		tankLead: func(leader string, share float64) string {
			return fmt.Sprintf("%s absorbs %s of incoming damage. frontline tax payer.", leader, FormatPercent(share))
		},
		supportLead: func(leader string, share float64) string {
			return fmt.Sprintf("%s covers %s of the healing and shields. pocket medic on call.", leader, FormatPercent(share))
		},
		assistLead: func(leader string, share float64) string {
			return fmt.Sprintf("%s owns %s of the assists. setup artist energy.", leader, FormatPercent(share))
		},
		killLead: func(leader string, share float64) string {
			return fmt.Sprintf("%s takes %s of the kills. finisher aura.", leader, FormatPercent(share))
		},
		streakHot: func(streak int) string {
			return fmt.Sprintf("top 4 streak hit %d. the duo can chain wins.", streak)
		},
		streakCold: func(streak int) string {
			return fmt.Sprintf("bottom 4 streak hit %d. the lobby took turns.", streak)
		},
		poolSmall: func(count int) string {
			return fmt.Sprintf("only %d champions in rotation. comfort zone locked.", count)
		},
		poolWide: func(count int) string {
			return fmt.Sprintf("%d champs across the scan. variety pack duo.", count)
		},
		crownCount: func(firsts int) string {
			return fmt.Sprintf("%d first-place finishes on the shelf. crown collection growing.", firsts)
		},
		clutch: func(summary Summary) string {
			return clutchLine(summary, "dangerous", "swingy")
		},
	},
	ToneSavage: {
		firstTie: "both players speedrun the first death at equal pace. balance achieved.",
		firstLead: func(leader, rate string) string {
			return fmt.Sprintf("%s hits the grey screen first in %s. fearless, or just fast.", leader, rate)
		},
		deathTie: "deaths split perfectly even. synchronized griefing.",
		deathLead: func(leader string, share float64) string {
			return fmt.Sprintf("%s holds %s of the deaths. grey screen loyalist.", leader, FormatPercent(share))
		},
		ultTie: "both players are hoarding ultimates like collectibles.",
		ultLead: func(leader string, count int) string {
			return fmt.Sprintf("%s saved ultimate in %d rounds. museum curator energy.", leader, count)
		},
		ultClean: "no unused ult deaths at all. sweat-level discipline.",
		comfortTie: func(pick string) string {
			return fmt.Sprintf("%s appears on both sides. commitment level: unshakable.", pick)
		},
		comfortLead: func(pick, rate string) string {
			return fmt.Sprintf("%s shows up in %s. one-pick lifestyle confirmed.", pick, rate)
		},
		damageLead: func(leader string, share float64) string {
			return fmt.Sprintf("%s delivers %s of duo damage. backpack surcharge applied.", leader, FormatPercent(share))
		},
		damageTie: "damage is split evenly. co-op blame agreement signed.",
		tankLead: func(leader string, share float64) string {
			return fmt.Sprintf("%s absorbs %s of the damage. frontline tax paid in full.", leader, FormatPercent(share))
		},
		supportLead: func(leader string, share float64) string {
			return fmt.Sprintf("%s pumps out %s of the healing and shields. full-time babysitter.", leader, FormatPercent(share))
		},
		assistLead: func(leader string, share float64) string {
			return fmt.Sprintf("%s owns %s of the assists. setup bot energy.", leader, FormatPercent(share))
		},
		killLead: func(leader string, share float64) string {
			return fmt.Sprintf("%s takes %s of the kills. finisher privileges.", leader, FormatPercent(share))
		},
		streakHot: func(streak int) string {
			return fmt.Sprintf("top 4 streak hit %d. hot streak unlocked.", streak)
		},
		streakCold: func(streak int) string {
			return fmt.Sprintf("bottom 4 streak hit %d. spiral lore unlocked.", streak)
		},
		poolSmall: func(count int) string {
			return fmt.Sprintf("only %d champions in rotation. comfort cage secured.", count)
		},
		poolWide: func(count int) string {
			return fmt.Sprintf("%d champions across the scan. chaos buffet.", count)
		},
		crownCount: func(firsts int) string {
			return fmt.Sprintf("%d first-place finishes in the cabinet. still room for more.", firsts)
		},
		clutch: func(summary Summary) string {
			return clutchLine(summary, "dangerous", "chaotic")
		},
	},
}

func toneTableFor(tone string) toneTable {
	if table, ok := toneTables[tone]; ok {
		return table
	}
	return toneTables[ToneClassic]
}
