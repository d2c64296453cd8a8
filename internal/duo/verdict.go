package duo

import (
	"fmt"
	"math"
)

// VerdictOptions controls verdict selection. Fresh swaps the deterministic
// seed for true randomness, for a one-off reroll.
type VerdictOptions struct {
	Fresh bool
}

// VerdictSeed derives the deterministic template seed from the summary.
func VerdictSeed(summary Summary) int64 {
	return int64(math.Floor(summary.WinRate*1000)) +
		int64(summary.Games)*7 +
		int64(summary.FirstDeaths.Duo)
}

// BuildVerdict renders the verdict paragraph from the per-tone template set.
// With identical stats, tone, and Fresh=false the text is byte-identical
// across calls.
func BuildVerdict(summary Summary, names Names, tone string, opts VerdictOptions) string {
	if summary.Games == 0 {
		return fmt.Sprintf("%s and %s have no shared arena games in this window. widen the match scan or double-check spellings.",
			names.Me, names.Duo)
	}

	winRate := FormatPercent(summary.WinRate)
	avg := fmt.Sprintf("%.1f", summary.AvgPlacement)
	firsts := formatFirsts(summary.Firsts)
	gamesText := fmt.Sprintf("%d arena games", summary.Games)
	if summary.Games == 1 {
		gamesText = "1 arena game"
	}
	const arenaContext = "arena scoring: top 4 of 8 teams is a win, first place is the crown"
	samplePrefix := smallSamplePrefix(summary.Games)

	biasText := fmt.Sprintf("%s leans on %s", summary.ComfortBias, summary.ComfortPick)
	if summary.ComfortBias == "tied" {
		biasText = fmt.Sprintf("both lean on %s", summary.ComfortPick)
	}

	templates := verdictTemplates(tone)
	seed := VerdictSeed(summary)
	if opts.Fresh {
		seed = -1
	}
	template := templates[pickIndex(len(templates), seed)]
	return template(names, winRate, gamesText, firsts, avg, arenaContext, biasText, samplePrefix)
}

type verdictTemplate func(names Names, winRate, gamesText, firsts, avg, arenaContext, biasText, samplePrefix string) string

func verdictTemplates(tone string) []verdictTemplate {
	switch NormalizeTone(tone) {
	case ToneGentle:
		return []verdictTemplate{
			func(n Names, winRate, gamesText, firsts, avg, arenaContext, biasText, samplePrefix string) string {
				return fmt.Sprintf("%s and %s are landing top 4 in %s across %s, with %s and an average placement of %s. %s. the data suggests %s, while riot keeps the augment wheel spicy. %sthe vibe says you are close to a clean run.",
					n.Me, n.Duo, winRate, gamesText, firsts, avg, arenaContext, biasText, samplePrefix)
			},
			func(n Names, winRate, gamesText, firsts, avg, arenaContext, biasText, samplePrefix string) string {
				return fmt.Sprintf("%s and %s are sitting at a %s top 4 rate across %s, with %s and an average placement of %s. %s. the data suggests %s, and riot provides the occasional plot twist. %sthe climb feels within reach.",
					n.Me, n.Duo, winRate, gamesText, firsts, avg, arenaContext, biasText, samplePrefix)
			},
		}
	case ToneSavage:
		return []verdictTemplate{
			func(n Names, winRate, gamesText, firsts, avg, arenaContext, biasText, samplePrefix string) string {
				return fmt.Sprintf("%s and %s are landing top 4 in %s across %s, with %s and an average placement of %s. %s. the data suggests %s, and riot keeps the augment wheel on hard mode. %sthe comeback arc is still possible.",
					n.Me, n.Duo, winRate, gamesText, firsts, avg, arenaContext, biasText, samplePrefix)
			},
			func(n Names, winRate, gamesText, firsts, avg, arenaContext, biasText, samplePrefix string) string {
				return fmt.Sprintf("%s and %s are sitting at a %s top 4 rate across %s, with %s and an average placement of %s. %s. the data suggests %s, and riot keeps the chaos dialed up. %sthe next streak could flip the story.",
					n.Me, n.Duo, winRate, gamesText, firsts, avg, arenaContext, biasText, samplePrefix)
			},
		}
	default:
		return []verdictTemplate{
			func(n Names, winRate, gamesText, firsts, avg, arenaContext, biasText, samplePrefix string) string {
				return fmt.Sprintf("%s and %s are landing top 4 in %s across %s, with %s and an average placement of %s. %s. the data suggests %s, while riot keeps the augment wheel spicy. %sthe vibe says you are one good roll away from dominance.",
					n.Me, n.Duo, winRate, gamesText, firsts, avg, arenaContext, biasText, samplePrefix)
			},
			func(n Names, winRate, gamesText, firsts, avg, arenaContext, biasText, samplePrefix string) string {
				return fmt.Sprintf("%s and %s are sitting at a %s top 4 rate across %s, with %s and an average placement of %s. %s. the data suggests %s, and riot keeps the chaos flowing. %sthe energy says this duo is one streak away.",
					n.Me, n.Duo, winRate, gamesText, firsts, avg, arenaContext, biasText, samplePrefix)
			},
		}
	}
}
