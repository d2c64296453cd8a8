package duo

import (
	"fmt"
	"strconv"
	"strings"
)

// VerdictFingerprint digests exactly the summary fields that influence
// verdict text. Requests that differ only in unfingerprinted fields (e.g.
// timestamps) share a fingerprint.
func VerdictFingerprint(summary Summary, tone string) string {
	fields := []string{
		tone,
		strconv.Itoa(summary.Games),
		strconv.Itoa(summary.Wins),
		strconv.Itoa(summary.Firsts),
		fmt.Sprintf("%.2f", summary.AvgPlacement),
		strconv.Itoa(summary.FirstDeaths.Me),
		strconv.Itoa(summary.FirstDeaths.Duo),
		strconv.Itoa(summary.UnusedUlts.Me),
		strconv.Itoa(summary.UnusedUlts.Duo),
		strings.ToLower(summary.ComfortBias),
		strings.ToLower(summary.ComfortPick),
		summary.ComfortPickRate,
	}
	return strings.Join(fields, "|")
}

// RoastFingerprint digests the summary and insight fields that influence
// roast output, including the full placement histogram and the meta-rate
// summary when an overlay is present.
func RoastFingerprint(summary Summary, insights Insights, tone string) string {
	placements := make([]string, 0, 8)
	for p := 1; p <= 8; p++ {
		placements = append(placements, strconv.Itoa(insights.Placements[p]))
	}

	metaKey := ""
	if insights.Meta != nil {
		metaKey = fmt.Sprintf("%g:%g:%g:%g:%g:%g",
			insights.Meta.Me.MetaRate, insights.Meta.Me.SRate, insights.Meta.Me.OffMetaRate,
			insights.Meta.Duo.MetaRate, insights.Meta.Duo.SRate, insights.Meta.Duo.OffMetaRate)
	}

	fields := []string{
		tone,
		strconv.Itoa(summary.Games),
		strconv.Itoa(summary.Wins),
		strconv.Itoa(summary.Firsts),
		fmt.Sprintf("%.2f", summary.AvgPlacement),
		strconv.Itoa(insights.Streaks.Top4),
		strconv.Itoa(insights.Streaks.Bottom4),
		strconv.Itoa(insights.Damage.Total),
		strconv.Itoa(insights.DamageTaken.Total),
		strconv.Itoa(insights.Kills.Total),
		strconv.Itoa(insights.Assists.Total),
		strconv.Itoa(insights.Deaths.Total),
		strconv.Itoa(insights.Diversity.Combined),
		strings.Join(placements, ","),
		metaKey,
	}
	return strings.Join(fields, "|")
}
