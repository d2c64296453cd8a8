package duo

import (
	"fmt"
	"math"
	"regexp"
)

// FormatPercent renders a 0..1 rate as a rounded percentage string.
func FormatPercent(value float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(value*100)))
}

var camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)

// FormatChampion splits camel-cased champion identifiers ("MissFortune")
// into display names ("Miss Fortune").
func FormatChampion(name string) string {
	if name == "" {
		return "unknown"
	}
	return camelBoundary.ReplaceAllString(name, "$1 $2")
}

func formatFirsts(count int) string {
	switch {
	case count <= 0:
		return "no first-place finishes yet"
	case count == 1:
		return "1 first-place finish"
	default:
		return fmt.Sprintf("%d first-place finishes", count)
	}
}

func smallSamplePrefix(games int) string {
	if games < 8 {
		return "small sample size, but "
	}
	return ""
}
