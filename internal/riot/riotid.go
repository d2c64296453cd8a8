package riot

import (
	"regexp"
	"strings"
)

// RiotID is a gameName#tagLine identity.
type RiotID struct {
	GameName string
	TagLine  string
}

var tagPattern = regexp.MustCompile(`^[A-Za-z0-9]{2,5}$`)

// ParseRiotID parses "name#tag" and the URL-friendly "name-TAG" form. It
// returns nil when the input is not a riot id, in which case callers should
// fall back to legacy summoner-name lookup.
func ParseRiotID(value string) *RiotID {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}

	if strings.Contains(trimmed, "#") {
		parts := strings.SplitN(trimmed, "#", 2)
		gameName := strings.TrimSpace(parts[0])
		tagLine := strings.TrimSpace(parts[1])
		if gameName != "" && tagLine != "" {
			return &RiotID{GameName: gameName, TagLine: tagLine}
		}
		return nil
	}

	dash := strings.LastIndex(trimmed, "-")
	if dash > 0 {
		gameName := strings.TrimSpace(trimmed[:dash])
		tagLine := strings.TrimSpace(trimmed[dash+1:])
		if gameName != "" && tagPattern.MatchString(tagLine) {
			return &RiotID{GameName: gameName, TagLine: tagLine}
		}
	}

	return nil
}
