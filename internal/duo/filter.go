package duo

import "arenaduo/internal/riot"

// arenaGameMode is the mode identifier arena matches report.
const arenaGameMode = "CHERRY"

// arenaQueues is the fixed set of recognized arena queue ids.
var arenaQueues = map[int]bool{
	1700: true,
	1701: true,
	1702: true,
	1710: true,
}

// IsArenaMatch reports whether a match is in scope for the pipeline. Absent
// or malformed input is simply out of scope, never an error.
func IsArenaMatch(info *riot.MatchInfo) bool {
	if info == nil {
		return false
	}
	if info.GameMode == arenaGameMode {
		return true
	}
	return arenaQueues[info.QueueID]
}
