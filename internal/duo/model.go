package duo

// Names holds the display names for the two tracked players.
type Names struct {
	Me  string `json:"me"`
	Duo string `json:"duo"`
}

// SideCounts is a per-side integer counter pair.
type SideCounts struct {
	Me  int `json:"me"`
	Duo int `json:"duo"`
}

// SideChampions tracks champion usage histograms per side.
type SideChampions struct {
	Me  map[string]int `json:"me"`
	Duo map[string]int `json:"duo"`
}

// Accumulator is the mutable running state the pairwise aggregator folds
// matches into. It is allocated fresh per request and never shared.
type Accumulator struct {
	Games          int
	Wins           int
	Firsts         int
	PlacementTotal int
	Placements     map[int]int // placement 1-8 -> count

	Top4Streak    int
	Bottom4Streak int
	runTop4       int
	runBottom4    int

	FirstDeaths SideCounts
	UnusedUlts  SideCounts

	Kills       SideCounts
	Assists     SideCounts
	Deaths      SideCounts
	Damage      SideCounts
	DamageTaken SideCounts
	Healing     SideCounts
	Shielding   SideCounts
	Gold        SideCounts

	Champions         SideChampions
	LowItemGames      SideCounts
	EconomyChampGames SideCounts
}

// NewAccumulator returns an empty accumulator with the full placement
// histogram pre-seeded so serialized output always carries all eight keys.
func NewAccumulator() Accumulator {
	placements := make(map[int]int, 8)
	for p := 1; p <= 8; p++ {
		placements[p] = 0
	}
	return Accumulator{
		Placements: placements,
		Champions: SideChampions{
			Me:  map[string]int{},
			Duo: map[string]int{},
		},
	}
}

// Summary is the reduced, human-facing view of an accumulator.
type Summary struct {
	Games                int        `json:"games"`
	Wins                 int        `json:"wins"`
	WinRate              float64    `json:"winRate"`
	AvgPlacement         float64    `json:"avgPlacement"`
	Firsts               int        `json:"firsts"`
	FirstRate            string     `json:"firstRate"`
	FirstDeaths          SideCounts `json:"firstDeaths"`
	FirstDeathRate       string     `json:"firstDeathRate"`
	UnusedUlts           SideCounts `json:"unusedUlts"`
	ComfortBias          string     `json:"comfortBias"`
	ComfortPick          string     `json:"comfortPick"`
	ComfortPickRate      string     `json:"comfortPickRate"`
	ComfortPickRateValue float64    `json:"comfortPickRateValue"`
	DuoIdentity          string     `json:"duoIdentity"`
	Top4Streak           int        `json:"top4Streak"`
	Bottom4Streak        int        `json:"bottom4Streak"`
	MatchCount           int        `json:"matchCount"`
}

// MetricTotals is a per-side metric with its combined total.
type MetricTotals struct {
	Me    int `json:"me"`
	Duo   int `json:"duo"`
	Total int `json:"total"`
}

// SharePair is a per-side share of a metric. Both sides are zero when the
// metric total is zero; otherwise they sum to 1 within float tolerance.
type SharePair struct {
	Me  float64 `json:"me"`
	Duo float64 `json:"duo"`
}

// Streaks holds the historical maximum top-4 and bottom-4 run lengths.
type Streaks struct {
	Top4    int `json:"top4"`
	Bottom4 int `json:"bottom4"`
}

// Shares holds the comparative split of every tracked metric.
type Shares struct {
	Kills   SharePair `json:"kills"`
	Assists SharePair `json:"assists"`
	Deaths  SharePair `json:"deaths"`
	Damage  SharePair `json:"damage"`
	Tank    SharePair `json:"tank"`
	Support SharePair `json:"support"`
}

// PerGame holds per-game normalized rates, rounded to the nearest integer.
type PerGame struct {
	Damage      int `json:"damage"`
	DamageTaken int `json:"damageTaken"`
	Deaths      int `json:"deaths"`
	Kills       int `json:"kills"`
	Assists     int `json:"assists"`
}

// Diversity counts unique champions per side and combined.
type Diversity struct {
	Me       int `json:"me"`
	Duo      int `json:"duo"`
	Combined int `json:"combined"`
}

// InsightFlags gates downstream consumers. HasCombatStats is false when no
// combat statistic was recorded, e.g. a cache-compatibility fallback, and
// combat shares must not be referenced in that case.
type InsightFlags struct {
	HasCombatStats bool `json:"hasCombatStats"`
}

// Insights is the expanded comparative view of an accumulator.
type Insights struct {
	Placements   map[int]int  `json:"placements"`
	Streaks      Streaks      `json:"streaks"`
	Kills        MetricTotals `json:"kills"`
	Assists      MetricTotals `json:"assists"`
	Deaths       MetricTotals `json:"deaths"`
	Damage       MetricTotals `json:"damage"`
	DamageTaken  MetricTotals `json:"damageTaken"`
	Healing      MetricTotals `json:"healing"`
	Shielding    MetricTotals `json:"shielding"`
	Gold         MetricTotals `json:"gold"`
	Shares       Shares       `json:"shares"`
	PerGame      PerGame      `json:"perGame"`
	LowItemGames SideCounts   `json:"lowItemGames"`
	EconomyPicks SideCounts   `json:"economyPicks"`
	Diversity    Diversity    `json:"diversity"`
	Flags        InsightFlags `json:"flags"`
	Meta         *MetaOverlay `json:"meta"`
}

// MetaSide is one side's tier-table usage rates.
type MetaSide struct {
	Total       int     `json:"total"`
	SRate       float64 `json:"sRate"`
	MetaRate    float64 `json:"metaRate"`
	OffMetaRate float64 `json:"offMetaRate"`
}

// MetaOverlay compares both sides' champion picks against a tier table.
type MetaOverlay struct {
	Me  MetaSide `json:"me"`
	Duo MetaSide `json:"duo"`
}

// TierTable maps normalized champion keys to tier letters (S/A/B/C/D).
// Entries is the total number of champions ranked across all tiers; sparse
// tables (fewer than ten entries) produce no overlay.
type TierTable struct {
	ByChampion map[string]string
	Entries    int
}

// BlameFactor is one scored contribution to a party's blame, with the
// backing statistic rendered for display.
type BlameFactor struct {
	Factor string  `json:"factor"`
	Score  float64 `json:"score"`
	Detail string  `json:"detail"`
}

// BlameParty is one party's normalized blame share with its dominant reason
// and full factor breakdown.
type BlameParty struct {
	Share     float64       `json:"share"`
	Reason    string        `json:"reason"`
	Breakdown []BlameFactor `json:"breakdown"`
}

// BlameResult distributes fault across the two players and the game's
// variance. The three shares always sum to 1.
type BlameResult struct {
	Me   BlameParty `json:"me"`
	Duo  BlameParty `json:"duo"`
	Riot BlameParty `json:"riot"`
}

// Roast is one short-text card.
type Roast struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// MatchLine is the per-match row included in the response payload.
type MatchLine struct {
	Result    string `json:"result"`
	Placement int    `json:"placement"`
	Champs    string `json:"champs"`
	Highlight string `json:"highlight"`
}
