package riot

// Account represents the response from /riot/account/v1/accounts/by-riot-id.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner represents the response from /lol/summoner/v4/summoners/by-name.
type Summoner struct {
	PUUID string `json:"puuid"`
	Name  string `json:"name"`
}

// Player is a resolved player identity.
type Player struct {
	PUUID string
	Name  string
}

// Match represents the response from /lol/match/v5/matches/{matchId}.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"` // PUUIDs
}

type MatchInfo struct {
	GameMode     string        `json:"gameMode"`
	QueueID      int           `json:"queueId"`
	GameCreation int64         `json:"gameCreation"`
	GameDuration int           `json:"gameDuration"`
	Participants []Participant `json:"participants"`
}

// Participant is one player's statistics within a match. Placement and the
// augment-era fields are only populated for arena games.
type Participant struct {
	PUUID        string `json:"puuid"`
	ChampionName string `json:"championName"`
	Placement    int    `json:"placement"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	TotalDamageDealtToChampions   int `json:"totalDamageDealtToChampions"`
	TotalDamageTaken              int `json:"totalDamageTaken"`
	TotalHeal                     int `json:"totalHeal"`
	TotalDamageShieldedOnTeammate int `json:"totalDamageShieldedOnTeammates"`
	GoldEarned                    int `json:"goldEarned"`

	Spell4Casts int `json:"spell4Casts"`

	Item0 int `json:"item0"`
	Item1 int `json:"item1"`
	Item2 int `json:"item2"`
	Item3 int `json:"item3"`
	Item4 int `json:"item4"`
	Item5 int `json:"item5"`
}

// ItemCount returns the number of filled item slots.
func (p Participant) ItemCount() int {
	count := 0
	for _, item := range []int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5} {
		if item > 0 {
			count++
		}
	}
	return count
}

// ParticipantByPUUID finds a participant in the match, nil when absent.
func (m *Match) ParticipantByPUUID(puuid string) *Participant {
	for i := range m.Info.Participants {
		if m.Info.Participants[i].PUUID == puuid {
			return &m.Info.Participants[i]
		}
	}
	return nil
}
