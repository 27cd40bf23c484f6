package stats

// StatLine is one player's box-score line for one game.
type StatLine struct {
	ID        int64   `json:"id" msgpack:"id"`
	PlayerID  int64   `json:"player_id" msgpack:"player_id"`
	GameID    int64   `json:"game_id" msgpack:"game_id"`
	Minutes   Minutes `json:"minutes" msgpack:"minutes"`
	Points    int     `json:"points" msgpack:"points"`
	Rebounds  int     `json:"rebounds" msgpack:"rebounds"`
	OREB      int     `json:"OREB" msgpack:"OREB"`
	Assists   int     `json:"assists" msgpack:"assists"`
	Steals    int     `json:"steals" msgpack:"steals"`
	Blocks    int     `json:"blocks" msgpack:"blocks"`
	Turnovers int     `json:"turnovers" msgpack:"turnovers"`
	Fouls     int     `json:"fouls" msgpack:"fouls"`
	FG        int     `json:"FG" msgpack:"FG"`
	FGA       int     `json:"FGA" msgpack:"FGA"`
	FG3       int     `json:"FG3" msgpack:"FG3"`
	FGA3      int     `json:"FGA3" msgpack:"FGA3"`
	FT        int     `json:"FT" msgpack:"FT"`
	FTA       int     `json:"FTA" msgpack:"FTA"`
	PM        int     `json:"PM" msgpack:"PM"`
	Starter   bool    `json:"starter" msgpack:"starter"`
}

// Patch is a partial stat-line update. Nil fields are left untouched.
type Patch struct {
	Minutes   *Minutes `json:"minutes,omitempty"`
	Points    *int     `json:"points,omitempty"`
	Rebounds  *int     `json:"rebounds,omitempty"`
	OREB      *int     `json:"OREB,omitempty"`
	Assists   *int     `json:"assists,omitempty"`
	Steals    *int     `json:"steals,omitempty"`
	Blocks    *int     `json:"blocks,omitempty"`
	Turnovers *int     `json:"turnovers,omitempty"`
	Fouls     *int     `json:"fouls,omitempty"`
	FG        *int     `json:"FG,omitempty"`
	FGA       *int     `json:"FGA,omitempty"`
	FG3       *int     `json:"FG3,omitempty"`
	FGA3      *int     `json:"FGA3,omitempty"`
	FT        *int     `json:"FT,omitempty"`
	FTA       *int     `json:"FTA,omitempty"`
	PM        *int     `json:"PM,omitempty"`
	Starter   *bool    `json:"starter,omitempty"`
}

// Filter narrows the stat lines a query returns. A nil PlayerID means the
// whole team.
type Filter struct {
	PlayerID *int64
}

// GroupBy names the game attribute stat lines are grouped by.
type GroupBy string

const (
	GroupNone     GroupBy = ""
	GroupLocation GroupBy = "location"
	GroupOpponent GroupBy = "opponent"
)

// GroupedStatLine pairs a stat line with the value of its grouping key.
// Label is nil when the game has no value for the key.
type GroupedStatLine struct {
	Label *string
	Line  StatLine
}

// PlayerRef is the slice of a player needed to label leaderboard entries.
type PlayerRef struct {
	ID           int64   `json:"player_id" msgpack:"player_id"`
	Name         string  `json:"name" msgpack:"name"`
	JerseyNumber *int    `json:"jersey_number" msgpack:"jersey_number"`
	Position     *string `json:"position" msgpack:"position"`
}
