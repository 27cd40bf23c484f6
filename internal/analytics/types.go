package analytics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mauv0809/courtside/internal/stats"
)

// Kind selects between summed and per-game records.
type Kind string

const (
	KindTotals   Kind = "totals"
	KindAverages Kind = "averages"
)

// ParseKind accepts "totals" or "averages".
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case KindTotals:
		return KindTotals, nil
	case KindAverages:
		return KindAverages, nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidArgument, s)
}

func (k Kind) prefix() string {
	if k == KindAverages {
		return stats.AveragePrefix
	}
	return stats.TotalPrefix
}

// ParseGroup accepts "location" or "opponent" (also "opponents").
func ParseGroup(s string) (stats.GroupBy, error) {
	switch strings.ToLower(s) {
	case "location":
		return stats.GroupLocation, nil
	case "opponent", "opponents":
		return stats.GroupOpponent, nil
	}
	return "", fmt.Errorf("%w: unknown grouping %q", ErrInvalidArgument, s)
}

// Scope is either one player or the whole team.
type Scope struct {
	PlayerID *int64
}

// Team is the team-wide scope.
func Team() Scope { return Scope{} }

// Player is the scope of a single player.
func Player(id int64) Scope { return Scope{PlayerID: &id} }

// IsTeam reports whether the scope covers every player.
func (s Scope) IsTeam() bool { return s.PlayerID == nil }

// Key identifies the scope in cache keys.
func (s Scope) Key() string {
	if s.IsTeam() {
		return "team"
	}
	return "player:" + strconv.FormatInt(*s.PlayerID, 10)
}

func (s Scope) filter() stats.Filter {
	return stats.Filter{PlayerID: s.PlayerID}
}

// Record is one aggregate result. Values holds one entry per tracked
// statistic keyed by its canonical key; a nil value is an undefined
// aggregate and renders as null.
type Record struct {
	Label       *string             `msgpack:"label"`
	Kind        Kind                `msgpack:"kind"`
	GamesPlayed int                 `msgpack:"games_played"`
	Values      map[string]*float64 `msgpack:"values"`
}

// Value returns the aggregate of s, or nil when it is undefined or not
// tracked.
func (r Record) Value(s stats.Stat) *float64 {
	return r.Values[s.Key()]
}

// Map renders the record with prefixed keys, e.g. total_points or avg_FG.
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r.Values)+2)
	out["games_played"] = r.GamesPlayed
	if r.Label != nil {
		out["label"] = *r.Label
	}
	prefix := r.Kind.prefix()
	for k, v := range r.Values {
		out[prefix+k] = v
	}
	return stats.NormalizeKeys(out)
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Map())
}

// UnmarshalJSON reads a record rendered by Map, accepting lowercase
// statistic keys.
func (r *Record) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	raw = stats.NormalizeKeys(raw)

	*r = Record{Values: make(map[string]*float64)}
	if label, ok := raw["label"].(string); ok {
		r.Label = &label
	}
	if gp, ok := raw["games_played"].(float64); ok {
		r.GamesPlayed = int(gp)
	}
	for k, v := range raw {
		var key string
		switch {
		case strings.HasPrefix(k, stats.TotalPrefix):
			r.Kind, key = KindTotals, strings.TrimPrefix(k, stats.TotalPrefix)
		case strings.HasPrefix(k, stats.AveragePrefix):
			r.Kind, key = KindAverages, strings.TrimPrefix(k, stats.AveragePrefix)
		default:
			continue
		}
		if f, ok := v.(float64); ok {
			r.Values[key] = &f
		} else {
			r.Values[key] = nil
		}
	}
	return nil
}

// Splits holds the location and opponent breakdowns of one scope.
type Splits struct {
	Location  []Record `json:"location" msgpack:"location"`
	Opponents []Record `json:"opponents" msgpack:"opponents"`
}

// LeaderEntry is one player's position on a leaderboard.
type LeaderEntry struct {
	PlayerID     int64   `json:"player_id" msgpack:"player_id"`
	Name         string  `json:"name" msgpack:"name"`
	JerseyNumber *int    `json:"jersey_number" msgpack:"jersey_number"`
	Value        float64 `json:"value" msgpack:"value"`
}

// Leaderboards maps each metric key to its ranked entries.
type Leaderboards map[string][]LeaderEntry

// MarshalJSON writes the boards in canonical statistic order (minutes,
// points, rebounds, ...) rather than sorted by key.
func (l Leaderboards) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, s := range stats.All() {
		entries, ok := l[s.Key()]
		if !ok {
			continue
		}
		if entries == nil {
			entries = []LeaderEntry{}
		}
		key, err := json.Marshal(s.Key())
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entries)
		if err != nil {
			return nil, err
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PlayerSummary is a player's career totals and averages.
type PlayerSummary struct {
	PlayerID     int64   `json:"player_id" msgpack:"player_id"`
	Name         string  `json:"name" msgpack:"name"`
	JerseyNumber *int    `json:"jersey_number" msgpack:"jersey_number"`
	Position     *string `json:"position" msgpack:"position"`
	Totals       Record  `json:"totals" msgpack:"totals"`
	Averages     Record  `json:"averages" msgpack:"averages"`
}
