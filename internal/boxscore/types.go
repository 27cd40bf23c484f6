package boxscore

import (
	"database/sql"
	"sync"

	"github.com/mauv0809/courtside/internal/stats"
)

// store handles stat-line persistence.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// GameLogEntry is one of a player's stat lines with its game context.
type GameLogEntry struct {
	stats.StatLine
	Date     string  `json:"date"`
	Opponent string  `json:"opponent"`
	Location *string `json:"location"`
}
