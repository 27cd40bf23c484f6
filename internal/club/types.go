package club

import (
	"database/sql"
	"sync"
)

// store handles all roster database operations.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Player is a club roster member.
type Player struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	JerseyNumber *int    `json:"jersey_number"`
	Position     *string `json:"position"`
}

// Game is a fixture the club played. Date is stored as given.
type Game struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	Opponent string  `json:"opponent"`
	Location *string `json:"location"`
}

// PlayerMatch is a roster player scored against a name query.
type PlayerMatch struct {
	Player     Player
	Confidence float64
}
