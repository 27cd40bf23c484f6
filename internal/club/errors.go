package club

import "errors"

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrGameNotFound   = errors.New("game not found")
	ErrGameExists     = errors.New("game already exists for this date, opponent and location")
)
