package boxscore

import "errors"

var (
	ErrStatLineNotFound  = errors.New("stat line not found")
	ErrDuplicateStatLine = errors.New("stat line already exists for this player and game")
	ErrUnknownReference  = errors.New("stat line references an unknown player or game")
	ErrUnsupportedGroup  = errors.New("unsupported grouping")
)
