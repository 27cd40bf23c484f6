package analytics

import "errors"

var (
	// ErrInvalidArgument is returned for a bad limit, grouping, kind or metric.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDataInconsistency is returned when the repository yields more than
	// one stat line for the same player and game.
	ErrDataInconsistency = errors.New("data inconsistency")
)
