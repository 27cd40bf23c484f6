package boxscore

import (
	"context"

	"github.com/mauv0809/courtside/internal/stats"
)

// Store persists stat lines and serves them to the aggregation engine.
type Store interface {
	Create(ctx context.Context, line stats.StatLine) (stats.StatLine, error)
	Upsert(ctx context.Context, line stats.StatLine) (stats.StatLine, error)
	Get(ctx context.Context, playerID, gameID int64) (stats.StatLine, error)
	Patch(ctx context.Context, playerID, gameID int64, patch stats.Patch) (stats.StatLine, error)
	Delete(ctx context.Context, playerID, gameID int64) error
	ForGame(ctx context.Context, gameID int64) ([]stats.StatLine, error)
	GameLog(ctx context.Context, playerID int64) ([]GameLogEntry, error)

	StatLines(ctx context.Context, filter stats.Filter) ([]stats.StatLine, error)
	GroupedStatLines(ctx context.Context, filter stats.Filter, group stats.GroupBy) ([]stats.GroupedStatLine, error)
	Players(ctx context.Context) ([]stats.PlayerRef, error)
}
