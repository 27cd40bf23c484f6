package analytics

import (
	"context"

	"github.com/mauv0809/courtside/internal/stats"
)

// Repository is the read-only source of stat lines the engine aggregates.
type Repository interface {
	StatLines(ctx context.Context, filter stats.Filter) ([]stats.StatLine, error)
	GroupedStatLines(ctx context.Context, filter stats.Filter, group stats.GroupBy) ([]stats.GroupedStatLine, error)
	Players(ctx context.Context) ([]stats.PlayerRef, error)
}
