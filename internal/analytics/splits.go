package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/stats"
)

// locations are the location groups, in output order.
var locations = []string{"Home", "Away"}

// Splits computes both the location and the opponent breakdown.
func (e *Engine) Splits(ctx context.Context, scope Scope, kind Kind) (Splits, error) {
	byLocation, err := e.Split(ctx, scope, stats.GroupLocation, kind)
	if err != nil {
		return Splits{}, err
	}
	byOpponent, err := e.Split(ctx, scope, stats.GroupOpponent, kind)
	if err != nil {
		return Splits{}, err
	}
	return Splits{Location: byLocation, Opponents: byOpponent}, nil
}

// Split computes one record per group.
//
// Location always yields Home then Away; a side with no games is an all-zero
// record and games at any other location are ignored. Opponent yields one
// record per opponent present in the data, in ascending order.
func (e *Engine) Split(ctx context.Context, scope Scope, group stats.GroupBy, kind Kind) ([]Record, error) {
	if group != stats.GroupLocation && group != stats.GroupOpponent {
		return nil, fmt.Errorf("%w: unknown grouping %q", ErrInvalidArgument, group)
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}

	rows, err := e.repo.GroupedStatLines(ctx, scope.filter(), group)
	if err != nil {
		return nil, fmt.Errorf("failed to load grouped stat lines: %w", err)
	}

	groups := make(map[string]*accumulator)
	for _, row := range rows {
		if row.Label == nil {
			continue
		}
		acc, ok := groups[*row.Label]
		if !ok {
			acc = newAccumulator()
			groups[*row.Label] = acc
		}
		if err := acc.add(row.Line); err != nil {
			log.Error("Duplicate stat line in split input", "error", err, "scope", scope.Key(), "group", group)
			return nil, err
		}
	}

	var labels []string
	if group == stats.GroupLocation {
		labels = locations
	} else {
		for label := range groups {
			labels = append(labels, label)
		}
		sort.Strings(labels)
	}

	out := make([]Record, 0, len(labels))
	for _, label := range labels {
		label := label
		acc, ok := groups[label]
		if !ok || acc.rows == 0 {
			out = append(out, e.zeroRecord(kind, &label))
			continue
		}
		out = append(out, e.finish(acc, scope, kind, &label))
	}
	return out, nil
}
