package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/courtside/internal/stats"
)

// DefaultLeaderLimit is the leaderboard size when the caller gives none.
const DefaultLeaderLimit = 5

// Leaders ranks every player on every tracked metric by career sum.
// Players without stat lines are ranked with zero.
func (e *Engine) Leaders(ctx context.Context, limit int) (Leaderboards, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be at least 1, got %d", ErrInvalidArgument, limit)
	}
	players, sums, err := e.careerSums(ctx)
	if err != nil {
		return nil, err
	}

	boards := make(Leaderboards, len(e.tracked))
	for _, s := range e.tracked {
		boards[s.Key()] = rank(players, sums, s, limit)
	}
	return boards, nil
}

// Leader ranks every player on a single metric. The metric may be given in
// any supported key spelling.
func (e *Engine) Leader(ctx context.Context, metric string, limit int) ([]LeaderEntry, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be at least 1, got %d", ErrInvalidArgument, limit)
	}
	s, ok := stats.Lookup(metric)
	if !ok || !e.tracks(s) {
		return nil, fmt.Errorf("%w: unknown metric %q", ErrInvalidArgument, metric)
	}
	players, sums, err := e.careerSums(ctx)
	if err != nil {
		return nil, err
	}
	return rank(players, sums, s, limit), nil
}

func (e *Engine) tracks(s stats.Stat) bool {
	for _, t := range e.tracked {
		if t == s {
			return true
		}
	}
	return false
}

// careerSums loads every player and the sum of each statistic per player.
func (e *Engine) careerSums(ctx context.Context) ([]stats.PlayerRef, map[int64]*accumulator, error) {
	players, err := e.repo.Players(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load players: %w", err)
	}
	lines, err := e.repo.StatLines(ctx, stats.Filter{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load stat lines: %w", err)
	}

	sums := make(map[int64]*accumulator, len(players))
	for _, p := range players {
		sums[p.ID] = newAccumulator()
	}
	for _, l := range lines {
		acc, ok := sums[l.PlayerID]
		if !ok {
			log.Warn("Stat line for unknown player ignored", "playerID", l.PlayerID, "gameID", l.GameID)
			continue
		}
		if err := acc.add(l); err != nil {
			log.Error("Duplicate stat line in leaderboard input", "error", err)
			return nil, nil, err
		}
	}
	return players, sums, nil
}

// rank orders players by their sum of s, descending, ties broken by the
// lower player ID, and keeps the first limit.
func rank(players []stats.PlayerRef, sums map[int64]*accumulator, s stats.Stat, limit int) []LeaderEntry {
	entries := make([]LeaderEntry, 0, len(players))
	for _, p := range players {
		v := sums[p.ID].sums[s]
		if s == stats.StatMinutes {
			v = round(v, 3)
		}
		entries = append(entries, LeaderEntry{
			PlayerID:     p.ID,
			Name:         p.Name,
			JerseyNumber: p.JerseyNumber,
			Value:        v,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
