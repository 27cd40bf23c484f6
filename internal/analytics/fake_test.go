package analytics

import (
	"context"

	"github.com/mauv0809/courtside/internal/stats"
)

type fakeGame struct {
	location *string
	opponent *string
}

// fakeRepo is an in-memory Repository. Unlike the database it does not
// enforce one line per player and game, so tests can feed it duplicates.
type fakeRepo struct {
	players []stats.PlayerRef
	games   map[int64]fakeGame
	lines   []stats.StatLine
	err     error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{games: make(map[int64]fakeGame)}
}

func (f *fakeRepo) addPlayer(id int64, name string) {
	f.players = append(f.players, stats.PlayerRef{ID: id, Name: name})
}

func (f *fakeRepo) addGame(id int64, location, opponent string) {
	g := fakeGame{}
	if location != "" {
		g.location = &location
	}
	if opponent != "" {
		g.opponent = &opponent
	}
	f.games[id] = g
}

func (f *fakeRepo) addLine(l stats.StatLine) {
	f.lines = append(f.lines, l)
}

func (f *fakeRepo) StatLines(_ context.Context, filter stats.Filter) ([]stats.StatLine, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []stats.StatLine
	for _, l := range f.lines {
		if filter.PlayerID != nil && l.PlayerID != *filter.PlayerID {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeRepo) GroupedStatLines(ctx context.Context, filter stats.Filter, group stats.GroupBy) ([]stats.GroupedStatLine, error) {
	lines, err := f.StatLines(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]stats.GroupedStatLine, 0, len(lines))
	for _, l := range lines {
		g := f.games[l.GameID]
		label := g.location
		if group == stats.GroupOpponent {
			label = g.opponent
		}
		out = append(out, stats.GroupedStatLine{Label: label, Line: l})
	}
	return out, nil
}

func (f *fakeRepo) Players(_ context.Context) ([]stats.PlayerRef, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.players, nil
}
