package boxscore

import (
	"context"
	"sync"

	"github.com/mauv0809/courtside/internal/stats"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateFunc           func(ctx context.Context, line stats.StatLine) (stats.StatLine, error)
	UpsertFunc           func(ctx context.Context, line stats.StatLine) (stats.StatLine, error)
	GetFunc              func(ctx context.Context, playerID, gameID int64) (stats.StatLine, error)
	PatchFunc            func(ctx context.Context, playerID, gameID int64, patch stats.Patch) (stats.StatLine, error)
	DeleteFunc           func(ctx context.Context, playerID, gameID int64) error
	ForGameFunc          func(ctx context.Context, gameID int64) ([]stats.StatLine, error)
	GameLogFunc          func(ctx context.Context, playerID int64) ([]GameLogEntry, error)
	StatLinesFunc        func(ctx context.Context, filter stats.Filter) ([]stats.StatLine, error)
	GroupedStatLinesFunc func(ctx context.Context, filter stats.Filter, group stats.GroupBy) ([]stats.GroupedStatLine, error)
	PlayersFunc          func(ctx context.Context) ([]stats.PlayerRef, error)

	// Call records
	CreateCalls []stats.StatLine
	UpsertCalls []stats.StatLine
	PatchCalls  []PatchCall
}

// PatchCall holds the arguments for a call to Patch.
type PatchCall struct {
	PlayerID int64
	GameID   int64
	Patch    stats.Patch
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = nil
	m.UpsertCalls = nil
	m.PatchCalls = nil
}

func (m *MockStore) Create(ctx context.Context, line stats.StatLine) (stats.StatLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = append(m.CreateCalls, line)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, line)
	}
	return line, nil
}

func (m *MockStore) Upsert(ctx context.Context, line stats.StatLine) (stats.StatLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertCalls = append(m.UpsertCalls, line)
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, line)
	}
	return line, nil
}

func (m *MockStore) Get(ctx context.Context, playerID, gameID int64) (stats.StatLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(ctx, playerID, gameID)
	}
	return stats.StatLine{PlayerID: playerID, GameID: gameID}, nil
}

func (m *MockStore) Patch(ctx context.Context, playerID, gameID int64, patch stats.Patch) (stats.StatLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PatchCalls = append(m.PatchCalls, PatchCall{PlayerID: playerID, GameID: gameID, Patch: patch})
	if m.PatchFunc != nil {
		return m.PatchFunc(ctx, playerID, gameID, patch)
	}
	line := stats.StatLine{PlayerID: playerID, GameID: gameID}
	patch.Apply(&line)
	return line, nil
}

func (m *MockStore) Delete(ctx context.Context, playerID, gameID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, playerID, gameID)
	}
	return nil
}

func (m *MockStore) ForGame(ctx context.Context, gameID int64) ([]stats.StatLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ForGameFunc != nil {
		return m.ForGameFunc(ctx, gameID)
	}
	return []stats.StatLine{}, nil
}

func (m *MockStore) GameLog(ctx context.Context, playerID int64) ([]GameLogEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GameLogFunc != nil {
		return m.GameLogFunc(ctx, playerID)
	}
	return []GameLogEntry{}, nil
}

func (m *MockStore) StatLines(ctx context.Context, filter stats.Filter) ([]stats.StatLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.StatLinesFunc != nil {
		return m.StatLinesFunc(ctx, filter)
	}
	return nil, nil
}

func (m *MockStore) GroupedStatLines(ctx context.Context, filter stats.Filter, group stats.GroupBy) ([]stats.GroupedStatLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GroupedStatLinesFunc != nil {
		return m.GroupedStatLinesFunc(ctx, filter, group)
	}
	return nil, nil
}

func (m *MockStore) Players(ctx context.Context) ([]stats.PlayerRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PlayersFunc != nil {
		return m.PlayersFunc(ctx)
	}
	return nil, nil
}
