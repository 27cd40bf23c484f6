package club

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of the ClubStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	AddPlayerFunc     func(ctx context.Context, player Player) (Player, error)
	GetPlayerFunc     func(ctx context.Context, id int64) (Player, error)
	GetAllPlayersFunc func(ctx context.Context) ([]Player, error)
	FindPlayersFunc   func(ctx context.Context, query string) ([]PlayerMatch, error)
	DeletePlayerFunc  func(ctx context.Context, id int64) error
	AddGameFunc       func(ctx context.Context, game Game) (Game, error)
	GetGameFunc       func(ctx context.Context, id int64) (Game, error)
	GetAllGamesFunc   func(ctx context.Context) ([]Game, error)
	DeleteGameFunc    func(ctx context.Context, id int64) error

	// Call records
	AddPlayerCalls    []Player
	DeletePlayerCalls []int64
	AddGameCalls      []Game
	DeleteGameCalls   []int64
	FindPlayersCalls  []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = nil
	m.DeletePlayerCalls = nil
	m.AddGameCalls = nil
	m.DeleteGameCalls = nil
	m.FindPlayersCalls = nil
}

func (m *MockStore) AddPlayer(ctx context.Context, player Player) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddPlayerCalls = append(m.AddPlayerCalls, player)
	if m.AddPlayerFunc != nil {
		return m.AddPlayerFunc(ctx, player)
	}
	return player, nil
}

func (m *MockStore) GetPlayer(ctx context.Context, id int64) (Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(ctx, id)
	}
	return Player{ID: id}, nil
}

func (m *MockStore) GetAllPlayers(ctx context.Context) ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc(ctx)
	}
	return []Player{}, nil
}

func (m *MockStore) FindPlayers(ctx context.Context, query string) ([]PlayerMatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FindPlayersCalls = append(m.FindPlayersCalls, query)
	if m.FindPlayersFunc != nil {
		return m.FindPlayersFunc(ctx, query)
	}
	return nil, nil
}

func (m *MockStore) DeletePlayer(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeletePlayerCalls = append(m.DeletePlayerCalls, id)
	if m.DeletePlayerFunc != nil {
		return m.DeletePlayerFunc(ctx, id)
	}
	return nil
}

func (m *MockStore) AddGame(ctx context.Context, game Game) (Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddGameCalls = append(m.AddGameCalls, game)
	if m.AddGameFunc != nil {
		return m.AddGameFunc(ctx, game)
	}
	return game, nil
}

func (m *MockStore) GetGame(ctx context.Context, id int64) (Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetGameFunc != nil {
		return m.GetGameFunc(ctx, id)
	}
	return Game{ID: id}, nil
}

func (m *MockStore) GetAllGames(ctx context.Context) ([]Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllGamesFunc != nil {
		return m.GetAllGamesFunc(ctx)
	}
	return []Game{}, nil
}

func (m *MockStore) DeleteGame(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteGameCalls = append(m.DeleteGameCalls, id)
	if m.DeleteGameFunc != nil {
		return m.DeleteGameFunc(ctx, id)
	}
	return nil
}
