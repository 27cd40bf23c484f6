package auth

import (
	"context"
	"sync"
)

var _ UserStore = (*MockStore)(nil)

// MockStore is a mock implementation of UserStore for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateUserFunc   func(ctx context.Context, username, password string, role Role) (User, error)
	GetUserFunc      func(ctx context.Context, username string) (User, error)
	AuthenticateFunc func(ctx context.Context, username, password string) (User, error)

	// Call records
	CreateUserCalls []string
	GetUserCalls    []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateUserCalls = nil
	m.GetUserCalls = nil
}

func (m *MockStore) CreateUser(ctx context.Context, username, password string, role Role) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateUserCalls = append(m.CreateUserCalls, username)
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, username, password, role)
	}
	return User{Username: username, Role: role}, nil
}

func (m *MockStore) GetUser(ctx context.Context, username string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetUserCalls = append(m.GetUserCalls, username)
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, username)
	}
	return User{}, ErrUserNotFound
}

func (m *MockStore) Authenticate(ctx context.Context, username, password string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, username, password)
	}
	return User{}, ErrInvalidCredentials
}
