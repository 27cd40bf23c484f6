package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

var _ Cache = (*Mock)(nil)

// Mock is an in-memory Cache for testing. Values are round-tripped through
// MessagePack like the Redis implementation. It is safe for concurrent use.
type Mock struct {
	mu         sync.Mutex
	generation int64
	entries    map[string][]byte

	GetFunc func(key string) (bool, error)
	SetFunc func(key string) error

	Invalidations int
}

// NewMock creates an empty Mock.
func NewMock() *Mock {
	return &Mock{entries: make(map[string][]byte)}
}

func (m *Mock) Generation(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generation, nil
}

func (m *Mock) Get(_ context.Context, gen int64, key string, dest any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetFunc != nil {
		return m.GetFunc(key)
	}
	data, ok := m.entries[fmt.Sprintf("%d:%s", gen, key)]
	if !ok {
		return false, nil
	}
	return true, msgpack.Unmarshal(data, dest)
}

// Set drops writes for a stale generation; Redis would store them where
// no reader looks.
func (m *Mock) Set(_ context.Context, gen int64, key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetFunc != nil {
		return m.SetFunc(key)
	}
	if gen != m.generation {
		return nil
	}
	data, err := msgpack.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[fmt.Sprintf("%d:%s", gen, key)] = data
	return nil
}

func (m *Mock) Invalidate(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generation++
	m.entries = make(map[string][]byte)
	m.Invalidations++
	return nil
}

func (m *Mock) Close() error { return nil }

// Len returns the number of stored entries.
func (m *Mock) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
