package cartstore

import (
	"context"
	"sync"

	"manox/internal/domain"
)

// Memory is an in-memory Store for tests and ephemeral sessions. The
// error fields, when set, make the corresponding operation fail.
type Memory struct {
	mu      sync.Mutex
	state   *domain.Cart
	saves   int
	LoadErr error
	SaveErr error
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) (*domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, &PersistenceError{Op: "load", Err: m.LoadErr}
	}
	if m.state == nil {
		return nil, nil
	}
	cp := *m.state
	cp.Items = append([]domain.CartItem(nil), m.state.Items...)
	return &cp, nil
}

func (m *Memory) Save(_ context.Context, state domain.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return &PersistenceError{Op: "save", Err: m.SaveErr}
	}
	cp := state
	cp.Items = append([]domain.CartItem(nil), state.Items...)
	m.state = &cp
	m.saves++
	return nil
}

// Saves reports how many successful Save calls happened.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Seed sets the persisted state directly, bypassing Save accounting.
func (m *Memory) Seed(state domain.Cart) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := state
	cp.Items = append([]domain.CartItem(nil), state.Items...)
	m.state = &cp
}
