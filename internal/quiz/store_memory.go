package quiz

import (
	"context"
	"strings"
	"sync"
)

type memoryStore struct {
	mu   sync.RWMutex
	rows []Question
}

// NewMemoryStore returns an in-memory Store seeded with the given rows.
// Readers run concurrently; Append takes the write lock.
func NewMemoryStore(seed []Question) Store {
	rows := make([]Question, len(seed))
	copy(rows, seed)
	return &memoryStore{rows: rows}
}

func (m *memoryStore) Filter(_ context.Context, use, subject string) ([]Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Question
	for _, q := range m.rows {
		if q.Use == use && strings.Contains(q.Subject, subject) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memoryStore) FindByText(_ context.Context, text string) ([]Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Question
	for _, q := range m.rows {
		if q.Question == text {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memoryStore) Append(_ context.Context, q Question) (Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, q)
	return q, nil
}

func (m *memoryStore) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.rows), nil
}
