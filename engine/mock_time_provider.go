package engine

import (
	"sync"
	"time"
)

// MockTimeProvider is a manually advanced clock for tests
type MockTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockTimeProvider creates a mock clock frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// AdvanceSeconds moves the clock forward by a frame delta in seconds
func (m *MockTimeProvider) AdvanceSeconds(dt float64) {
	m.Advance(time.Duration(dt * float64(time.Second)))
}
