package prefs

import "sync"

// Memory is an in-process preference store for tests and embedders without
// an HTTP surface. The zero value is empty; writes follow the same
// validation as the cookie store.
type Memory struct {
	mu   sync.RWMutex
	code string
	has  bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Get returns the saved code, false when nothing valid is stored.
func (m *Memory) Get() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.code, m.has
}

// Set saves the code. Invalid codes are dropped silently.
func (m *Memory) Set(code string) {
	code = sanitizeCode(code)
	if code == "" {
		return
	}

	m.mu.Lock()
	m.code = code
	m.has = true
	m.mu.Unlock()
}

// Clear removes the stored preference.
func (m *Memory) Clear() {
	m.mu.Lock()
	m.code = ""
	m.has = false
	m.mu.Unlock()
}
