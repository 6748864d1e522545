// Package session keeps per-user game state for the lifetime of the process.
package session

import (
	"sync"

	"github.com/samber/mo"
)

// Store maps a user identity to that user's active session of one game kind.
type Store[S any] interface {
	Get(user string) mo.Option[S]
	// Put stores s, replacing any previous session of the user.
	Put(user string, s S)
	// Delete removes the user's session and reports whether one existed.
	Delete(user string) bool
	Len() int
}

// Memory is a Store backed by a map. Entries live until deleted.
type Memory[S any] struct {
	mu       sync.RWMutex
	sessions map[string]S
}

// NewMemory returns an empty in-memory store.
func NewMemory[S any]() *Memory[S] {
	return &Memory[S]{sessions: make(map[string]S)}
}

func (m *Memory[S]) Get(user string) mo.Option[S] {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[user]
	if !ok {
		return mo.None[S]()
	}
	return mo.Some(s)
}

func (m *Memory[S]) Put(user string, s S) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[user] = s
}

func (m *Memory[S]) Delete(user string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.sessions[user]
	delete(m.sessions, user)
	return ok
}

func (m *Memory[S]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}
