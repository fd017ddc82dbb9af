// Package statestore keeps the per-item bookmarked/read flags. The store is
// deliberately in-process and ephemeral: feed items are replaced on every
// refresh and their state with them.
package statestore

import (
	"sync"

	"portfolio-pulse/internal/domain"
)

type itemFlags struct {
	Bookmarked bool
	Read       bool
}

// Memory is a concurrency-safe in-memory flag store keyed by feed item ID.
type Memory struct {
	mu    sync.RWMutex
	flags map[string]itemFlags
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{flags: make(map[string]itemFlags)}
}

// SetBookmarked records the bookmark flag for an item.
func (m *Memory) SetBookmarked(id string, bookmarked bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := m.flags[id]
	f.Bookmarked = bookmarked
	m.flags[id] = f
}

// SetRead records the read flag for an item.
func (m *Memory) SetRead(id string, read bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f := m.flags[id]
	f.Read = read
	m.flags[id] = f
}

// Apply merges stored flags into the given items and returns them.
func (m *Memory) Apply(items []domain.FeedItem) []domain.FeedItem {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range items {
		if f, ok := m.flags[items[i].ID]; ok {
			items[i].Bookmarked = f.Bookmarked
			items[i].Read = f.Read
		}
	}
	return items
}
