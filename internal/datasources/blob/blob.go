// Package blob provides drivers for the single durable slot the article
// collection is persisted to. Every write overwrites the slot wholesale.
package blob

import (
	"context"
	"slices"
	"sync"
)

// DefaultSlot is the slot name used when none is configured.
const DefaultSlot = "article_manager_storage"

// Storage is a single named durable slot.
type Storage interface {
	// Load reads the slot. found is false when the slot has never been
	// written.
	Load(ctx context.Context) (data []byte, found bool, err error)

	// Store overwrites the slot.
	Store(ctx context.Context, data []byte) error
}

// Memory is an in-process Storage, used in tests and demo mode.
type Memory struct {
	mu    sync.Mutex
	data  []byte
	found bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.data), m.found, nil
}

func (m *Memory) Store(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = slices.Clone(data)
	m.found = true
	return nil
}
