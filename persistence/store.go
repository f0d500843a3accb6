// Package persistence stores match results and client settings through
// gdata's per-application key/value storage.
package persistence

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata"
)

// ItemStore is the subset of *gdata.Manager the package needs.
type ItemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Open initializes gdata storage for appName.
func Open(appName string) (ItemStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open gdata %q: %w", appName, err)
	}
	return m, nil
}

// MemStore is an in-memory ItemStore used when gdata is unavailable.
type MemStore struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{items: make(map[string][]byte)}
}

func (m *MemStore) LoadItem(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (m *MemStore) SaveItem(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = append([]byte(nil), data...)
	return nil
}

// OpenOrMemory opens gdata storage, falling back to memory with a warning.
func OpenOrMemory(appName string) ItemStore {
	store, err := Open(appName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence, results will not be saved: %v", err)
		return NewMemStore()
	}
	return store
}

func loadJSON(store ItemStore, key string, v any) (bool, error) {
	data, err := store.LoadItem(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return true, nil
}

func saveJSON(store ItemStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := store.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
