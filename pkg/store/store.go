// Package store keeps the player's local key-value data: best scores and
// audio settings, string-encoded under fixed keys.
package store

import (
	"strconv"
	"sync"
)

// Fixed keys.
const (
	KeyBestHeight = "bob-turtle-best-height"
	KeyBestPoints = "bob-turtle-best-points"
	KeyVolume     = "bob-turtle-volume"
	KeyMuted      = "bob-turtle-muted"
)

// Store is a string key-value store
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// MemoryStore keeps values in memory only
type MemoryStore struct {
	mutex sync.RWMutex
	data  map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

// Get returns the value stored under key
func (ms *MemoryStore) Get(key string) (string, bool) {
	ms.mutex.RLock()
	defer ms.mutex.RUnlock()
	v, ok := ms.data[key]
	return v, ok
}

// Set stores value under key
func (ms *MemoryStore) Set(key, value string) error {
	ms.mutex.Lock()
	defer ms.mutex.Unlock()
	ms.data[key] = value
	return nil
}

// Int reads an integer, returning def when the key is missing or unparsable.
func Int(s Store, key string, def int) int {
	raw, ok := s.Get(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// SetInt stores v in base 10
func SetInt(s Store, key string, v int) error {
	return s.Set(key, strconv.Itoa(v))
}

// Float reads a float, returning def when the key is missing or unparsable.
func Float(s Store, key string, def float64) float64 {
	raw, ok := s.Get(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}

// SetFloat stores v in its shortest decimal form
func SetFloat(s Store, key string, v float64) error {
	return s.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
}

// Bool reads "true" or "false"; anything else yields def.
func Bool(s Store, key string, def bool) bool {
	raw, ok := s.Get(key)
	if !ok {
		return def
	}
	switch raw {
	case "true":
		return true
	case "false":
		return false
	default:
		return def
	}
}

// SetBool stores "true" or "false"
func SetBool(s Store, key string, v bool) error {
	return s.Set(key, strconv.FormatBool(v))
}
