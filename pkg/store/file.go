package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists values to a JSON object on disk. Every Set rewrites
// the file.
type FileStore struct {
	filePath string
	mutex    sync.RWMutex
	data     map[string]string
}

// OpenFile loads the store at path, creating the file if it does not exist.
func OpenFile(path string) (*FileStore, error) {
	fs := &FileStore{
		filePath: path,
		data:     make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &fs.data); err != nil {
				return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
			}
		}
	case errors.Is(err, os.ErrNotExist):
		if err := fs.save(); err != nil {
			return nil, fmt.Errorf("failed to create settings file: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	return fs, nil
}

// Path returns the backing file path
func (fs *FileStore) Path() string {
	return fs.filePath
}

// Get returns the value stored under key
func (fs *FileStore) Get(key string) (string, bool) {
	fs.mutex.RLock()
	defer fs.mutex.RUnlock()
	v, ok := fs.data[key]
	return v, ok
}

// Set stores value under key and writes the file
func (fs *FileStore) Set(key, value string) error {
	fs.mutex.Lock()
	defer fs.mutex.Unlock()
	fs.data[key] = value

	if err := fs.save(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// save writes the whole map; callers hold the write lock.
func (fs *FileStore) save() error {
	data, err := json.MarshalIndent(fs.data, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(fs.filePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(fs.filePath, data, 0o644)
}
