package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// JSONFile keeps all keys in a single JSON object on disk. The file is read
// once at open and rewritten in full on every change. A file that cannot be
// decoded is moved aside to <path>.corrupt and the store opens empty.
type JSONFile struct {
	mu    sync.RWMutex
	path  string
	items map[string]string
}

func NewJSONFile(path string) (*JSONFile, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage directory: %w", err)
		}
	}
	f := &JSONFile{
		path:  path,
		items: make(map[string]string),
	}
	if err := f.load(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *JSONFile) load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read storage file: %w", err)
	}
	if len(b) == 0 {
		return nil
	}

	var loaded map[string]string
	if err := json.Unmarshal(b, &loaded); err != nil {
		log.Printf("Storage: corrupt %s, starting empty: %v", f.path, err)
		if err := os.Rename(f.path, f.path+".corrupt"); err != nil {
			log.Printf("Storage: failed to move aside %s: %v", f.path, err)
		}
		return nil
	}
	if loaded != nil {
		f.items = loaded
	}
	return nil
}

func (f *JSONFile) saveLocked() error {
	b, err := json.MarshalIndent(f.items, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

func (f *JSONFile) GetItem(key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.items[key]
	return v, ok, nil
}

func (f *JSONFile) SetItem(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[key] = value
	return f.saveLocked()
}

func (f *JSONFile) RemoveItem(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[key]; !ok {
		return nil
	}
	delete(f.items, key)
	return f.saveLocked()
}
