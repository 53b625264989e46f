package storage

import (
	"encoding/json"
	"fmt"
)

// LoadList decodes the list stored under key. A missing key yields an empty
// list. A value that cannot be decoded also yields an empty list, together
// with the decode error so the caller can log it.
func LoadList[T any](kv KeyValue, key string) ([]T, error) {
	raw, ok, err := kv.GetItem(key)
	if err != nil {
		return []T{}, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || raw == "" {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []T{}, fmt.Errorf("decode %s: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// SaveList serializes the full list under key.
func SaveList[T any](kv KeyValue, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.SetItem(key, string(b)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
