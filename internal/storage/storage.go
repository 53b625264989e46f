// Package storage is the durable key/value layer behind the bookmark and
// study stores. Each store keeps its whole collection as one serialized value
// under a fixed key and rewrites it on every mutation.
package storage

import (
	"errors"
	"fmt"
	"strings"
)

// KeyValue is a string key/value store with localStorage semantics:
// a missing key is not an error.
type KeyValue interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

const (
	EngineSQLite = "sqlite"
	EngineJSON   = "json"
	EngineMemory = "memory"
)

var ErrUnknownEngine = errors.New("unsupported storage engine")

// Options selects and configures a backend for New.
type Options struct {
	Engine   string
	Settings SettingsRepository // required for EngineSQLite
	JSONPath string             // required for EngineJSON
}

// New builds the backend named by opts.Engine. An empty engine means sqlite.
func New(opts Options) (KeyValue, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Engine)) {
	case "", EngineSQLite:
		if opts.Settings == nil {
			return nil, errors.New("sqlite storage requires a settings repository")
		}
		return NewSettingsBackend(opts.Settings), nil
	case EngineJSON:
		if opts.JSONPath == "" {
			return nil, errors.New("json storage requires a file path")
		}
		return NewJSONFile(opts.JSONPath)
	case EngineMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEngine, opts.Engine)
	}
}
