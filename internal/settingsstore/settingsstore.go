// Package settingsstore resolves user preferences that can be changed at
// runtime. Each value is looked up with the priority database > environment
// > default, and every getter has a matching ...Source accessor.
package settingsstore

import (
	"os"

	"github.com/mrlokans/devotional/internal/database"
	"github.com/mrlokans/devotional/internal/entities"
)

const (
	SourceDatabase    = "database"
	SourceEnvironment = "environment"
	SourceDefault     = "default"
)

// Priority: database > environment > default
type SettingsStore struct {
	db *database.Database
}

func New(db *database.Database) *SettingsStore {
	return &SettingsStore{db: db}
}

// lookup resolves a setting and reports where the value came from.
func (s *SettingsStore) lookup(key, envVar, fallback string) (string, string) {
	setting, err := s.db.GetSetting(key)
	if err == nil && setting.Value != "" {
		return setting.Value, SourceDatabase
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		return envVal, SourceEnvironment
	}
	return fallback, SourceDefault
}

func parseBool(v string) bool {
	return v == "true" || v == "1"
}

// clear removes database overrides, reverting them to env/default.
func (s *SettingsStore) clear(keys ...string) error {
	for _, key := range keys {
		if err := s.db.DeleteSetting(key); err != nil && !database.IsNotFound(err) {
			return err
		}
	}
	return nil
}

// GetExportDir returns the markdown export directory. Empty means not configured.
func (s *SettingsStore) GetExportDir() string {
	v, _ := s.lookup(entities.SettingKeyExportDir, "EXPORT_DIR", "")
	return v
}

func (s *SettingsStore) GetExportDirSource() string {
	_, src := s.lookup(entities.SettingKeyExportDir, "EXPORT_DIR", "")
	return src
}

func (s *SettingsStore) SetExportDir(path string) error {
	return s.db.SetSetting(entities.SettingKeyExportDir, path)
}

type ExportDirInfo struct {
	Path   string `json:"path"`
	Source string `json:"source"` // "database", "environment", or "default"
}

func (s *SettingsStore) GetExportDirInfo() ExportDirInfo {
	path, src := s.lookup(entities.SettingKeyExportDir, "EXPORT_DIR", "")
	return ExportDirInfo{Path: path, Source: src}
}

func (s *SettingsStore) ClearExportDir() error {
	return s.clear(entities.SettingKeyExportDir)
}
