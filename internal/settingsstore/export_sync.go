package settingsstore

import (
	"strconv"
	"time"

	"github.com/mrlokans/devotional/internal/config"
	"github.com/mrlokans/devotional/internal/entities"
)

const DefaultExportSyncSchedule = "0 * * * *"

// ExportSyncConfig is the effective configuration of the periodic markdown export.
type ExportSyncConfig struct {
	Enabled   bool   `json:"enabled"`
	ExportDir string `json:"export_dir"`
	Schedule  string `json:"schedule"`
}

// ExportSyncConfigInfo includes source information for each field
type ExportSyncConfigInfo struct {
	Enabled       bool   `json:"enabled"`
	EnabledSource string `json:"enabled_source"`

	ExportDir       string `json:"export_dir"`
	ExportDirSource string `json:"export_dir_source"`

	Schedule       string `json:"schedule"`
	ScheduleSource string `json:"schedule_source"`
}

// RunStatus is the outcome of the last scheduled run.
type RunStatus struct {
	LastRunAt *time.Time `json:"last_run_at,omitempty"`
	Status    string     `json:"status,omitempty"`  // "success", "failed", ""
	Message   string     `json:"message,omitempty"` // Error message or stats summary
}

func (s *SettingsStore) GetExportSyncEnabled() bool {
	v, _ := s.lookup(entities.SettingKeyExportSyncEnabled, "EXPORT_SYNC_ENABLED", "false")
	return parseBool(v)
}

func (s *SettingsStore) GetExportSyncEnabledSource() string {
	_, src := s.lookup(entities.SettingKeyExportSyncEnabled, "EXPORT_SYNC_ENABLED", "false")
	return src
}

func (s *SettingsStore) SetExportSyncEnabled(enabled bool) error {
	return s.db.SetSetting(entities.SettingKeyExportSyncEnabled, strconv.FormatBool(enabled))
}

// GetExportSyncSchedule returns the cron schedule (database > env > hourly)
func (s *SettingsStore) GetExportSyncSchedule() string {
	v, _ := s.lookup(entities.SettingKeyExportSyncSchedule, "EXPORT_SYNC_SCHEDULE", DefaultExportSyncSchedule)
	return v
}

func (s *SettingsStore) GetExportSyncScheduleSource() string {
	_, src := s.lookup(entities.SettingKeyExportSyncSchedule, "EXPORT_SYNC_SCHEDULE", DefaultExportSyncSchedule)
	return src
}

// SetExportSyncSchedule validates and stores the schedule.
func (s *SettingsStore) SetExportSyncSchedule(schedule string) error {
	if err := ValidateCronSchedule(schedule); err != nil {
		return err
	}
	return s.db.SetSetting(entities.SettingKeyExportSyncSchedule, schedule)
}

func (s *SettingsStore) GetExportSyncConfig() ExportSyncConfig {
	return ExportSyncConfig{
		Enabled:   s.GetExportSyncEnabled(),
		ExportDir: s.GetExportDir(),
		Schedule:  s.GetExportSyncSchedule(),
	}
}

func (s *SettingsStore) GetExportSyncConfigInfo() ExportSyncConfigInfo {
	return ExportSyncConfigInfo{
		Enabled:         s.GetExportSyncEnabled(),
		EnabledSource:   s.GetExportSyncEnabledSource(),
		ExportDir:       s.GetExportDir(),
		ExportDirSource: s.GetExportDirSource(),
		Schedule:        s.GetExportSyncSchedule(),
		ScheduleSource:  s.GetExportSyncScheduleSource(),
	}
}

func (s *SettingsStore) GetExportSyncStatus() RunStatus {
	status := RunStatus{}

	if setting, err := s.db.GetSetting(entities.SettingKeyExportSyncLastAt); err == nil && setting.Value != "" {
		if ts, err := time.Parse(time.RFC3339, setting.Value); err == nil {
			status.LastRunAt = &ts
		}
	}
	if setting, err := s.db.GetSetting(entities.SettingKeyExportSyncLastStatus); err == nil {
		status.Status = setting.Value
	}
	if setting, err := s.db.GetSetting(entities.SettingKeyExportSyncLastMsg); err == nil {
		status.Message = setting.Value
	}
	return status
}

func (s *SettingsStore) SetExportSyncStatus(status, message string) error {
	now := time.Now().UTC().Format(time.RFC3339)

	if err := s.db.SetSetting(entities.SettingKeyExportSyncLastAt, now); err != nil {
		return err
	}
	if err := s.db.SetSetting(entities.SettingKeyExportSyncLastStatus, status); err != nil {
		return err
	}
	return s.db.SetSetting(entities.SettingKeyExportSyncLastMsg, message)
}

// ClearExportSyncSettings clears all database overrides, reverting to env/default
func (s *SettingsStore) ClearExportSyncSettings() error {
	return s.clear(
		entities.SettingKeyExportSyncEnabled,
		entities.SettingKeyExportDir,
		entities.SettingKeyExportSyncSchedule,
	)
}

// NewExportSyncConfigFromEnv builds the config before the database is ready.
func NewExportSyncConfigFromEnv(cfg config.Export) ExportSyncConfig {
	return ExportSyncConfig{
		Enabled:   cfg.SyncEnabled,
		ExportDir: cfg.Dir,
		Schedule:  cfg.SyncSchedule,
	}
}
