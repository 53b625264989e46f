package entities

import (
	"time"
)

// Setting is a single key/value row. Besides user preferences it backs the
// whole-list blobs of the bookmark and study stores.
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Storage keys for persisted collections
const (
	StorageKeyBookmarks = "daily-prayer-bookmarks"
	StorageKeyStudies   = "gcbs-studies"
)

// Known setting keys
const (
	// Markdown export settings
	SettingKeyExportDir            = "export_dir"
	SettingKeyExportSyncEnabled    = "export_sync_enabled"
	SettingKeyExportSyncSchedule   = "export_sync_schedule"
	SettingKeyExportSyncLastAt     = "export_sync_last_at"
	SettingKeyExportSyncLastStatus = "export_sync_last_status"
	SettingKeyExportSyncLastMsg    = "export_sync_last_message"

	// Prayer reminder settings
	SettingKeyRemindersEnabled = "reminders_enabled"
	SettingKeyReminderSchedule = "reminder_schedule"
	SettingKeyReminderLastAt   = "reminder_last_at"
	SettingKeyReminderLastSlot = "reminder_last_slot"
)
