package http

import (
	"time"

	"github.com/mrlokans/devotional/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Content   ContentSource
	Bookmarks BookmarkStore
	Studies   StudyStore
	Database  *database.Database

	// Audit trail (optional)
	Auditor     Auditor
	AuditReader AuditReader

	// Preferences and the cron jobs they drive (optional)
	ExportSettings    ExportSettingsStore
	ReminderSettings  ReminderSettingsStore
	ExportScheduler   Rescheduler
	ReminderScheduler Rescheduler
	RunExportNow      func()

	// Task queue (optional)
	TaskQueue TaskQueue

	// Application info
	Version string

	// Clock, defaults to time.Now
	Now func() time.Time
}
