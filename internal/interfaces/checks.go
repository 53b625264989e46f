package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/devotional/internal/audit"
	"github.com/mrlokans/devotional/internal/bookmarks"
	"github.com/mrlokans/devotional/internal/content"
	"github.com/mrlokans/devotional/internal/database/settings"
	"github.com/mrlokans/devotional/internal/exporters"
	"github.com/mrlokans/devotional/internal/http"
	"github.com/mrlokans/devotional/internal/progress"
	"github.com/mrlokans/devotional/internal/scheduler"
	"github.com/mrlokans/devotional/internal/settingsstore"
	"github.com/mrlokans/devotional/internal/share"
	"github.com/mrlokans/devotional/internal/storage"
	"github.com/mrlokans/devotional/internal/studies"
	"github.com/mrlokans/devotional/internal/tasks"
)

// =============================================================================
// Storage Backends
// =============================================================================

var _ storage.KeyValue = (*storage.Memory)(nil)
var _ storage.KeyValue = (*storage.JSONFile)(nil)
var _ storage.KeyValue = (*storage.SettingsBackend)(nil)

var _ storage.SettingsRepository = (*settings.Repository)(nil)

// =============================================================================
// Domain Stores
// =============================================================================

var _ http.ContentSource = (*content.Store)(nil)
var _ scheduler.PrayerSource = (*content.Store)(nil)

var _ http.BookmarkStore = (*bookmarks.Store)(nil)
var _ exporters.BookmarkLister = (*bookmarks.Store)(nil)

var _ http.StudyStore = (*studies.Store)(nil)
var _ progress.StudyStore = (*studies.Store)(nil)
var _ exporters.StudyReader = (*studies.Store)(nil)

// =============================================================================
// Settings
// =============================================================================

var _ http.ExportSettingsStore = (*settingsstore.SettingsStore)(nil)
var _ http.ReminderSettingsStore = (*settingsstore.SettingsStore)(nil)
var _ scheduler.ExportSyncSettings = (*settingsstore.SettingsStore)(nil)
var _ scheduler.ReminderSettings = (*settingsstore.SettingsStore)(nil)

// =============================================================================
// Audit
// =============================================================================

var _ http.Auditor = (*audit.Service)(nil)
var _ http.AuditReader = (*audit.Service)(nil)
var _ scheduler.ExportAuditor = (*audit.Service)(nil)
var _ scheduler.ReminderAuditor = (*audit.Service)(nil)
var _ tasks.ExportRecorder = (*audit.Service)(nil)
var _ tasks.AuditEventCleaner = (*audit.Service)(nil)

// =============================================================================
// Export, Scheduling and Background Tasks
// =============================================================================

var _ exporters.Exporter = (*exporters.MarkdownExporter)(nil)
var _ tasks.Exporter = (*exporters.StoreExporter)(nil)

var _ http.Rescheduler = (*scheduler.ExportSyncScheduler)(nil)
var _ http.Rescheduler = (*scheduler.ReminderScheduler)(nil)
var _ scheduler.Notifier = scheduler.LogNotifier{}

var _ http.TaskQueue = (*tasks.Client)(nil)

// =============================================================================
// Share Surfaces
// =============================================================================

var _ share.Clipboard = share.WriterClipboard{}
var _ share.Clipboard = (*share.BufferClipboard)(nil)
var _ share.Notifier = share.WriterNotifier{}
var _ share.Notifier = (*share.NoticeRecorder)(nil)
