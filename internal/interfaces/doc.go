// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Storage
//
//   - KeyValue: Durable string key/value backend behind the bookmark and
//     study stores (internal/storage/storage.go). Implemented by Memory,
//     JSONFile and SettingsBackend (SQLite settings table).
//
// ## Domain Stores
//
//   - ContentSource: Read-only daily prayers (internal/http/stores.go)
//   - BookmarkStore: Bookmarked prayers (internal/http/stores.go)
//   - StudyStore: Studies and their step records (internal/http/stores.go)
//   - progress.StudyStore: The subset of StudyStore step navigation needs
//     (internal/progress/progress.go)
//
// ## Side Effects
//
//   - Auditor / AuditReader: Audit log writes and reads (internal/http/stores.go, internal/http/audit.go)
//   - Rescheduler: Cron schedulers controlled from settings (internal/http/settings.go)
//   - TaskQueue: Background task enqueueing (internal/http/tasks.go)
//   - share.ShareSheet, share.Clipboard, share.Notifier: Share surfaces (internal/share/share.go)
//   - scheduler.Notifier: Prayer reminder delivery (internal/scheduler/reminders.go)
//
// # Adding a New Storage Backend
//
//  1. Implement KeyValue in internal/storage/
//
//     type BoltFile struct { db *bolt.DB }
//
//     func (b *BoltFile) GetItem(key string) (string, bool, error)
//     func (b *BoltFile) SetItem(key, value string) error
//     func (b *BoltFile) RemoveItem(key string) error
//
//  2. Add an engine name to storage.New
//
//  3. Add a compile-time check in checks.go
//
// # Adding a New Share Surface
//
// A native share sheet returns share.ErrCancelled when the user dismisses it
// and share.ErrUnsupported when it is unavailable; the Sharer then falls back
// to its Clipboard.
//
//	type DesktopSheet struct{}
//
//	func (DesktopSheet) Share(ctx context.Context, title, text string) error
//
//	var _ share.ShareSheet = DesktopSheet{}
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
