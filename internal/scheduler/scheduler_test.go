package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/devotional/internal/bookmarks"
	"github.com/mrlokans/devotional/internal/content"
	"github.com/mrlokans/devotional/internal/database"
	"github.com/mrlokans/devotional/internal/entities"
	"github.com/mrlokans/devotional/internal/settingsstore"
	"github.com/mrlokans/devotional/internal/storage"
	"github.com/mrlokans/devotional/internal/studies"
)

func setupSettings(t *testing.T) *settingsstore.SettingsStore {
	t.Helper()
	t.Setenv("EXPORT_DIR", "")
	t.Setenv("EXPORT_SYNC_ENABLED", "")
	t.Setenv("REMINDERS_ENABLED", "")
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "scheduler.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return settingsstore.New(db)
}

type exportCall struct {
	bookmarks, studies int
	err                error
}

type fakeAuditor struct {
	exports   []exportCall
	reminders []entities.TimeOfDay
}

func (f *fakeAuditor) LogExport(_, _ string, bookmarks, studies int, err error) {
	f.exports = append(f.exports, exportCall{bookmarks, studies, err})
}

func (f *fakeAuditor) LogReminder(slot entities.TimeOfDay, _ error) {
	f.reminders = append(f.reminders, slot)
}

func newExportScheduler(t *testing.T, settings *settingsstore.SettingsStore, audit *fakeAuditor) *ExportSyncScheduler {
	kv := storage.NewMemory()
	bm := bookmarks.NewStore(kv, nil)
	st := studies.NewStore(kv, nil)
	bm.AddBookmark(entities.BookmarkInput{Date: "2024-03-01", TimeOfDay: entities.Morning, DailyPrayer: entities.DailyPrayer{Call: "Come"}})
	st.CreateStudy("Psalm 23")
	if audit == nil {
		return NewExportSyncScheduler(settings, bm, st, nil)
	}
	return NewExportSyncScheduler(settings, bm, st, audit)
}

func TestExportSyncScheduler_Start(t *testing.T) {
	t.Run("disabled does not start", func(t *testing.T) {
		settings := setupSettings(t)
		s := newExportScheduler(t, settings, nil)

		require.NoError(t, s.Start(context.Background()))
		assert.False(t, s.IsRunning())
		assert.Nil(t, s.GetNextRunTime())
	})

	t.Run("enabled without a directory does not start", func(t *testing.T) {
		settings := setupSettings(t)
		require.NoError(t, settings.SetExportSyncEnabled(true))
		s := newExportScheduler(t, settings, nil)

		require.NoError(t, s.Start(context.Background()))
		assert.False(t, s.IsRunning())
	})

	t.Run("starts, reschedules and stops", func(t *testing.T) {
		settings := setupSettings(t)
		require.NoError(t, settings.SetExportSyncEnabled(true))
		require.NoError(t, settings.SetExportDir(t.TempDir()))
		s := newExportScheduler(t, settings, nil)

		require.NoError(t, s.Start(context.Background()))
		assert.True(t, s.IsRunning())
		assert.NotNil(t, s.GetNextRunTime())

		require.NoError(t, settings.SetExportSyncSchedule("*/30 * * * *"))
		require.NoError(t, s.Reschedule())
		assert.True(t, s.IsRunning())
		assert.Len(t, s.cron.Entries(), 1)

		s.Stop()
		assert.False(t, s.IsRunning())
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		settings := setupSettings(t)
		require.NoError(t, settings.SetExportSyncEnabled(true))
		require.NoError(t, settings.SetExportDir(t.TempDir()))
		s := newExportScheduler(t, settings, nil)

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, s.Start(ctx))
		cancel()

		assert.Eventually(t, func() bool { return !s.IsRunning() }, 2*time.Second, 10*time.Millisecond)
	})
}

func TestExportSyncScheduler_RunOnce(t *testing.T) {
	t.Run("exports and records success", func(t *testing.T) {
		settings := setupSettings(t)
		dir := t.TempDir()
		require.NoError(t, settings.SetExportDir(dir))
		audit := &fakeAuditor{}
		s := newExportScheduler(t, settings, audit)

		require.NoError(t, s.RunOnce())

		entries, err := os.ReadDir(filepath.Join(dir, "Devotional", "Studies"))
		require.NoError(t, err)
		assert.Len(t, entries, 1)

		status := settings.GetExportSyncStatus()
		assert.Equal(t, "success", status.Status)
		assert.Contains(t, status.Message, "Exported 1 bookmarks and 1 studies")
		require.Len(t, audit.exports, 1)
		assert.Equal(t, 1, audit.exports[0].bookmarks)
	})

	t.Run("records a missing directory", func(t *testing.T) {
		settings := setupSettings(t)
		audit := &fakeAuditor{}
		s := newExportScheduler(t, settings, audit)

		assert.Error(t, s.RunOnce())
		assert.Equal(t, "failed", settings.GetExportSyncStatus().Status)
		require.Len(t, audit.exports, 1)
		assert.Error(t, audit.exports[0].err)
	})
}

type recordingNotifier struct {
	sent []Reminder
	err  error
}

func (n *recordingNotifier) Remind(_ context.Context, r Reminder) error {
	n.sent = append(n.sent, r)
	return n.err
}

func TestReminderScheduler(t *testing.T) {
	noon := time.Date(2024, 3, 1, 12, 30, 0, 0, time.Local)
	clock := func() time.Time { return noon }

	newScheduler := func(t *testing.T, notifier Notifier) (*ReminderScheduler, *settingsstore.SettingsStore, *fakeAuditor) {
		settings := setupSettings(t)
		prayers, err := content.NewStore(clock)
		require.NoError(t, err)
		audit := &fakeAuditor{}
		s := NewReminderScheduler(settings, prayers, notifier, audit)
		s.now = clock
		return s, settings, audit
	}

	t.Run("sends the current slot", func(t *testing.T) {
		notifier := &recordingNotifier{}
		s, settings, audit := newScheduler(t, notifier)

		require.NoError(t, s.RunOnce(context.Background()))

		require.Len(t, notifier.sent, 1)
		assert.Equal(t, entities.Midday, notifier.sent[0].TimeOfDay)
		assert.Equal(t, "2024-03-01", notifier.sent[0].Date)
		assert.NotEmpty(t, notifier.sent[0].Call)
		assert.Equal(t, entities.Midday, settings.GetLastReminder().Slot)
		assert.Equal(t, []entities.TimeOfDay{entities.Midday}, audit.reminders)
	})

	t.Run("failed delivery is not recorded as sent", func(t *testing.T) {
		notifier := &recordingNotifier{err: errors.New("offline")}
		s, settings, _ := newScheduler(t, notifier)

		assert.Error(t, s.RunOnce(context.Background()))
		assert.Nil(t, settings.GetLastReminder().SentAt)
	})

	t.Run("starts only when enabled", func(t *testing.T) {
		s, settings, _ := newScheduler(t, nil)

		require.NoError(t, s.Start(context.Background()))
		assert.False(t, s.IsRunning())

		require.NoError(t, settings.SetRemindersEnabled(true))
		require.NoError(t, s.Reschedule())
		assert.True(t, s.IsRunning())
		s.Stop()
	})
}
