package settingsstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/devotional/internal/database"
	"github.com/mrlokans/devotional/internal/entities"
)

func setupTestDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNew(t *testing.T) {
	db := setupTestDB(t)
	store := New(db)

	assert.NotNil(t, store)
	assert.Equal(t, db, store.db)
}

func TestExportDir(t *testing.T) {
	t.Run("defaults to empty", func(t *testing.T) {
		t.Setenv("EXPORT_DIR", "")
		store := New(setupTestDB(t))

		assert.Empty(t, store.GetExportDir())
		assert.Equal(t, SourceDefault, store.GetExportDirSource())
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("EXPORT_DIR", "/env/export")
		store := New(setupTestDB(t))

		info := store.GetExportDirInfo()
		assert.Equal(t, "/env/export", info.Path)
		assert.Equal(t, SourceEnvironment, info.Source)
	})

	t.Run("database overrides environment", func(t *testing.T) {
		t.Setenv("EXPORT_DIR", "/env/export")
		store := New(setupTestDB(t))

		require.NoError(t, store.SetExportDir("/db/export"))
		assert.Equal(t, "/db/export", store.GetExportDir())
		assert.Equal(t, SourceDatabase, store.GetExportDirSource())

		require.NoError(t, store.ClearExportDir())
		assert.Equal(t, "/env/export", store.GetExportDir())
	})

	t.Run("clearing an unset value is not an error", func(t *testing.T) {
		store := New(setupTestDB(t))
		assert.NoError(t, store.ClearExportDir())
	})
}

func TestExportSync(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("EXPORT_SYNC_ENABLED", "")
		t.Setenv("EXPORT_SYNC_SCHEDULE", "")
		store := New(setupTestDB(t))

		info := store.GetExportSyncConfigInfo()
		assert.False(t, info.Enabled)
		assert.Equal(t, SourceDefault, info.EnabledSource)
		assert.Equal(t, DefaultExportSyncSchedule, info.Schedule)
		assert.Equal(t, SourceDefault, info.ScheduleSource)
	})

	t.Run("environment then database", func(t *testing.T) {
		t.Setenv("EXPORT_SYNC_ENABLED", "1")
		store := New(setupTestDB(t))

		assert.True(t, store.GetExportSyncEnabled())
		assert.Equal(t, SourceEnvironment, store.GetExportSyncEnabledSource())

		require.NoError(t, store.SetExportSyncEnabled(false))
		assert.False(t, store.GetExportSyncEnabled())
		assert.Equal(t, SourceDatabase, store.GetExportSyncEnabledSource())
	})

	t.Run("rejects an invalid schedule", func(t *testing.T) {
		store := New(setupTestDB(t))

		assert.Error(t, store.SetExportSyncSchedule("every tuesday"))
		require.NoError(t, store.SetExportSyncSchedule("*/30 * * * *"))
		assert.Equal(t, "*/30 * * * *", store.GetExportSyncSchedule())
	})

	t.Run("status round trip", func(t *testing.T) {
		store := New(setupTestDB(t))
		assert.Nil(t, store.GetExportSyncStatus().LastRunAt)

		require.NoError(t, store.SetExportSyncStatus("success", "2 bookmarks, 1 study"))

		status := store.GetExportSyncStatus()
		require.NotNil(t, status.LastRunAt)
		assert.Equal(t, "success", status.Status)
		assert.Equal(t, "2 bookmarks, 1 study", status.Message)
	})

	t.Run("clear reverts to defaults", func(t *testing.T) {
		t.Setenv("EXPORT_SYNC_ENABLED", "")
		store := New(setupTestDB(t))
		require.NoError(t, store.SetExportSyncEnabled(true))
		require.NoError(t, store.SetExportDir("/db"))

		require.NoError(t, store.ClearExportSyncSettings())

		assert.False(t, store.GetExportSyncEnabled())
		assert.Equal(t, SourceDefault, store.GetExportDirSource())
	})
}

func TestReminders(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("REMINDERS_ENABLED", "")
		t.Setenv("REMINDER_SCHEDULE", "")
		store := New(setupTestDB(t))

		cfg := store.GetReminderConfig()
		assert.False(t, cfg.Enabled)
		assert.Equal(t, DefaultReminderSchedule, cfg.Schedule)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("REMINDER_SCHEDULE", "0 7 * * *")
		store := New(setupTestDB(t))
		assert.Equal(t, SourceEnvironment, store.GetReminderScheduleSource())

		require.NoError(t, store.SetRemindersEnabled(true))
		require.NoError(t, store.SetReminderSchedule("0 6,12,18 * * *"))

		info := store.GetReminderConfigInfo()
		assert.True(t, info.Enabled)
		assert.Equal(t, "0 6,12,18 * * *", info.Schedule)
		assert.Equal(t, SourceDatabase, info.ScheduleSource)

		require.NoError(t, store.ClearReminderSettings())
		assert.Equal(t, "0 7 * * *", store.GetReminderSchedule())
	})

	t.Run("last reminder", func(t *testing.T) {
		store := New(setupTestDB(t))
		at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

		require.NoError(t, store.SetLastReminder(at, entities.Midday))

		last := store.GetLastReminder()
		require.NotNil(t, last.SentAt)
		assert.True(t, at.Equal(*last.SentAt))
		assert.Equal(t, entities.Midday, last.Slot)
	})
}

func TestCronHelpers(t *testing.T) {
	tests := []struct {
		schedule string
		valid    bool
	}{
		{"0 * * * *", true},
		{DefaultReminderSchedule, true},
		{"*/15 * * * *", true},
		{"61 * * * *", false},
		{"* * *", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.schedule, func(t *testing.T) {
			err := ValidateCronSchedule(tt.schedule)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}

	assert.Equal(t, "Every hour at :00", GetCronDescription("0 * * * *"))
	assert.Equal(t, "Custom schedule: 5 4 * * *", GetCronDescription("5 4 * * *"))

	from := time.Date(2024, 3, 1, 12, 30, 0, 0, time.Local)
	next, err := GetNextRunTime(DefaultReminderSchedule, from)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 17, 0, 0, 0, time.Local), *next)

	_, err = GetNextRunTime("bogus", from)
	assert.Error(t, err)
}
