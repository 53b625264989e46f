package http

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/devotional/internal/database"
	"github.com/mrlokans/devotional/internal/settingsstore"
)

type fakeRescheduler struct {
	reschedules int
	running     bool
}

func (f *fakeRescheduler) Reschedule() error {
	f.reschedules++
	f.running = true
	return nil
}

func (f *fakeRescheduler) IsRunning() bool { return f.running }

func (f *fakeRescheduler) GetNextRunTime() *time.Time { return nil }

type settingsFixture struct {
	router    *gin.Engine
	store     *settingsstore.SettingsStore
	exportJob *fakeRescheduler
	remindJob *fakeRescheduler
	syncRuns  int
	audit     *recordingAuditor
}

func newSettingsFixture(t *testing.T) *settingsFixture {
	t.Helper()
	t.Setenv("EXPORT_DIR", "")
	t.Setenv("EXPORT_SYNC_ENABLED", "")
	t.Setenv("EXPORT_SYNC_SCHEDULE", "")
	t.Setenv("REMINDERS_ENABLED", "")
	t.Setenv("REMINDER_SCHEDULE", "")

	db, err := database.NewDatabase(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := &settingsFixture{
		store:     settingsstore.New(db),
		exportJob: &fakeRescheduler{},
		remindJob: &fakeRescheduler{},
		audit:     &recordingAuditor{},
	}
	f.router = NewRouter(RouterConfig{
		ExportSettings:    f.store,
		ReminderSettings:  f.store,
		ExportScheduler:   f.exportJob,
		ReminderScheduler: f.remindJob,
		RunExportNow:      func() { f.syncRuns++ },
		Auditor:           f.audit,
	})
	return f
}

func (f *settingsFixture) post(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f *settingsFixture) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func TestSettingsController_Export(t *testing.T) {
	t.Run("reports defaults", func(t *testing.T) {
		f := newSettingsFixture(t)

		w := f.get("/api/settings/export")

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[ExportSettingsResponse](t, w)
		assert.False(t, resp.Config.Enabled)
		assert.Equal(t, settingsstore.DefaultExportSyncSchedule, resp.Config.Schedule)
		assert.Equal(t, settingsstore.SourceDefault, resp.Config.ScheduleSource)
		assert.NotEmpty(t, resp.Presets)
	})

	t.Run("saves settings and reschedules", func(t *testing.T) {
		f := newSettingsFixture(t)
		dir := t.TempDir()

		w := f.post("/api/settings/export", `{"enabled":true,"export_dir":"`+dir+`","schedule":"*/15 * * * *"}`)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decode[ExportSettingsResponse](t, w)
		assert.True(t, resp.Config.Enabled)
		assert.Equal(t, dir, resp.Config.ExportDir)
		assert.Equal(t, settingsstore.SourceDatabase, resp.Config.ExportDirSource)
		assert.Equal(t, "*/15 * * * *", resp.Config.Schedule)
		assert.True(t, resp.IsRunning)
		assert.Equal(t, 1, f.exportJob.reschedules)
		assert.Equal(t, "export_settings_update", f.audit.Calls()[0].action)
	})

	t.Run("rejects a bad schedule", func(t *testing.T) {
		f := newSettingsFixture(t)

		w := f.post("/api/settings/export", `{"schedule":"every day"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, f.exportJob.reschedules)
	})

	t.Run("rejects a missing directory", func(t *testing.T) {
		f := newSettingsFixture(t)

		w := f.post("/api/settings/export", `{"export_dir":"`+filepath.Join(t.TempDir(), "nope")+`"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "does not exist")
	})

	t.Run("reset clears overrides", func(t *testing.T) {
		f := newSettingsFixture(t)
		require.NoError(t, f.store.SetExportSyncSchedule("0 0 * * *"))

		w := f.post("/api/settings/export/reset", "")

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[ExportSettingsResponse](t, w)
		assert.Equal(t, settingsstore.DefaultExportSyncSchedule, resp.Config.Schedule)
	})

	t.Run("sync now needs a directory", func(t *testing.T) {
		f := newSettingsFixture(t)

		assert.Equal(t, http.StatusBadRequest, f.post("/api/settings/export/sync-now", "").Code)

		require.NoError(t, f.store.SetExportDir(t.TempDir()))
		assert.Equal(t, http.StatusAccepted, f.post("/api/settings/export/sync-now", "").Code)
		assert.Equal(t, 1, f.syncRuns)
	})
}

func TestSettingsController_Reminders(t *testing.T) {
	f := newSettingsFixture(t)

	resp := decode[ReminderSettingsResponse](t, f.get("/api/settings/reminders"))
	assert.False(t, resp.Config.Enabled)
	assert.Equal(t, settingsstore.DefaultReminderSchedule, resp.Config.Schedule)

	w := f.post("/api/settings/reminders", `{"enabled":true,"schedule":"0 6 * * *"}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[ReminderSettingsResponse](t, w)
	assert.True(t, resp.Config.Enabled)
	assert.Equal(t, "0 6 * * *", resp.Config.Schedule)
	assert.Equal(t, 1, f.remindJob.reschedules)

	w = f.post("/api/settings/reminders/reset", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[ReminderSettingsResponse](t, w)
	assert.False(t, resp.Config.Enabled)
	assert.Equal(t, 2, f.remindJob.reschedules)
}

func TestValidateExportDirectory(t *testing.T) {
	dir := t.TempDir()

	got, err := validateExportDirectory("  " + dir + "  ")
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	_, err = validateExportDirectory("")
	assert.Error(t, err)

	_, err = validateExportDirectory("a\x00b")
	assert.Error(t, err)
}
