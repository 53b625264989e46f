package http

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/devotional/internal/settingsstore"
)

// ExportSettingsStore is the export part of the settings store.
type ExportSettingsStore interface {
	GetExportSyncConfigInfo() settingsstore.ExportSyncConfigInfo
	GetExportSyncStatus() settingsstore.RunStatus
	SetExportDir(path string) error
	SetExportSyncEnabled(enabled bool) error
	SetExportSyncSchedule(schedule string) error
	ClearExportSyncSettings() error
}

// ReminderSettingsStore is the reminder part of the settings store.
type ReminderSettingsStore interface {
	GetReminderConfigInfo() settingsstore.ReminderConfigInfo
	GetLastReminder() settingsstore.LastReminder
	SetRemindersEnabled(enabled bool) error
	SetReminderSchedule(schedule string) error
	ClearReminderSettings() error
}

// Rescheduler is a cron job whose settings can change at runtime.
type Rescheduler interface {
	Reschedule() error
	IsRunning() bool
	GetNextRunTime() *time.Time
}

// SettingsController manages export sync and reminder preferences.
type SettingsController struct {
	export        ExportSettingsStore
	reminders     ReminderSettingsStore
	exportSched   Rescheduler
	reminderSched Rescheduler
	runExportNow  func()
	audit         Auditor
}

// SettingsDeps groups the optional collaborators of the settings controller.
type SettingsDeps struct {
	Export            ExportSettingsStore
	Reminders         ReminderSettingsStore
	ExportScheduler   Rescheduler
	ReminderScheduler Rescheduler
	RunExportNow      func()
	Auditor           Auditor
}

func NewSettingsController(deps SettingsDeps) *SettingsController {
	audit := deps.Auditor
	if audit == nil {
		audit = nopAuditor{}
	}
	return &SettingsController{
		export:        deps.Export,
		reminders:     deps.Reminders,
		exportSched:   deps.ExportScheduler,
		reminderSched: deps.ReminderScheduler,
		runExportNow:  deps.RunExportNow,
		audit:         audit,
	}
}

// SchedulePreset is a predefined schedule option
type SchedulePreset struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

var exportPresets = []SchedulePreset{
	{Label: "Every 15 minutes", Value: "*/15 * * * *", Description: "Runs at :00, :15, :30, :45"},
	{Label: "Every hour", Value: "0 * * * *", Description: "Runs at the top of every hour"},
	{Label: "Every 6 hours", Value: "0 */6 * * *", Description: "Runs at midnight, 6am, noon, 6pm"},
	{Label: "Daily at midnight", Value: "0 0 * * *", Description: "Runs once daily at 00:00"},
}

var reminderPresets = []SchedulePreset{
	{Label: "Every prayer time", Value: settingsstore.DefaultReminderSchedule, Description: "Morning, midday and evening"},
	{Label: "Morning only", Value: "0 5 * * *", Description: "Runs daily at 05:00"},
	{Label: "Morning and evening", Value: "0 5,17 * * *", Description: "Runs daily at 05:00 and 17:00"},
}

type ExportSettingsResponse struct {
	Config    settingsstore.ExportSyncConfigInfo `json:"config"`
	Status    settingsstore.RunStatus            `json:"status"`
	NextRun   *time.Time                         `json:"next_run,omitempty"`
	IsRunning bool                               `json:"is_running"`
	Presets   []SchedulePreset                   `json:"presets"`
}

type ReminderSettingsResponse struct {
	Config    settingsstore.ReminderConfigInfo `json:"config"`
	Last      settingsstore.LastReminder       `json:"last"`
	NextRun   *time.Time                       `json:"next_run,omitempty"`
	IsRunning bool                             `json:"is_running"`
	Presets   []SchedulePreset                 `json:"presets"`
}

// UpdateExportRequest is the request body for POST /api/settings/export
type UpdateExportRequest struct {
	Enabled   *bool  `form:"enabled" json:"enabled"`
	ExportDir string `form:"export_dir" json:"export_dir"`
	Schedule  string `form:"schedule" json:"schedule"`
}

// UpdateRemindersRequest is the request body for POST /api/settings/reminders
type UpdateRemindersRequest struct {
	Enabled  *bool  `form:"enabled" json:"enabled"`
	Schedule string `form:"schedule" json:"schedule"`
}

func (sc *SettingsController) exportResponse() ExportSettingsResponse {
	resp := ExportSettingsResponse{
		Config:  sc.export.GetExportSyncConfigInfo(),
		Status:  sc.export.GetExportSyncStatus(),
		Presets: exportPresets,
	}
	if sc.exportSched != nil {
		resp.NextRun = sc.exportSched.GetNextRunTime()
		resp.IsRunning = sc.exportSched.IsRunning()
	}
	return resp
}

func (sc *SettingsController) remindersResponse() ReminderSettingsResponse {
	resp := ReminderSettingsResponse{
		Config:  sc.reminders.GetReminderConfigInfo(),
		Last:    sc.reminders.GetLastReminder(),
		Presets: reminderPresets,
	}
	if sc.reminderSched != nil {
		resp.NextRun = sc.reminderSched.GetNextRunTime()
		resp.IsRunning = sc.reminderSched.IsRunning()
	}
	return resp
}

// GetExportSettings returns the export sync configuration and last run.
// GET /api/settings/export
func (sc *SettingsController) GetExportSettings(c *gin.Context) {
	c.JSON(http.StatusOK, sc.exportResponse())
}

// UpdateExportSettings saves export sync settings and reschedules the job.
// POST /api/settings/export
func (sc *SettingsController) UpdateExportSettings(c *gin.Context) {
	var req UpdateExportRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}

	// Validate and save export directory if provided
	if req.ExportDir != "" {
		validatedPath, err := validateExportDirectory(req.ExportDir)
		if err != nil {
			respondBadRequest(c, "invalid export directory: "+err.Error())
			return
		}
		if err := sc.export.SetExportDir(validatedPath); err != nil {
			respondInternalError(c, err, "save export directory")
			return
		}
	}

	// Validate and save schedule if provided
	if req.Schedule != "" {
		if err := settingsstore.ValidateCronSchedule(req.Schedule); err != nil {
			respondBadRequest(c, "invalid cron schedule: "+err.Error())
			return
		}
		if err := sc.export.SetExportSyncSchedule(req.Schedule); err != nil {
			respondInternalError(c, err, "save export schedule")
			return
		}
	}

	if req.Enabled != nil {
		if err := sc.export.SetExportSyncEnabled(*req.Enabled); err != nil {
			respondInternalError(c, err, "save export enabled state")
			return
		}
	}

	if sc.exportSched != nil {
		if err := sc.exportSched.Reschedule(); err != nil {
			respondError(c, http.StatusInternalServerError, "settings saved but failed to reschedule: "+err.Error())
			return
		}
	}

	sc.audit.LogSettings("export_settings_update", "Updated export sync settings")
	c.JSON(http.StatusOK, sc.exportResponse())
}

// ResetExportSettings clears database overrides, reverting to env/defaults.
// POST /api/settings/export/reset
func (sc *SettingsController) ResetExportSettings(c *gin.Context) {
	if err := sc.export.ClearExportSyncSettings(); err != nil {
		respondInternalError(c, err, "reset export settings")
		return
	}
	if sc.exportSched != nil {
		if err := sc.exportSched.Reschedule(); err != nil {
			respondError(c, http.StatusInternalServerError, "settings reset but failed to reschedule: "+err.Error())
			return
		}
	}

	sc.audit.LogSettings("export_settings_reset", "Reset export sync settings")
	c.JSON(http.StatusOK, sc.exportResponse())
}

// SyncNow starts an export in the background.
// POST /api/settings/export/sync-now
func (sc *SettingsController) SyncNow(c *gin.Context) {
	if sc.runExportNow == nil {
		respondError(c, http.StatusServiceUnavailable, "export is not available")
		return
	}
	if sc.export.GetExportSyncConfigInfo().ExportDir == "" {
		respondBadRequest(c, "export directory not configured")
		return
	}

	sc.runExportNow()
	respondAccepted(c, "export started", nil)
}

// GetReminderSettings returns the reminder configuration and last reminder.
// GET /api/settings/reminders
func (sc *SettingsController) GetReminderSettings(c *gin.Context) {
	c.JSON(http.StatusOK, sc.remindersResponse())
}

// UpdateReminderSettings saves reminder settings and reschedules the job.
// POST /api/settings/reminders
func (sc *SettingsController) UpdateReminderSettings(c *gin.Context) {
	var req UpdateRemindersRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}

	if req.Schedule != "" {
		if err := settingsstore.ValidateCronSchedule(req.Schedule); err != nil {
			respondBadRequest(c, "invalid cron schedule: "+err.Error())
			return
		}
		if err := sc.reminders.SetReminderSchedule(req.Schedule); err != nil {
			respondInternalError(c, err, "save reminder schedule")
			return
		}
	}

	if req.Enabled != nil {
		if err := sc.reminders.SetRemindersEnabled(*req.Enabled); err != nil {
			respondInternalError(c, err, "save reminders enabled state")
			return
		}
	}

	if sc.reminderSched != nil {
		if err := sc.reminderSched.Reschedule(); err != nil {
			respondError(c, http.StatusInternalServerError, "settings saved but failed to reschedule: "+err.Error())
			return
		}
	}

	sc.audit.LogSettings("reminder_settings_update", "Updated reminder settings")
	c.JSON(http.StatusOK, sc.remindersResponse())
}

// ResetReminderSettings clears database overrides for reminders.
// POST /api/settings/reminders/reset
func (sc *SettingsController) ResetReminderSettings(c *gin.Context) {
	if err := sc.reminders.ClearReminderSettings(); err != nil {
		respondInternalError(c, err, "reset reminder settings")
		return
	}
	if sc.reminderSched != nil {
		if err := sc.reminderSched.Reschedule(); err != nil {
			respondError(c, http.StatusInternalServerError, "settings reset but failed to reschedule: "+err.Error())
			return
		}
	}

	sc.audit.LogSettings("reminder_settings_reset", "Reset reminder settings")
	c.JSON(http.StatusOK, sc.remindersResponse())
}

// validateExportDirectory checks that the path is an existing, writable
// directory and returns its cleaned absolute form.
func validateExportDirectory(rawPath string) (string, error) {
	path := strings.TrimSpace(rawPath)

	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}

	// Reject paths with null bytes
	if strings.ContainsRune(path, '\x00') {
		return "", fmt.Errorf("path contains invalid characters")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path format: %w", err)
	}
	cleanPath := filepath.Clean(absPath)

	info, err := os.Stat(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("directory does not exist")
		}
		if os.IsPermission(err) {
			return "", fmt.Errorf("permission denied")
		}
		return "", fmt.Errorf("cannot access path: %w", err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("path must be a directory, not a file")
	}

	// Test write permission
	f, err := os.CreateTemp(cleanPath, ".devotional_write_test_*")
	if err != nil {
		return "", fmt.Errorf("directory is not writable")
	}
	name := f.Name()
	f.Close()
	os.Remove(name)

	return cleanPath, nil
}
