package http

import (
	"time"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Optional dependencies that are nil leave their endpoints unregistered.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Auditor == nil {
		cfg.Auditor = nopAuditor{}
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	contentController := NewContentController(cfg.Content, cfg.Bookmarks, cfg.Now)
	bookmarksController := NewBookmarksController(cfg.Bookmarks, cfg.Content, cfg.Auditor, cfg.Now)
	studiesController := NewStudiesController(cfg.Studies, cfg.Auditor)
	progressController := NewProgressController(cfg.Studies)
	shareController := NewShareController(cfg.Content, cfg.Studies, cfg.Auditor, cfg.Now)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Daily content
	router.GET("/api/today", contentController.Today)
	router.GET("/api/steps", contentController.ListSteps)
	router.GET("/api/steps/:id", contentController.GetStep)
	router.GET("/api/comparison", contentController.Comparison)

	// Bookmarks
	router.GET("/api/bookmarks", bookmarksController.ListBookmarks)
	router.POST("/api/bookmarks", bookmarksController.AddBookmark)
	router.POST("/api/bookmarks/toggle", bookmarksController.ToggleBookmark)
	router.GET("/api/bookmarks/:id", bookmarksController.GetBookmark)
	router.DELETE("/api/bookmarks/:id", bookmarksController.RemoveBookmark)

	// Studies
	router.GET("/api/studies", studiesController.ListStudies)
	router.POST("/api/studies", studiesController.CreateStudy)
	router.GET("/api/studies/:id", studiesController.GetStudy)
	router.PATCH("/api/studies/:id", studiesController.UpdateStudy)
	router.DELETE("/api/studies/:id", studiesController.DeleteStudy)
	router.PUT("/api/studies/:id/steps/:stepId/notes", studiesController.UpdateStepNotes)
	router.POST("/api/studies/:id/steps/:stepId/toggle", studiesController.ToggleStepComplete)
	router.GET("/api/studies/:id/export", studiesController.ExportStudy)

	// Study progress
	router.GET("/api/studies/:id/progress", progressController.GetProgress)
	router.GET("/api/studies/:id/current", progressController.CurrentStep)
	router.POST("/api/studies/:id/next", progressController.Next)
	router.POST("/api/studies/:id/previous", progressController.Previous)
	router.POST("/api/studies/:id/jump", progressController.Jump)
	router.POST("/api/studies/:id/current/toggle", progressController.ToggleCurrent)
	router.PUT("/api/studies/:id/current/notes", progressController.UpdateCurrentNotes)

	// Sharing
	router.POST("/api/share/prayer", shareController.SharePrayer)
	router.POST("/api/share/study/:id", shareController.ShareStudy)

	// Task management endpoints
	if cfg.TaskQueue != nil {
		tasksController := NewTasksController(cfg.TaskQueue)
		router.GET("/api/tasks/types", tasksController.ListTaskTypes)
		router.GET("/api/tasks/:id", tasksController.GetTaskStatus)
		router.POST("/api/tasks/:type/run", tasksController.RunTask)
	}

	// Audit trail
	if cfg.AuditReader != nil {
		auditController := NewAuditController(cfg.AuditReader)
		router.GET("/api/audit", auditController.GetAuditEvents)
		router.GET("/api/audit/types", auditController.GetEventTypes)
		router.GET("/api/audit/history/:entityType/:entityId", auditController.GetHistory)
	}

	// Settings routes
	if cfg.ExportSettings != nil && cfg.ReminderSettings != nil {
		settingsController := NewSettingsController(SettingsDeps{
			Export:            cfg.ExportSettings,
			Reminders:         cfg.ReminderSettings,
			ExportScheduler:   cfg.ExportScheduler,
			ReminderScheduler: cfg.ReminderScheduler,
			RunExportNow:      cfg.RunExportNow,
			Auditor:           cfg.Auditor,
		})
		router.GET("/api/settings/export", settingsController.GetExportSettings)
		router.POST("/api/settings/export", settingsController.UpdateExportSettings)
		router.POST("/api/settings/export/reset", settingsController.ResetExportSettings)
		router.POST("/api/settings/export/sync-now", settingsController.SyncNow)
		router.GET("/api/settings/reminders", settingsController.GetReminderSettings)
		router.POST("/api/settings/reminders", settingsController.UpdateReminderSettings)
		router.POST("/api/settings/reminders/reset", settingsController.ResetReminderSettings)
	}

	return router
}
