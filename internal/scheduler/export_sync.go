package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mrlokans/devotional/internal/exporters"
	"github.com/mrlokans/devotional/internal/settingsstore"
)

type ExportSyncSettings interface {
	GetExportSyncConfig() settingsstore.ExportSyncConfig
	SetExportSyncStatus(status, message string) error
}

type ExportAuditor interface {
	LogExport(action, description string, bookmarks, studies int, err error)
}

// ExportSyncScheduler periodically writes all bookmarks and studies to the
// markdown export directory.
type ExportSyncScheduler struct {
	*runner
	settings ExportSyncSettings
	exporter func(dir string) (exporters.ExportResult, error)
	audit    ExportAuditor
}

// NewExportSyncScheduler wires the scheduler to the live stores. audit may be nil.
func NewExportSyncScheduler(settings ExportSyncSettings, bookmarks exporters.BookmarkLister, studies exporters.StudyReader, audit ExportAuditor) *ExportSyncScheduler {
	return &ExportSyncScheduler{
		runner:   newRunner("Export sync"),
		settings: settings,
		exporter: func(dir string) (exporters.ExportResult, error) {
			return exporters.NewMarkdownExporter(dir).Export(bookmarks.List(), studies.List())
		},
		audit: audit,
	}
}

// Start begins the scheduler if sync is enabled and a directory is set.
func (s *ExportSyncScheduler) Start(ctx context.Context) error {
	cfg := s.settings.GetExportSyncConfig()

	if !cfg.Enabled {
		log.Printf("Export sync scheduler: disabled")
		return nil
	}
	if cfg.ExportDir == "" {
		log.Printf("Export sync scheduler: export directory not configured, skipping")
		return nil
	}
	return s.start(ctx, cfg.Schedule, func() { _ = s.RunOnce() })
}

func (s *ExportSyncScheduler) Stop() {
	s.stop()
}

// Reschedule restarts with the current settings.
func (s *ExportSyncScheduler) Reschedule() error {
	s.stop()
	return s.Start(context.Background())
}

// RunNow triggers an immediate export in the background.
func (s *ExportSyncScheduler) RunNow() {
	go func() { _ = s.RunOnce() }()
}

func (s *ExportSyncScheduler) IsRunning() bool {
	return s.running()
}

func (s *ExportSyncScheduler) GetNextRunTime() *time.Time {
	return s.nextRunTime()
}

// RunOnce performs one export and records its status.
func (s *ExportSyncScheduler) RunOnce() error {
	cfg := s.settings.GetExportSyncConfig()

	if cfg.ExportDir == "" {
		err := errors.New("export directory not configured")
		log.Printf("Export sync: skipped (%v)", err)
		s.record("failed", "Export directory not configured", exporters.ExportResult{}, err)
		return err
	}

	log.Printf("Export sync: starting export to %s", cfg.ExportDir)
	startTime := time.Now()

	result, err := s.exporter(cfg.ExportDir)
	if err != nil {
		errMsg := fmt.Sprintf("Export failed: %v", err)
		log.Printf("Export sync: %s", errMsg)
		s.record("failed", errMsg, result, err)
		return err
	}

	msg := fmt.Sprintf("Exported %d bookmarks and %d studies in %v",
		result.BookmarksProcessed, result.StudiesProcessed, time.Since(startTime).Round(time.Millisecond))
	log.Printf("Export sync: %s", msg)
	s.record("success", msg, result, nil)
	return nil
}

func (s *ExportSyncScheduler) record(status, msg string, result exporters.ExportResult, err error) {
	if e := s.settings.SetExportSyncStatus(status, msg); e != nil {
		log.Printf("Export sync: failed to save status: %v", e)
	}
	if s.audit != nil {
		s.audit.LogExport("export_sync", msg, result.BookmarksProcessed, result.StudiesProcessed, err)
	}
}
