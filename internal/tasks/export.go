package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/mrlokans/devotional/internal/exporters"
)

// Exporter writes markdown notes from the live stores.
type Exporter interface {
	ExportAll() (exporters.ExportResult, error)
	ExportStudy(id string) (string, error)
}

// ExportRecorder receives the outcome of each export run.
type ExportRecorder interface {
	LogExport(action, description string, bookmarks, studies int, err error)
}

// ExportStudyTask writes the markdown note of a single study.
type ExportStudyTask struct {
	StudyID string `json:"study_id"`
}

func (t ExportStudyTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "export_study",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

func ExportStudyProcessor(exporter Exporter, recorder ExportRecorder) backlite.QueueProcessor[ExportStudyTask] {
	return func(ctx context.Context, task ExportStudyTask) error {
		if exporter == nil {
			return fmt.Errorf("exporter not configured")
		}

		path, err := exporter.ExportStudy(task.StudyID)
		if recorder != nil {
			studies := 1
			if err != nil {
				studies = 0
			}
			recorder.LogExport("study_export", "Exported study "+task.StudyID, 0, studies, err)
		}
		if err != nil {
			return fmt.Errorf("export study %s: %w", task.StudyID, err)
		}

		log.Printf("[TASK] Exported study %s to %s", task.StudyID, path)
		return nil
	}
}

func NewExportStudyQueue(exporter Exporter, recorder ExportRecorder) backlite.Queue {
	return backlite.NewQueue(ExportStudyProcessor(exporter, recorder))
}

// ExportAllTask writes every bookmark and study.
type ExportAllTask struct {
	// Trigger records who asked for the export, e.g. "manual" or "schedule".
	Trigger string `json:"trigger,omitempty"`
}

func (t ExportAllTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "export_all",
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     10 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

func ExportAllProcessor(exporter Exporter, recorder ExportRecorder) backlite.QueueProcessor[ExportAllTask] {
	return func(ctx context.Context, task ExportAllTask) error {
		if exporter == nil {
			return fmt.Errorf("exporter not configured")
		}

		result, err := exporter.ExportAll()
		if recorder != nil {
			recorder.LogExport("markdown_export", "Export ("+triggerOrDefault(task.Trigger)+") to "+result.OutputDir,
				result.BookmarksProcessed, result.StudiesProcessed, err)
		}
		if err != nil {
			return fmt.Errorf("export all: %w", err)
		}

		log.Printf("[TASK] Export complete: %d bookmarks, %d studies (%d failed)",
			result.BookmarksProcessed, result.StudiesProcessed, result.BookmarksFailed+result.StudiesFailed)
		return nil
	}
}

func NewExportAllQueue(exporter Exporter, recorder ExportRecorder) backlite.Queue {
	return backlite.NewQueue(ExportAllProcessor(exporter, recorder))
}

func triggerOrDefault(trigger string) string {
	if trigger == "" {
		return "manual"
	}
	return trigger
}
