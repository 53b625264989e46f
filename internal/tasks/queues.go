package tasks

import (
	"fmt"
	"log"

	"github.com/mikestefanello/backlite"
)

// Queues bundles everything the registered queues depend on.
type Queues struct {
	Exporter Exporter
	Recorder ExportRecorder
	Cleaner  AuditEventCleaner
}

// RegisterAll registers the export and audit cleanup queues.
func (c *Client) RegisterAll(q Queues) {
	c.Register(
		NewExportStudyQueue(q.Exporter, q.Recorder),
		NewExportAllQueue(q.Exporter, q.Recorder),
		NewCleanupAuditEventsQueue(q.Cleaner),
	)
}

// EnqueueExportStudy schedules a markdown export of one study.
func (c *Client) EnqueueExportStudy(studyID string) (string, error) {
	return c.enqueueOne(ExportStudyTask{StudyID: studyID})
}

// EnqueueExportAll schedules a full markdown export.
func (c *Client) EnqueueExportAll(trigger string) (string, error) {
	return c.enqueueOne(ExportAllTask{Trigger: trigger})
}

// EnqueueAuditCleanup schedules removal of audit events past retention.
func (c *Client) EnqueueAuditCleanup(retentionDays int) (string, error) {
	return c.enqueueOne(CleanupAuditEventsTask{RetentionDays: retentionDays})
}

func (c *Client) enqueueOne(task backlite.Task) (string, error) {
	ids, err := c.Add(task).Save()
	if err != nil {
		return "", fmt.Errorf("enqueue %s: %w", task.Config().Name, err)
	}
	if len(ids) == 0 {
		return "", fmt.Errorf("enqueue %s: no task id returned", task.Config().Name)
	}
	log.Printf("[TASK] Queued %s task %s", task.Config().Name, ids[0])
	return ids[0], nil
}
