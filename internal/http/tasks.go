package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikestefanello/backlite"
)

// TaskQueue is the part of the task client the controller needs.
type TaskQueue interface {
	Status(ctx context.Context, taskID string) (backlite.TaskStatus, error)
	EnqueueExportStudy(studyID string) (string, error)
	EnqueueExportAll(trigger string) (string, error)
	EnqueueAuditCleanup(retentionDays int) (string, error)
}

// TasksController handles task queue management endpoints.
type TasksController struct {
	client TaskQueue
}

// NewTasksController creates a new TasksController.
func NewTasksController(client TaskQueue) *TasksController {
	return &TasksController{client: client}
}

// TaskTypeInfo describes an available task type.
type TaskTypeInfo struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Queue       string `json:"queue"`
}

// ListTaskTypes handles GET /api/tasks/types
// Returns the list of available task types that can be triggered.
func (tc *TasksController) ListTaskTypes(c *gin.Context) {
	types := []TaskTypeInfo{
		{
			Type:        "export_study",
			Description: "Write one study to the markdown export directory",
			Queue:       "export_study",
		},
		{
			Type:        "export_all",
			Description: "Write all bookmarks and studies to the markdown export directory",
			Queue:       "export_all",
		},
		{
			Type:        "cleanup_audit",
			Description: "Delete audit events past the retention period",
			Queue:       "cleanup_audit",
		},
	}

	c.JSON(http.StatusOK, gin.H{
		"task_types": types,
	})
}

// GetTaskStatus handles GET /api/tasks/:id
// Returns the status of a specific task.
func (tc *TasksController) GetTaskStatus(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		respondBadRequest(c, "task ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := tc.client.Status(ctx, taskID)
	if err != nil {
		respondInternalError(c, err, "task status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     taskID,
		"status": taskStatusToString(status),
	})
}

// RunTaskRequest is the request body for running a task.
type RunTaskRequest struct {
	// StudyID is required for export_study
	StudyID string `json:"study_id,omitempty" form:"study_id"`
	// RetentionDays is optional for cleanup_audit
	RetentionDays int `json:"retention_days,omitempty" form:"retention_days"`
}

// RunTask handles POST /api/tasks/:type/run
// Manually triggers a task of the specified type.
func (tc *TasksController) RunTask(c *gin.Context) {
	taskType := c.Param("type")

	var req RunTaskRequest
	if c.Request.ContentLength > 0 {
		_ = c.ShouldBind(&req)
	}

	var (
		id  string
		err error
	)
	switch taskType {
	case "export_study":
		if req.StudyID == "" {
			respondBadRequest(c, "study_id is required for export_study task")
			return
		}
		id, err = tc.client.EnqueueExportStudy(req.StudyID)

	case "export_all":
		id, err = tc.client.EnqueueExportAll("manual")

	case "cleanup_audit":
		id, err = tc.client.EnqueueAuditCleanup(req.RetentionDays)

	default:
		respondBadRequest(c, fmt.Sprintf("unknown task type: %s", taskType))
		return
	}

	if err != nil {
		respondInternalError(c, err, "enqueue "+taskType)
		return
	}

	respondAccepted(c, "task enqueued", gin.H{"task_id": id, "type": taskType})
}

func taskStatusToString(status backlite.TaskStatus) string {
	switch status {
	case backlite.TaskStatusPending:
		return "pending"
	case backlite.TaskStatusRunning:
		return "running"
	case backlite.TaskStatusSuccess:
		return "success"
	case backlite.TaskStatusFailure:
		return "failure"
	case backlite.TaskStatusNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}
