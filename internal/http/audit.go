package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/devotional/internal/entities"
)

// AuditReader reads the audit trail.
type AuditReader interface {
	GetEvents(limit, offset int) ([]entities.AuditEvent, int64, error)
	GetEventsByType(eventType entities.AuditEventType, limit, offset int) ([]entities.AuditEvent, int64, error)
	GetHistory(entityType, entityID string) ([]entities.AuditEvent, error)
}

type AuditController struct {
	auditService AuditReader
}

func NewAuditController(auditService AuditReader) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

type EventTypeOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// GetAuditEvents returns paginated audit events, optionally filtered by ?type=.
// GET /api/audit
func (ac *AuditController) GetAuditEvents(c *gin.Context) {
	limit, offset := parsePagination(c, 25)
	eventType := c.Query("type")

	var events []entities.AuditEvent
	var total int64
	var err error

	if eventType != "" {
		events, total, err = ac.auditService.GetEventsByType(entities.AuditEventType(eventType), limit, offset)
	} else {
		events, total, err = ac.auditService.GetEvents(limit, offset)
	}

	if err != nil {
		respondInternalError(c, err, "load audit events")
		return
	}

	totalPages := (int(total) + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:       events,
		Total:      total,
		Limit:      limit,
		Offset:     offset,
		HasMore:    int64(offset+len(events)) < total,
		TotalPages: totalPages,
	})
}

// GetEventTypes lists the filters accepted by GetAuditEvents.
// GET /api/audit/types
func (ac *AuditController) GetEventTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"types": getEventTypes()})
}

// GetHistory returns all events recorded for one bookmark or study.
// GET /api/audit/history/:entityType/:entityId
func (ac *AuditController) GetHistory(c *gin.Context) {
	events, err := ac.auditService.GetHistory(c.Param("entityType"), c.Param("entityId"))
	if err != nil {
		respondInternalError(c, err, "load audit history")
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func getEventTypes() []EventTypeOption {
	return []EventTypeOption{
		{Value: "", Label: "All Events"},
		{Value: string(entities.AuditEventBookmark), Label: "Bookmarks"},
		{Value: string(entities.AuditEventStudy), Label: "Studies"},
		{Value: string(entities.AuditEventExport), Label: "Export"},
		{Value: string(entities.AuditEventShare), Label: "Share"},
		{Value: string(entities.AuditEventReminder), Label: "Reminders"},
		{Value: string(entities.AuditEventSettings), Label: "Settings"},
	}
}
