package audit

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/mrlokans/devotional/internal/database/audit"
	"github.com/mrlokans/devotional/internal/entities"
)

const (
	EntityBookmark = "bookmark"
	EntityStudy    = "study"
	EntityPrayer   = "prayer"
)

// Service provides high-level audit logging functionality.
type Service struct {
	repo *audit.Repository
	wg   sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// Log records a generic audit event.
func (s *Service) Log(event *entities.AuditEvent) error {
	return s.repo.LogEvent(event)
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.repo.LogEvent(event); err != nil {
			log.Printf("Failed to log audit event: %v", err)
		}
	}()
}

// Wait blocks until all pending async events are written.
func (s *Service) Wait() {
	s.wg.Wait()
}

// LogBookmark records a bookmark being added or removed.
func (s *Service) LogBookmark(action, bookmarkID, description string) {
	s.LogAsync(&entities.AuditEvent{
		EventType:   entities.AuditEventBookmark,
		Action:      "bookmark_" + action,
		Description: description,
		EntityType:  EntityBookmark,
		EntityID:    bookmarkID,
		Status:      entities.AuditStatusSuccess,
	})
}

// LogStudy records a study mutation such as create, update or delete.
func (s *Service) LogStudy(action, studyID, description string) {
	s.LogAsync(&entities.AuditEvent{
		EventType:   entities.AuditEventStudy,
		Action:      "study_" + action,
		Description: description,
		EntityType:  EntityStudy,
		EntityID:    studyID,
		Status:      entities.AuditStatusSuccess,
	})
}

// LogExport records a markdown export run.
func (s *Service) LogExport(action, description string, bookmarks, studies int, err error) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventExport,
		Action:      action,
		Description: description,
		Status:      entities.AuditStatusSuccess,
	}

	metadata := map[string]any{
		"bookmarks_count": bookmarks,
		"studies_count":   studies,
	}
	if mdBytes, e := json.Marshal(metadata); e == nil {
		event.Metadata = string(mdBytes)
	}

	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}

	s.LogAsync(event)
}

// LogShare records the outcome of a share action.
func (s *Service) LogShare(entityType, entityID, outcome string, failed bool) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventShare,
		Action:      entityType + "_share",
		Description: "Share " + outcome,
		EntityType:  entityType,
		EntityID:    entityID,
		Status:      entities.AuditStatusSuccess,
	}
	if failed {
		event.Status = entities.AuditStatusFailed
	}
	s.LogAsync(event)
}

// LogReminder records a prayer reminder being sent.
func (s *Service) LogReminder(slot entities.TimeOfDay, err error) {
	event := &entities.AuditEvent{
		EventType:   entities.AuditEventReminder,
		Action:      "reminder_sent",
		Description: slot.Label() + " prayer reminder",
		Status:      entities.AuditStatusSuccess,
	}
	if err != nil {
		event.Status = entities.AuditStatusFailed
		event.ErrorMsg = truncate(err.Error(), 500)
	}
	s.LogAsync(event)
}

// LogSettings records a settings change event.
func (s *Service) LogSettings(action, description string) {
	s.LogAsync(&entities.AuditEvent{
		EventType:   entities.AuditEventSettings,
		Action:      action,
		Description: description,
		Status:      entities.AuditStatusSuccess,
	})
}

// GetEvents retrieves paginated audit events.
func (s *Service) GetEvents(limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEvents(limit, offset)
}

// GetEventsByType retrieves audit events filtered by type.
func (s *Service) GetEventsByType(eventType entities.AuditEventType, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return s.repo.GetEventsByType(eventType, limit, offset)
}

// GetHistory returns every event recorded for one bookmark or study.
func (s *Service) GetHistory(entityType, entityID string) ([]entities.AuditEvent, error) {
	return s.repo.GetEventsForEntity(entityType, entityID)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
