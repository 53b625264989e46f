package audit

import (
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/devotional/internal/entities"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LogEvent saves an audit event to the database.
func (r *Repository) LogEvent(event *entities.AuditEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	return r.db.Create(event).Error
}

// GetEvents retrieves paginated audit events, ordered by most recent first.
func (r *Repository) GetEvents(limit, offset int) ([]entities.AuditEvent, int64, error) {
	return r.query(r.db.Model(&entities.AuditEvent{}), limit, offset)
}

// GetEventsByType retrieves audit events filtered by type.
func (r *Repository) GetEventsByType(eventType entities.AuditEventType, limit, offset int) ([]entities.AuditEvent, int64, error) {
	return r.query(r.db.Model(&entities.AuditEvent{}).Where("event_type = ?", eventType), limit, offset)
}

// GetEventsForEntity returns the history of a single bookmark or study.
func (r *Repository) GetEventsForEntity(entityType, entityID string) ([]entities.AuditEvent, error) {
	var events []entities.AuditEvent
	err := r.db.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").
		Find(&events).Error
	return events, err
}

func (r *Repository) query(query *gorm.DB, limit, offset int) ([]entities.AuditEvent, int64, error) {
	var events []entities.AuditEvent
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}

// DeleteOldEvents removes audit events older than the specified time.
// Returns the number of deleted events.
func (r *Repository) DeleteOldEvents(olderThan time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", olderThan).Delete(&entities.AuditEvent{})
	return result.RowsAffected, result.Error
}
