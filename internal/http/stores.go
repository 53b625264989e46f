package http

import (
	"time"

	"github.com/mrlokans/devotional/internal/entities"
	"github.com/mrlokans/devotional/internal/progress"
)

// This file consolidates the store interfaces used by HTTP controllers.
// Each controller depends only on the methods it actually calls.

// ContentSource selects the devotional content for a calendar day.
type ContentSource interface {
	ContentFor(t time.Time) entities.TimeOfDayContent
	Len() int
}

// BookmarkStore is the bookmark collection.
type BookmarkStore interface {
	AddBookmark(input entities.BookmarkInput) bool
	RemoveBookmark(id string)
	IsBookmarked(date string, tod entities.TimeOfDay) bool
	Get(id string) (entities.BookmarkedPrayer, bool)
	List() []entities.BookmarkedPrayer
	Count() int
}

// StudyStore is the study collection. It embeds the subset the progress
// controller drives.
type StudyStore interface {
	progress.StudyStore
	CreateStudy(passageReference string) entities.Study
	DeleteStudy(id string) bool
	Summaries() []entities.StudySummary
	ExportStudy(id string) string
}

// Auditor records user-visible actions. Calls must not block the request.
type Auditor interface {
	LogBookmark(action, bookmarkID, description string)
	LogStudy(action, studyID, description string)
	LogShare(entityType, entityID, outcome string, failed bool)
	LogSettings(action, description string)
}

type nopAuditor struct{}

func (nopAuditor) LogBookmark(string, string, string)    {}
func (nopAuditor) LogStudy(string, string, string)       {}
func (nopAuditor) LogShare(string, string, string, bool) {}
func (nopAuditor) LogSettings(string, string)            {}
