package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/devotional/internal/content"
	"github.com/mrlokans/devotional/internal/entities"
)

// ContentController serves the read-only devotional dataset.
type ContentController struct {
	content   ContentSource
	bookmarks BookmarkStore
	now       func() time.Time
}

func NewContentController(source ContentSource, bookmarks BookmarkStore, now func() time.Time) *ContentController {
	if now == nil {
		now = time.Now
	}
	return &ContentController{content: source, bookmarks: bookmarks, now: now}
}

// TodayResponse is the prayer selected for a day and slot.
type TodayResponse struct {
	Date       string                    `json:"date"`
	TimeOfDay  entities.TimeOfDay        `json:"timeOfDay"`
	Prayer     entities.DailyPrayer      `json:"prayer"`
	Day        entities.TimeOfDayContent `json:"day"`
	BookmarkID string                    `json:"bookmarkId"`
	Bookmarked bool                      `json:"bookmarked"`
}

// Today returns the prayer for the current slot of today.
// Both the day and the slot can be overridden with ?date=YYYY-MM-DD and
// ?timeOfDay=morning|midday|evening.
// GET /api/today
func (cc *ContentController) Today(c *gin.Context) {
	now := cc.now()
	day, ok := parseDate(c, c.Query("date"), now)
	if !ok {
		return
	}
	tod, ok := parseTimeOfDay(c, c.Query("timeOfDay"), content.TimeOfDayAt(now))
	if !ok {
		return
	}

	readings := cc.content.ContentFor(day)
	date := content.DateKey(day)
	resp := TodayResponse{
		Date:       date,
		TimeOfDay:  tod,
		Prayer:     readings.For(tod),
		Day:        readings,
		BookmarkID: entities.BookmarkID(date, tod),
	}
	if cc.bookmarks != nil {
		resp.Bookmarked = cc.bookmarks.IsBookmarked(date, tod)
	}

	c.JSON(http.StatusOK, resp)
}

// ListSteps returns the eight-step study method catalog.
// GET /api/steps
func (cc *ContentController) ListSteps(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"steps": content.Steps()})
}

// GetStep returns one catalog entry.
// GET /api/steps/:id
func (cc *ContentController) GetStep(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid id")
		return
	}
	step, ok := content.Step(id)
	if !ok {
		respondNotFound(c, "step")
		return
	}
	c.JSON(http.StatusOK, step)
}

// Comparison returns the moralism vs gospel-centered reference table.
// GET /api/comparison
func (cc *ContentController) Comparison(c *gin.Context) {
	c.JSON(http.StatusOK, content.GospelComparison())
}
