package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/devotional/internal/content"
	"github.com/mrlokans/devotional/internal/entities"
)

type BookmarksController struct {
	store   BookmarkStore
	content ContentSource
	audit   Auditor
	now     func() time.Time
}

func NewBookmarksController(store BookmarkStore, source ContentSource, audit Auditor, now func() time.Time) *BookmarksController {
	if audit == nil {
		audit = nopAuditor{}
	}
	if now == nil {
		now = time.Now
	}
	return &BookmarksController{store: store, content: source, audit: audit, now: now}
}

// BookmarkRequest identifies a prayer by day and slot. Both default to the
// current day and slot.
type BookmarkRequest struct {
	Date      string `json:"date" form:"date"`
	TimeOfDay string `json:"timeOfDay" form:"timeOfDay"`
}

// resolve turns a request into the full bookmark input, reading the prayer
// text from the dataset so clients cannot store arbitrary content.
func (bc *BookmarksController) resolve(c *gin.Context) (entities.BookmarkInput, bool) {
	var req BookmarkRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBind(&req); err != nil {
			respondBadRequest(c, "invalid request: "+err.Error())
			return entities.BookmarkInput{}, false
		}
	}

	now := bc.now()
	day, ok := parseDate(c, req.Date, now)
	if !ok {
		return entities.BookmarkInput{}, false
	}
	tod, ok := parseTimeOfDay(c, req.TimeOfDay, content.TimeOfDayAt(now))
	if !ok {
		return entities.BookmarkInput{}, false
	}

	return entities.BookmarkInput{
		Date:        content.DateKey(day),
		TimeOfDay:   tod,
		DailyPrayer: bc.content.ContentFor(day).For(tod),
	}, true
}

// ListBookmarks returns all bookmarks, most recent first.
// GET /api/bookmarks
func (bc *BookmarksController) ListBookmarks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"bookmarks": bc.store.List(),
		"total":     bc.store.Count(),
	})
}

// GetBookmark returns a single bookmark.
// GET /api/bookmarks/:id
func (bc *BookmarksController) GetBookmark(c *gin.Context) {
	b, ok := bc.store.Get(c.Param("id"))
	if !ok {
		respondNotFound(c, "bookmark")
		return
	}
	c.JSON(http.StatusOK, b)
}

// AddBookmark bookmarks a prayer. Adding an existing bookmark is not an error.
// POST /api/bookmarks
func (bc *BookmarksController) AddBookmark(c *gin.Context) {
	input, ok := bc.resolve(c)
	if !ok {
		return
	}

	id := entities.BookmarkID(input.Date, input.TimeOfDay)
	if !bc.store.AddBookmark(input) {
		b, _ := bc.store.Get(id)
		c.JSON(http.StatusOK, gin.H{"message": "already bookmarked", "bookmark": b})
		return
	}

	bc.audit.LogBookmark("bookmark_add", id, "Bookmarked "+input.TimeOfDay.Label()+" prayer for "+input.Date)
	b, _ := bc.store.Get(id)
	respondCreated(c, b)
}

// ToggleBookmark adds the bookmark if absent and removes it otherwise.
// POST /api/bookmarks/toggle
func (bc *BookmarksController) ToggleBookmark(c *gin.Context) {
	input, ok := bc.resolve(c)
	if !ok {
		return
	}

	id := entities.BookmarkID(input.Date, input.TimeOfDay)
	if bc.store.IsBookmarked(input.Date, input.TimeOfDay) {
		bc.store.RemoveBookmark(id)
		bc.audit.LogBookmark("bookmark_remove", id, "Removed bookmark "+id)
		c.JSON(http.StatusOK, gin.H{"id": id, "bookmarked": false})
		return
	}

	bc.store.AddBookmark(input)
	bc.audit.LogBookmark("bookmark_add", id, "Bookmarked "+input.TimeOfDay.Label()+" prayer for "+input.Date)
	c.JSON(http.StatusOK, gin.H{"id": id, "bookmarked": true})
}

// RemoveBookmark deletes a bookmark.
// DELETE /api/bookmarks/:id
func (bc *BookmarksController) RemoveBookmark(c *gin.Context) {
	id := c.Param("id")
	if _, ok := bc.store.Get(id); !ok {
		respondNotFound(c, "bookmark")
		return
	}

	bc.store.RemoveBookmark(id)
	bc.audit.LogBookmark("bookmark_remove", id, "Removed bookmark "+id)
	respondSuccess(c, "bookmark removed")
}
