package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/devotional/internal/audit"
	"github.com/mrlokans/devotional/internal/content"
	"github.com/mrlokans/devotional/internal/entities"
	"github.com/mrlokans/devotional/internal/share"
)

// ShareController formats prayers and studies for sharing. The server has no
// native share sheet, so every share takes the clipboard path and the copied
// text is returned to the client.
type ShareController struct {
	content ContentSource
	studies StudyStore
	audit   Auditor
	now     func() time.Time
}

func NewShareController(source ContentSource, studies StudyStore, audit Auditor, now func() time.Time) *ShareController {
	if audit == nil {
		audit = nopAuditor{}
	}
	if now == nil {
		now = time.Now
	}
	return &ShareController{content: source, studies: studies, audit: audit, now: now}
}

// ShareResponse reports how a share ended and what the user should see.
type ShareResponse struct {
	Outcome share.Outcome `json:"outcome"`
	Title   string        `json:"title"`
	Text    string        `json:"text,omitempty"`
	Notice  *share.Notice `json:"notice,omitempty"`
}

func (sc *ShareController) newSharer() (*share.Sharer, *share.BufferClipboard, *share.NoticeRecorder) {
	clipboard := &share.BufferClipboard{}
	notices := &share.NoticeRecorder{}
	return share.NewSharer(nil, clipboard, notices), clipboard, notices
}

func respondShare(c *gin.Context, outcome share.Outcome, title string, clipboard *share.BufferClipboard, notices *share.NoticeRecorder) {
	resp := ShareResponse{Outcome: outcome, Title: title, Text: clipboard.Text()}
	if n, ok := notices.Last(); ok {
		resp.Notice = &n
	}
	status := http.StatusOK
	if !outcome.Succeeded() {
		status = http.StatusInternalServerError
	}
	c.JSON(status, resp)
}

// SharePrayer shares a prayer selected by ?date= and ?timeOfDay=, both
// defaulting to now.
// POST /api/share/prayer
func (sc *ShareController) SharePrayer(c *gin.Context) {
	now := sc.now()
	day, ok := parseDate(c, c.Query("date"), now)
	if !ok {
		return
	}
	tod, ok := parseTimeOfDay(c, c.Query("timeOfDay"), content.TimeOfDayAt(now))
	if !ok {
		return
	}

	prayer := sc.content.ContentFor(day).For(tod)
	sharer, clipboard, notices := sc.newSharer()
	outcome := sharer.SharePrayer(c.Request.Context(), prayer, tod)

	sc.audit.LogShare(audit.EntityPrayer, entities.BookmarkID(content.DateKey(day), tod), string(outcome), !outcome.Succeeded())
	respondShare(c, outcome, share.PrayerTitle(tod), clipboard, notices)
}

// ShareStudy shares the plain-text export of a study.
// POST /api/share/study/:id
func (sc *ShareController) ShareStudy(c *gin.Context) {
	id := c.Param("id")
	study, ok := sc.studies.GetStudy(id)
	if !ok {
		respondNotFound(c, "study")
		return
	}

	title := study.DisplayTitle()
	sharer, clipboard, notices := sc.newSharer()
	outcome := sharer.ShareStudy(c.Request.Context(), title, sc.studies.ExportStudy(id))

	sc.audit.LogShare(audit.EntityStudy, id, string(outcome), !outcome.Succeeded())
	respondShare(c, outcome, share.StudyTitle(title), clipboard, notices)
}
