package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/devotional/internal/entities"
	"github.com/mrlokans/devotional/internal/utils"
)

type StudiesController struct {
	store StudyStore
	audit Auditor
}

func NewStudiesController(store StudyStore, audit Auditor) *StudiesController {
	if audit == nil {
		audit = nopAuditor{}
	}
	return &StudiesController{store: store, audit: audit}
}

type CreateStudyRequest struct {
	PassageReference string `json:"passageReference" form:"passageReference"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes" form:"notes"`
}

// ListStudies returns study summaries, most recent first.
// GET /api/studies
func (sc *StudiesController) ListStudies(c *gin.Context) {
	summaries := sc.store.Summaries()
	c.JSON(http.StatusOK, gin.H{
		"studies": summaries,
		"total":   len(summaries),
	})
}

// CreateStudy starts a study. An empty passage reference is allowed.
// POST /api/studies
func (sc *StudiesController) CreateStudy(c *gin.Context) {
	var req CreateStudyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBind(&req); err != nil {
			respondBadRequest(c, "invalid request: "+err.Error())
			return
		}
	}

	study := sc.store.CreateStudy(req.PassageReference)
	sc.audit.LogStudy("study_create", study.ID, "Started study "+study.DisplayTitle())
	respondCreated(c, study)
}

// GetStudy returns a full study.
// GET /api/studies/:id
func (sc *StudiesController) GetStudy(c *gin.Context) {
	study, ok := sc.store.GetStudy(c.Param("id"))
	if !ok {
		respondNotFound(c, "study")
		return
	}
	c.JSON(http.StatusOK, study)
}

// UpdateStudy merges the given fields into the study.
// PATCH /api/studies/:id
func (sc *StudiesController) UpdateStudy(c *gin.Context) {
	id := c.Param("id")

	var update entities.StudyUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}
	if update.CurrentStep != nil && !entities.ValidStep(*update.CurrentStep) {
		respondBadRequest(c, "currentStep must be between 1 and "+strconv.Itoa(entities.StudyStepCount))
		return
	}

	if !sc.store.UpdateStudy(id, update) {
		respondNotFound(c, "study")
		return
	}

	study, _ := sc.store.GetStudy(id)
	sc.audit.LogStudy("study_update", id, "Updated study "+study.DisplayTitle())
	c.JSON(http.StatusOK, study)
}

// DeleteStudy removes a study.
// DELETE /api/studies/:id
func (sc *StudiesController) DeleteStudy(c *gin.Context) {
	id := c.Param("id")
	study, ok := sc.store.GetStudy(id)
	if !ok {
		respondNotFound(c, "study")
		return
	}

	sc.store.DeleteStudy(id)
	sc.audit.LogStudy("study_delete", id, "Deleted study "+study.DisplayTitle())
	respondSuccess(c, "study deleted")
}

// UpdateStepNotes replaces the notes of one step.
// PUT /api/studies/:id/steps/:stepId/notes
func (sc *StudiesController) UpdateStepNotes(c *gin.Context) {
	id := c.Param("id")
	stepID, ok := parseStepParam(c, "stepId")
	if !ok {
		return
	}

	var req UpdateNotesRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}

	if !sc.store.UpdateStepNotes(id, stepID, req.Notes) {
		respondNotFound(c, "study")
		return
	}

	study, _ := sc.store.GetStudy(id)
	step, _ := study.Step(stepID)
	c.JSON(http.StatusOK, step)
}

// ToggleStepComplete flips the completion flag of one step.
// POST /api/studies/:id/steps/:stepId/toggle
func (sc *StudiesController) ToggleStepComplete(c *gin.Context) {
	id := c.Param("id")
	stepID, ok := parseStepParam(c, "stepId")
	if !ok {
		return
	}

	if !sc.store.ToggleStepComplete(id, stepID) {
		respondNotFound(c, "study")
		return
	}

	study, _ := sc.store.GetStudy(id)
	step, _ := study.Step(stepID)
	c.JSON(http.StatusOK, gin.H{
		"step":            step,
		"completedSteps":  study.CompletedCount(),
		"progressPercent": study.ProgressPercent(),
	})
}

// ExportStudy returns the plain-text export of a study.
// GET /api/studies/:id/export
func (sc *StudiesController) ExportStudy(c *gin.Context) {
	id := c.Param("id")
	study, ok := sc.store.GetStudy(id)
	if !ok {
		respondNotFound(c, "study")
		return
	}
	text := sc.store.ExportStudy(id)

	if c.Query("download") != "" {
		filename := utils.SanitizeFilename(study.DisplayTitle()) + ".txt"
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}
