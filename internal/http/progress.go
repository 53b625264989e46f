package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/devotional/internal/progress"
)

// ProgressController exposes step navigation for a study.
type ProgressController struct {
	store progress.StudyStore
}

func NewProgressController(store progress.StudyStore) *ProgressController {
	return &ProgressController{store: store}
}

type JumpRequest struct {
	Step int `json:"step" form:"step" binding:"required"`
}

// controller resolves the study from the URL or writes the error response.
func (pc *ProgressController) controller(c *gin.Context) (*progress.Controller, bool) {
	ctrl, err := progress.New(pc.store, c.Param("id"))
	if err != nil {
		respondProgressError(c, err)
		return nil, false
	}
	return ctrl, true
}

func respondProgressError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, progress.ErrStudyNotFound):
		respondNotFound(c, "study")
	case errors.Is(err, progress.ErrStepOutOfRange):
		respondBadRequest(c, err.Error())
	default:
		respondInternalError(c, err, "study progress")
	}
}

// respondView writes the current step view after a transition.
func respondView(c *gin.Context, ctrl *progress.Controller) {
	view, err := ctrl.View()
	if err != nil {
		respondProgressError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetProgress returns the current step, completed steps and percentage.
// GET /api/studies/:id/progress
func (pc *ProgressController) GetProgress(c *gin.Context) {
	ctrl, ok := pc.controller(c)
	if !ok {
		return
	}
	p, err := ctrl.Progress()
	if err != nil {
		respondProgressError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// CurrentStep returns the current step with its catalog entry.
// GET /api/studies/:id/current
func (pc *ProgressController) CurrentStep(c *gin.Context) {
	ctrl, ok := pc.controller(c)
	if !ok {
		return
	}
	respondView(c, ctrl)
}

// Next advances one step; at the last step it stays put.
// POST /api/studies/:id/next
func (pc *ProgressController) Next(c *gin.Context) {
	ctrl, ok := pc.controller(c)
	if !ok {
		return
	}
	if _, err := ctrl.Next(); err != nil {
		respondProgressError(c, err)
		return
	}
	respondView(c, ctrl)
}

// Previous goes back one step; at the first step it stays put.
// POST /api/studies/:id/previous
func (pc *ProgressController) Previous(c *gin.Context) {
	ctrl, ok := pc.controller(c)
	if !ok {
		return
	}
	if _, err := ctrl.Previous(); err != nil {
		respondProgressError(c, err)
		return
	}
	respondView(c, ctrl)
}

// Jump moves straight to any step.
// POST /api/studies/:id/jump
func (pc *ProgressController) Jump(c *gin.Context) {
	var req JumpRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}
	ctrl, ok := pc.controller(c)
	if !ok {
		return
	}
	if err := ctrl.JumpTo(req.Step); err != nil {
		respondProgressError(c, err)
		return
	}
	respondView(c, ctrl)
}

// ToggleCurrent flips completion of the current step without navigating.
// POST /api/studies/:id/current/toggle
func (pc *ProgressController) ToggleCurrent(c *gin.Context) {
	ctrl, ok := pc.controller(c)
	if !ok {
		return
	}
	if err := ctrl.ToggleComplete(); err != nil {
		respondProgressError(c, err)
		return
	}
	respondView(c, ctrl)
}

// UpdateCurrentNotes replaces the notes of the current step.
// PUT /api/studies/:id/current/notes
func (pc *ProgressController) UpdateCurrentNotes(c *gin.Context) {
	var req UpdateNotesRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBadRequest(c, "invalid request: "+err.Error())
		return
	}
	ctrl, ok := pc.controller(c)
	if !ok {
		return
	}
	if err := ctrl.UpdateNotes(req.Notes); err != nil {
		respondProgressError(c, err)
		return
	}
	respondView(c, ctrl)
}
