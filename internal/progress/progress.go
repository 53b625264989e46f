// Package progress drives step navigation for a single study.
//
// Navigation is a linear state machine over steps 1..8. Next and Previous
// stop at the ends, JumpTo goes anywhere, and completion never gates or
// triggers navigation. Every transition is written back onto the study.
package progress

import (
	"errors"
	"fmt"

	"github.com/mrlokans/devotional/internal/content"
	"github.com/mrlokans/devotional/internal/entities"
)

var (
	ErrStudyNotFound  = errors.New("study not found")
	ErrStepOutOfRange = errors.New("step out of range")
)

// StudyStore is the part of the study store the controller needs.
type StudyStore interface {
	GetStudy(id string) (entities.Study, bool)
	UpdateStudy(id string, update entities.StudyUpdate) bool
	UpdateStepNotes(id string, stepID int, notes string) bool
	ToggleStepComplete(id string, stepID int) bool
}

type Controller struct {
	store   StudyStore
	studyID string
}

// StepView is the current step together with its catalog entry.
type StepView struct {
	Step          entities.StudyStep     `json:"step"`
	Data          entities.StudyStepData `json:"data"`
	CanGoNext     bool                   `json:"canGoNext"`
	CanGoPrevious bool                   `json:"canGoPrevious"`
}

// Progress summarises how far a study has come.
type Progress struct {
	CurrentStep    int   `json:"currentStep"`
	CompletedSteps []int `json:"completedSteps"`
	Percent        int   `json:"percent"`
}

// New returns a controller for the study, or ErrStudyNotFound.
func New(store StudyStore, studyID string) (*Controller, error) {
	if _, ok := store.GetStudy(studyID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrStudyNotFound, studyID)
	}
	return &Controller{store: store, studyID: studyID}, nil
}

func (c *Controller) StudyID() string {
	return c.studyID
}

func (c *Controller) study() (entities.Study, error) {
	study, ok := c.store.GetStudy(c.studyID)
	if !ok {
		return entities.Study{}, fmt.Errorf("%w: %s", ErrStudyNotFound, c.studyID)
	}
	return study, nil
}

// CurrentStep returns the persisted current step.
func (c *Controller) CurrentStep() (int, error) {
	study, err := c.study()
	if err != nil {
		return 0, err
	}
	return study.CurrentStep, nil
}

func (c *Controller) CanGoNext() bool {
	step, err := c.CurrentStep()
	return err == nil && step < entities.LastStep
}

func (c *Controller) CanGoPrevious() bool {
	step, err := c.CurrentStep()
	return err == nil && step > entities.FirstStep
}

// Next advances one step unless already on the last one, and returns the
// resulting step.
func (c *Controller) Next() (int, error) {
	step, err := c.CurrentStep()
	if err != nil {
		return 0, err
	}
	if step >= entities.LastStep {
		return step, nil
	}
	return c.moveTo(step + 1)
}

// Previous goes back one step unless already on the first one.
func (c *Controller) Previous() (int, error) {
	step, err := c.CurrentStep()
	if err != nil {
		return 0, err
	}
	if step <= entities.FirstStep {
		return step, nil
	}
	return c.moveTo(step - 1)
}

// JumpTo moves directly to step n regardless of completion state.
func (c *Controller) JumpTo(n int) error {
	if !entities.ValidStep(n) {
		return fmt.Errorf("%w: %d", ErrStepOutOfRange, n)
	}
	_, err := c.moveTo(n)
	return err
}

func (c *Controller) moveTo(n int) (int, error) {
	if !c.store.UpdateStudy(c.studyID, entities.StudyUpdate{CurrentStep: &n}) {
		return 0, fmt.Errorf("%w: %s", ErrStudyNotFound, c.studyID)
	}
	return n, nil
}

// ToggleComplete flips completion of the current step. It does not move.
func (c *Controller) ToggleComplete() error {
	step, err := c.CurrentStep()
	if err != nil {
		return err
	}
	if !c.store.ToggleStepComplete(c.studyID, step) {
		return fmt.Errorf("%w: %s", ErrStudyNotFound, c.studyID)
	}
	return nil
}

// UpdateNotes replaces the notes of the current step.
func (c *Controller) UpdateNotes(notes string) error {
	step, err := c.CurrentStep()
	if err != nil {
		return err
	}
	if !c.store.UpdateStepNotes(c.studyID, step, notes) {
		return fmt.Errorf("%w: %s", ErrStudyNotFound, c.studyID)
	}
	return nil
}

// View returns the current step with its catalog entry and navigation state.
func (c *Controller) View() (StepView, error) {
	study, err := c.study()
	if err != nil {
		return StepView{}, err
	}
	step, ok := content.Step(study.CurrentStep)
	if !ok {
		return StepView{}, fmt.Errorf("%w: %d", ErrStepOutOfRange, study.CurrentStep)
	}
	data, _ := study.Step(study.CurrentStep)
	return StepView{
		Step:          step,
		Data:          data,
		CanGoNext:     study.CurrentStep < entities.LastStep,
		CanGoPrevious: study.CurrentStep > entities.FirstStep,
	}, nil
}

func (c *Controller) Progress() (Progress, error) {
	study, err := c.study()
	if err != nil {
		return Progress{}, err
	}
	completed := []int{}
	for _, step := range study.Steps {
		if step.Completed {
			completed = append(completed, step.StepID)
		}
	}
	return Progress{
		CurrentStep:    study.CurrentStep,
		CompletedSteps: completed,
		Percent:        study.ProgressPercent(),
	}, nil
}
