package entities

import "time"

const (
	// StudyStepCount is the fixed number of steps in the study method.
	StudyStepCount = 8

	FirstStep = 1
	LastStep  = StudyStepCount

	DefaultStudyTitle  = "New Study"
	UntitledStudyTitle = "Untitled Study"
)

// StudyStep is read-only catalog data describing one step of the method.
type StudyStep struct {
	ID                 int      `json:"id"`
	Name               string   `json:"name"`
	ShortName          string   `json:"shortName"`
	Description        string   `json:"description"`
	GuidingQuestions   []string `json:"guidingQuestions"`
	HelpContent        string   `json:"helpContent"`
	TheologicalContext string   `json:"theologicalContext,omitempty"`
}

// StudyStepData is the per-study record for one step.
type StudyStepData struct {
	StepID    int    `json:"stepId"`
	Notes     string `json:"notes"`
	Completed bool   `json:"completed"`
}

type Study struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	PassageReference string          `json:"passageReference"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	CurrentStep      int             `json:"currentStep"`
	Steps            []StudyStepData `json:"steps"`
}

// StudyUpdate is a partial update; nil fields are left untouched.
type StudyUpdate struct {
	Title            *string `json:"title,omitempty"`
	PassageReference *string `json:"passageReference,omitempty"`
	CurrentStep      *int    `json:"currentStep,omitempty"`
}

// ValidStep reports whether n is a step id of the method.
func ValidStep(n int) bool {
	return n >= FirstStep && n <= LastStep
}

// Step returns the record for stepID, if present.
func (s *Study) Step(stepID int) (StudyStepData, bool) {
	for _, step := range s.Steps {
		if step.StepID == stepID {
			return step, true
		}
	}
	return StudyStepData{}, false
}

// DisplayTitle falls back to the passage reference, then to a placeholder.
func (s *Study) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	if s.PassageReference != "" {
		return s.PassageReference
	}
	return UntitledStudyTitle
}

// CompletedCount returns how many steps are marked complete.
func (s *Study) CompletedCount() int {
	n := 0
	for _, step := range s.Steps {
		if step.Completed {
			n++
		}
	}
	return n
}

// ProgressPercent is the rounded share of completed steps.
func (s *Study) ProgressPercent() int {
	return (s.CompletedCount()*100 + StudyStepCount/2) / StudyStepCount
}

// Clone returns a deep copy so callers cannot alias store-owned slices.
func (s Study) Clone() Study {
	steps := make([]StudyStepData, len(s.Steps))
	copy(steps, s.Steps)
	s.Steps = steps
	return s
}

// StudySummary is the list-view projection of a study.
type StudySummary struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	PassageReference string    `json:"passageReference"`
	UpdatedAt        time.Time `json:"updatedAt"`
	CurrentStep      int       `json:"currentStep"`
	CompletedSteps   int       `json:"completedSteps"`
	ProgressPercent  int       `json:"progressPercent"`
}

func (s *Study) Summary() StudySummary {
	return StudySummary{
		ID:               s.ID,
		Title:            s.DisplayTitle(),
		PassageReference: s.PassageReference,
		UpdatedAt:        s.UpdatedAt,
		CurrentStep:      s.CurrentStep,
		CompletedSteps:   s.CompletedCount(),
		ProgressPercent:  s.ProgressPercent(),
	}
}
