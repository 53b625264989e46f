package content

import (
	"encoding/json"
	"fmt"

	"github.com/mrlokans/devotional/internal/entities"
)

// Comparison contrasts moralistic and gospel-centered application.
type Comparison struct {
	Moralism           Approach `json:"moralism"`
	GospelCentered     Approach `json:"gospelCentered"`
	ApplicationPattern []string `json:"applicationPattern"`
}

type Approach struct {
	Approach string `json:"approach"`
	Outcomes struct {
		Success string `json:"success"`
		Failure string `json:"failure"`
	} `json:"outcomes"`
	Focus      string `json:"focus"`
	Motivation string `json:"motivation"`
}

var (
	stepCatalog = mustLoadSteps()
	comparison  = mustLoadComparison()
)

func mustLoadSteps() []entities.StudyStep {
	data, err := assets.ReadFile("assets/study_steps.json")
	if err != nil {
		panic(fmt.Sprintf("content: read study steps: %v", err))
	}
	var steps []entities.StudyStep
	if err := json.Unmarshal(data, &steps); err != nil {
		panic(fmt.Sprintf("content: decode study steps: %v", err))
	}
	if err := ValidateSteps(steps); err != nil {
		panic(fmt.Sprintf("content: %v", err))
	}
	return steps
}

func mustLoadComparison() Comparison {
	data, err := assets.ReadFile("assets/moralism_vs_gospel.json")
	if err != nil {
		panic(fmt.Sprintf("content: read comparison: %v", err))
	}
	var c Comparison
	if err := json.Unmarshal(data, &c); err != nil {
		panic(fmt.Sprintf("content: decode comparison: %v", err))
	}
	return c
}

// ValidateSteps checks the catalog has exactly one entry per step id, in order.
func ValidateSteps(steps []entities.StudyStep) error {
	if len(steps) != entities.StudyStepCount {
		return fmt.Errorf("%w: expected %d study steps, got %d", ErrInvalidDataset, entities.StudyStepCount, len(steps))
	}
	for i, step := range steps {
		if step.ID != i+1 {
			return fmt.Errorf("%w: step at position %d has id %d", ErrInvalidDataset, i+1, step.ID)
		}
		if step.Name == "" || step.Description == "" {
			return fmt.Errorf("%w: step %d is missing a name or description", ErrInvalidDataset, step.ID)
		}
	}
	return nil
}

// Steps returns the study method catalog in step order.
func Steps() []entities.StudyStep {
	out := make([]entities.StudyStep, len(stepCatalog))
	copy(out, stepCatalog)
	return out
}

// Step looks up a catalog entry by id.
func Step(id int) (entities.StudyStep, bool) {
	if !entities.ValidStep(id) {
		return entities.StudyStep{}, false
	}
	return stepCatalog[id-1], true
}

// GospelComparison returns the moralism vs gospel reference table.
func GospelComparison() Comparison {
	c := comparison
	c.ApplicationPattern = append([]string(nil), comparison.ApplicationPattern...)
	return c
}
