// Package studies keeps the user's Bible studies: creation, partial updates,
// per-step notes and completion, and plain-text export.
//
// All studies are held in memory and persisted as one JSON list under
// entities.StorageKeyStudies. Lookups and updates on unknown ids are no-ops.
package studies

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mrlokans/devotional/internal/entities"
	"github.com/mrlokans/devotional/internal/storage"
)

type Store struct {
	kv    storage.KeyValue
	now   func() time.Time
	newID func() string

	mu      sync.RWMutex
	studies []entities.Study
}

// NewStore loads the persisted studies. Unreadable data is logged and the
// store starts empty.
func NewStore(kv storage.KeyValue, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	items, err := storage.LoadList[entities.Study](kv, entities.StorageKeyStudies)
	if err != nil {
		log.Printf("Studies: failed to load, starting empty: %v", err)
	}
	return &Store{
		kv:      kv,
		now:     now,
		newID:   newStudyID,
		studies: items,
	}
}

// newStudyID returns a UUIDv7: a millisecond timestamp followed by random bits.
func newStudyID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// CreateStudy starts a study at step 1 with eight empty step records and puts
// it at the front of the list.
func (s *Store) CreateStudy(passageReference string) entities.Study {
	now := s.now().UTC()
	title := passageReference
	if title == "" {
		title = entities.DefaultStudyTitle
	}

	steps := make([]entities.StudyStepData, entities.StudyStepCount)
	for i := range steps {
		steps[i] = entities.StudyStepData{StepID: i + 1}
	}

	study := entities.Study{
		ID:               s.newID(),
		Title:            title,
		PassageReference: passageReference,
		CreatedAt:        now,
		UpdatedAt:        now,
		CurrentStep:      entities.FirstStep,
		Steps:            steps,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]entities.Study, 0, len(s.studies)+1)
	updated = append(updated, study)
	updated = append(updated, s.studies...)
	s.saveLocked(updated)

	return study.Clone()
}

// UpdateStudy merges the non-nil fields of update into the study. A new,
// non-empty passage reference also becomes the title. A current step outside
// 1..8 is ignored. It reports whether the study exists.
func (s *Store) UpdateStudy(id string, update entities.StudyUpdate) bool {
	return s.mutate(id, func(study *entities.Study) bool {
		if update.Title != nil {
			study.Title = *update.Title
		}
		if update.PassageReference != nil {
			ref := *update.PassageReference
			if ref != "" && ref != study.PassageReference {
				study.Title = ref
			}
			study.PassageReference = ref
		}
		if update.CurrentStep != nil && entities.ValidStep(*update.CurrentStep) {
			study.CurrentStep = *update.CurrentStep
		}
		return true
	})
}

// UpdateStepNotes replaces the notes of one step.
func (s *Store) UpdateStepNotes(id string, stepID int, notes string) bool {
	return s.mutate(id, func(study *entities.Study) bool {
		for i := range study.Steps {
			if study.Steps[i].StepID == stepID {
				study.Steps[i].Notes = notes
				return true
			}
		}
		return false
	})
}

// ToggleStepComplete flips the completed flag of one step.
func (s *Store) ToggleStepComplete(id string, stepID int) bool {
	return s.mutate(id, func(study *entities.Study) bool {
		for i := range study.Steps {
			if study.Steps[i].StepID == stepID {
				study.Steps[i].Completed = !study.Steps[i].Completed
				return true
			}
		}
		return false
	})
}

// DeleteStudy removes a study. It reports whether anything was removed.
func (s *Store) DeleteStudy(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]entities.Study, 0, len(s.studies))
	for _, study := range s.studies {
		if study.ID != id {
			updated = append(updated, study)
		}
	}
	if len(updated) == len(s.studies) {
		return false
	}
	s.saveLocked(updated)
	return true
}

// GetStudy returns a copy of the study with the given id.
func (s *Store) GetStudy(id string) (entities.Study, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.studies[i].Clone(), true
	}
	return entities.Study{}, false
}

// List returns copies of all studies, most recently created first.
func (s *Store) List() []entities.Study {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.Study, len(s.studies))
	for i, study := range s.studies {
		out[i] = study.Clone()
	}
	return out
}

// Summaries returns the list view of every study.
func (s *Store) Summaries() []entities.StudySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entities.StudySummary, len(s.studies))
	for i := range s.studies {
		out[i] = s.studies[i].Summary()
	}
	return out
}

// mutate applies fn to a copy of the study and, if fn reports a change,
// bumps updatedAt and persists the list. It reports whether the study exists.
func (s *Store) mutate(id string, fn func(*entities.Study) bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}

	study := s.studies[i].Clone()
	if !fn(&study) {
		// An unknown step id is a no-op: updatedAt stays and nothing is written.
		return true
	}
	study.UpdatedAt = s.now().UTC()

	updated := make([]entities.Study, len(s.studies))
	copy(updated, s.studies)
	updated[i] = study
	s.saveLocked(updated)
	return true
}

func (s *Store) indexLocked(id string) int {
	for i := range s.studies {
		if s.studies[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) saveLocked(updated []entities.Study) {
	s.studies = updated
	if err := storage.SaveList(s.kv, entities.StorageKeyStudies, updated); err != nil {
		log.Printf("Studies: failed to save: %v", err)
	}
}
