// Package content provides the read-only devotional dataset and the
// date-driven selection of today's prayers.
//
// The dataset ships embedded in the binary and is validated once at load:
//
//	store, err := content.NewStore(time.Now)
//	today := store.TodaysContent()
//	prayer := today.For(store.CurrentTimeOfDay())
package content

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mrlokans/devotional/internal/entities"
)

//go:embed assets
var assets embed.FS

// ErrInvalidDataset is returned when the embedded or supplied dataset fails validation.
var ErrInvalidDataset = errors.New("invalid devotional dataset")

const (
	minPrompts = 2
	maxPrompts = 3
)

// Store selects daily content from a fixed, validated dataset.
type Store struct {
	readings []entities.TimeOfDayContent
	now      func() time.Time
}

// NewStore loads the embedded dataset. now is the wall clock; pass time.Now
// outside of tests.
func NewStore(now func() time.Time) (*Store, error) {
	data, err := assets.ReadFile("assets/daily_readings.json")
	if err != nil {
		return nil, fmt.Errorf("read embedded readings: %w", err)
	}
	var readings []entities.TimeOfDayContent
	if err := json.Unmarshal(data, &readings); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	return NewStoreFromReadings(readings, now)
}

// NewStoreFromReadings builds a store over a caller-supplied dataset.
func NewStoreFromReadings(readings []entities.TimeOfDayContent, now func() time.Time) (*Store, error) {
	if err := ValidateReadings(readings); err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	copied := make([]entities.TimeOfDayContent, len(readings))
	copy(copied, readings)
	return &Store{readings: copied, now: now}, nil
}

// ValidateReadings checks that every slot of every day is fully populated.
func ValidateReadings(readings []entities.TimeOfDayContent) error {
	if len(readings) == 0 {
		return fmt.Errorf("%w: no readings", ErrInvalidDataset)
	}
	for i, day := range readings {
		for _, tod := range entities.TimesOfDay {
			if err := validatePrayer(day.For(tod)); err != nil {
				return fmt.Errorf("%w: day %d %s: %v", ErrInvalidDataset, i+1, tod, err)
			}
		}
	}
	return nil
}

func validatePrayer(p entities.DailyPrayer) error {
	switch {
	case p.Call == "":
		return errors.New("missing call")
	case p.Scripture.Text == "" || p.Scripture.Reference == "":
		return errors.New("incomplete scripture")
	case p.Reflection == "":
		return errors.New("missing reflection")
	case p.Benediction == "":
		return errors.New("missing benediction")
	case len(p.Prompts) < minPrompts || len(p.Prompts) > maxPrompts:
		return fmt.Errorf("expected %d-%d prompts, got %d", minPrompts, maxPrompts, len(p.Prompts))
	}
	return nil
}

// Len is the dataset period in days.
func (s *Store) Len() int {
	return len(s.readings)
}

// Readings returns a copy of the full dataset.
func (s *Store) Readings() []entities.TimeOfDayContent {
	out := make([]entities.TimeOfDayContent, len(s.readings))
	copy(out, s.readings)
	return out
}

// TodaysContent returns the entry for the current calendar day.
func (s *Store) TodaysContent() entities.TimeOfDayContent {
	return s.ContentFor(s.now())
}

// ContentFor returns the entry selected for the calendar day of t.
// Day-of-year is 1-based, so January 1st selects index 1.
func (s *Store) ContentFor(t time.Time) entities.TimeOfDayContent {
	return s.readings[DayIndex(t, len(s.readings))]
}

// DayIndex maps a calendar day onto a dataset of length n.
func DayIndex(t time.Time, n int) int {
	return t.YearDay() % n
}

// CurrentTimeOfDay returns the slot for the current local hour.
func (s *Store) CurrentTimeOfDay() entities.TimeOfDay {
	return TimeOfDayAt(s.now())
}

// CurrentPrayer is a shortcut for today's prayer in the current slot.
func (s *Store) CurrentPrayer() (entities.TimeOfDay, entities.DailyPrayer) {
	now := s.now()
	tod := TimeOfDayAt(now)
	return tod, s.ContentFor(now).For(tod)
}

// TimeOfDayAt maps the local hour of t onto a slot:
// [5,12) morning, [12,17) midday, everything else evening.
func TimeOfDayAt(t time.Time) entities.TimeOfDay {
	h := t.Hour()
	switch {
	case h >= 5 && h < 12:
		return entities.Morning
	case h >= 12 && h < 17:
		return entities.Midday
	default:
		return entities.Evening
	}
}

// DateKey formats t as the ISO date used in bookmark ids.
func DateKey(t time.Time) string {
	return t.Format(time.DateOnly)
}
