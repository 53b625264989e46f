package entities

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is one of the three fixed devotional slots of a day.
type TimeOfDay string

const (
	Morning TimeOfDay = "morning"
	Midday  TimeOfDay = "midday"
	Evening TimeOfDay = "evening"
)

// TimesOfDay lists the slots in the order they occur during a day.
var TimesOfDay = []TimeOfDay{Morning, Midday, Evening}

// ParseTimeOfDay validates a slot name coming from user input.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	tod := TimeOfDay(strings.ToLower(strings.TrimSpace(s)))
	switch tod {
	case Morning, Midday, Evening:
		return tod, nil
	}
	return "", fmt.Errorf("invalid time of day %q", s)
}

// Label returns the capitalised slot name, e.g. "Morning".
func (t TimeOfDay) Label() string {
	if t == "" {
		return ""
	}
	s := string(t)
	return strings.ToUpper(s[:1]) + s[1:]
}

type Scripture struct {
	Text      string `json:"text"`
	Reference string `json:"reference"`
}

// DailyPrayer is a single slot of the devotional dataset. It is never mutated.
type DailyPrayer struct {
	Call        string    `json:"call"`
	Scripture   Scripture `json:"scripture"`
	Reflection  string    `json:"reflection"`
	Prompts     []string  `json:"prompts"`
	Benediction string    `json:"benediction"`
}

// TimeOfDayContent holds the three prayers of one dataset day.
type TimeOfDayContent struct {
	Morning DailyPrayer `json:"morning"`
	Midday  DailyPrayer `json:"midday"`
	Evening DailyPrayer `json:"evening"`
}

// For returns the prayer for the given slot.
func (c TimeOfDayContent) For(tod TimeOfDay) DailyPrayer {
	switch tod {
	case Morning:
		return c.Morning
	case Midday:
		return c.Midday
	default:
		return c.Evening
	}
}

// BookmarkID derives the bookmark key for a date and slot.
func BookmarkID(date string, tod TimeOfDay) string {
	return date + "-" + string(tod)
}

// BookmarkInput is everything needed to bookmark a prayer; the id and
// timestamp are assigned by the bookmark store.
type BookmarkInput struct {
	Date      string    `json:"date"`
	TimeOfDay TimeOfDay `json:"timeOfDay"`
	DailyPrayer
}

type BookmarkedPrayer struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	TimeOfDay TimeOfDay `json:"timeOfDay"`
	DailyPrayer
	BookmarkedAt time.Time `json:"bookmarkedAt"`
}
