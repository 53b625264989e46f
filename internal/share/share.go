// Package share formats prayers for sharing and hands text to a native share
// surface, falling back to the clipboard.
//
// A cancelled share sheet is a distinct, non-error outcome and never triggers
// the clipboard fallback.
package share

import (
	"context"
	"errors"
	"log"

	"github.com/mrlokans/devotional/internal/entities"
)

var (
	// ErrCancelled is returned by a ShareSheet when the user dismisses it.
	ErrCancelled = errors.New("share cancelled")
	// ErrUnsupported is returned by a ShareSheet that has no native surface.
	ErrUnsupported = errors.New("share not supported")
)

type ShareSheet interface {
	Share(ctx context.Context, title, text string) error
}

type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Notice is a transient user-facing message.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Destructive bool   `json:"destructive,omitempty"`
}

type Notifier interface {
	Notify(n Notice)
}

type Outcome string

const (
	OutcomeShared    Outcome = "shared"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeCopied    Outcome = "copied"
	OutcomeFailed    Outcome = "failed"
)

// Succeeded reports whether the user ended up with the text somewhere.
// Cancellation counts as success.
func (o Outcome) Succeeded() bool {
	return o != OutcomeFailed
}

type messages struct {
	copied     string
	failedHint string
}

var (
	prayerMessages = messages{
		copied:     "Prayer text copied. Share it with your group!",
		failedHint: "Please try again or manually copy the text.",
	}
	studyMessages = messages{
		copied:     "Your study has been copied. Share it with your co-leaders!",
		failedHint: "Please try again.",
	}
)

type Sharer struct {
	sheet     ShareSheet
	clipboard Clipboard
	notifier  Notifier
}

// NewSharer wires the share collaborators. A nil sheet means no native share
// surface; a nil notifier drops notices.
func NewSharer(sheet ShareSheet, clipboard Clipboard, notifier Notifier) *Sharer {
	return &Sharer{
		sheet:     sheet,
		clipboard: clipboard,
		notifier:  notifier,
	}
}

// SharePrayer shares the formatted prayer for the given slot.
func (s *Sharer) SharePrayer(ctx context.Context, prayer entities.DailyPrayer, tod entities.TimeOfDay) Outcome {
	return s.share(ctx, PrayerTitle(tod), FormatPrayerText(prayer, tod), prayerMessages)
}

// ShareStudy shares an exported study under the study's title.
func (s *Sharer) ShareStudy(ctx context.Context, title, text string) Outcome {
	return s.share(ctx, StudyTitle(title), text, studyMessages)
}

func (s *Sharer) share(ctx context.Context, title, text string, msgs messages) Outcome {
	if s.sheet != nil {
		err := s.sheet.Share(ctx, title, text)
		switch {
		case err == nil:
			return OutcomeShared
		case errors.Is(err, ErrCancelled):
			return OutcomeCancelled
		case !errors.Is(err, ErrUnsupported):
			log.Printf("Share: share sheet failed, falling back to clipboard: %v", err)
		}
	}

	if s.clipboard == nil {
		s.notify(Notice{Title: "Unable to share", Description: msgs.failedHint, Destructive: true})
		return OutcomeFailed
	}
	if err := s.clipboard.WriteText(ctx, text); err != nil {
		log.Printf("Share: clipboard write failed: %v", err)
		s.notify(Notice{Title: "Unable to share", Description: msgs.failedHint, Destructive: true})
		return OutcomeFailed
	}
	s.notify(Notice{Title: "Copied to clipboard", Description: msgs.copied})
	return OutcomeCopied
}

func (s *Sharer) notify(n Notice) {
	if s.notifier != nil {
		s.notifier.Notify(n)
	}
}
