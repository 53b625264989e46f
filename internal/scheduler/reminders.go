package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/mrlokans/devotional/internal/content"
	"github.com/mrlokans/devotional/internal/entities"
	"github.com/mrlokans/devotional/internal/settingsstore"
)

// Reminder is the message sent at the start of a time-of-day slot.
type Reminder struct {
	Date      string             `json:"date"`
	TimeOfDay entities.TimeOfDay `json:"time_of_day"`
	Call      string             `json:"call"`
	Reference string             `json:"reference"`
}

type Notifier interface {
	Remind(ctx context.Context, r Reminder) error
}

// LogNotifier writes reminders to the process log.
type LogNotifier struct{}

func (LogNotifier) Remind(_ context.Context, r Reminder) error {
	log.Printf("Reminder: %s prayer for %s: %s (%s)", r.TimeOfDay.Label(), r.Date, r.Call, r.Reference)
	return nil
}

type ReminderSettings interface {
	GetReminderConfig() settingsstore.ReminderConfig
	SetLastReminder(at time.Time, slot entities.TimeOfDay) error
}

type PrayerSource interface {
	CurrentPrayer() (entities.TimeOfDay, entities.DailyPrayer)
}

type ReminderAuditor interface {
	LogReminder(slot entities.TimeOfDay, err error)
}

// ReminderScheduler sends the current prayer's call line on a cron schedule,
// by default at the start of the morning, midday and evening slots.
type ReminderScheduler struct {
	*runner
	settings ReminderSettings
	prayers  PrayerSource
	notifier Notifier
	audit    ReminderAuditor
	now      func() time.Time
}

func NewReminderScheduler(settings ReminderSettings, prayers PrayerSource, notifier Notifier, audit ReminderAuditor) *ReminderScheduler {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &ReminderScheduler{
		runner:   newRunner("Prayer reminder"),
		settings: settings,
		prayers:  prayers,
		notifier: notifier,
		audit:    audit,
		now:      time.Now,
	}
}

func (s *ReminderScheduler) Start(ctx context.Context) error {
	cfg := s.settings.GetReminderConfig()
	if !cfg.Enabled {
		log.Printf("Prayer reminder scheduler: disabled")
		return nil
	}
	return s.start(ctx, cfg.Schedule, func() { _ = s.RunOnce(context.Background()) })
}

func (s *ReminderScheduler) Stop() {
	s.stop()
}

func (s *ReminderScheduler) Reschedule() error {
	s.stop()
	return s.Start(context.Background())
}

func (s *ReminderScheduler) IsRunning() bool {
	return s.running()
}

func (s *ReminderScheduler) GetNextRunTime() *time.Time {
	return s.nextRunTime()
}

// RunOnce sends the reminder for the current slot.
func (s *ReminderScheduler) RunOnce(ctx context.Context) error {
	now := s.now()
	tod, prayer := s.prayers.CurrentPrayer()
	reminder := Reminder{
		Date:      content.DateKey(now),
		TimeOfDay: tod,
		Call:      prayer.Call,
		Reference: prayer.Scripture.Reference,
	}

	err := s.notifier.Remind(ctx, reminder)
	if err != nil {
		log.Printf("Prayer reminder: failed to send %s reminder: %v", tod, err)
	} else if e := s.settings.SetLastReminder(now, tod); e != nil {
		log.Printf("Prayer reminder: failed to save last reminder: %v", e)
	}
	if s.audit != nil {
		s.audit.LogReminder(tod, err)
	}
	return err
}
