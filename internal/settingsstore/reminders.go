package settingsstore

import (
	"strconv"
	"time"

	"github.com/mrlokans/devotional/internal/entities"
)

// DefaultReminderSchedule fires at the start of each time-of-day slot.
const DefaultReminderSchedule = "0 5,12,17 * * *"

type ReminderConfig struct {
	Enabled  bool   `json:"enabled"`
	Schedule string `json:"schedule"`
}

type ReminderConfigInfo struct {
	Enabled        bool   `json:"enabled"`
	EnabledSource  string `json:"enabled_source"`
	Schedule       string `json:"schedule"`
	ScheduleSource string `json:"schedule_source"`
}

// LastReminder records the most recent reminder that was sent.
type LastReminder struct {
	SentAt *time.Time         `json:"sent_at,omitempty"`
	Slot   entities.TimeOfDay `json:"slot,omitempty"`
}

func (s *SettingsStore) GetRemindersEnabled() bool {
	v, _ := s.lookup(entities.SettingKeyRemindersEnabled, "REMINDERS_ENABLED", "false")
	return parseBool(v)
}

func (s *SettingsStore) GetRemindersEnabledSource() string {
	_, src := s.lookup(entities.SettingKeyRemindersEnabled, "REMINDERS_ENABLED", "false")
	return src
}

func (s *SettingsStore) SetRemindersEnabled(enabled bool) error {
	return s.db.SetSetting(entities.SettingKeyRemindersEnabled, strconv.FormatBool(enabled))
}

func (s *SettingsStore) GetReminderSchedule() string {
	v, _ := s.lookup(entities.SettingKeyReminderSchedule, "REMINDER_SCHEDULE", DefaultReminderSchedule)
	return v
}

func (s *SettingsStore) GetReminderScheduleSource() string {
	_, src := s.lookup(entities.SettingKeyReminderSchedule, "REMINDER_SCHEDULE", DefaultReminderSchedule)
	return src
}

func (s *SettingsStore) SetReminderSchedule(schedule string) error {
	if err := ValidateCronSchedule(schedule); err != nil {
		return err
	}
	return s.db.SetSetting(entities.SettingKeyReminderSchedule, schedule)
}

func (s *SettingsStore) GetReminderConfig() ReminderConfig {
	return ReminderConfig{
		Enabled:  s.GetRemindersEnabled(),
		Schedule: s.GetReminderSchedule(),
	}
}

func (s *SettingsStore) GetReminderConfigInfo() ReminderConfigInfo {
	return ReminderConfigInfo{
		Enabled:        s.GetRemindersEnabled(),
		EnabledSource:  s.GetRemindersEnabledSource(),
		Schedule:       s.GetReminderSchedule(),
		ScheduleSource: s.GetReminderScheduleSource(),
	}
}

func (s *SettingsStore) GetLastReminder() LastReminder {
	last := LastReminder{}
	if setting, err := s.db.GetSetting(entities.SettingKeyReminderLastAt); err == nil && setting.Value != "" {
		if ts, err := time.Parse(time.RFC3339, setting.Value); err == nil {
			last.SentAt = &ts
		}
	}
	if setting, err := s.db.GetSetting(entities.SettingKeyReminderLastSlot); err == nil {
		last.Slot = entities.TimeOfDay(setting.Value)
	}
	return last
}

func (s *SettingsStore) SetLastReminder(at time.Time, slot entities.TimeOfDay) error {
	if err := s.db.SetSetting(entities.SettingKeyReminderLastAt, at.UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	return s.db.SetSetting(entities.SettingKeyReminderLastSlot, string(slot))
}

func (s *SettingsStore) ClearReminderSettings() error {
	return s.clear(
		entities.SettingKeyRemindersEnabled,
		entities.SettingKeyReminderSchedule,
	)
}
