package settingsstore

import (
	"time"

	"github.com/robfig/cron/v3"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronSchedule validates a five-field cron schedule string
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// GetCronDescription returns a human-readable description of a cron schedule
func GetCronDescription(schedule string) string {
	switch schedule {
	case "0 * * * *":
		return "Every hour at :00"
	case "*/30 * * * *":
		return "Every 30 minutes"
	case "0 */6 * * *":
		return "Every 6 hours"
	case "0 0 * * *":
		return "Daily at midnight"
	case DefaultReminderSchedule:
		return "Morning, midday and evening (05:00, 12:00, 17:00)"
	case "0 7 * * *":
		return "Daily at 07:00"
	default:
		return "Custom schedule: " + schedule
	}
}

// GetNextRunTime calculates when the schedule fires next after from.
func GetNextRunTime(schedule string, from time.Time) (*time.Time, error) {
	sched, err := cronParser.Parse(schedule)
	if err != nil {
		return nil, err
	}
	next := sched.Next(from)
	return &next, nil
}
