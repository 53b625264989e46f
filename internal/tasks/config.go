package tasks

import (
	"time"

	"github.com/mrlokans/devotional/internal/config"
)

// Config holds configuration for the task queue system.
type Config struct {
	// Workers is the number of concurrent task workers. Default: 1
	Workers int

	// MaxRetries is the default maximum retry attempts for failed tasks. Default: 3
	MaxRetries int

	// RetryDelay is the default backoff duration between retries. Default: 1m
	RetryDelay time.Duration

	// TaskTimeout is the default timeout for task execution. Default: 5m
	TaskTimeout time.Duration

	// ReleaseAfter is when stuck tasks are released back to queue. Default: 15m
	ReleaseAfter time.Duration

	// CleanupInterval is how often to clean up completed tasks. Default: 1h
	CleanupInterval time.Duration

	// RetentionDuration is how long to keep completed tasks. Default: 24h
	RetentionDuration time.Duration
}

// FromAppConfig maps the TASK_* settings onto a queue Config, keeping
// defaults for unset values.
func FromAppConfig(cfg config.Tasks) Config {
	out := DefaultConfig()
	if cfg.Workers > 0 {
		out.Workers = cfg.Workers
	}
	if cfg.MaxRetries > 0 {
		out.MaxRetries = cfg.MaxRetries
	}
	if cfg.RetryDelay > 0 {
		out.RetryDelay = cfg.RetryDelay
	}
	if cfg.TaskTimeout > 0 {
		out.TaskTimeout = cfg.TaskTimeout
	}
	if cfg.ReleaseAfter > 0 {
		out.ReleaseAfter = cfg.ReleaseAfter
	}
	if cfg.CleanupInterval > 0 {
		out.CleanupInterval = cfg.CleanupInterval
	}
	if cfg.RetentionDuration > 0 {
		out.RetentionDuration = cfg.RetentionDuration
	}
	return out
}

// DefaultConfig returns the defaults used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Workers:           1,
		MaxRetries:        3,
		RetryDelay:        1 * time.Minute,
		TaskTimeout:       5 * time.Minute,
		ReleaseAfter:      15 * time.Minute,
		CleanupInterval:   1 * time.Hour,
		RetentionDuration: 24 * time.Hour,
	}
}
