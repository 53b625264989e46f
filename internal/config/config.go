package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Storage
		Export
		Reminders
		Audit
		Global
		Database
		Tasks
	}

	HTTP struct {
		Port int32
		Host string
	}
	Storage struct {
		Engine   string // "sqlite", "json" or "memory"
		JSONPath string // File used by the json engine
	}
	Export struct {
		Dir          string // Directory for markdown exports
		SyncEnabled  bool
		SyncSchedule string // Cron format: "0 * * * *" = hourly
	}
	Reminders struct {
		Enabled  bool
		Schedule string // Cron format: "0 5,12,17 * * *" = start of each slot
	}
	Audit struct {
		RetentionDays int // Days to keep audit events (default: 30)
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path string
	}
	Tasks struct {
		Enabled           bool
		Workers           int
		MaxRetries        int
		RetryDelay        time.Duration
		TaskTimeout       time.Duration
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}
)

// LoadDotEnv loads variables from the given files into the process
// environment without overriding values that are already set. Missing files
// are skipped.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err == nil {
			log.Printf("Loaded environment from %s", f)
		}
	}
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("storage_engine", DefaultStorageEngine)
	v.SetDefault("json_storage_path", DefaultJSONStoragePath)
	v.SetDefault("export_dir", "")
	v.SetDefault("export_sync_enabled", false)
	v.SetDefault("export_sync_schedule", "0 * * * *") // Hourly at :00
	v.SetDefault("reminders_enabled", false)
	v.SetDefault("reminder_schedule", "0 5,12,17 * * *")
	v.SetDefault("audit_retention_days", 30)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_max_retries", 3)
	v.SetDefault("task_retry_delay", "1m")
	v.SetDefault("task_timeout", "5m")
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Storage: Storage{
			Engine:   v.GetString("STORAGE_ENGINE"),
			JSONPath: v.GetString("JSON_STORAGE_PATH"),
		},
		Export: Export{
			Dir:          v.GetString("EXPORT_DIR"),
			SyncEnabled:  v.GetBool("EXPORT_SYNC_ENABLED"),
			SyncSchedule: v.GetString("EXPORT_SYNC_SCHEDULE"),
		},
		Reminders: Reminders{
			Enabled:  v.GetBool("REMINDERS_ENABLED"),
			Schedule: v.GetString("REMINDER_SCHEDULE"),
		},
		Audit: Audit{
			RetentionDays: v.GetInt("AUDIT_RETENTION_DAYS"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			MaxRetries:        v.GetInt("TASK_MAX_RETRIES"),
			RetryDelay:        v.GetDuration("TASK_RETRY_DELAY"),
			TaskTimeout:       v.GetDuration("TASK_TIMEOUT"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
	}
}
