// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is a single SQLite file opened through GORM, organized
// into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── settings/        # Key/value rows (preferences and persisted collections)
//	└── audit/           # Audit trail of user actions and background jobs
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase("./devotional.db")
//
//	kv := db.Settings()
//	err = kv.SetSetting("export_dir", "/vault/prayer")
//
//	events, total, err := db.Audit().GetEvents(50, 0)
//
// The bookmark and study stores do not talk to GORM directly. They persist
// through storage.KeyValue, which the settings repository implements, so the
// same stores run against a JSON file or memory as well.
package database
