package config

const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./devotional.db"

	// DefaultJSONStoragePath is used when STORAGE_ENGINE=json
	DefaultJSONStoragePath = "./devotional.json"

	DefaultStorageEngine = "sqlite"

	DefaultEnvFile = ".env"
)
