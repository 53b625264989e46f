package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/devotional/internal/database/audit"
	"github.com/mrlokans/devotional/internal/database/settings"
	"github.com/mrlokans/devotional/internal/entities"
)

type Database struct {
	DB *gorm.DB

	settings *settings.Repository
	audit    *audit.Repository
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.Setting{},
		&entities.AuditEvent{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{
		DB:       db,
		settings: settings.NewRepository(db),
		audit:    audit.NewRepository(db),
	}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the underlying connection is alive.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Settings returns the key/value repository.
func (d *Database) Settings() *settings.Repository {
	return d.settings
}

// Audit returns the audit event repository.
func (d *Database) Audit() *audit.Repository {
	return d.audit
}

func (d *Database) GetSetting(key string) (*entities.Setting, error) {
	return d.settings.GetSetting(key)
}

func (d *Database) SetSetting(key, value string) error {
	return d.settings.SetSetting(key, value)
}

func (d *Database) DeleteSetting(key string) error {
	return d.settings.DeleteSetting(key)
}

// IsNotFound reports whether err means the requested row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
