// Package settings provides database operations for key/value settings.
//
// Besides user preferences, the settings table stores the serialized bookmark
// and study collections, one row per collection.
//
// # Usage
//
//	repo := settings.NewRepository(db)
//	value, ok, err := repo.GetValue("gcbs-studies")
package settings

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/devotional/internal/entities"
)

// Repository handles all settings database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new settings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetSetting retrieves a setting by key.
func (r *Repository) GetSetting(key string) (*entities.Setting, error) {
	var setting entities.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// GetValue returns the stored value and whether the key exists.
func (r *Repository) GetValue(key string) (string, bool, error) {
	setting, err := r.GetSetting(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return setting.Value, true, nil
}

// SetSetting creates or updates a setting.
func (r *Repository) SetSetting(key, value string) error {
	var setting entities.Setting
	result := r.db.Where("key = ?", key).First(&setting)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		setting = entities.Setting{
			Key:   key,
			Value: value,
		}
		return r.db.Create(&setting).Error
	} else if result.Error != nil {
		return result.Error
	}

	setting.Value = value
	return r.db.Save(&setting).Error
}

// DeleteSetting removes a setting by key.
func (r *Repository) DeleteSetting(key string) error {
	return r.db.Where("key = ?", key).Delete(&entities.Setting{}).Error
}
