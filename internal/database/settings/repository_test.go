package settings

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/devotional/internal/entities"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "settings.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Setting{})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return NewRepository(db)
}

func TestRepository_SetSetting_New(t *testing.T) {
	repo := setupTestDB(t)

	err := repo.SetSetting("export_dir", "/vault")
	require.NoError(t, err)

	setting, err := repo.GetSetting("export_dir")
	require.NoError(t, err)
	assert.Equal(t, "export_dir", setting.Key)
	assert.Equal(t, "/vault", setting.Value)
}

func TestRepository_SetSetting_Update(t *testing.T) {
	repo := setupTestDB(t)

	err := repo.SetSetting("export_dir", "/first")
	require.NoError(t, err)

	err = repo.SetSetting("export_dir", "/second")
	require.NoError(t, err)

	setting, err := repo.GetSetting("export_dir")
	require.NoError(t, err)
	assert.Equal(t, "/second", setting.Value)
}

func TestRepository_GetValue(t *testing.T) {
	t.Run("reports missing keys without error", func(t *testing.T) {
		repo := setupTestDB(t)

		value, ok, err := repo.GetValue(entities.StorageKeyStudies)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("round-trips large blobs", func(t *testing.T) {
		repo := setupTestDB(t)

		blob := "[" + strings.Repeat(`{"id":"x","notes":"long notes"},`, 2000) + "{}]"
		require.NoError(t, repo.SetSetting(entities.StorageKeyBookmarks, blob))

		value, ok, err := repo.GetValue(entities.StorageKeyBookmarks)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, blob, value)
	})
}

func TestRepository_GetSetting_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetSetting("nonexistent")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_DeleteSetting(t *testing.T) {
	repo := setupTestDB(t)

	err := repo.SetSetting("to-delete", "value")
	require.NoError(t, err)

	err = repo.DeleteSetting("to-delete")
	require.NoError(t, err)

	_, err = repo.GetSetting("to-delete")
	assert.Error(t, err)
}

func TestRepository_DeleteSetting_NonExistent(t *testing.T) {
	repo := setupTestDB(t)

	// Should not error even if key doesn't exist
	err := repo.DeleteSetting("nonexistent")
	assert.NoError(t, err)
}
