package entrypoint

import (
	"fmt"
	"log"
	"time"

	"github.com/mrlokans/devotional/internal/audit"
	"github.com/mrlokans/devotional/internal/bookmarks"
	"github.com/mrlokans/devotional/internal/config"
	"github.com/mrlokans/devotional/internal/content"
	"github.com/mrlokans/devotional/internal/database"
	"github.com/mrlokans/devotional/internal/exporters"
	"github.com/mrlokans/devotional/internal/settingsstore"
	"github.com/mrlokans/devotional/internal/storage"
	"github.com/mrlokans/devotional/internal/studies"
)

// App holds the stores shared by the server and the CLI commands.
type App struct {
	Config    *config.Config
	DB        *database.Database
	Content   *content.Store
	Bookmarks *bookmarks.Store
	Studies   *studies.Store
	Audit     *audit.Service
	Settings  *settingsstore.SettingsStore
	Exporter  *exporters.StoreExporter
}

// NewApp opens the database, selects the storage backend and loads the
// stores. now is the wall clock; nil means time.Now.
func NewApp(cfg *config.Config, now func() time.Time) (*App, error) {
	if now == nil {
		now = time.Now
	}

	contentStore, err := content.NewStore(now)
	if err != nil {
		return nil, fmt.Errorf("failed to load devotional content: %w", err)
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	kv, err := storage.New(storage.Options{
		Engine:   cfg.Storage.Engine,
		Settings: db.Settings(),
		JSONPath: cfg.Storage.JSONPath,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Printf("Using %s storage engine", cfg.Storage.Engine)

	settings := settingsstore.New(db)
	bookmarkStore := bookmarks.NewStore(kv, now)
	studyStore := studies.NewStore(kv, now)

	return &App{
		Config:    cfg,
		DB:        db,
		Content:   contentStore,
		Bookmarks: bookmarkStore,
		Studies:   studyStore,
		Audit:     audit.NewService(db.Audit()),
		Settings:  settings,
		Exporter:  exporters.NewStoreExporter(bookmarkStore, studyStore, settings.GetExportDir),
	}, nil
}

// Close waits for pending audit writes and closes the database.
func (a *App) Close() error {
	a.Audit.Wait()
	return a.DB.Close()
}
