package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/devotional/internal/config"
	http_controllers "github.com/mrlokans/devotional/internal/http"
	"github.com/mrlokans/devotional/internal/scheduler"
	"github.com/mrlokans/devotional/internal/settingsstore"
	"github.com/mrlokans/devotional/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Devotional v%s", version)

	app, err := NewApp(cfg, time.Now)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	envExport := settingsstore.NewExportSyncConfigFromEnv(cfg.Export)
	log.Printf("Environment: export sync enabled=%v dir=%q schedule=%q; reminders enabled=%v schedule=%q",
		envExport.Enabled, envExport.ExportDir, envExport.Schedule, cfg.Reminders.Enabled, cfg.Reminders.Schedule)
	if info := app.Settings.GetExportSyncConfigInfo(); info.ExportDirSource == settingsstore.SourceDatabase {
		log.Printf("Export directory overridden in settings: %s", info.ExportDir)
	}

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.FromAppConfig(cfg.Tasks))
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		log.Printf("Task queue database: %s", taskClient.Path())
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.RegisterAll(tasks.Queues{
			Exporter: app.Exporter,
			Recorder: app.Audit,
			Cleaner:  app.Audit,
		})

		// Start task workers in background
		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)

		if _, err := taskClient.EnqueueAuditCleanup(cfg.Audit.RetentionDays); err != nil {
			log.Printf("WARNING: failed to schedule audit cleanup: %v", err)
		}
	}

	// Cron jobs read their settings through the settings store so they can
	// be changed at runtime.
	exportScheduler := scheduler.NewExportSyncScheduler(app.Settings, app.Bookmarks, app.Studies, app.Audit)
	if err := exportScheduler.Start(context.Background()); err != nil {
		log.Printf("WARNING: failed to start export sync: %v", err)
	}
	reminderScheduler := scheduler.NewReminderScheduler(app.Settings, app.Content, scheduler.LogNotifier{}, app.Audit)
	if err := reminderScheduler.Start(context.Background()); err != nil {
		log.Printf("WARNING: failed to start prayer reminders: %v", err)
	}

	routerCfg := http_controllers.RouterConfig{
		Content:           app.Content,
		Bookmarks:         app.Bookmarks,
		Studies:           app.Studies,
		Database:          app.DB,
		Auditor:           app.Audit,
		AuditReader:       app.Audit,
		ExportSettings:    app.Settings,
		ReminderSettings:  app.Settings,
		ExportScheduler:   exportScheduler,
		ReminderScheduler: reminderScheduler,
		RunExportNow:      exportScheduler.RunNow,
		Version:           version,
	}
	if taskClient != nil {
		routerCfg.TaskQueue = taskClient
		routerCfg.RunExportNow = func() {
			if _, err := taskClient.EnqueueExportAll("manual"); err != nil {
				log.Printf("Failed to enqueue export: %v", err)
			}
		}
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		exportScheduler.Stop()
		reminderScheduler.Stop()
		if taskClient != nil {
			if taskClient.Started() {
				taskClient.Stop(ctx)
			}
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
