package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/devotional/internal/settingsstore"
)

// runner owns one cron entry and its lifecycle. Schedulers embed it and
// decide whether to start based on their own settings.
type runner struct {
	name string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func newRunner(name string) *runner {
	return &runner{
		name: name,
		cron: cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

func (r *runner) start(ctx context.Context, schedule string, job func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return nil
	}

	if err := settingsstore.ValidateCronSchedule(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", schedule, err)
	}

	entryID, err := r.cron.AddFunc(schedule, job)
	if err != nil {
		return fmt.Errorf("failed to schedule %s job: %w", r.name, err)
	}
	r.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, r.cancelFunc = context.WithCancel(ctx)

	r.cron.Start()
	r.isRunning = true

	nextRun, _ := settingsstore.GetNextRunTime(schedule, time.Now())
	log.Printf("%s scheduler: started with schedule '%s' (%s). Next run: %v",
		r.name, schedule, settingsstore.GetCronDescription(schedule), nextRun)

	// Monitor for context cancellation
	go func() {
		<-cancelCtx.Done()
		r.stop()
	}()

	return nil
}

// stop waits for a running job to finish and removes the entry so a later
// start does not register it twice.
func (r *runner) stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isRunning {
		return
	}

	ctx := r.cron.Stop()
	<-ctx.Done()
	r.cron.Remove(r.entryID)

	r.isRunning = false
	if r.cancelFunc != nil {
		r.cancelFunc()
		r.cancelFunc = nil
	}

	log.Printf("%s scheduler: stopped", r.name)
}

func (r *runner) running() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.isRunning
}

func (r *runner) nextRunTime() *time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.isRunning {
		return nil
	}
	for _, entry := range r.cron.Entries() {
		if entry.ID == r.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}
