package tasks

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/devotional/internal/exporters"
)

type fakeExporter struct {
	result   exporters.ExportResult
	err      error
	exported chan string
}

func (f *fakeExporter) ExportAll() (exporters.ExportResult, error) {
	return f.result, f.err
}

func (f *fakeExporter) ExportStudy(id string) (string, error) {
	if f.exported != nil {
		f.exported <- id
	}
	return "/tmp/" + id + ".md", f.err
}

type exportCall struct {
	action    string
	bookmarks int
	studies   int
	err       error
}

type fakeRecorder struct {
	calls []exportCall
}

func (f *fakeRecorder) LogExport(action, _ string, bookmarks, studies int, err error) {
	f.calls = append(f.calls, exportCall{action, bookmarks, studies, err})
}

func TestExportTaskConfigs(t *testing.T) {
	study := ExportStudyTask{StudyID: "abc"}.Config()
	assert.Equal(t, "export_study", study.Name)
	assert.Equal(t, 3, study.MaxAttempts)
	assert.NotNil(t, study.Retention)

	all := ExportAllTask{}.Config()
	assert.Equal(t, "export_all", all.Name)
	assert.Equal(t, 1, all.MaxAttempts)
	assert.Equal(t, 10*time.Minute, all.Timeout)

	cleanup := CleanupAuditEventsTask{}.Config()
	assert.Equal(t, "cleanup_audit", cleanup.Name)
}

func TestExportStudyProcessor(t *testing.T) {
	t.Run("records success", func(t *testing.T) {
		recorder := &fakeRecorder{}
		process := ExportStudyProcessor(&fakeExporter{}, recorder)

		require.NoError(t, process(context.Background(), ExportStudyTask{StudyID: "abc"}))
		require.Len(t, recorder.calls, 1)
		assert.Equal(t, 1, recorder.calls[0].studies)
	})

	t.Run("records failure", func(t *testing.T) {
		recorder := &fakeRecorder{}
		process := ExportStudyProcessor(&fakeExporter{err: errors.New("disk full")}, recorder)

		err := process(context.Background(), ExportStudyTask{StudyID: "abc"})
		assert.ErrorContains(t, err, "disk full")
		assert.Equal(t, 0, recorder.calls[0].studies)
		assert.Error(t, recorder.calls[0].err)
	})

	t.Run("requires an exporter", func(t *testing.T) {
		err := ExportStudyProcessor(nil, nil)(context.Background(), ExportStudyTask{})
		assert.Error(t, err)
	})
}

func TestExportAllProcessor(t *testing.T) {
	recorder := &fakeRecorder{}
	exporter := &fakeExporter{result: exporters.ExportResult{BookmarksProcessed: 2, StudiesProcessed: 3}}

	require.NoError(t, ExportAllProcessor(exporter, recorder)(context.Background(), ExportAllTask{Trigger: "schedule"}))
	require.Len(t, recorder.calls, 1)
	assert.Equal(t, exportCall{action: "markdown_export", bookmarks: 2, studies: 3}, recorder.calls[0])
}

type fakeCleaner struct {
	retention time.Duration
}

func (f *fakeCleaner) DeleteOldEvents(retention time.Duration) (int64, error) {
	f.retention = retention
	return 4, nil
}

func TestCleanupAuditProcessor(t *testing.T) {
	cleaner := &fakeCleaner{}

	require.NoError(t, CleanupAuditEventsProcessor(cleaner)(context.Background(), CleanupAuditEventsTask{}))
	assert.Equal(t, DefaultAuditRetentionDays*24*time.Hour, cleaner.retention)

	require.NoError(t, CleanupAuditEventsProcessor(cleaner)(context.Background(), CleanupAuditEventsTask{RetentionDays: 7}))
	assert.Equal(t, 7*24*time.Hour, cleaner.retention)
}

func TestEnqueueExportStudy(t *testing.T) {
	client, err := NewClient(filepath.Join(t.TempDir(), "test.db"), DefaultConfig())
	require.NoError(t, err)
	defer client.Close()

	exporter := &fakeExporter{exported: make(chan string, 1)}
	client.RegisterAll(Queues{Exporter: exporter, Cleaner: &fakeCleaner{}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)

	id, err := client.EnqueueExportStudy("study-1")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	select {
	case got := <-exporter.exported:
		assert.Equal(t, "study-1", got)
	case <-time.After(5 * time.Second):
		t.Fatal("export task was not executed within timeout")
	}
}
