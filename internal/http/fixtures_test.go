package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/devotional/internal/bookmarks"
	"github.com/mrlokans/devotional/internal/content"
	"github.com/mrlokans/devotional/internal/storage"
	"github.com/mrlokans/devotional/internal/studies"
)

// testNow is a Friday morning, so the current slot is morning.
var testNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)

type auditCall struct {
	kind   string
	action string
	id     string
}

type recordingAuditor struct {
	mu    sync.Mutex
	calls []auditCall
}

func (r *recordingAuditor) add(call auditCall) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *recordingAuditor) LogBookmark(action, id, _ string) {
	r.add(auditCall{"bookmark", action, id})
}

func (r *recordingAuditor) LogStudy(action, id, _ string) {
	r.add(auditCall{"study", action, id})
}

func (r *recordingAuditor) LogShare(entityType, id, outcome string, _ bool) {
	r.add(auditCall{"share:" + entityType, outcome, id})
}

func (r *recordingAuditor) LogSettings(action, _ string) {
	r.add(auditCall{"settings", action, ""})
}

func (r *recordingAuditor) Calls() []auditCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]auditCall(nil), r.calls...)
}

type testApp struct {
	router    *gin.Engine
	content   *content.Store
	bookmarks *bookmarks.Store
	studies   *studies.Store
	audit     *recordingAuditor
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	clock := func() time.Time { return testNow }
	contentStore, err := content.NewStore(clock)
	require.NoError(t, err)

	app := &testApp{
		content:   contentStore,
		bookmarks: bookmarks.NewStore(storage.NewMemory(), clock),
		studies:   studies.NewStore(storage.NewMemory(), clock),
		audit:     &recordingAuditor{},
	}
	app.router = NewRouter(RouterConfig{
		Content:   app.content,
		Bookmarks: app.bookmarks,
		Studies:   app.studies,
		Auditor:   app.audit,
		Version:   "test",
		Now:       clock,
	})
	return app
}

func (a *testApp) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(data))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
