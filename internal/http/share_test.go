package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/devotional/internal/entities"
	"github.com/mrlokans/devotional/internal/share"
)

func TestShareController_SharePrayer(t *testing.T) {
	app := newTestApp(t)

	w := app.do(t, "POST", "/api/share/prayer?timeOfDay=evening", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[ShareResponse](t, w)
	assert.Equal(t, share.OutcomeCopied, resp.Outcome)
	assert.Equal(t, "Evening Prayer", resp.Title)
	assert.Equal(t, share.FormatPrayerText(app.content.TodaysContent().Evening, entities.Evening), resp.Text)
	require.NotNil(t, resp.Notice)
	assert.Equal(t, "Copied to clipboard", resp.Notice.Title)

	calls := app.audit.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, auditCall{"share:prayer", "copied", "2024-03-01-evening"}, calls[0])
}

func TestShareController_ShareStudy(t *testing.T) {
	app := newTestApp(t)
	study := createStudy(t, app, "John 3:16-21")

	w := app.do(t, "POST", "/api/share/study/"+study.ID, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[ShareResponse](t, w)
	assert.Equal(t, share.OutcomeCopied, resp.Outcome)
	assert.Equal(t, "Bible Study: John 3:16-21", resp.Title)
	assert.Equal(t, app.studies.ExportStudy(study.ID), resp.Text)
	require.NotNil(t, resp.Notice)
	assert.Equal(t, "Your study has been copied. Share it with your co-leaders!", resp.Notice.Description)

	assert.Equal(t, http.StatusNotFound, app.do(t, "POST", "/api/share/study/missing", nil).Code)
}
