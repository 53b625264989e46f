package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/mrlokans/devotional/internal/entities"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestParseStepParam(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
		ok    bool
	}{
		{"first step", "1", 1, true},
		{"last step", "8", 8, true},
		{"zero", "0", 0, false},
		{"past the end", "9", 0, false},
		{"not a number", "abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Params = gin.Params{{Key: "stepId", Value: tt.value}}

			step, ok := parseStepParam(c, "stepId")

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, step)
			if !tt.ok {
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.Contains(t, w.Body.String(), "invalid stepId")
			}
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	t.Run("empty falls back", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		tod, ok := parseTimeOfDay(c, "", entities.Midday)

		assert.True(t, ok)
		assert.Equal(t, entities.Midday, tod)
	})

	t.Run("case insensitive", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		tod, ok := parseTimeOfDay(c, "Evening", entities.Morning)

		assert.True(t, ok)
		assert.Equal(t, entities.Evening, tod)
	})

	t.Run("unknown slot", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		_, ok := parseTimeOfDay(c, "night", entities.Morning)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestParseDate(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("empty is now", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		d, ok := parseDate(c, "", now)

		assert.True(t, ok)
		assert.Equal(t, now, d)
	})

	t.Run("iso date", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		d, ok := parseDate(c, "2024-12-25", now)

		assert.True(t, ok)
		assert.Equal(t, 2024, d.Year())
		assert.Equal(t, time.December, d.Month())
		assert.Equal(t, 25, d.Day())
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		_, ok := parseDate(c, "12/25/2024", now)

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"", 25, 0},
		{"?limit=10&offset=20", 10, 20},
		{"?limit=1000", 25, 0},
		{"?limit=-1&offset=-5", 25, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/"+tt.query, nil)

			limit, offset := parsePagination(c, 25)

			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestRespondHelpers(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondNotFound(c, "study")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"error":"study not found"`)
	})

	t.Run("internal error hides details", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondInternalError(c, assert.AnError, "test")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})

	t.Run("accepted", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		respondAccepted(c, "queued", gin.H{"task_id": "abc"})

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), `"task_id":"abc"`)
	})
}
