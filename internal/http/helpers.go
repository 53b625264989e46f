package http

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/devotional/internal/entities"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // additional context (validation errors, etc.)
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// PaginatedResponse wraps paginated data with metadata.
type PaginatedResponse struct {
	Data       any   `json:"data"`
	Total      int64 `json:"total"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
	HasMore    bool  `json:"has_more"`
	TotalPages int   `json:"total_pages,omitempty"`
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: resource + " not found"})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

// respondError sends an error response with the given status code.
// Use the specific helpers (respondBadRequest, respondNotFound, etc.) when possible.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// --- Success Response Helpers ---

// respondSuccess sends a 200 OK response with a message.
func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

// respondCreated sends a 201 Created response with data.
func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// respondAccepted sends a 202 Accepted response (for async operations).
func respondAccepted(c *gin.Context, message string, data any) {
	c.JSON(http.StatusAccepted, SuccessResponse{Message: message, Data: data})
}

// --- Parameter Parsing ---

// parseStepParam extracts a study step id (1..8) from URL parameters.
// Responds with a 400 error and returns 0, false when it is not a valid step.
func parseStepParam(c *gin.Context, paramName string) (int, bool) {
	step, err := strconv.Atoi(c.Param(paramName))
	if err != nil || !entities.ValidStep(step) {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return step, true
}

// parseTimeOfDay reads an optional time-of-day from the query (or the given
// fallback when absent). Responds with 400 on an unknown slot.
func parseTimeOfDay(c *gin.Context, raw string, fallback entities.TimeOfDay) (entities.TimeOfDay, bool) {
	if strings.TrimSpace(raw) == "" {
		return fallback, true
	}
	tod, err := entities.ParseTimeOfDay(raw)
	if err != nil {
		respondBadRequest(c, err.Error())
		return "", false
	}
	return tod, true
}

// parseDate reads an optional YYYY-MM-DD date in local time, defaulting to now.
func parseDate(c *gin.Context, raw string, now time.Time) (time.Time, bool) {
	if strings.TrimSpace(raw) == "" {
		return now, true
	}
	t, err := time.ParseInLocation(time.DateOnly, raw, now.Location())
	if err != nil {
		respondBadRequest(c, "invalid date, expected YYYY-MM-DD")
		return time.Time{}, false
	}
	return t, true
}

// parsePagination reads limit/offset query parameters with sane bounds.
func parsePagination(c *gin.Context, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= 100 {
		limit = l
	}
	if o, err := strconv.Atoi(c.Query("offset")); err == nil && o >= 0 {
		offset = o
	}
	return limit, offset
}
