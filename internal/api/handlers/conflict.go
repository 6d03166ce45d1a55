package handlers

import (
	"errors"
	"net/http"
	"time"

	apperrors "guard-roster-backend/internal/errors"
	"guard-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ConflictHandler handles HTTP requests for conflict analysis
type ConflictHandler struct {
	conflictService service.ConflictServiceInterface
}

// NewConflictHandler creates a new conflict handler
func NewConflictHandler(conflictService service.ConflictServiceInterface) *ConflictHandler {
	return &ConflictHandler{conflictService: conflictService}
}

// ConflictListResponse wraps the conflicts found in an analysis window
type ConflictListResponse struct {
	Conflicts []service.ShiftConflict `json:"conflicts"`
	Total     int                     `json:"total"`
}

// AnalyzeConflicts handles GET /conflicts
// @Summary Analyze roster conflicts in a date range
// @Description Scans all shifts in [start, end] for staffing and compliance conflicts. Optionally scoped to a site and/or a user; the weekly-hours check only runs with a user scope.
// @Tags conflicts
// @Produce json
// @Param start query string true "Window start (RFC3339)"
// @Param end query string true "Window end (RFC3339)"
// @Param site_id query string false "Restrict to one site (UUID)"
// @Param user_id query string false "Restrict to one user (UUID)"
// @Success 200 {object} ConflictListResponse "Detected conflicts"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} map[string]interface{} "Analysis failed"
// @Router /conflicts [get]
func (h *ConflictHandler) AnalyzeConflicts(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be an RFC3339 timestamp"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be an RFC3339 timestamp"})
		return
	}

	var siteID, userID *uuid.UUID
	if raw := c.Query("site_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid site_id"})
			return
		}
		siteID = &parsed
	}
	if raw := c.Query("user_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
			return
		}
		userID = &parsed
	}

	conflicts, err := h.conflictService.AnalyzeConflicts(start, end, siteID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze conflicts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ConflictListResponse{Conflicts: conflicts, Total: len(conflicts)})
}

// GetShiftConflicts handles GET /shifts/:id/conflicts
// @Summary Analyze conflicts around one shift
// @Description Runs the conflict analysis on a window around the given shift, wide enough to catch rest-time and double-booking conflicts with neighboring shifts
// @Tags conflicts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} ConflictListResponse "Detected conflicts"
// @Failure 400 {object} ErrorResponse "Invalid shift id"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Router /shifts/{id}/conflicts [get]
func (h *ConflictHandler) GetShiftConflicts(c *gin.Context) {
	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift id"})
		return
	}

	conflicts, err := h.conflictService.GetShiftConflicts(shiftID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze shift conflicts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ConflictListResponse{Conflicts: conflicts, Total: len(conflicts)})
}
