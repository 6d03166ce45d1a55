package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "guard-roster-backend/internal/errors"
	"guard-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AbsenceHandler handles HTTP requests for absence operations
type AbsenceHandler struct {
	absenceService service.AbsenceServiceInterface
}

// NewAbsenceHandler creates a new absence handler
func NewAbsenceHandler(absenceService service.AbsenceServiceInterface) *AbsenceHandler {
	return &AbsenceHandler{absenceService: absenceService}
}

// CreateAbsence handles POST /absences
// @Summary Request an absence
// @Description Create an absence request for a user. The absence starts in requested status.
// @Tags absences
// @Accept json
// @Produce json
// @Param absence body service.CreateAbsenceRequest true "Absence data"
// @Success 201 {object} service.AbsenceResponse "Successfully created absence"
// @Failure 400 {object} ErrorResponse "Invalid request body or time range"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /absences [post]
func (h *AbsenceHandler) CreateAbsence(c *gin.Context) {
	var req service.CreateAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	absence, err := h.absenceService.Create(&req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, absence)
}

// GetAbsence handles GET /absences/:id
// @Summary Get absence by ID
// @Tags absences
// @Produce json
// @Param id path string true "Absence ID (UUID)"
// @Success 200 {object} service.AbsenceResponse "Successfully retrieved absence"
// @Failure 400 {object} ErrorResponse "Invalid absence id"
// @Failure 404 {object} ErrorResponse "Absence not found"
// @Router /absences/{id} [get]
func (h *AbsenceHandler) GetAbsence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid absence id"})
		return
	}

	absence, err := h.absenceService.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get absence", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, absence)
}

// GetUserAbsences handles GET /users/:id/absences
// @Summary List absences of a user
// @Description Get the absences of a user ordered by start date, with pagination
// @Tags absences
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.AbsenceListResponse "Successfully retrieved absences"
// @Failure 400 {object} ErrorResponse "Invalid user id"
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /users/{id}/absences [get]
func (h *AbsenceHandler) GetUserAbsences(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.absenceService.GetByUser(userID, page, pageSize)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user absences", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ApproveAbsence handles POST /absences/:id/approve
// @Summary Approve an absence
// @Description Approve a requested absence; only requested absences can be decided
// @Tags absences
// @Produce json
// @Param id path string true "Absence ID (UUID)"
// @Success 200 {object} service.AbsenceResponse "Successfully approved absence"
// @Failure 400 {object} ErrorResponse "Invalid absence id"
// @Failure 404 {object} ErrorResponse "Absence not found"
// @Failure 409 {object} ErrorResponse "Absence already decided"
// @Router /absences/{id}/approve [post]
func (h *AbsenceHandler) ApproveAbsence(c *gin.Context) {
	h.transition(c, h.absenceService.Approve)
}

// RejectAbsence handles POST /absences/:id/reject
// @Summary Reject an absence
// @Description Reject a requested absence; only requested absences can be decided
// @Tags absences
// @Produce json
// @Param id path string true "Absence ID (UUID)"
// @Success 200 {object} service.AbsenceResponse "Successfully rejected absence"
// @Failure 400 {object} ErrorResponse "Invalid absence id"
// @Failure 404 {object} ErrorResponse "Absence not found"
// @Failure 409 {object} ErrorResponse "Absence already decided"
// @Router /absences/{id}/reject [post]
func (h *AbsenceHandler) RejectAbsence(c *gin.Context) {
	h.transition(c, h.absenceService.Reject)
}

// CancelAbsence handles POST /absences/:id/cancel
// @Summary Cancel an absence
// @Description Cancel a requested or approved absence
// @Tags absences
// @Produce json
// @Param id path string true "Absence ID (UUID)"
// @Success 200 {object} service.AbsenceResponse "Successfully cancelled absence"
// @Failure 400 {object} ErrorResponse "Invalid absence id"
// @Failure 404 {object} ErrorResponse "Absence not found"
// @Failure 409 {object} ErrorResponse "Absence already decided"
// @Router /absences/{id}/cancel [post]
func (h *AbsenceHandler) CancelAbsence(c *gin.Context) {
	h.transition(c, h.absenceService.Cancel)
}

func (h *AbsenceHandler) transition(c *gin.Context, fn func(uuid.UUID) (*service.AbsenceResponse, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid absence id"})
		return
	}

	absence, err := fn(id)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrAbsenceAlreadyDecided):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update absence", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, absence)
}
