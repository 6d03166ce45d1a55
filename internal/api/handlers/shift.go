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

// ShiftHandler handles HTTP requests for shift operations
type ShiftHandler struct {
	shiftService service.ShiftServiceInterface
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService service.ShiftServiceInterface) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// CreateShift handles POST /shifts
// @Summary Create a new shift
// @Description Create a planned shift at a site. End time must be after start time and the site must exist.
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body service.CreateShiftRequest true "Shift data"
// @Success 201 {object} service.ShiftResponse "Successfully created shift"
// @Failure 400 {object} ErrorResponse "Invalid request body or time range"
// @Failure 404 {object} ErrorResponse "Site not found"
// @Router /shifts [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shift, err := h.shiftService.Create(&req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// GetShift handles GET /shifts/:id
// @Summary Get shift by ID
// @Description Get a single shift including its assigned headcount
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftResponse "Successfully retrieved shift"
// @Failure 400 {object} ErrorResponse "Invalid shift id"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift id"})
		return
	}

	shift, err := h.shiftService.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get shift", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shift)
}

// GetShiftsBySite handles GET /sites/:id/shifts
// @Summary List shifts of a site
// @Description Get the shifts of a site ordered by start time, with pagination
// @Tags shifts
// @Produce json
// @Param id path string true "Site ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ShiftListResponse "Successfully retrieved shifts"
// @Failure 400 {object} ErrorResponse "Invalid site id"
// @Failure 404 {object} ErrorResponse "Site not found"
// @Router /sites/{id}/shifts [get]
func (h *ShiftHandler) GetShiftsBySite(c *gin.Context) {
	siteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid site id"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.shiftService.GetBySite(siteID, page, pageSize)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get site shifts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateShift handles PUT /shifts/:id
// @Summary Update a shift
// @Description Update shift fields; omitted fields stay unchanged
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param shift body service.UpdateShiftRequest true "Fields to update"
// @Success 200 {object} service.ShiftResponse "Successfully updated shift"
// @Failure 400 {object} ErrorResponse "Invalid request body, status or time range"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Router /shifts/{id} [put]
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift id"})
		return
	}

	var req service.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shift, err := h.shiftService.Update(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shift)
}

// DeleteShift handles DELETE /shifts/:id
// @Summary Delete a shift
// @Description Delete a shift and its assignments
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 204 "Successfully deleted shift"
// @Failure 400 {object} ErrorResponse "Invalid shift id"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift id"})
		return
	}

	if err := h.shiftService.Delete(id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete shift", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
