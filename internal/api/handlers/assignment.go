package handlers

import (
	"errors"
	"net/http"

	apperrors "guard-roster-backend/internal/errors"
	"guard-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentHandler handles HTTP requests for assignment operations
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// CreateAssignment handles POST /assignments
// @Summary Assign a user to a shift
// @Description Create an assignment linking an active user to an active shift. A user can hold at most one assignment per shift.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body service.CreateAssignmentRequest true "Assignment data"
// @Success 201 {object} service.AssignmentResponse "Successfully created assignment"
// @Failure 400 {object} ErrorResponse "Invalid request body, inactive user or inactive shift"
// @Failure 404 {object} ErrorResponse "User or shift not found"
// @Failure 409 {object} ErrorResponse "User already assigned to this shift"
// @Router /assignments [post]
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.assignmentService.Create(&req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrUserInactive), errors.Is(err, apperrors.ErrShiftInactive):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create assignment", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// GetShiftAssignments handles GET /shifts/:id/assignments
// @Summary List assignments of a shift
// @Tags assignments
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {array} service.AssignmentResponse "Successfully retrieved assignments"
// @Failure 400 {object} ErrorResponse "Invalid shift id"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Router /shifts/{id}/assignments [get]
func (h *AssignmentHandler) GetShiftAssignments(c *gin.Context) {
	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift id"})
		return
	}

	assignments, err := h.assignmentService.GetByShift(shiftID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get shift assignments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// ConfirmAssignment handles POST /assignments/:id/confirm
// @Summary Confirm an assignment
// @Description Confirm a pending assignment; only assigned assignments can be confirmed
// @Tags assignments
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} service.AssignmentResponse "Successfully confirmed assignment"
// @Failure 400 {object} ErrorResponse "Invalid assignment id or status"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Router /assignments/{id}/confirm [post]
func (h *AssignmentHandler) ConfirmAssignment(c *gin.Context) {
	h.transition(c, h.assignmentService.Confirm)
}

// CancelAssignment handles POST /assignments/:id/cancel
// @Summary Cancel an assignment
// @Description Cancel an assignment that has not completed yet
// @Tags assignments
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 200 {object} service.AssignmentResponse "Successfully cancelled assignment"
// @Failure 400 {object} ErrorResponse "Invalid assignment id or status"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Router /assignments/{id}/cancel [post]
func (h *AssignmentHandler) CancelAssignment(c *gin.Context) {
	h.transition(c, h.assignmentService.Cancel)
}

func (h *AssignmentHandler) transition(c *gin.Context, fn func(uuid.UUID) (*service.AssignmentResponse, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assignment id"})
		return
	}

	assignment, err := fn(id)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update assignment", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, assignment)
}
