package handlers

import (
	"errors"
	"io"
	"net/http"

	apperrors "guard-roster-backend/internal/errors"
	"guard-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClearanceHandler handles HTTP requests for site clearance operations
type ClearanceHandler struct {
	clearanceService service.ClearanceServiceInterface
}

// NewClearanceHandler creates a new clearance handler
func NewClearanceHandler(clearanceService service.ClearanceServiceInterface) *ClearanceHandler {
	return &ClearanceHandler{clearanceService: clearanceService}
}

// GrantClearance handles POST /clearances
// @Summary Grant a site clearance
// @Description Put a user into training for a site. A user can hold at most one clearance per site.
// @Tags clearances
// @Accept json
// @Produce json
// @Param clearance body service.GrantClearanceRequest true "Clearance data"
// @Success 201 {object} service.ClearanceResponse "Successfully granted clearance"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "User or site not found"
// @Failure 409 {object} ErrorResponse "Clearance already exists"
// @Router /clearances [post]
func (h *ClearanceHandler) GrantClearance(c *gin.Context) {
	var req service.GrantClearanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clearance, err := h.clearanceService.Grant(&req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, clearance)
}

// ActivateClearance handles POST /clearances/:id/activate
// @Summary Activate a clearance
// @Description Move a training clearance to active, optionally with an expiry date
// @Tags clearances
// @Accept json
// @Produce json
// @Param id path string true "Clearance ID (UUID)"
// @Param activation body service.ActivateClearanceRequest false "Activation data"
// @Success 200 {object} service.ClearanceResponse "Successfully activated clearance"
// @Failure 400 {object} ErrorResponse "Invalid clearance id or request body"
// @Failure 404 {object} ErrorResponse "Clearance not found"
// @Failure 409 {object} ErrorResponse "Clearance is not in training"
// @Router /clearances/{id}/activate [post]
func (h *ClearanceHandler) ActivateClearance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid clearance id"})
		return
	}

	// body is optional; activation without an expiry date sends none
	var req service.ActivateClearanceRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clearance, err := h.clearanceService.Activate(id, &req)
	if err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrClearanceNotInTraining):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate clearance", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, clearance)
}

// RevokeClearance handles POST /clearances/:id/revoke
// @Summary Revoke a clearance
// @Tags clearances
// @Produce json
// @Param id path string true "Clearance ID (UUID)"
// @Success 200 {object} service.ClearanceResponse "Successfully revoked clearance"
// @Failure 400 {object} ErrorResponse "Invalid clearance id"
// @Failure 404 {object} ErrorResponse "Clearance not found"
// @Router /clearances/{id}/revoke [post]
func (h *ClearanceHandler) RevokeClearance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid clearance id"})
		return
	}

	clearance, err := h.clearanceService.Revoke(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke clearance", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, clearance)
}

// GetSiteClearances handles GET /sites/:id/clearances
// @Summary List clearances of a site
// @Tags clearances
// @Produce json
// @Param id path string true "Site ID (UUID)"
// @Success 200 {array} service.ClearanceResponse "Successfully retrieved clearances"
// @Failure 400 {object} ErrorResponse "Invalid site id"
// @Failure 404 {object} ErrorResponse "Site not found"
// @Router /sites/{id}/clearances [get]
func (h *ClearanceHandler) GetSiteClearances(c *gin.Context) {
	siteID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid site id"})
		return
	}

	clearances, err := h.clearanceService.GetBySite(siteID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get site clearances", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, clearances)
}
