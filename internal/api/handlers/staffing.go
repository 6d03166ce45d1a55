package handlers

import (
	"errors"
	"net/http"

	apperrors "guard-roster-backend/internal/errors"
	"guard-roster-backend/internal/repository"
	"guard-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffingHandler handles HTTP requests for candidate scoring and ranking
type StaffingHandler struct {
	rankingService service.RankingServiceInterface
	scoringService service.ScoringServiceInterface
	shiftRepo      repository.ShiftRepositoryInterface
}

// NewStaffingHandler creates a new staffing handler
func NewStaffingHandler(rankingService service.RankingServiceInterface, scoringService service.ScoringServiceInterface, shiftRepo repository.ShiftRepositoryInterface) *StaffingHandler {
	return &StaffingHandler{
		rankingService: rankingService,
		scoringService: scoringService,
		shiftRepo:      shiftRepo,
	}
}

// CandidateListResponse wraps the ranked candidate list for a shift
type CandidateListResponse struct {
	ShiftID    uuid.UUID                      `json:"shift_id"`
	Candidates []service.ReplacementCandidate `json:"candidates"`
	Total      int                            `json:"total"`
}

// GetShiftCandidates handles GET /shifts/:id/candidates
// @Summary Rank replacement candidates for a shift
// @Description Returns all employable candidates for the shift, scored and sorted by suitability (best first). Pass absent_user_id to rank replacements for a specific absent employee.
// @Tags staffing
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param absent_user_id query string false "User the replacement is sought for (UUID)"
// @Success 200 {object} CandidateListResponse "Ranked candidates"
// @Failure 400 {object} ErrorResponse "Invalid shift or user id"
// @Failure 500 {object} map[string]interface{} "Ranking failed"
// @Router /shifts/{id}/candidates [get]
func (h *StaffingHandler) GetShiftCandidates(c *gin.Context) {
	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift id"})
		return
	}

	var absentUserID *uuid.UUID
	if raw := c.Query("absent_user_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid absent_user_id"})
			return
		}
		absentUserID = &parsed
	}

	candidates, err := h.rankingService.RankCandidates(shiftID, absentUserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rank candidates", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, CandidateListResponse{
		ShiftID:    shiftID,
		Candidates: candidates,
		Total:      len(candidates),
	})
}

// GetCandidateScore handles GET /shifts/:id/candidates/:user_id/score
// @Summary Score one candidate for a shift
// @Description Computes the full suitability score of a single user for a shift, including sub-scores, metrics and warnings
// @Tags staffing
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param user_id path string true "User ID (UUID)"
// @Success 200 {object} service.CandidateScore "Candidate score"
// @Failure 400 {object} ErrorResponse "Invalid shift or user id"
// @Failure 404 {object} ErrorResponse "Shift or user not found"
// @Router /shifts/{id}/candidates/{user_id}/score [get]
func (h *StaffingHandler) GetCandidateScore(c *gin.Context) {
	shiftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shift id"})
		return
	}
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}

	shift, err := h.shiftRepo.GetWithAssignments(shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "shift not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load shift", "details": err.Error()})
		return
	}

	score, err := h.scoringService.Score(userID, shift)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to score candidate", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, score)
}
