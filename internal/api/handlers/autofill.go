package handlers

import (
	"net/http"

	"guard-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AutoFillHandler handles HTTP requests for auto-filling shifts
type AutoFillHandler struct {
	autoFillService service.AutoFillServiceInterface
}

// NewAutoFillHandler creates a new auto-fill handler
func NewAutoFillHandler(autoFillService service.AutoFillServiceInterface) *AutoFillHandler {
	return &AutoFillHandler{autoFillService: autoFillService}
}

// AutoFillBody represents the expected request body for auto-fill calls
type AutoFillBody struct {
	ShiftIDs              []uuid.UUID `json:"shift_ids" binding:"required,min=1"`
	MinScore              float64     `json:"min_score"`
	MaxCandidatesPerShift int         `json:"max_candidates_per_shift"`
}

// AutoFillListResponse wraps the per-shift auto-fill outcomes
type AutoFillListResponse struct {
	Results []service.AutoFillResult `json:"results"`
	Total   int                      `json:"total"`
}

// AutoFill handles POST /auto-fill
// @Summary Auto-fill understaffed shifts
// @Description Ranks candidates for each shift and assigns the best ones scoring at or above min_score until the shift is staffed. One result is returned per shift.
// @Tags auto-fill
// @Accept json
// @Produce json
// @Param body body AutoFillBody true "Shifts to fill and admission policy"
// @Success 200 {object} AutoFillListResponse "Per-shift outcomes"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Auto-fill failed"
// @Router /auto-fill [post]
func (h *AutoFillHandler) AutoFill(c *gin.Context) {
	h.run(c, h.autoFillService.AutoFill, true)
}

// PreviewAutoFill handles POST /auto-fill/preview
// @Summary Preview an auto-fill run
// @Description Runs the same admission policy as auto-fill but persists nothing; admitted candidates are returned as suggestions
// @Tags auto-fill
// @Accept json
// @Produce json
// @Param body body AutoFillBody true "Shifts to preview and admission policy"
// @Success 200 {object} AutoFillListResponse "Per-shift suggestions"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Preview failed"
// @Router /auto-fill/preview [post]
func (h *AutoFillHandler) PreviewAutoFill(c *gin.Context) {
	h.run(c, h.autoFillService.PreviewAutoFill, false)
}

func (h *AutoFillHandler) run(c *gin.Context, fill func([]uuid.UUID, service.AutoFillOptions) ([]service.AutoFillResult, error), autoAssign bool) {
	var body AutoFillBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := fill(body.ShiftIDs, service.AutoFillOptions{
		AutoAssign:            autoAssign,
		MinScore:              body.MinScore,
		MaxCandidatesPerShift: body.MaxCandidatesPerShift,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to auto-fill shifts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AutoFillListResponse{Results: results, Total: len(results)})
}
