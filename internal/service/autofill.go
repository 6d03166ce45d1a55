package service

import (
	"errors"
	"fmt"

	"guard-roster-backend/internal/database/models"
	apperrors "guard-roster-backend/internal/errors"
	"guard-roster-backend/internal/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultAutoFillMinScore is the admission threshold applied when the
// caller does not set one: candidates scoring below it are not assigned.
const DefaultAutoFillMinScore = 60.0

// AutoFillService fills understaffed shifts from the candidate ranking
// under a minimum-score admission policy. It is the only component of the
// staffing core that writes to the store.
//
// Two concurrent runs against the same shift can race and jointly exceed
// the required headcount: nothing reserves the remaining slots, and the
// unique (user, shift) constraint only prevents assigning the same user
// twice. That gap is intentional and must not be papered over with a lock.
type AutoFillService struct {
	shifts      ShiftStore
	assignments AssignmentStore
	ranker      *RankingService
	minScore    float64
	log         *logger.Logger
}

// NewAutoFillService creates a new auto-fill service
func NewAutoFillService(shifts ShiftStore, assignments AssignmentStore, ranker *RankingService, minScore float64) *AutoFillService {
	if minScore <= 0 {
		minScore = DefaultAutoFillMinScore
	}
	return &AutoFillService{
		shifts:      shifts,
		assignments: assignments,
		ranker:      ranker,
		minScore:    minScore,
		log:         logger.WithComponent("autofill"),
	}
}

// AutoFill processes each shift independently: rank candidates, admit
// those at or above the score threshold, and create assignments for them
// when opts.AutoAssign is set. One result is returned per shift.
func (s *AutoFillService) AutoFill(shiftIDs []uuid.UUID, opts AutoFillOptions) ([]AutoFillResult, error) {
	if opts.MinScore <= 0 {
		opts.MinScore = s.minScore
	}

	results := make([]AutoFillResult, 0, len(shiftIDs))
	for _, shiftID := range shiftIDs {
		results = append(results, s.fillShift(shiftID, opts))
	}
	return results, nil
}

// PreviewAutoFill runs the same policy as AutoFill but never persists
// assignments; admitted candidates are returned as suggestions only.
func (s *AutoFillService) PreviewAutoFill(shiftIDs []uuid.UUID, opts AutoFillOptions) ([]AutoFillResult, error) {
	opts.AutoAssign = false
	return s.AutoFill(shiftIDs, opts)
}

func (s *AutoFillService) fillShift(shiftID uuid.UUID, opts AutoFillOptions) AutoFillResult {
	result := AutoFillResult{ShiftID: shiftID, AssignedUsers: []models.UserRef{}}

	shift, err := s.shifts.GetWithAssignments(shiftID)
	if err != nil {
		result.Status = AutoFillUnfilled
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result.Reason = "shift not found"
		} else {
			result.Reason = fmt.Sprintf("failed to load shift: %v", err)
		}
		return result
	}

	assigned := len(shift.ActiveAssignments())
	result.Required = shift.RequiredEmployees
	result.AlreadyAssigned = assigned

	if assigned >= shift.RequiredEmployees {
		result.Status = AutoFillAlreadyFilled
		result.Reason = fmt.Sprintf("shift already has %d of %d employees", assigned, shift.RequiredEmployees)
		return result
	}

	candidates, err := s.ranker.RankCandidates(shiftID, nil)
	if err != nil {
		result.Status = AutoFillUnfilled
		result.Reason = fmt.Sprintf("ranking failed: %v", err)
		return result
	}

	if len(candidates) == 0 {
		result.Status = AutoFillUnfilled
		result.Reason = "no suitable candidates found"
		return result
	}

	slots := shift.RequiredEmployees - assigned
	if opts.MaxCandidatesPerShift > 0 && slots > opts.MaxCandidatesPerShift {
		slots = opts.MaxCandidatesPerShift
	}

	bestScore := candidates[0].Score.TotalScore
	admitted := 0
	for _, candidate := range candidates {
		if len(result.AssignedUsers) >= slots {
			break
		}
		if candidate.Score.TotalScore < opts.MinScore {
			// Candidates are sorted descending, nobody further qualifies
			break
		}
		admitted++

		if opts.AutoAssign {
			err := s.assignments.Create(&models.Assignment{
				UserID:  candidate.User.ID,
				ShiftID: shiftID,
				Status:  models.AssignmentStatusAssigned,
				Origin:  models.AssignmentOriginReplacement,
			})
			if err != nil {
				if errors.Is(err, apperrors.ErrAssignmentExists) {
					// Lost the race for this candidate, move on
					s.log.WithShift(shiftID).WithUser(candidate.User.ID).Infof("candidate already assigned, skipping")
					continue
				}
				s.log.WithShift(shiftID).WithUser(candidate.User.ID).Errorf("assignment failed: %v", err)
				continue
			}
		}
		result.AssignedUsers = append(result.AssignedUsers, candidate.User)
	}

	total := assigned + len(result.AssignedUsers)
	switch {
	case total >= shift.RequiredEmployees:
		result.Status = AutoFillFilled
	case len(result.AssignedUsers) > 0:
		result.Status = AutoFillPartial
		result.Reason = fmt.Sprintf("only %d of %d open slots could be filled", len(result.AssignedUsers), slots)
	case admitted > 0:
		result.Status = AutoFillUnfilled
		result.Reason = "admitted candidates were already assigned"
	default:
		result.Status = AutoFillUnfilled
		result.Reason = fmt.Sprintf("score too low: best candidate scored %.1f, minimum is %.1f", bestScore, opts.MinScore)
	}
	return result
}
