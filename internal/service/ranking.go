package service

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"guard-roster-backend/internal/database/models"
	"guard-roster-backend/internal/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RankingService composes the availability gate and the scoring engine
// over the full candidate pool for a shift and returns a descending-score
// ordered list of replacement candidates.
type RankingService struct {
	shifts ShiftStore
	users  UserStore
	gate   *AvailabilityService
	scorer *ScoringService
	log    *logger.Logger
}

// NewRankingService creates a new ranking service
func NewRankingService(shifts ShiftStore, users UserStore, gate *AvailabilityService, scorer *ScoringService) *RankingService {
	return &RankingService{
		shifts: shifts,
		users:  users,
		gate:   gate,
		scorer: scorer,
		log:    logger.WithComponent("ranking"),
	}
}

// RankCandidates scores every eligible user for the shift and returns the
// candidates sorted by descending total score. An unknown shift yields an
// empty list. Candidates are scored concurrently; a failure while scoring
// one candidate degrades that entry to a zero score instead of aborting
// the ranking.
func (s *RankingService) RankCandidates(shiftID uuid.UUID, absentUserID *uuid.UUID) ([]ReplacementCandidate, error) {
	shift, err := s.shifts.GetWithAssignments(shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.log.WithShift(shiftID).Warnf("ranking requested for unknown shift")
			return []ReplacementCandidate{}, nil
		}
		return nil, fmt.Errorf("load shift: %w", err)
	}

	excluded, err := s.gate.ExcludedUsers(shift, absentUserID)
	if err != nil {
		return nil, err
	}

	pool, err := s.users.GetActiveEmployees()
	if err != nil {
		return nil, fmt.Errorf("load candidate pool: %w", err)
	}

	eligible := make([]models.User, 0, len(pool))
	for i := range pool {
		if _, skip := excluded[pool[i].ID]; !skip {
			eligible = append(eligible, pool[i])
		}
	}

	candidates := make([]ReplacementCandidate, len(eligible))
	var wg sync.WaitGroup
	for i := range eligible {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			candidates[idx] = s.evaluate(&eligible[idx], shift)
		}(i)
	}
	wg.Wait()

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score.TotalScore > candidates[j].Score.TotalScore
	})

	return candidates, nil
}

// evaluate builds the full ranked entry for one candidate: score, site
// access, qualification gap and the warnings synthesized at this layer.
func (s *RankingService) evaluate(user *models.User, shift *models.Shift) ReplacementCandidate {
	candidate := ReplacementCandidate{
		User:                  user.Ref(),
		MissingQualifications: user.MissingQualifications(shift.RequiredQualifications),
	}

	score, err := s.scorer.Score(user.ID, shift)
	if err != nil {
		s.log.WithShift(shift.ID).WithUser(user.ID).Errorf("scoring failed: %v", err)
		candidate.Score = FallbackScore(err)
	} else {
		candidate.Score = *score
	}

	access, err := s.gate.SiteAccess(user.ID, shift)
	if err != nil {
		s.log.WithShift(shift.ID).WithUser(user.ID).Errorf("site access lookup failed: %v", err)
		access = SiteAccessNotCleared
	}
	candidate.SiteAccess = access

	// Warnings synthesized by the ranker are prepended so they lead the
	// merged list shown to planners.
	var ranked []StaffingWarning
	if pending, err := s.gate.PendingAbsences(user.ID, shift); err != nil {
		s.log.WithShift(shift.ID).WithUser(user.ID).Errorf("pending absence lookup failed: %v", err)
	} else if len(pending) > 0 {
		ranked = append(ranked, StaffingWarning{
			Type:     WarningPendingAbsenceRequest,
			Severity: WarningSeverityWarning,
			Message:  fmt.Sprintf("%s has an undecided absence request overlapping this shift", user.FullName()),
		})
	}
	if access != SiteAccessCleared {
		ranked = append(ranked, StaffingWarning{
			Type:     WarningMissingClearance,
			Severity: WarningSeverityWarning,
			Message:  fmt.Sprintf("%s holds no active clearance for this site", user.FullName()),
		})
	}

	candidate.Warnings = append(ranked, candidate.Score.Warnings...)
	return candidate
}
