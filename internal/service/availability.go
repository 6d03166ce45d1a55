package service

import (
	"errors"
	"fmt"

	"guard-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExclusionReason explains why the availability gate excluded a user
type ExclusionReason string

const (
	ExclusionAlreadyAssigned ExclusionReason = "already_assigned"
	ExclusionApprovedAbsence ExclusionReason = "approved_absence"
	ExclusionReportedAbsent  ExclusionReason = "reported_absent"
)

// AvailabilityService is the availability/clearance gate. It classifies
// users as excluded or included for a shift and computes site-access
// status and qualification completeness. It does no scoring.
type AvailabilityService struct {
	assignments AssignmentStore
	absences    AbsenceStore
	clearances  ClearanceStore
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(assignments AssignmentStore, absences AbsenceStore, clearances ClearanceStore) *AvailabilityService {
	return &AvailabilityService{
		assignments: assignments,
		absences:    absences,
		clearances:  clearances,
	}
}

// ExcludedUsers returns the users barred from candidacy for the shift:
// holders of an active assignment on the shift, users with an approved
// absence overlapping the shift interval, and the explicitly reported
// absent user, if any.
func (s *AvailabilityService) ExcludedUsers(shift *models.Shift, absentUserID *uuid.UUID) (map[uuid.UUID]ExclusionReason, error) {
	excluded := map[uuid.UUID]ExclusionReason{}

	assignments, err := s.assignments.GetActiveByShiftID(shift.ID)
	if err != nil {
		return nil, fmt.Errorf("load shift assignments: %w", err)
	}
	for i := range assignments {
		excluded[assignments[i].UserID] = ExclusionAlreadyAssigned
	}

	absences, err := s.absences.GetOverlapping(shift.StartTime, shift.EndTime,
		[]models.AbsenceStatus{models.AbsenceStatusApproved})
	if err != nil {
		return nil, fmt.Errorf("load overlapping absences: %w", err)
	}
	for i := range absences {
		if _, ok := excluded[absences[i].UserID]; !ok {
			excluded[absences[i].UserID] = ExclusionApprovedAbsence
		}
	}

	if absentUserID != nil {
		excluded[*absentUserID] = ExclusionReportedAbsent
	}

	return excluded, nil
}

// SiteAccess classifies a user's clearance for the shift's site at the
// shift start: CLEARED for an active clearance valid at start time,
// NOT_CLEARED when no clearance exists or it is still in training,
// EXPIRED for revoked or lapsed clearances.
func (s *AvailabilityService) SiteAccess(userID uuid.UUID, shift *models.Shift) (SiteAccessStatus, error) {
	clearance, err := s.clearances.GetByUserAndSite(userID, shift.SiteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SiteAccessNotCleared, nil
		}
		return "", fmt.Errorf("load clearance: %w", err)
	}
	return classifyClearance(clearance, shift), nil
}

func classifyClearance(clearance *models.ObjectClearance, shift *models.Shift) SiteAccessStatus {
	switch clearance.Status {
	case models.ClearanceStatusActive:
		if clearance.ValidUntil == nil || !clearance.ValidUntil.Before(shift.StartTime) {
			return SiteAccessCleared
		}
		return SiteAccessExpired
	case models.ClearanceStatusTraining:
		return SiteAccessNotCleared
	default:
		return SiteAccessExpired
	}
}

// PendingAbsences returns a user's not-yet-decided absence requests that
// overlap the shift interval. They do not exclude the user but the ranker
// surfaces them as warnings.
func (s *AvailabilityService) PendingAbsences(userID uuid.UUID, shift *models.Shift) ([]models.Absence, error) {
	return s.absences.GetOverlappingForUser(userID, shift.StartTime, shift.EndTime,
		[]models.AbsenceStatus{models.AbsenceStatusRequested})
}
