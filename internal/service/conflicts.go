package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"guard-roster-backend/internal/database/models"
	apperrors "guard-roster-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConflictService scans a date-ranged window of shifts for staffing and
// compliance problems. It is a read-only pass over roster state and is
// independent of the ranking call chain.
type ConflictService struct {
	shifts          ShiftStore
	clearances      ClearanceStore
	restPeriodHours float64
	maxWeeklyHours  float64
	windowHours     int
}

// NewConflictService creates a new conflict service
func NewConflictService(shifts ShiftStore, clearances ClearanceStore, restPeriodHours, maxWeeklyHours float64, windowHours int) *ConflictService {
	return &ConflictService{
		shifts:          shifts,
		clearances:      clearances,
		restPeriodHours: restPeriodHours,
		maxWeeklyHours:  maxWeeklyHours,
		windowHours:     windowHours,
	}
}

// AnalyzeConflicts detects conflicts across all shifts whose interval
// intersects [start, end], optionally filtered by site and user. The
// weekly-hours check only runs when a specific user is given. Output
// order is unspecified and overlapping windows are not deduplicated.
func (s *ConflictService) AnalyzeConflicts(start, end time.Time, siteID, userID *uuid.UUID) ([]ShiftConflict, error) {
	if !start.Before(end) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	shifts, err := s.shifts.GetInRange(start, end, siteID)
	if err != nil {
		return nil, fmt.Errorf("load shifts: %w", err)
	}

	conflicts := []ShiftConflict{}
	if len(shifts) == 0 {
		return conflicts, nil
	}

	clearancesBySite := map[uuid.UUID]map[uuid.UUID]*models.ObjectClearance{}

	userShifts := map[uuid.UUID][]*models.Shift{}
	userRefs := map[uuid.UUID]models.UserRef{}

	for i := range shifts {
		shift := &shifts[i]
		if shift.Status == models.ShiftStatusCancelled {
			continue
		}

		active := shift.ActiveAssignments()

		relevant := userID == nil
		for j := range active {
			if userID != nil && active[j].UserID == *userID {
				relevant = true
			}
			userShifts[active[j].UserID] = append(userShifts[active[j].UserID], shift)
			userRefs[active[j].UserID] = active[j].User.Ref()
		}
		if !relevant {
			continue
		}

		conflicts = append(conflicts, s.staffingConflicts(shift, active)...)

		siteClearances, err := s.siteClearances(clearancesBySite, shift.SiteID)
		if err != nil {
			return nil, err
		}
		for j := range active {
			if userID != nil && active[j].UserID != *userID {
				continue
			}
			conflicts = append(conflicts, s.assigneeConflicts(shift, &active[j], siteClearances)...)
		}
	}

	for uid, owned := range userShifts {
		if userID != nil && uid != *userID {
			continue
		}
		ref := userRefs[uid]
		conflicts = append(conflicts, s.sequenceConflicts(ref, owned)...)
		if userID != nil {
			conflicts = append(conflicts, s.weeklyHoursConflicts(ref, owned)...)
		}
	}

	// CONSECUTIVE_DAYS_EXCEEDED is a declared conflict type with no
	// detection routine: no trigger threshold is defined for it yet.

	return conflicts, nil
}

// GetShiftConflicts analyzes a window around one shift. The window spans
// the configured number of hours before the shift start and after the
// shift end, so sequence conflicts with neighboring shifts are caught.
func (s *ConflictService) GetShiftConflicts(shiftID uuid.UUID) ([]ShiftConflict, error) {
	shift, err := s.shifts.GetWithAssignments(shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("load shift: %w", err)
	}

	window := time.Duration(s.windowHours) * time.Hour
	return s.AnalyzeConflicts(shift.StartTime.Add(-window), shift.EndTime.Add(window), nil, nil)
}

// staffingConflicts checks headcount against the shift's requirement
func (s *ConflictService) staffingConflicts(shift *models.Shift, active []models.Assignment) []ShiftConflict {
	assigned := len(active)
	required := shift.RequiredEmployees

	switch {
	case assigned == 0 && required > 0:
		return []ShiftConflict{{
			Type:        ConflictUnassigned,
			Severity:    ConflictSeverityCritical,
			ShiftID:     shift.ID,
			SiteID:      shift.SiteID,
			Description: fmt.Sprintf("shift has no assignments (0/%d)", required),
			Details:     map[string]interface{}{"assigned": 0, "required": required},
		}}
	case assigned < required:
		severity := ConflictSeverityHigh
		if assigned < shift.Site.MinimumStaff {
			severity = ConflictSeverityCritical
		}
		return []ShiftConflict{{
			Type:        ConflictUnderstaffed,
			Severity:    severity,
			ShiftID:     shift.ID,
			SiteID:      shift.SiteID,
			Description: fmt.Sprintf("shift is understaffed (%d/%d)", assigned, required),
			Details:     map[string]interface{}{"assigned": assigned, "required": required},
		}}
	case assigned > required:
		return []ShiftConflict{{
			Type:        ConflictOverstaffed,
			Severity:    ConflictSeverityLow,
			ShiftID:     shift.ID,
			SiteID:      shift.SiteID,
			Description: fmt.Sprintf("shift is overstaffed (%d/%d)", assigned, required),
			Details:     map[string]interface{}{"assigned": assigned, "required": required},
		}}
	}
	return nil
}

// assigneeConflicts checks one assigned user's qualifications and clearance
func (s *ConflictService) assigneeConflicts(shift *models.Shift, assignment *models.Assignment, siteClearances map[uuid.UUID]*models.ObjectClearance) []ShiftConflict {
	var conflicts []ShiftConflict
	user := assignment.User
	ref := user.Ref()

	if missing := user.MissingQualifications(shift.RequiredQualifications); len(missing) > 0 {
		conflicts = append(conflicts, ShiftConflict{
			Type:        ConflictMissingQualifications,
			Severity:    ConflictSeverityHigh,
			ShiftID:     shift.ID,
			SiteID:      shift.SiteID,
			User:        &ref,
			Description: fmt.Sprintf("%s lacks required qualifications: %s", user.FullName(), strings.Join(missing, ", ")),
			Details:     map[string]interface{}{"missing_qualifications": missing},
		})
	}

	clearance := siteClearances[assignment.UserID]
	if clearance == nil || !clearance.IsValidAt(shift.StartTime) {
		conflicts = append(conflicts, ShiftConflict{
			Type:        ConflictNoClearance,
			Severity:    ConflictSeverityCritical,
			ShiftID:     shift.ID,
			SiteID:      shift.SiteID,
			User:        &ref,
			Description: fmt.Sprintf("%s has no active clearance for this site", user.FullName()),
		})
	}

	return conflicts
}

// sequenceConflicts checks one user's shifts, sorted by start time, for
// double bookings and insufficient rest between consecutive shifts.
func (s *ConflictService) sequenceConflicts(user models.UserRef, owned []*models.Shift) []ShiftConflict {
	var conflicts []ShiftConflict

	sort.Slice(owned, func(i, j int) bool {
		return owned[i].StartTime.Before(owned[j].StartTime)
	})

	for i := 0; i < len(owned); i++ {
		for j := i + 1; j < len(owned) && owned[j].StartTime.Before(owned[i].EndTime); j++ {
			conflicts = append(conflicts, ShiftConflict{
				Type:        ConflictDoubleBooking,
				Severity:    ConflictSeverityHigh,
				ShiftID:     owned[i].ID,
				SiteID:      owned[i].SiteID,
				User:        &user,
				Description: fmt.Sprintf("%s is booked on two overlapping shifts", user.Name),
				Details:     map[string]interface{}{"other_shift_id": owned[j].ID.String()},
			})
		}
	}

	for i := 0; i+1 < len(owned); i++ {
		gap := owned[i+1].StartTime.Sub(owned[i].EndTime).Hours()
		if gap >= 0 && gap < s.restPeriodHours {
			conflicts = append(conflicts, ShiftConflict{
				Type:        ConflictRestTimeViolation,
				Severity:    ConflictSeverityMedium,
				ShiftID:     owned[i+1].ID,
				SiteID:      owned[i+1].SiteID,
				User:        &user,
				Description: fmt.Sprintf("%s has only %.1fh rest before this shift (%.0fh required)", user.Name, gap, s.restPeriodHours),
				Details:     map[string]interface{}{"rest_hours": gap, "required_rest_hours": s.restPeriodHours},
			})
		}
	}

	return conflicts
}

// weeklyHoursConflicts buckets one user's shifts by ISO week and flags
// weeks whose summed shift hours exceed the cap. Only evaluated when the
// analysis is scoped to a specific user.
func (s *ConflictService) weeklyHoursConflicts(user models.UserRef, owned []*models.Shift) []ShiftConflict {
	type weekBucket struct {
		hours float64
		shift *models.Shift
	}
	weeks := map[string]*weekBucket{}

	for _, shift := range owned {
		year, week := shift.StartTime.ISOWeek()
		key := fmt.Sprintf("%d-W%02d", year, week)
		bucket := weeks[key]
		if bucket == nil {
			bucket = &weekBucket{}
			weeks[key] = bucket
		}
		bucket.hours += shift.DurationHours()
		bucket.shift = shift
	}

	var conflicts []ShiftConflict
	for key, bucket := range weeks {
		if bucket.hours > s.maxWeeklyHours {
			conflicts = append(conflicts, ShiftConflict{
				Type:        ConflictWeeklyHoursExceeded,
				Severity:    ConflictSeverityHigh,
				ShiftID:     bucket.shift.ID,
				SiteID:      bucket.shift.SiteID,
				User:        &user,
				Description: fmt.Sprintf("%s works %.1fh in week %s, above the %.0fh cap", user.Name, bucket.hours, key, s.maxWeeklyHours),
				Details:     map[string]interface{}{"week": key, "hours": bucket.hours},
			})
		}
	}
	return conflicts
}

// siteClearances lazily loads and caches all clearances for a site,
// keyed by user, so per-assignee checks stay one query per site.
func (s *ConflictService) siteClearances(cache map[uuid.UUID]map[uuid.UUID]*models.ObjectClearance, siteID uuid.UUID) (map[uuid.UUID]*models.ObjectClearance, error) {
	if byUser, ok := cache[siteID]; ok {
		return byUser, nil
	}
	clearances, err := s.clearances.GetBySiteID(siteID)
	if err != nil {
		return nil, fmt.Errorf("load site clearances: %w", err)
	}
	byUser := make(map[uuid.UUID]*models.ObjectClearance, len(clearances))
	for i := range clearances {
		byUser[clearances[i].UserID] = &clearances[i]
	}
	cache[siteID] = byUser
	return byUser, nil
}
