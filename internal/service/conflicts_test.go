package service_test

import (
	"testing"
	"time"

	"guard-roster-backend/internal/database/models"
	apperrors "guard-roster-backend/internal/errors"
	"guard-roster-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testMaxWeeklyHours      = 48.0
	testConflictWindowHours = 48
)

func newConflictService(roster *fakeRoster) *service.ConflictService {
	return service.NewConflictService(roster, roster, testRestPeriodHours, testMaxWeeklyHours, testConflictWindowHours)
}

func analysisWindow() (time.Time, time.Time) {
	return time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
}

func conflictsOfType(conflicts []service.ShiftConflict, typ service.ConflictType) []service.ShiftConflict {
	var out []service.ShiftConflict
	for _, c := range conflicts {
		if c.Type == typ {
			out = append(out, c)
		}
	}
	return out
}

func TestAnalyzeConflicts_InvalidRange(t *testing.T) {
	roster := newFakeRoster()
	start, end := analysisWindow()

	_, err := newConflictService(roster).AnalyzeConflicts(end, start, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTimeRange)

	_, err = newConflictService(roster).AnalyzeConflicts(start, start, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTimeRange)
}

func TestAnalyzeConflicts_EmptyRoster(t *testing.T) {
	roster := newFakeRoster()
	start, end := analysisWindow()

	conflicts, err := newConflictService(roster).AnalyzeConflicts(start, end, nil, nil)

	require.NoError(t, err)
	assert.NotNil(t, conflicts)
	assert.Empty(t, conflicts)
}

func TestAnalyzeConflicts_Unassigned(t *testing.T) {
	roster := newFakeRoster()
	site := roster.addSite(1)
	shift := roster.addShift(site, time.Date(2025, 5, 5, 8, 0, 0, 0, time.UTC), 8, 2)
	start, end := analysisWindow()

	conflicts, err := newConflictService(roster).AnalyzeConflicts(start, end, nil, nil)

	require.NoError(t, err)
	found := conflictsOfType(conflicts, service.ConflictUnassigned)
	require.Len(t, found, 1)
	assert.Equal(t, service.ConflictSeverityCritical, found[0].Severity)
	assert.Equal(t, shift.ID, found[0].ShiftID)
	assert.Contains(t, found[0].Description, "0/2")
}

func TestAnalyzeConflicts_UnderstaffedSeverities(t *testing.T) {
	// 1 of 3 assigned with minimum staff 2: below site minimum is critical
	roster := newFakeRoster()
	site := roster.addSite(2)
	shift := roster.addShift(site, time.Date(2025, 5, 5, 8, 0, 0, 0, time.UTC), 8, 3)
	guard := roster.addEmployee("Aldo", "Lone")
	roster.assign(guard, shift, models.AssignmentOriginPlanned)
	roster.addClearance(guard, site, models.ClearanceStatusActive, nil)
	start, end := analysisWindow()

	svc := newConflictService(roster)
	conflicts, err := svc.AnalyzeConflicts(start, end, nil, nil)
	require.NoError(t, err)

	found := conflictsOfType(conflicts, service.ConflictUnderstaffed)
	require.Len(t, found, 1)
	assert.Equal(t, service.ConflictSeverityCritical, found[0].Severity)
	assert.Contains(t, found[0].Description, "1/3")
	assert.Equal(t, 1, found[0].Details["assigned"])
	assert.Equal(t, 3, found[0].Details["required"])

	// A second guard clears the site minimum: severity drops to high
	second := roster.addEmployee("Bodo", "Second")
	roster.assign(second, shift, models.AssignmentOriginPlanned)
	roster.addClearance(second, site, models.ClearanceStatusActive, nil)

	conflicts, err = svc.AnalyzeConflicts(start, end, nil, nil)
	require.NoError(t, err)
	found = conflictsOfType(conflicts, service.ConflictUnderstaffed)
	require.Len(t, found, 1)
	assert.Equal(t, service.ConflictSeverityHigh, found[0].Severity)
	assert.Contains(t, found[0].Description, "2/3")
}

func TestAnalyzeConflicts_Overstaffed(t *testing.T) {
	roster := newFakeRoster()
	site := roster.addSite(1)
	shift := roster.addShift(site, time.Date(2025, 5, 5, 8, 0, 0, 0, time.UTC), 8, 2)
	for _, name := range []string{"Cara", "Doro", "Egon"} {
		guard := roster.addEmployee(name, "Crowd")
		roster.assign(guard, shift, models.AssignmentOriginPlanned)
		roster.addClearance(guard, site, models.ClearanceStatusActive, nil)
	}
	start, end := analysisWindow()

	conflicts, err := newConflictService(roster).AnalyzeConflicts(start, end, nil, nil)

	require.NoError(t, err)
	found := conflictsOfType(conflicts, service.ConflictOverstaffed)
	require.Len(t, found, 1)
	assert.Equal(t, service.ConflictSeverityLow, found[0].Severity)
	assert.Contains(t, found[0].Description, "3/2")
}

func TestAnalyzeConflicts_MissingQualificationsAndClearance(t *testing.T) {
	roster := newFakeRoster()
	site := roster.addSite(1)
	shift := roster.addShift(site, time.Date(2025, 5, 5, 8, 0, 0, 0, time.UTC), 8, 1, "firearms")

	guard := roster.addEmployee("Falk", "Unqualified")
	roster.assign(guard, shift, models.AssignmentOriginPlanned)
	start, end := analysisWindow()

	conflicts, err := newConflictService(roster).AnalyzeConflicts(start, end, nil, nil)
	require.NoError(t, err)

	quals := conflictsOfType(conflicts, service.ConflictMissingQualifications)
	require.Len(t, quals, 1)
	assert.Equal(t, service.ConflictSeverityHigh, quals[0].Severity)
	require.NotNil(t, quals[0].User)
	assert.Equal(t, guard.ID, quals[0].User.ID)

	clearance := conflictsOfType(conflicts, service.ConflictNoClearance)
	require.Len(t, clearance, 1)
	assert.Equal(t, service.ConflictSeverityCritical, clearance[0].Severity)
}

func TestAnalyzeConflicts_DoubleBooking(t *testing.T) {
	roster := newFakeRoster()
	site := roster.addSite(1)
	first := roster.addShift(site, time.Date(2025, 5, 5, 8, 0, 0, 0, time.UTC), 8, 1)
	overlapping := roster.addShift(site, time.Date(2025, 5, 5, 12, 0, 0, 0, time.UTC), 8, 1)

	guard := roster.addEmployee("Gerd", "Doubled")
	roster.assign(guard, first, models.AssignmentOriginPlanned)
	roster.assign(guard, overlapping, models.AssignmentOriginPlanned)
	roster.addClearance(guard, site, models.ClearanceStatusActive, nil)
	start, end := analysisWindow()

	conflicts, err := newConflictService(roster).AnalyzeConflicts(start, end, nil, nil)
	require.NoError(t, err)

	found := conflictsOfType(conflicts, service.ConflictDoubleBooking)
	require.Len(t, found, 1)
	assert.Equal(t, service.ConflictSeverityHigh, found[0].Severity)
	require.NotNil(t, found[0].User)
	assert.Equal(t, guard.ID, found[0].User.ID)
	assert.Equal(t, overlapping.ID.String(), found[0].Details["other_shift_id"])
}

func TestAnalyzeConflicts_RestTimeViolation(t *testing.T) {
	roster := newFakeRoster()
	site := roster.addSite(1)
	evening := roster.addShift(site, time.Date(2025, 5, 5, 14, 0, 0, 0, time.UTC), 8, 1)
	// Next shift starts 8h after the previous one ends, below the 11h rest
	early := roster.addShift(site, time.Date(2025, 5, 6, 6, 0, 0, 0, time.UTC), 8, 1)

	guard := roster.addEmployee("Hilde", "Short")
	roster.assign(guard, evening, models.AssignmentOriginPlanned)
	roster.assign(guard, early, models.AssignmentOriginPlanned)
	roster.addClearance(guard, site, models.ClearanceStatusActive, nil)
	start, end := analysisWindow()

	conflicts, err := newConflictService(roster).AnalyzeConflicts(start, end, nil, nil)
	require.NoError(t, err)

	found := conflictsOfType(conflicts, service.ConflictRestTimeViolation)
	require.Len(t, found, 1)
	assert.Equal(t, service.ConflictSeverityMedium, found[0].Severity)
	assert.Equal(t, early.ID, found[0].ShiftID)
	assert.InDelta(t, 8.0, found[0].Details["rest_hours"].(float64), 0.01)
	assert.Empty(t, conflictsOfType(conflicts, service.ConflictDoubleBooking))
}

func TestAnalyzeConflicts_WeeklyHoursOnlyForUserScope(t *testing.T) {
	roster := newFakeRoster()
	site := roster.addSite(1)
	// Two 30h shifts in one ISO week, separated by enough rest
	monday := roster.addShift(site, time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC), 30, 1)
	thursday := roster.addShift(site, time.Date(2025, 5, 8, 0, 0, 0, 0, time.UTC), 30, 1)

	guard := roster.addEmployee("Ivo", "Marathon")
	roster.assign(guard, monday, models.AssignmentOriginPlanned)
	roster.assign(guard, thursday, models.AssignmentOriginPlanned)
	roster.addClearance(guard, site, models.ClearanceStatusActive, nil)
	start, end := analysisWindow()
	svc := newConflictService(roster)

	unscoped, err := svc.AnalyzeConflicts(start, end, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, conflictsOfType(unscoped, service.ConflictWeeklyHoursExceeded))

	scoped, err := svc.AnalyzeConflicts(start, end, nil, &guard.ID)
	require.NoError(t, err)
	found := conflictsOfType(scoped, service.ConflictWeeklyHoursExceeded)
	require.Len(t, found, 1)
	assert.Equal(t, service.ConflictSeverityHigh, found[0].Severity)
	assert.InDelta(t, 60.0, found[0].Details["hours"].(float64), 0.01)
}

func TestAnalyzeConflicts_SiteFilter(t *testing.T) {
	roster := newFakeRoster()
	siteA := roster.addSite(1)
	siteB := roster.addSite(1)
	roster.addShift(siteA, time.Date(2025, 5, 5, 8, 0, 0, 0, time.UTC), 8, 1)
	roster.addShift(siteB, time.Date(2025, 5, 5, 8, 0, 0, 0, time.UTC), 8, 1)
	start, end := analysisWindow()

	conflicts, err := newConflictService(roster).AnalyzeConflicts(start, end, &siteA.ID, nil)

	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, siteA.ID, conflicts[0].SiteID)
}

func TestAnalyzeConflicts_SkipsCancelledShifts(t *testing.T) {
	roster := newFakeRoster()
	site := roster.addSite(1)
	shift := roster.addShift(site, time.Date(2025, 5, 5, 8, 0, 0, 0, time.UTC), 8, 2)
	shift.Status = models.ShiftStatusCancelled
	start, end := analysisWindow()

	conflicts, err := newConflictService(roster).AnalyzeConflicts(start, end, nil, nil)

	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestGetShiftConflicts(t *testing.T) {
	roster := newFakeRoster()
	site := roster.addSite(1)
	shift := roster.addShift(site, time.Date(2025, 5, 5, 8, 0, 0, 0, time.UTC), 8, 1)
	// Neighboring unassigned shift inside the 48h window around the shift
	neighbor := roster.addShift(site, time.Date(2025, 5, 6, 8, 0, 0, 0, time.UTC), 8, 1)

	guard := roster.addEmployee("Jule", "Settled")
	roster.assign(guard, shift, models.AssignmentOriginPlanned)
	roster.addClearance(guard, site, models.ClearanceStatusActive, nil)

	conflicts, err := newConflictService(roster).GetShiftConflicts(shift.ID)
	require.NoError(t, err)

	unassigned := conflictsOfType(conflicts, service.ConflictUnassigned)
	require.Len(t, unassigned, 1)
	assert.Equal(t, neighbor.ID, unassigned[0].ShiftID)
}

func TestGetShiftConflicts_UnknownShift(t *testing.T) {
	roster := newFakeRoster()

	_, err := newConflictService(roster).GetShiftConflicts(uuid.New())

	assert.ErrorIs(t, err, apperrors.ErrShiftNotFound)
}
