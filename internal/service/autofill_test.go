package service_test

import (
	"testing"
	"time"

	"guard-roster-backend/internal/database/models"
	"guard-roster-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAutoFill(roster *fakeRoster) *service.AutoFillService {
	return service.NewAutoFillService(roster, roster, newRanker(roster), 0)
}

func persistedAssignments(roster *fakeRoster, shiftID uuid.UUID) []models.Assignment {
	roster.mu.Lock()
	defer roster.mu.Unlock()
	var out []models.Assignment
	for _, a := range roster.assignments {
		if a.ShiftID == shiftID {
			out = append(out, a)
		}
	}
	return out
}

func TestAutoFill_FillsOpenSlot(t *testing.T) {
	roster := newFakeRoster()
	site := roster.addSite(1)
	shift := roster.addShift(site, time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), 8, 1)
	guard := roster.addEmployee("Nora", "Ready")
	roster.addClearance(guard, site, models.ClearanceStatusActive, nil)

	results, err := newAutoFill(roster).AutoFill([]uuid.UUID{shift.ID}, service.AutoFillOptions{AutoAssign: true})

	require.NoError(t, err)
	require.Len(t, results, 1)
	result := results[0]
	assert.Equal(t, service.AutoFillFilled, result.Status)
	assert.Equal(t, shift.ID, result.ShiftID)
	assert.Equal(t, 1, result.Required)
	assert.Equal(t, 0, result.AlreadyAssigned)
	require.Len(t, result.AssignedUsers, 1)
	assert.Equal(t, guard.ID, result.AssignedUsers[0].ID)

	persisted := persistedAssignments(roster, shift.ID)
	require.Len(t, persisted, 1)
	assert.Equal(t, guard.ID, persisted[0].UserID)
	assert.Equal(t, models.AssignmentStatusAssigned, persisted[0].Status)
	assert.Equal(t, models.AssignmentOriginReplacement, persisted[0].Origin)
}

func TestAutoFill_RejectsBelowMinScore(t *testing.T) {
	roster := newFakeRoster()
	site := roster.addSite(1)
	shift := roster.addShift(site, time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), 8, 1)
	guard := roster.addEmployee("Olga", "Idle")
	roster.addClearance(guard, site, models.ClearanceStatusActive, nil)

	// An idle guard with no stated preferences scores in the sixties,
	// below the raised threshold.
	results, err := newAutoFill(roster).AutoFill([]uuid.UUID{shift.ID}, service.AutoFillOptions{
		AutoAssign: true,
		MinScore:   70,
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	result := results[0]
	assert.Equal(t, service.AutoFillUnfilled, result.Status)
	assert.Contains(t, result.Reason, "score too low")
	assert.Contains(t, result.Reason, "minimum is 70.0")
	assert.Empty(t, result.AssignedUsers)
	assert.Empty(t, persistedAssignments(roster, shift.ID))
}

func TestAutoFill_AlreadyFilled(t *testing.T) {
	roster := newFakeRoster()
	site := roster.addSite(1)
	shift := roster.addShift(site, time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), 8, 1)
	guard := roster.addEmployee("Paula", "Settled")
	roster.assign(guard, shift, models.AssignmentOriginPlanned)

	results, err := newAutoFill(roster).AutoFill([]uuid.UUID{shift.ID}, service.AutoFillOptions{AutoAssign: true})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, service.AutoFillAlreadyFilled, results[0].Status)
	assert.Equal(t, 1, results[0].AlreadyAssigned)
	assert.Contains(t, results[0].Reason, "already has 1 of 1")
}

func TestAutoFill_PartialWhenCandidatesRunOut(t *testing.T) {
	roster := newFakeRoster()
	site := roster.addSite(1)
	shift := roster.addShift(site, time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), 8, 2)
	guard := roster.addEmployee("Rita", "Only")
	roster.addClearance(guard, site, models.ClearanceStatusActive, nil)

	results, err := newAutoFill(roster).AutoFill([]uuid.UUID{shift.ID}, service.AutoFillOptions{AutoAssign: true})

	require.NoError(t, err)
	require.Len(t, results, 1)
	result := results[0]
	assert.Equal(t, service.AutoFillPartial, result.Status)
	assert.Contains(t, result.Reason, "only 1 of 2 open slots")
	require.Len(t, result.AssignedUsers, 1)
}

func TestAutoFill_MaxCandidatesPerShiftCapsSlots(t *testing.T) {
	roster := newFakeRoster()
	site := roster.addSite(1)
	shift := roster.addShift(site, time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), 8, 3)
	for _, name := range []string{"Sven", "Tina"} {
		guard := roster.addEmployee(name, "Pool")
		roster.addClearance(guard, site, models.ClearanceStatusActive, nil)
	}

	results, err := newAutoFill(roster).AutoFill([]uuid.UUID{shift.ID}, service.AutoFillOptions{
		AutoAssign:            true,
		MaxCandidatesPerShift: 1,
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, service.AutoFillPartial, results[0].Status)
	assert.Len(t, results[0].AssignedUsers, 1)
	assert.Len(t, persistedAssignments(roster, shift.ID), 1)
}

func TestAutoFill_SkipsCandidateLostToRace(t *testing.T) {
	roster := newFakeRoster()
	site := roster.addSite(1)
	shift := roster.addShift(site, time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), 8, 1)
	guard := roster.addEmployee("Udo", "Raced")
	roster.addClearance(guard, site, models.ClearanceStatusActive, nil)
	// A cancelled assignment does not exclude the guard from ranking, but
	// the unique (user, shift) pair still rejects the insert.
	a := roster.assign(guard, shift, models.AssignmentOriginPlanned)
	a.Status = models.AssignmentStatusCancelled

	results, err := newAutoFill(roster).AutoFill([]uuid.UUID{shift.ID}, service.AutoFillOptions{AutoAssign: true})

	require.NoError(t, err)
	require.Len(t, results, 1)
	result := results[0]
	assert.Equal(t, service.AutoFillUnfilled, result.Status)
	assert.Equal(t, "admitted candidates were already assigned", result.Reason)
	assert.Empty(t, result.AssignedUsers)
}

func TestAutoFill_UnknownShift(t *testing.T) {
	roster := newFakeRoster()

	results, err := newAutoFill(roster).AutoFill([]uuid.UUID{uuid.New()}, service.AutoFillOptions{})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, service.AutoFillUnfilled, results[0].Status)
	assert.Equal(t, "shift not found", results[0].Reason)
}

func TestAutoFill_NoCandidates(t *testing.T) {
	roster := newFakeRoster()
	site := roster.addSite(1)
	shift := roster.addShift(site, time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), 8, 1)

	results, err := newAutoFill(roster).AutoFill([]uuid.UUID{shift.ID}, service.AutoFillOptions{AutoAssign: true})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, service.AutoFillUnfilled, results[0].Status)
	assert.Equal(t, "no suitable candidates found", results[0].Reason)
}

func TestPreviewAutoFill_DoesNotPersist(t *testing.T) {
	roster := newFakeRoster()
	site := roster.addSite(1)
	shift := roster.addShift(site, time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC), 8, 1)
	guard := roster.addEmployee("Vera", "Preview")
	roster.addClearance(guard, site, models.ClearanceStatusActive, nil)

	// AutoAssign is forced off for previews even when the caller sets it
	results, err := newAutoFill(roster).PreviewAutoFill([]uuid.UUID{shift.ID}, service.AutoFillOptions{AutoAssign: true})

	require.NoError(t, err)
	require.Len(t, results, 1)
	result := results[0]
	assert.Equal(t, service.AutoFillFilled, result.Status)
	require.Len(t, result.AssignedUsers, 1)
	assert.Equal(t, guard.ID, result.AssignedUsers[0].ID)
	assert.Empty(t, persistedAssignments(roster, shift.ID))
}
