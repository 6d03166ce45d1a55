package service

import (
	"time"

	"guard-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

// The staffing core reads roster state through these narrow store
// interfaces, satisfied by the concrete repositories in
// internal/repository. Keeping them small lets the scoring, ranking,
// conflict and auto-fill logic run against in-memory fakes in tests.

// ShiftStore provides read access to shifts and their assignments
type ShiftStore interface {
	GetWithAssignments(id uuid.UUID) (*models.Shift, error)
	GetInRange(start, end time.Time, siteID *uuid.UUID) ([]models.Shift, error)
	GetByUserInRange(userID uuid.UUID, start, end time.Time) ([]models.Shift, error)
}

// AssignmentStore provides access to assignments. Create is the only
// mutation the staffing core performs, and only auto-fill uses it.
type AssignmentStore interface {
	Create(assignment *models.Assignment) error
	GetActiveByShiftID(shiftID uuid.UUID) ([]models.Assignment, error)
	GetActiveByUserInRange(userID uuid.UUID, start, end time.Time) ([]models.Assignment, error)
}

// AbsenceStore provides read access to absence records
type AbsenceStore interface {
	GetOverlapping(start, end time.Time, statuses []models.AbsenceStatus) ([]models.Absence, error)
	GetOverlappingForUser(userID uuid.UUID, start, end time.Time, statuses []models.AbsenceStatus) ([]models.Absence, error)
}

// ClearanceStore provides read access to site clearances
type ClearanceStore interface {
	GetByUserAndSite(userID, siteID uuid.UUID) (*models.ObjectClearance, error)
	GetBySiteID(siteID uuid.UUID) ([]models.ObjectClearance, error)
}

// UserStore provides read access to the workforce
type UserStore interface {
	GetByID(id uuid.UUID) (*models.User, error)
	GetActiveEmployees() ([]models.User, error)
}

// TeamAverages carries the team-wide undesirable-load aggregates the
// fairness sub-score compares against
type TeamAverages struct {
	NightShifts  float64 `json:"night_shifts"`
	Replacements float64 `json:"replacements"`
}

// TeamStatsProvider supplies team averages for the calendar month
// containing ref. Injected so the scoring engine stays a pure function
// of its explicit inputs.
type TeamStatsProvider interface {
	TeamAverages(ref time.Time) (TeamAverages, error)
}
