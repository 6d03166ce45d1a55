package repository

import (
	"time"

	"guard-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// SiteRepositoryInterface defines the interface for site repository operations
type SiteRepositoryInterface interface {
	Create(site *models.Site) error
	GetByID(id uuid.UUID) (*models.Site, error)
	GetAll(limit, offset int) ([]models.Site, int64, error)
	Update(site *models.Site) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByIDs(ids []uuid.UUID) ([]models.User, error)
	GetActiveEmployees() ([]models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// ShiftRepositoryInterface defines the interface for shift repository operations
type ShiftRepositoryInterface interface {
	Create(shift *models.Shift) error
	GetByID(id uuid.UUID) (*models.Shift, error)
	GetWithAssignments(id uuid.UUID) (*models.Shift, error)
	GetInRange(start, end time.Time, siteID *uuid.UUID) ([]models.Shift, error)
	GetByUserInRange(userID uuid.UUID, start, end time.Time) ([]models.Shift, error)
	GetBySiteID(siteID uuid.UUID, limit, offset int) ([]models.Shift, int64, error)
	Update(shift *models.Shift) error
	Delete(id uuid.UUID) error
}

// AssignmentRepositoryInterface defines the interface for assignment repository operations
type AssignmentRepositoryInterface interface {
	Create(assignment *models.Assignment) error
	GetByID(id uuid.UUID) (*models.Assignment, error)
	GetByShiftID(shiftID uuid.UUID) ([]models.Assignment, error)
	GetActiveByShiftID(shiftID uuid.UUID) ([]models.Assignment, error)
	GetActiveByUserInRange(userID uuid.UUID, start, end time.Time) ([]models.Assignment, error)
	Update(assignment *models.Assignment) error
	Delete(id uuid.UUID) error
}

// AbsenceRepositoryInterface defines the interface for absence repository operations
type AbsenceRepositoryInterface interface {
	Create(absence *models.Absence) error
	GetByID(id uuid.UUID) (*models.Absence, error)
	GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Absence, int64, error)
	GetOverlapping(start, end time.Time, statuses []models.AbsenceStatus) ([]models.Absence, error)
	GetOverlappingForUser(userID uuid.UUID, start, end time.Time, statuses []models.AbsenceStatus) ([]models.Absence, error)
	Update(absence *models.Absence) error
	Delete(id uuid.UUID) error
}

// ClearanceRepositoryInterface defines the interface for clearance repository operations
type ClearanceRepositoryInterface interface {
	Create(clearance *models.ObjectClearance) error
	GetByID(id uuid.UUID) (*models.ObjectClearance, error)
	GetByUserAndSite(userID, siteID uuid.UUID) (*models.ObjectClearance, error)
	GetBySiteID(siteID uuid.UUID) ([]models.ObjectClearance, error)
	GetByUserID(userID uuid.UUID) ([]models.ObjectClearance, error)
	Update(clearance *models.ObjectClearance) error
	Delete(id uuid.UUID) error
}
