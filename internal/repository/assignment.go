package repository

import (
	"errors"
	"time"

	"guard-roster-backend/internal/database/models"
	apperrors "guard-roster-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres SQLSTATE for unique-constraint violations
const uniqueViolation = "23505"

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment. A unique-constraint violation on the
// (user_id, shift_id) pair is reported as ErrAssignmentExists so callers
// can treat concurrent double-writes as "already assigned".
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	err := r.db.Create(assignment).Error
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrAssignmentExists
		}
		return err
	}
	return nil
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(id uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.Preload("User").Preload("Shift").First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByShiftID retrieves all assignments for a shift
func (r *AssignmentRepository) GetByShiftID(shiftID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Preload("User").Where("shift_id = ?", shiftID).Find(&assignments).Error
	return assignments, err
}

// GetActiveByShiftID retrieves the assignments occupying slots on a shift
func (r *AssignmentRepository) GetActiveByShiftID(shiftID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Preload("User").
		Where("shift_id = ? AND status IN ?", shiftID, activeAssignmentStatuses()).
		Find(&assignments).Error
	return assignments, err
}

// GetActiveByUserInRange retrieves a user's active assignments whose shifts
// intersect [start, end], with shifts preloaded
func (r *AssignmentRepository) GetActiveByUserInRange(userID uuid.UUID, start, end time.Time) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Preload("Shift").
		Joins("JOIN shifts ON shifts.id = assignments.shift_id").
		Where("assignments.user_id = ? AND assignments.status IN ?", userID, activeAssignmentStatuses()).
		Where("shifts.start_time < ? AND shifts.end_time > ?", end, start).
		Find(&assignments).Error
	return assignments, err
}

// Update updates an assignment
func (r *AssignmentRepository) Update(assignment *models.Assignment) error {
	return r.db.Save(assignment).Error
}

// Delete deletes an assignment
func (r *AssignmentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Assignment{}, "id = ?", id).Error
}
