package repository

import (
	"time"

	"guard-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a shift by ID with its site
func (r *ShiftRepository) GetByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.Preload("Site").First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetWithAssignments retrieves a shift with its site, assignments and assigned users
func (r *ShiftRepository) GetWithAssignments(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.Preload("Site").
		Preload("Assignments").
		Preload("Assignments.User").
		First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetInRange retrieves shifts whose interval intersects [start, end],
// optionally filtered by site, with assignments and users preloaded
func (r *ShiftRepository) GetInRange(start, end time.Time, siteID *uuid.UUID) ([]models.Shift, error) {
	var shifts []models.Shift
	query := r.db.Preload("Site").
		Preload("Assignments").
		Preload("Assignments.User").
		Where("start_time < ? AND end_time > ?", end, start)

	if siteID != nil {
		query = query.Where("site_id = ?", *siteID)
	}

	err := query.Order("start_time ASC").Find(&shifts).Error
	return shifts, err
}

// GetByUserInRange retrieves shifts the user actively occupies within [start, end]
func (r *ShiftRepository) GetByUserInRange(userID uuid.UUID, start, end time.Time) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.db.
		Joins("JOIN assignments ON assignments.shift_id = shifts.id").
		Where("assignments.user_id = ? AND assignments.status IN ?", userID, activeAssignmentStatuses()).
		Where("shifts.start_time < ? AND shifts.end_time > ?", end, start).
		Order("shifts.start_time ASC").
		Find(&shifts).Error
	return shifts, err
}

// GetBySiteID retrieves shifts for a site with pagination
func (r *ShiftRepository) GetBySiteID(siteID uuid.UUID, limit, offset int) ([]models.Shift, int64, error) {
	var shifts []models.Shift
	var total int64

	if err := r.db.Model(&models.Shift{}).Where("site_id = ?", siteID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("site_id = ?", siteID).
		Order("start_time DESC").
		Limit(limit).Offset(offset).
		Find(&shifts).Error
	return shifts, total, err
}

// Update updates a shift
func (r *ShiftRepository) Update(shift *models.Shift) error {
	return r.db.Save(shift).Error
}

// Delete deletes a shift
func (r *ShiftRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Shift{}, "id = ?", id).Error
}

func activeAssignmentStatuses() []models.AssignmentStatus {
	return []models.AssignmentStatus{
		models.AssignmentStatusAssigned,
		models.AssignmentStatusConfirmed,
		models.AssignmentStatusStarted,
	}
}
