package repository

import (
	"time"

	"guard-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AbsenceRepository handles database operations for absences
type AbsenceRepository struct {
	db *gorm.DB
}

// NewAbsenceRepository creates a new absence repository
func NewAbsenceRepository(db *gorm.DB) *AbsenceRepository {
	return &AbsenceRepository{db: db}
}

// Create creates a new absence
func (r *AbsenceRepository) Create(absence *models.Absence) error {
	return r.db.Create(absence).Error
}

// GetByID retrieves an absence by ID
func (r *AbsenceRepository) GetByID(id uuid.UUID) (*models.Absence, error) {
	var absence models.Absence
	err := r.db.First(&absence, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &absence, nil
}

// GetByUserID retrieves absences for a user with pagination
func (r *AbsenceRepository) GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Absence, int64, error) {
	var absences []models.Absence
	var total int64

	if err := r.db.Model(&models.Absence{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("user_id = ?", userID).
		Order("starts_at DESC").
		Limit(limit).Offset(offset).
		Find(&absences).Error
	return absences, total, err
}

// GetOverlapping retrieves absences in the given statuses whose interval
// overlaps [start, end). Overlap test: starts_at < end AND ends_at > start.
func (r *AbsenceRepository) GetOverlapping(start, end time.Time, statuses []models.AbsenceStatus) ([]models.Absence, error) {
	var absences []models.Absence
	err := r.db.Where("starts_at < ? AND ends_at > ?", end, start).
		Where("status IN ?", statuses).
		Find(&absences).Error
	return absences, err
}

// GetOverlappingForUser retrieves one user's overlapping absences in the given statuses
func (r *AbsenceRepository) GetOverlappingForUser(userID uuid.UUID, start, end time.Time, statuses []models.AbsenceStatus) ([]models.Absence, error) {
	var absences []models.Absence
	err := r.db.Where("user_id = ? AND starts_at < ? AND ends_at > ?", userID, end, start).
		Where("status IN ?", statuses).
		Find(&absences).Error
	return absences, err
}

// Update updates an absence
func (r *AbsenceRepository) Update(absence *models.Absence) error {
	return r.db.Save(absence).Error
}

// Delete deletes an absence
func (r *AbsenceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Absence{}, "id = ?", id).Error
}
