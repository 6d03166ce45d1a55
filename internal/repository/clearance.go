package repository

import (
	"guard-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClearanceRepository handles database operations for object clearances
type ClearanceRepository struct {
	db *gorm.DB
}

// NewClearanceRepository creates a new clearance repository
func NewClearanceRepository(db *gorm.DB) *ClearanceRepository {
	return &ClearanceRepository{db: db}
}

// Create creates a new clearance
func (r *ClearanceRepository) Create(clearance *models.ObjectClearance) error {
	return r.db.Create(clearance).Error
}

// GetByID retrieves a clearance by ID
func (r *ClearanceRepository) GetByID(id uuid.UUID) (*models.ObjectClearance, error) {
	var clearance models.ObjectClearance
	err := r.db.First(&clearance, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &clearance, nil
}

// GetByUserAndSite retrieves the clearance for a user at a site
func (r *ClearanceRepository) GetByUserAndSite(userID, siteID uuid.UUID) (*models.ObjectClearance, error) {
	var clearance models.ObjectClearance
	err := r.db.First(&clearance, "user_id = ? AND site_id = ?", userID, siteID).Error
	if err != nil {
		return nil, err
	}
	return &clearance, nil
}

// GetBySiteID retrieves all clearances for a site
func (r *ClearanceRepository) GetBySiteID(siteID uuid.UUID) ([]models.ObjectClearance, error) {
	var clearances []models.ObjectClearance
	err := r.db.Preload("User").Where("site_id = ?", siteID).Find(&clearances).Error
	return clearances, err
}

// GetByUserID retrieves all clearances held by a user
func (r *ClearanceRepository) GetByUserID(userID uuid.UUID) ([]models.ObjectClearance, error) {
	var clearances []models.ObjectClearance
	err := r.db.Preload("Site").Where("user_id = ?", userID).Find(&clearances).Error
	return clearances, err
}

// Update updates a clearance
func (r *ClearanceRepository) Update(clearance *models.ObjectClearance) error {
	return r.db.Save(clearance).Error
}

// Delete deletes a clearance
func (r *ClearanceRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ObjectClearance{}, "id = ?", id).Error
}
