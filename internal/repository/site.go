package repository

import (
	"guard-roster-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteRepository handles database operations for sites
type SiteRepository struct {
	db *gorm.DB
}

// NewSiteRepository creates a new site repository
func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

// Create creates a new site
func (r *SiteRepository) Create(site *models.Site) error {
	return r.db.Create(site).Error
}

// GetByID retrieves a site by ID
func (r *SiteRepository) GetByID(id uuid.UUID) (*models.Site, error) {
	var site models.Site
	err := r.db.First(&site, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &site, nil
}

// GetAll retrieves all sites with pagination
func (r *SiteRepository) GetAll(limit, offset int) ([]models.Site, int64, error) {
	var sites []models.Site
	var total int64

	if err := r.db.Model(&models.Site{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&sites).Error
	return sites, total, err
}

// Update updates a site
func (r *SiteRepository) Update(site *models.Site) error {
	return r.db.Save(site).Error
}

// Delete deletes a site
func (r *SiteRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Site{}, "id = ?", id).Error
}
