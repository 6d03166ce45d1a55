package service

import (
	"errors"
	"fmt"
	"time"

	"guard-roster-backend/internal/database/models"
	apperrors "guard-roster-backend/internal/errors"
	"guard-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClearanceService handles business logic for site clearances
type ClearanceService struct {
	repo      repository.ClearanceRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	siteRepo  repository.SiteRepositoryInterface
	validator *validator.Validate
}

// NewClearanceService creates a new clearance service
func NewClearanceService(repo repository.ClearanceRepositoryInterface, userRepo repository.UserRepositoryInterface, siteRepo repository.SiteRepositoryInterface, validator *validator.Validate) *ClearanceService {
	return &ClearanceService{
		repo:      repo,
		userRepo:  userRepo,
		siteRepo:  siteRepo,
		validator: validator,
	}
}

// GrantClearanceRequest represents the request to start clearance training
type GrantClearanceRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	SiteID uuid.UUID `json:"site_id" validate:"required"`
}

// ActivateClearanceRequest represents the request to activate a trained clearance
type ActivateClearanceRequest struct {
	ValidUntil *time.Time `json:"valid_until,omitempty"`
}

// ClearanceResponse represents the response for clearance operations
type ClearanceResponse struct {
	ID         uuid.UUID              `json:"id"`
	UserID     uuid.UUID              `json:"user_id"`
	SiteID     uuid.UUID              `json:"site_id"`
	Status     models.ClearanceStatus `json:"status"`
	TrainedAt  *time.Time             `json:"trained_at,omitempty"`
	ValidUntil *time.Time             `json:"valid_until,omitempty"`
}

// Grant creates a clearance in training status for a user at a site
func (s *ClearanceService) Grant(req *GrantClearanceRequest) (*ClearanceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	if _, err := s.siteRepo.GetByID(req.SiteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSiteNotFound
		}
		return nil, fmt.Errorf("failed to verify site: %w", err)
	}

	if existing, err := s.repo.GetByUserAndSite(req.UserID, req.SiteID); err == nil && existing != nil {
		return nil, apperrors.ErrClearanceExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing clearance: %w", err)
	}

	clearance := &models.ObjectClearance{
		UserID: req.UserID,
		SiteID: req.SiteID,
		Status: models.ClearanceStatusTraining,
	}

	if err := s.repo.Create(clearance); err != nil {
		return nil, fmt.Errorf("failed to create clearance: %w", err)
	}

	return s.toResponse(clearance), nil
}

// Activate promotes a clearance from training to active
func (s *ClearanceService) Activate(id uuid.UUID, req *ActivateClearanceRequest) (*ClearanceResponse, error) {
	clearance, err := s.getClearance(id)
	if err != nil {
		return nil, err
	}

	if clearance.Status != models.ClearanceStatusTraining {
		return nil, apperrors.ErrClearanceNotInTraining
	}

	now := time.Now().UTC()
	clearance.Status = models.ClearanceStatusActive
	clearance.TrainedAt = &now
	if req != nil {
		clearance.ValidUntil = req.ValidUntil
	}

	if err := s.repo.Update(clearance); err != nil {
		return nil, fmt.Errorf("failed to activate clearance: %w", err)
	}
	return s.toResponse(clearance), nil
}

// Revoke revokes a clearance so the user no longer has site access
func (s *ClearanceService) Revoke(id uuid.UUID) (*ClearanceResponse, error) {
	clearance, err := s.getClearance(id)
	if err != nil {
		return nil, err
	}

	clearance.Status = models.ClearanceStatusRevoked
	if err := s.repo.Update(clearance); err != nil {
		return nil, fmt.Errorf("failed to revoke clearance: %w", err)
	}
	return s.toResponse(clearance), nil
}

// GetBySite retrieves all clearances for a site
func (s *ClearanceService) GetBySite(siteID uuid.UUID) ([]ClearanceResponse, error) {
	if _, err := s.siteRepo.GetByID(siteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSiteNotFound
		}
		return nil, fmt.Errorf("failed to verify site: %w", err)
	}

	clearances, err := s.repo.GetBySiteID(siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get site clearances: %w", err)
	}

	responses := make([]ClearanceResponse, len(clearances))
	for i := range clearances {
		responses[i] = *s.toResponse(&clearances[i])
	}
	return responses, nil
}

func (s *ClearanceService) getClearance(id uuid.UUID) (*models.ObjectClearance, error) {
	clearance, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClearanceNotFound
		}
		return nil, fmt.Errorf("failed to get clearance: %w", err)
	}
	return clearance, nil
}

func (s *ClearanceService) toResponse(clearance *models.ObjectClearance) *ClearanceResponse {
	return &ClearanceResponse{
		ID:         clearance.ID,
		UserID:     clearance.UserID,
		SiteID:     clearance.SiteID,
		Status:     clearance.Status,
		TrainedAt:  clearance.TrainedAt,
		ValidUntil: clearance.ValidUntil,
	}
}
