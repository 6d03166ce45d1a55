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

// AbsenceService handles business logic for absence requests
type AbsenceService struct {
	repo      repository.AbsenceRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewAbsenceService creates a new absence service
func NewAbsenceService(repo repository.AbsenceRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *AbsenceService {
	return &AbsenceService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateAbsenceRequest represents the request to report an absence
type CreateAbsenceRequest struct {
	UserID   uuid.UUID          `json:"user_id" validate:"required"`
	Type     models.AbsenceType `json:"type" validate:"required"`
	StartsAt time.Time          `json:"starts_at" validate:"required"`
	EndsAt   time.Time          `json:"ends_at" validate:"required"`
	Reason   string             `json:"reason,omitempty"`
}

// AbsenceResponse represents the response for absence operations
type AbsenceResponse struct {
	ID       uuid.UUID            `json:"id"`
	UserID   uuid.UUID            `json:"user_id"`
	Type     models.AbsenceType   `json:"type"`
	Status   models.AbsenceStatus `json:"status"`
	StartsAt time.Time            `json:"starts_at"`
	EndsAt   time.Time            `json:"ends_at"`
	Reason   string               `json:"reason,omitempty"`
}

// AbsenceListResponse represents a paginated list of absences
type AbsenceListResponse struct {
	Absences []AbsenceResponse `json:"absences"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create reports a new absence request for a user
func (s *AbsenceService) Create(req *CreateAbsenceRequest) (*AbsenceResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "unknown absence type")
	}
	if !req.EndsAt.After(req.StartsAt) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	user, err := s.userRepo.GetByID(req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}

	absence := &models.Absence{
		UserID:   req.UserID,
		Type:     req.Type,
		Status:   models.AbsenceStatusRequested,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		Reason:   req.Reason,
	}

	// Sickness reports take effect immediately, other types await approval
	if req.Type == models.AbsenceTypeSickness {
		absence.Status = models.AbsenceStatusApproved
	}

	if err := s.repo.Create(absence); err != nil {
		return nil, fmt.Errorf("failed to create absence: %w", err)
	}

	return s.toResponse(absence), nil
}

// GetByID retrieves an absence by ID
func (s *AbsenceService) GetByID(id uuid.UUID) (*AbsenceResponse, error) {
	absence, err := s.getAbsence(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(absence), nil
}

// GetByUser retrieves absences for a user with pagination
func (s *AbsenceService) GetByUser(userID uuid.UUID, page, pageSize int) (*AbsenceListResponse, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify user: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	absences, total, err := s.repo.GetByUserID(userID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get user absences: %w", err)
	}

	responses := make([]AbsenceResponse, len(absences))
	for i := range absences {
		responses[i] = *s.toResponse(&absences[i])
	}

	return &AbsenceListResponse{
		Absences: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Approve approves a requested absence
func (s *AbsenceService) Approve(id uuid.UUID) (*AbsenceResponse, error) {
	return s.decide(id, models.AbsenceStatusApproved)
}

// Reject rejects a requested absence
func (s *AbsenceService) Reject(id uuid.UUID) (*AbsenceResponse, error) {
	return s.decide(id, models.AbsenceStatusRejected)
}

// Cancel cancels an absence request that has not been decided yet
func (s *AbsenceService) Cancel(id uuid.UUID) (*AbsenceResponse, error) {
	absence, err := s.getAbsence(id)
	if err != nil {
		return nil, err
	}

	if absence.Status != models.AbsenceStatusRequested {
		return nil, apperrors.ErrAbsenceAlreadyDecided
	}

	absence.Status = models.AbsenceStatusCancelled
	if err := s.repo.Update(absence); err != nil {
		return nil, fmt.Errorf("failed to cancel absence: %w", err)
	}
	return s.toResponse(absence), nil
}

func (s *AbsenceService) decide(id uuid.UUID, status models.AbsenceStatus) (*AbsenceResponse, error) {
	absence, err := s.getAbsence(id)
	if err != nil {
		return nil, err
	}

	if absence.Status != models.AbsenceStatusRequested {
		return nil, apperrors.ErrAbsenceAlreadyDecided
	}

	absence.Status = status
	if err := s.repo.Update(absence); err != nil {
		return nil, fmt.Errorf("failed to update absence: %w", err)
	}

	return s.toResponse(absence), nil
}

func (s *AbsenceService) getAbsence(id uuid.UUID) (*models.Absence, error) {
	absence, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAbsenceNotFound
		}
		return nil, fmt.Errorf("failed to get absence: %w", err)
	}
	return absence, nil
}

func (s *AbsenceService) toResponse(absence *models.Absence) *AbsenceResponse {
	return &AbsenceResponse{
		ID:       absence.ID,
		UserID:   absence.UserID,
		Type:     absence.Type,
		Status:   absence.Status,
		StartsAt: absence.StartsAt,
		EndsAt:   absence.EndsAt,
		Reason:   absence.Reason,
	}
}
