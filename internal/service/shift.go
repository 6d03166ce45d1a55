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

// ShiftService handles business logic for shifts
type ShiftService struct {
	repo      repository.ShiftRepositoryInterface
	siteRepo  repository.SiteRepositoryInterface
	validator *validator.Validate
}

// NewShiftService creates a new shift service
func NewShiftService(repo repository.ShiftRepositoryInterface, siteRepo repository.SiteRepositoryInterface, validator *validator.Validate) *ShiftService {
	return &ShiftService{
		repo:      repo,
		siteRepo:  siteRepo,
		validator: validator,
	}
}

// CreateShiftRequest represents the request to create a shift
type CreateShiftRequest struct {
	SiteID                 uuid.UUID `json:"site_id" validate:"required"`
	StartTime              time.Time `json:"start_time" validate:"required"`
	EndTime                time.Time `json:"end_time" validate:"required"`
	RequiredEmployees      int       `json:"required_employees" validate:"required,min=1"`
	RequiredQualifications []string  `json:"required_qualifications,omitempty"`
	Notes                  string    `json:"notes,omitempty"`
}

// UpdateShiftRequest represents the request to update a shift
type UpdateShiftRequest struct {
	StartTime              *time.Time          `json:"start_time,omitempty"`
	EndTime                *time.Time          `json:"end_time,omitempty"`
	RequiredEmployees      *int                `json:"required_employees,omitempty"`
	RequiredQualifications *[]string           `json:"required_qualifications,omitempty"`
	Status                 *models.ShiftStatus `json:"status,omitempty"`
	Notes                  *string             `json:"notes,omitempty"`
}

// ShiftResponse represents the response for shift operations
type ShiftResponse struct {
	ID                     uuid.UUID          `json:"id"`
	SiteID                 uuid.UUID          `json:"site_id"`
	StartTime              time.Time          `json:"start_time"`
	EndTime                time.Time          `json:"end_time"`
	RequiredEmployees      int                `json:"required_employees"`
	RequiredQualifications []string           `json:"required_qualifications"`
	Status                 models.ShiftStatus `json:"status"`
	ShiftType              models.ShiftType   `json:"shift_type"`
	Notes                  string             `json:"notes,omitempty"`
	AssignedCount          int                `json:"assigned_count"`
}

// ShiftListResponse represents a paginated list of shifts
type ShiftListResponse struct {
	Shifts   []ShiftResponse `json:"shifts"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a new shift
func (s *ShiftService) Create(req *CreateShiftRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !req.EndTime.After(req.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	// Validate site exists
	if _, err := s.siteRepo.GetByID(req.SiteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSiteNotFound
		}
		return nil, fmt.Errorf("failed to verify site: %w", err)
	}

	shift := &models.Shift{
		SiteID:                 req.SiteID,
		StartTime:              req.StartTime,
		EndTime:                req.EndTime,
		RequiredEmployees:      req.RequiredEmployees,
		RequiredQualifications: req.RequiredQualifications,
		Status:                 models.ShiftStatusPlanned,
		Notes:                  req.Notes,
	}

	if err := s.repo.Create(shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	return s.toResponse(shift), nil
}

// GetByID retrieves a shift by ID
func (s *ShiftService) GetByID(id uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.repo.GetWithAssignments(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	return s.toResponse(shift), nil
}

// GetBySite retrieves shifts for a site with pagination
func (s *ShiftService) GetBySite(siteID uuid.UUID, page, pageSize int) (*ShiftListResponse, error) {
	if _, err := s.siteRepo.GetByID(siteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSiteNotFound
		}
		return nil, fmt.Errorf("failed to verify site: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	shifts, total, err := s.repo.GetBySiteID(siteID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get site shifts: %w", err)
	}

	responses := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = *s.toResponse(&shifts[i])
	}

	return &ShiftListResponse{
		Shifts:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a shift
func (s *ShiftService) Update(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error) {
	shift, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}
	if req.RequiredEmployees != nil {
		if *req.RequiredEmployees < 1 {
			return nil, apperrors.NewValidationError("required_employees", "must be at least 1")
		}
		shift.RequiredEmployees = *req.RequiredEmployees
	}
	if req.RequiredQualifications != nil {
		shift.RequiredQualifications = *req.RequiredQualifications
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.ErrInvalidStatus
		}
		shift.Status = *req.Status
	}
	if req.Notes != nil {
		shift.Notes = *req.Notes
	}

	if !shift.EndTime.After(shift.StartTime) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if err := s.repo.Update(shift); err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}

	return s.toResponse(shift), nil
}

// Delete deletes a shift
func (s *ShiftService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get shift: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}

	return nil
}

// toResponse converts a shift model to response
func (s *ShiftService) toResponse(shift *models.Shift) *ShiftResponse {
	quals := shift.RequiredQualifications
	if quals == nil {
		quals = []string{}
	}

	return &ShiftResponse{
		ID:                     shift.ID,
		SiteID:                 shift.SiteID,
		StartTime:              shift.StartTime,
		EndTime:                shift.EndTime,
		RequiredEmployees:      shift.RequiredEmployees,
		RequiredQualifications: quals,
		Status:                 shift.Status,
		ShiftType:              shift.Type(),
		Notes:                  shift.Notes,
		AssignedCount:          len(shift.ActiveAssignments()),
	}
}
