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

// AssignmentService handles business logic for shift assignments
type AssignmentService struct {
	repo      repository.AssignmentRepositoryInterface
	shiftRepo repository.ShiftRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(repo repository.AssignmentRepositoryInterface, shiftRepo repository.ShiftRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *AssignmentService {
	return &AssignmentService{
		repo:      repo,
		shiftRepo: shiftRepo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateAssignmentRequest represents the request to assign a user to a shift
type CreateAssignmentRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	ShiftID uuid.UUID `json:"shift_id" validate:"required"`
}

// AssignmentResponse represents the response for assignment operations
type AssignmentResponse struct {
	ID        uuid.UUID               `json:"id"`
	UserID    uuid.UUID               `json:"user_id"`
	ShiftID   uuid.UUID               `json:"shift_id"`
	Status    models.AssignmentStatus `json:"status"`
	Origin    models.AssignmentOrigin `json:"origin"`
	CreatedAt time.Time               `json:"created_at"`
}

// Create assigns a user to a shift
func (s *AssignmentService) Create(req *CreateAssignmentRequest) (*AssignmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
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

	shift, err := s.shiftRepo.GetByID(req.ShiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to verify shift: %w", err)
	}
	if shift.Status == models.ShiftStatusCompleted || shift.Status == models.ShiftStatusCancelled {
		return nil, apperrors.ErrShiftInactive
	}

	assignment := &models.Assignment{
		UserID:  req.UserID,
		ShiftID: req.ShiftID,
		Status:  models.AssignmentStatusAssigned,
		Origin:  models.AssignmentOriginPlanned,
	}

	// Repository maps the unique (user, shift) violation to ErrAssignmentExists
	if err := s.repo.Create(assignment); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return s.toResponse(assignment), nil
}

// GetByShift retrieves all assignments for a shift
func (s *AssignmentService) GetByShift(shiftID uuid.UUID) ([]AssignmentResponse, error) {
	if _, err := s.shiftRepo.GetByID(shiftID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to verify shift: %w", err)
	}

	assignments, err := s.repo.GetByShiftID(shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift assignments: %w", err)
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i := range assignments {
		responses[i] = *s.toResponse(&assignments[i])
	}
	return responses, nil
}

// Confirm marks an assignment as confirmed by the employee
func (s *AssignmentService) Confirm(id uuid.UUID) (*AssignmentResponse, error) {
	assignment, err := s.getAssignment(id)
	if err != nil {
		return nil, err
	}

	if assignment.Status != models.AssignmentStatusAssigned {
		return nil, apperrors.ErrInvalidStatus
	}

	assignment.Status = models.AssignmentStatusConfirmed
	if err := s.repo.Update(assignment); err != nil {
		return nil, fmt.Errorf("failed to confirm assignment: %w", err)
	}
	return s.toResponse(assignment), nil
}

// Cancel cancels an assignment that has not started yet
func (s *AssignmentService) Cancel(id uuid.UUID) (*AssignmentResponse, error) {
	assignment, err := s.getAssignment(id)
	if err != nil {
		return nil, err
	}

	switch assignment.Status {
	case models.AssignmentStatusAssigned, models.AssignmentStatusConfirmed:
	default:
		return nil, apperrors.ErrInvalidStatus
	}

	assignment.Status = models.AssignmentStatusCancelled
	if err := s.repo.Update(assignment); err != nil {
		return nil, fmt.Errorf("failed to cancel assignment: %w", err)
	}
	return s.toResponse(assignment), nil
}

func (s *AssignmentService) getAssignment(id uuid.UUID) (*models.Assignment, error) {
	assignment, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return assignment, nil
}

func (s *AssignmentService) toResponse(assignment *models.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:        assignment.ID,
		UserID:    assignment.UserID,
		ShiftID:   assignment.ShiftID,
		Status:    assignment.Status,
		Origin:    assignment.Origin,
		CreatedAt: assignment.CreatedAt,
	}
}
