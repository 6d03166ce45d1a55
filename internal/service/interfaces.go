package service

import (
	"time"

	"guard-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ShiftServiceInterface defines the interface for shift service
type ShiftServiceInterface interface {
	Create(req *CreateShiftRequest) (*ShiftResponse, error)
	GetByID(id uuid.UUID) (*ShiftResponse, error)
	GetBySite(siteID uuid.UUID, page, pageSize int) (*ShiftListResponse, error)
	Update(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error)
	Delete(id uuid.UUID) error
}

// AbsenceServiceInterface defines the interface for absence service
type AbsenceServiceInterface interface {
	Create(req *CreateAbsenceRequest) (*AbsenceResponse, error)
	GetByID(id uuid.UUID) (*AbsenceResponse, error)
	GetByUser(userID uuid.UUID, page, pageSize int) (*AbsenceListResponse, error)
	Approve(id uuid.UUID) (*AbsenceResponse, error)
	Reject(id uuid.UUID) (*AbsenceResponse, error)
	Cancel(id uuid.UUID) (*AbsenceResponse, error)
}

// AssignmentServiceInterface defines the interface for assignment service
type AssignmentServiceInterface interface {
	Create(req *CreateAssignmentRequest) (*AssignmentResponse, error)
	GetByShift(shiftID uuid.UUID) ([]AssignmentResponse, error)
	Confirm(id uuid.UUID) (*AssignmentResponse, error)
	Cancel(id uuid.UUID) (*AssignmentResponse, error)
}

// ClearanceServiceInterface defines the interface for clearance service
type ClearanceServiceInterface interface {
	Grant(req *GrantClearanceRequest) (*ClearanceResponse, error)
	Activate(id uuid.UUID, req *ActivateClearanceRequest) (*ClearanceResponse, error)
	Revoke(id uuid.UUID) (*ClearanceResponse, error)
	GetBySite(siteID uuid.UUID) ([]ClearanceResponse, error)
}

// ScoringServiceInterface defines the interface for the candidate scorer
type ScoringServiceInterface interface {
	Score(userID uuid.UUID, shift *models.Shift) (*CandidateScore, error)
}

// RankingServiceInterface defines the interface for the candidate ranker
type RankingServiceInterface interface {
	RankCandidates(shiftID uuid.UUID, absentUserID *uuid.UUID) ([]ReplacementCandidate, error)
}

// ConflictServiceInterface defines the interface for the conflict analyzer
type ConflictServiceInterface interface {
	AnalyzeConflicts(start, end time.Time, siteID, userID *uuid.UUID) ([]ShiftConflict, error)
	GetShiftConflicts(shiftID uuid.UUID) ([]ShiftConflict, error)
}

// AutoFillServiceInterface defines the interface for the auto-fill orchestrator
type AutoFillServiceInterface interface {
	AutoFill(shiftIDs []uuid.UUID, opts AutoFillOptions) ([]AutoFillResult, error)
	PreviewAutoFill(shiftIDs []uuid.UUID, opts AutoFillOptions) ([]AutoFillResult, error)
}
