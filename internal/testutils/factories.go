package testutils

import (
	"time"

	"guard-roster-backend/internal/database/models"

	"github.com/google/uuid"
)

// SiteFactory provides methods to create test Site data
type SiteFactory struct{}

// NewSiteFactory creates a new SiteFactory
func NewSiteFactory() *SiteFactory {
	return &SiteFactory{}
}

// Create creates a test Site with default values
func (f *SiteFactory) Create() *models.Site {
	return &models.Site{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Test Site " + uuid.New().String()[:8],
		Address:      "1 Industriestrasse",
		City:         "Berlin",
		MinimumStaff: 1,
		IsActive:     true,
	}
}

// WithMinimumStaff sets a custom minimum staffing level
func (f *SiteFactory) WithMinimumStaff(n int) *models.Site {
	site := f.Create()
	site.MinimumStaff = n
	return site
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test employee User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:          "Guard",
		LastName:           id.String()[:8],
		Email:              "guard-" + id.String()[:8] + "@example.com",
		Role:               models.UserRoleEmployee,
		Qualifications:     []string{},
		TargetMonthlyHours: 160,
		MaxWeeklyHours:     48,
		IsActive:           true,
	}
}

// WithQualifications sets the user's qualifications
func (f *UserFactory) WithQualifications(quals ...string) *models.User {
	user := f.Create()
	user.Qualifications = quals
	return user
}

// Inactive creates a deactivated user
func (f *UserFactory) Inactive() *models.User {
	user := f.Create()
	user.IsActive = false
	return user
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a planned shift at the given site
func (f *ShiftFactory) Create(siteID uuid.UUID, start time.Time, hours float64) *models.Shift {
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SiteID:                 siteID,
		StartTime:              start,
		EndTime:                start.Add(time.Duration(hours * float64(time.Hour))),
		RequiredEmployees:      1,
		RequiredQualifications: []string{},
		Status:                 models.ShiftStatusPlanned,
	}
}

// WithRequired sets the required headcount
func (f *ShiftFactory) WithRequired(siteID uuid.UUID, start time.Time, hours float64, required int) *models.Shift {
	shift := f.Create(siteID, start, hours)
	shift.RequiredEmployees = required
	return shift
}

// AssignmentFactory provides methods to create test Assignment data
type AssignmentFactory struct{}

// NewAssignmentFactory creates a new AssignmentFactory
func NewAssignmentFactory() *AssignmentFactory {
	return &AssignmentFactory{}
}

// Create creates an assignment linking a user to a shift
func (f *AssignmentFactory) Create(userID, shiftID uuid.UUID) *models.Assignment {
	return &models.Assignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:  userID,
		ShiftID: shiftID,
		Status:  models.AssignmentStatusAssigned,
		Origin:  models.AssignmentOriginPlanned,
	}
}

// AbsenceFactory provides methods to create test Absence data
type AbsenceFactory struct{}

// NewAbsenceFactory creates a new AbsenceFactory
func NewAbsenceFactory() *AbsenceFactory {
	return &AbsenceFactory{}
}

// Create creates a requested vacation absence for a user
func (f *AbsenceFactory) Create(userID uuid.UUID, start, end time.Time) *models.Absence {
	return &models.Absence{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:   userID,
		Type:     models.AbsenceTypeVacation,
		Status:   models.AbsenceStatusRequested,
		StartsAt: start,
		EndsAt:   end,
	}
}

// Approved creates an approved absence
func (f *AbsenceFactory) Approved(userID uuid.UUID, start, end time.Time) *models.Absence {
	absence := f.Create(userID, start, end)
	absence.Status = models.AbsenceStatusApproved
	return absence
}

// ClearanceFactory provides methods to create test ObjectClearance data
type ClearanceFactory struct{}

// NewClearanceFactory creates a new ClearanceFactory
func NewClearanceFactory() *ClearanceFactory {
	return &ClearanceFactory{}
}

// Create creates a clearance in training status
func (f *ClearanceFactory) Create(userID, siteID uuid.UUID) *models.ObjectClearance {
	return &models.ObjectClearance{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID: userID,
		SiteID: siteID,
		Status: models.ClearanceStatusTraining,
	}
}

// Active creates an active clearance without an expiry date
func (f *ClearanceFactory) Active(userID, siteID uuid.UUID) *models.ObjectClearance {
	clearance := f.Create(userID, siteID)
	now := time.Now()
	clearance.Status = models.ClearanceStatusActive
	clearance.TrainedAt = &now
	return clearance
}
