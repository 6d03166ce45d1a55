package service_test

import (
	"sync"
	"time"

	"guard-roster-backend/internal/database/models"
	apperrors "guard-roster-backend/internal/errors"
	"guard-roster-backend/internal/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeRoster is an in-memory roster state satisfying every store
// interface the staffing core reads through, so the scoring, ranking,
// conflict and auto-fill logic can be exercised without a database.
type fakeRoster struct {
	mu          sync.Mutex
	shifts      map[uuid.UUID]*models.Shift
	users       map[uuid.UUID]*models.User
	employees   []uuid.UUID
	assignments []models.Assignment
	absences    []models.Absence
	clearances  []models.ObjectClearance
	teamAvg     service.TeamAverages

	// user ids whose point lookup fails even though they are listed as
	// employees, to exercise per-candidate failure handling
	brokenLookups map[uuid.UUID]bool
}

func newFakeRoster() *fakeRoster {
	return &fakeRoster{
		shifts:        map[uuid.UUID]*models.Shift{},
		users:         map[uuid.UUID]*models.User{},
		brokenLookups: map[uuid.UUID]bool{},
	}
}

func (f *fakeRoster) addSite(minimumStaff int) models.Site {
	return models.Site{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Name:         "Site " + uuid.NewString()[:8],
		MinimumStaff: minimumStaff,
		IsActive:     true,
	}
}

func (f *fakeRoster) addShift(site models.Site, start time.Time, hours float64, required int, quals ...string) *models.Shift {
	shift := &models.Shift{
		BaseModel:              models.BaseModel{ID: uuid.New()},
		SiteID:                 site.ID,
		Site:                   site,
		StartTime:              start,
		EndTime:                start.Add(time.Duration(hours * float64(time.Hour))),
		RequiredEmployees:      required,
		RequiredQualifications: quals,
		Status:                 models.ShiftStatusPlanned,
	}
	f.shifts[shift.ID] = shift
	return shift
}

func (f *fakeRoster) addEmployee(firstName, lastName string) *models.User {
	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		FirstName: firstName,
		LastName:  lastName,
		Email:     firstName + "." + lastName + "@example.test",
		Role:      models.UserRoleEmployee,
		IsActive:  true,
	}
	f.users[user.ID] = user
	f.employees = append(f.employees, user.ID)
	return user
}

func (f *fakeRoster) assign(user *models.User, shift *models.Shift, origin models.AssignmentOrigin) *models.Assignment {
	f.assignments = append(f.assignments, models.Assignment{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    user.ID,
		ShiftID:   shift.ID,
		Status:    models.AssignmentStatusAssigned,
		Origin:    origin,
	})
	return &f.assignments[len(f.assignments)-1]
}

func (f *fakeRoster) addAbsence(user *models.User, status models.AbsenceStatus, start, end time.Time) {
	f.absences = append(f.absences, models.Absence{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    user.ID,
		Type:      models.AbsenceTypeVacation,
		Status:    status,
		StartsAt:  start,
		EndsAt:    end,
	})
}

func (f *fakeRoster) addClearance(user *models.User, site models.Site, status models.ClearanceStatus, validUntil *time.Time) {
	f.clearances = append(f.clearances, models.ObjectClearance{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		UserID:     user.ID,
		SiteID:     site.ID,
		Status:     status,
		ValidUntil: validUntil,
	})
}

// assignmentsForLocked returns the assignments on a shift with their User
// and Shift relations attached, the way the repository preloads them.
func (f *fakeRoster) assignmentsForLocked(shiftID uuid.UUID) []models.Assignment {
	var out []models.Assignment
	for _, a := range f.assignments {
		if a.ShiftID != shiftID {
			continue
		}
		if user, ok := f.users[a.UserID]; ok {
			a.User = *user
		}
		if shift, ok := f.shifts[a.ShiftID]; ok {
			a.Shift = *shift
		}
		out = append(out, a)
	}
	return out
}

// ShiftStore

func (f *fakeRoster) GetWithAssignments(id uuid.UUID) (*models.Shift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	shift, ok := f.shifts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *shift
	clone.Assignments = f.assignmentsForLocked(id)
	return &clone, nil
}

func (f *fakeRoster) GetInRange(start, end time.Time, siteID *uuid.UUID) ([]models.Shift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Shift
	for _, shift := range f.shifts {
		if !shift.Overlaps(start, end) {
			continue
		}
		if siteID != nil && shift.SiteID != *siteID {
			continue
		}
		clone := *shift
		clone.Assignments = f.assignmentsForLocked(shift.ID)
		out = append(out, clone)
	}
	return out, nil
}

func (f *fakeRoster) GetByUserInRange(userID uuid.UUID, start, end time.Time) ([]models.Shift, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Shift
	for _, a := range f.assignments {
		if a.UserID != userID || !a.Status.IsActive() {
			continue
		}
		shift, ok := f.shifts[a.ShiftID]
		if !ok || !shift.Overlaps(start, end) {
			continue
		}
		out = append(out, *shift)
	}
	return out, nil
}

// AssignmentStore

func (f *fakeRoster) Create(assignment *models.Assignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.assignments {
		if a.UserID == assignment.UserID && a.ShiftID == assignment.ShiftID {
			return apperrors.ErrAssignmentExists
		}
	}
	assignment.ID = uuid.New()
	f.assignments = append(f.assignments, *assignment)
	return nil
}

func (f *fakeRoster) GetActiveByShiftID(shiftID uuid.UUID) ([]models.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Assignment
	for _, a := range f.assignmentsForLocked(shiftID) {
		if a.Status.IsActive() {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRoster) GetActiveByUserInRange(userID uuid.UUID, start, end time.Time) ([]models.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Assignment
	for _, a := range f.assignments {
		if a.UserID != userID || !a.Status.IsActive() {
			continue
		}
		shift, ok := f.shifts[a.ShiftID]
		if !ok || !shift.Overlaps(start, end) {
			continue
		}
		a.Shift = *shift
		out = append(out, a)
	}
	return out, nil
}

// AbsenceStore

func (f *fakeRoster) GetOverlapping(start, end time.Time, statuses []models.AbsenceStatus) ([]models.Absence, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Absence
	for _, a := range f.absences {
		if a.Overlaps(start, end) && absenceStatusIn(a.Status, statuses) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRoster) GetOverlappingForUser(userID uuid.UUID, start, end time.Time, statuses []models.AbsenceStatus) ([]models.Absence, error) {
	all, _ := f.GetOverlapping(start, end, statuses)
	var out []models.Absence
	for _, a := range all {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func absenceStatusIn(status models.AbsenceStatus, statuses []models.AbsenceStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

// ClearanceStore

func (f *fakeRoster) GetByUserAndSite(userID, siteID uuid.UUID) (*models.ObjectClearance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.clearances {
		if f.clearances[i].UserID == userID && f.clearances[i].SiteID == siteID {
			clone := f.clearances[i]
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRoster) GetBySiteID(siteID uuid.UUID) ([]models.ObjectClearance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.ObjectClearance
	for _, c := range f.clearances {
		if c.SiteID == siteID {
			out = append(out, c)
		}
	}
	return out, nil
}

// UserStore

func (f *fakeRoster) GetByID(id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.brokenLookups[id] {
		return nil, gorm.ErrRecordNotFound
	}
	user, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *fakeRoster) GetActiveEmployees() ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, id := range f.employees {
		user := f.users[id]
		if user.IsActive && user.Role == models.UserRoleEmployee {
			out = append(out, *user)
		}
	}
	return out, nil
}

// TeamStatsProvider

func (f *fakeRoster) TeamAverages(time.Time) (service.TeamAverages, error) {
	return f.teamAvg, nil
}
