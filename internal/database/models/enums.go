package models

// UserRole defines the roles a user can hold in the workforce
type UserRole string

const (
	UserRoleEmployee UserRole = "employee"
	UserRoleManager  UserRole = "manager"
	UserRoleAdmin    UserRole = "admin"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleEmployee, UserRoleManager, UserRoleAdmin:
		return true
	}
	return false
}

// ShiftStatus defines the lifecycle states of a shift
type ShiftStatus string

const (
	ShiftStatusPlanned   ShiftStatus = "planned"
	ShiftStatusPublished ShiftStatus = "published"
	ShiftStatusCompleted ShiftStatus = "completed"
	ShiftStatusCancelled ShiftStatus = "cancelled"
)

// IsValid checks if the ShiftStatus is valid
func (s ShiftStatus) IsValid() bool {
	switch s {
	case ShiftStatusPlanned, ShiftStatusPublished, ShiftStatusCompleted, ShiftStatusCancelled:
		return true
	}
	return false
}

// AssignmentStatus defines the lifecycle states of an assignment
type AssignmentStatus string

const (
	AssignmentStatusAssigned  AssignmentStatus = "assigned"
	AssignmentStatusConfirmed AssignmentStatus = "confirmed"
	AssignmentStatusStarted   AssignmentStatus = "started"
	AssignmentStatusCompleted AssignmentStatus = "completed"
	AssignmentStatusCancelled AssignmentStatus = "cancelled"
)

// IsValid checks if the AssignmentStatus is valid
func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusAssigned, AssignmentStatusConfirmed, AssignmentStatusStarted,
		AssignmentStatusCompleted, AssignmentStatusCancelled:
		return true
	}
	return false
}

// IsActive reports whether the assignment occupies a slot on the shift.
// Completed and cancelled assignments no longer count towards headcount.
func (s AssignmentStatus) IsActive() bool {
	switch s {
	case AssignmentStatusAssigned, AssignmentStatusConfirmed, AssignmentStatusStarted:
		return true
	}
	return false
}

// AssignmentOrigin distinguishes planned roster assignments from ad-hoc
// replacements filled after the roster was published
type AssignmentOrigin string

const (
	AssignmentOriginPlanned     AssignmentOrigin = "planned"
	AssignmentOriginReplacement AssignmentOrigin = "replacement"
)

// IsValid checks if the AssignmentOrigin is valid
func (o AssignmentOrigin) IsValid() bool {
	switch o {
	case AssignmentOriginPlanned, AssignmentOriginReplacement:
		return true
	}
	return false
}

// AbsenceType defines the types of absences
type AbsenceType string

const (
	AbsenceTypeVacation AbsenceType = "vacation"
	AbsenceTypeSickness AbsenceType = "sickness"
	AbsenceTypeTraining AbsenceType = "training"
	AbsenceTypeOther    AbsenceType = "other"
)

// IsValid checks if the AbsenceType is valid
func (t AbsenceType) IsValid() bool {
	switch t {
	case AbsenceTypeVacation, AbsenceTypeSickness, AbsenceTypeTraining, AbsenceTypeOther:
		return true
	}
	return false
}

// AbsenceStatus defines the decision states of an absence request
type AbsenceStatus string

const (
	AbsenceStatusRequested AbsenceStatus = "requested"
	AbsenceStatusApproved  AbsenceStatus = "approved"
	AbsenceStatusRejected  AbsenceStatus = "rejected"
	AbsenceStatusCancelled AbsenceStatus = "cancelled"
)

// IsValid checks if the AbsenceStatus is valid
func (s AbsenceStatus) IsValid() bool {
	switch s {
	case AbsenceStatusRequested, AbsenceStatusApproved, AbsenceStatusRejected, AbsenceStatusCancelled:
		return true
	}
	return false
}

// ClearanceStatus defines the lifecycle states of a site clearance
type ClearanceStatus string

const (
	ClearanceStatusTraining ClearanceStatus = "training"
	ClearanceStatusActive   ClearanceStatus = "active"
	ClearanceStatusRevoked  ClearanceStatus = "revoked"
)

// IsValid checks if the ClearanceStatus is valid
func (s ClearanceStatus) IsValid() bool {
	switch s {
	case ClearanceStatusTraining, ClearanceStatusActive, ClearanceStatusRevoked:
		return true
	}
	return false
}

// ShiftType distinguishes day from night shifts for preference matching
type ShiftType string

const (
	ShiftTypeDay   ShiftType = "day"
	ShiftTypeNight ShiftType = "night"
)

// WorkloadLevel describes a user's preferred amount of work
type WorkloadLevel string

const (
	WorkloadLevelLight  WorkloadLevel = "light"
	WorkloadLevelNormal WorkloadLevel = "normal"
	WorkloadLevelHeavy  WorkloadLevel = "heavy"
)

// IsValid checks if the WorkloadLevel is valid
func (w WorkloadLevel) IsValid() bool {
	switch w {
	case WorkloadLevelLight, WorkloadLevelNormal, WorkloadLevelHeavy:
		return true
	}
	return false
}
