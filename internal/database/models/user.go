package models

import (
	"strings"

	"github.com/google/uuid"
)

// User represents a guard or planner in the workforce
type User struct {
	BaseModel
	FirstName          string        `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName           string        `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email              string        `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Role               UserRole      `json:"role" gorm:"type:varchar(50);not null;default:'employee'" validate:"required"`
	Qualifications     []string      `json:"qualifications" gorm:"serializer:json"`
	TargetMonthlyHours float64       `json:"target_monthly_hours" gorm:"not null;default:160"`
	MaxWeeklyHours     float64       `json:"max_weekly_hours" gorm:"not null;default:48"`
	PreferredShiftType ShiftType     `json:"preferred_shift_type" gorm:"type:varchar(20)"`
	PreferredDuration  float64       `json:"preferred_duration"` // hours, 0 means no preference
	PreferredWorkload  WorkloadLevel `json:"preferred_workload" gorm:"type:varchar(20)"`
	IsActive           bool          `json:"is_active" gorm:"default:true"`

	// Relationships
	Assignments []Assignment      `json:"assignments,omitempty" gorm:"foreignKey:UserID"`
	Absences    []Absence         `json:"absences,omitempty" gorm:"foreignKey:UserID"`
	Clearances  []ObjectClearance `json:"clearances,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// HasQualification checks whether the user holds the named qualification
func (u *User) HasQualification(name string) bool {
	for _, q := range u.Qualifications {
		if q == name {
			return true
		}
	}
	return false
}

// MissingQualifications returns the required qualifications the user lacks
func (u *User) MissingQualifications(required []string) []string {
	missing := []string{}
	for _, q := range required {
		if !u.HasQualification(q) {
			missing = append(missing, q)
		}
	}
	return missing
}

// UserRef is a lightweight identity used in computed results
type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Ref returns a lightweight reference to the user
func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.FullName()}
}
