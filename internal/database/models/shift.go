package models

import (
	"time"

	"github.com/google/uuid"
)

// Shift represents a staffed time window at a site
type Shift struct {
	BaseModel
	SiteID                 uuid.UUID   `json:"site_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartTime              time.Time   `json:"start_time" gorm:"not null;index" validate:"required"`
	EndTime                time.Time   `json:"end_time" gorm:"not null" validate:"required"`
	RequiredEmployees      int         `json:"required_employees" gorm:"not null;default:1" validate:"min=1"`
	RequiredQualifications []string    `json:"required_qualifications" gorm:"serializer:json"`
	Status                 ShiftStatus `json:"status" gorm:"type:varchar(50);not null;default:'planned'"`
	Notes                  string      `json:"notes" gorm:"type:text"`

	// Relationships
	Site        Site         `json:"site,omitempty" gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE"`
	Assignments []Assignment `json:"assignments,omitempty" gorm:"foreignKey:ShiftID"`
}

// TableName returns the table name for Shift
func (Shift) TableName() string {
	return "shifts"
}

// DurationHours returns the shift length in hours
func (s *Shift) DurationHours() float64 {
	return s.EndTime.Sub(s.StartTime).Hours()
}

// Type classifies the shift as day or night. Shifts starting at 20:00 or
// later, or before 06:00, count as night shifts.
func (s *Shift) Type() ShiftType {
	hour := s.StartTime.Hour()
	if hour >= 20 || hour < 6 {
		return ShiftTypeNight
	}
	return ShiftTypeDay
}

// Overlaps reports whether the shift interval intersects [start, end)
func (s *Shift) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && start.Before(s.EndTime)
}

// ActiveAssignments returns the assignments that occupy a slot on the shift
func (s *Shift) ActiveAssignments() []Assignment {
	active := make([]Assignment, 0, len(s.Assignments))
	for _, a := range s.Assignments {
		if a.Status.IsActive() {
			active = append(active, a)
		}
	}
	return active
}
