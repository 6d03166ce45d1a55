package models

import (
	"time"

	"github.com/google/uuid"
)

// Absence represents a user's time away from work, requested or decided
type Absence struct {
	BaseModel
	UserID   uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type     AbsenceType   `json:"type" gorm:"type:varchar(50);not null" validate:"required"`
	Status   AbsenceStatus `json:"status" gorm:"type:varchar(50);not null;default:'requested'"`
	StartsAt time.Time     `json:"starts_at" gorm:"not null;index" validate:"required"`
	EndsAt   time.Time     `json:"ends_at" gorm:"not null" validate:"required"`
	Reason   string        `json:"reason" gorm:"type:text"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Absence
func (Absence) TableName() string {
	return "absences"
}

// Overlaps reports whether the absence interval intersects [start, end)
func (a *Absence) Overlaps(start, end time.Time) bool {
	return a.StartsAt.Before(end) && a.EndsAt.After(start)
}
