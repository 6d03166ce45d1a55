package models

import (
	"github.com/google/uuid"
)

// Assignment links a user to a shift. The (user_id, shift_id) pair is
// unique; concurrent writers rely on this constraint rather than locking.
type Assignment struct {
	BaseModel
	UserID  uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignments_user_shift" validate:"required"`
	ShiftID uuid.UUID        `json:"shift_id" gorm:"type:uuid;not null;uniqueIndex:idx_assignments_user_shift;index" validate:"required"`
	Status  AssignmentStatus `json:"status" gorm:"type:varchar(50);not null;default:'assigned'"`
	Origin  AssignmentOrigin `json:"origin" gorm:"type:varchar(50);not null;default:'planned'"`

	// Relationships
	User  User  `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Shift Shift `json:"shift,omitempty" gorm:"foreignKey:ShiftID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}
