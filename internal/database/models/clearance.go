package models

import (
	"time"

	"github.com/google/uuid"
)

// ObjectClearance authorizes a user to work at a specific site.
// Lifecycle: training -> active -> revoked or expired via ValidUntil.
type ObjectClearance struct {
	BaseModel
	UserID     uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_clearances_user_site" validate:"required"`
	SiteID     uuid.UUID       `json:"site_id" gorm:"type:uuid;not null;uniqueIndex:idx_clearances_user_site;index" validate:"required"`
	Status     ClearanceStatus `json:"status" gorm:"type:varchar(50);not null;default:'training'"`
	TrainedAt  *time.Time      `json:"trained_at,omitempty"`
	ValidUntil *time.Time      `json:"valid_until,omitempty"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Site Site `json:"site,omitempty" gorm:"foreignKey:SiteID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ObjectClearance
func (ObjectClearance) TableName() string {
	return "object_clearances"
}

// IsValidAt reports whether an active clearance covers the given time
func (c *ObjectClearance) IsValidAt(t time.Time) bool {
	if c.Status != ClearanceStatusActive {
		return false
	}
	return c.ValidUntil == nil || !c.ValidUntil.Before(t)
}
