package models

// Site represents a guarded object where shifts take place
type Site struct {
	BaseModel
	Name         string `json:"name" gorm:"not null;size:100;uniqueIndex" validate:"required,min=1,max=100"`
	Address      string `json:"address" gorm:"size:200" validate:"max=200"`
	City         string `json:"city" gorm:"size:100" validate:"max=100"`
	MinimumStaff int    `json:"minimum_staff" gorm:"not null;default:1" validate:"min=1"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`

	// Relationships
	Shifts     []Shift           `json:"shifts,omitempty" gorm:"foreignKey:SiteID"`
	Clearances []ObjectClearance `json:"clearances,omitempty" gorm:"foreignKey:SiteID"`
}

// TableName returns the table name for Site
func (Site) TableName() string {
	return "sites"
}
