package models

import "time"

type Organization struct {
	ID            string    `gorm:"primarykey;type:varchar(36)" json:"org_id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Domain        string    `gorm:"type:varchar(255);not null" json:"domain"`
	EmployeeCount int       `gorm:"not null" json:"employee_count"`
	CreatedAt     time.Time `json:"created_at"`

	// Relations
	Teams []Team `gorm:"foreignKey:OrgID" json:"teams,omitempty"`
	Users []User `gorm:"foreignKey:OrgID" json:"users,omitempty"`
	Tags  []Tag  `gorm:"foreignKey:OrgID" json:"tags,omitempty"`
}
