package models

import "time"

type User struct {
	ID         string     `gorm:"primarykey;type:varchar(36)" json:"user_id"`
	OrgID      string     `gorm:"type:varchar(36);not null;index" json:"org_id"`
	Email      string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Name       string     `gorm:"type:varchar(255);not null" json:"name"`
	JobTitle   string     `gorm:"type:varchar(255);not null" json:"job_title"`
	Department Department `gorm:"type:varchar(50);not null" json:"department"`
	IsActive   bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`

	// Relations
	Organization Organization     `gorm:"foreignKey:OrgID" json:"organization,omitempty"`
	Memberships  []TeamMembership `gorm:"foreignKey:UserID" json:"-"`
	CreatedTasks []Task           `gorm:"foreignKey:CreatedBy" json:"-"`
}
