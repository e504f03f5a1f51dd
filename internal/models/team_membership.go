package models

import "time"

type MembershipRole string

const (
	RoleMember MembershipRole = "member"
	RoleLead   MembershipRole = "lead"
	RoleAdmin  MembershipRole = "admin"
)

type TeamMembership struct {
	ID       string         `gorm:"primarykey;type:varchar(36)" json:"membership_id"`
	TeamID   string         `gorm:"type:varchar(36);not null;index" json:"team_id"`
	UserID   string         `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Role     MembershipRole `gorm:"type:varchar(20);not null" json:"role"`
	JoinedAt time.Time      `json:"joined_at"`

	// Relations
	Team Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
