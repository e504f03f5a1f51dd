package models

import "time"

type ProjectType string

const (
	ProjectTypeSprint     ProjectType = "sprint"
	ProjectTypeOngoing    ProjectType = "ongoing"
	ProjectTypeCampaign   ProjectType = "campaign"
	ProjectTypeOperations ProjectType = "operations"
)

type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusArchived ProjectStatus = "archived"
	ProjectStatusOnHold   ProjectStatus = "on_hold"
)

type Project struct {
	ID          string        `gorm:"primarykey;type:varchar(36)" json:"project_id"`
	TeamID      string        `gorm:"type:varchar(36);not null;index" json:"team_id"`
	Name        string        `gorm:"type:varchar(255);not null" json:"name"`
	Description *string       `gorm:"type:text" json:"description"`
	ProjectType ProjectType   `gorm:"type:varchar(20);not null" json:"project_type"`
	Status      ProjectStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	OwnerID     string        `gorm:"type:varchar(36);not null" json:"owner_id"`
	CreatedAt   time.Time     `json:"created_at"`
	DueDate     *time.Time    `json:"due_date"`

	// Relations
	Team     Team      `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	Owner    User      `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Sections []Section `gorm:"foreignKey:ProjectID" json:"sections,omitempty"`
	Tasks    []Task    `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
}

// Section is an ordered workflow stage within a project. Position is
// significant: lower positions receive more open tasks, and terminal
// sections collect completed ones.
type Section struct {
	ID        string `gorm:"primarykey;type:varchar(36)" json:"section_id"`
	ProjectID string `gorm:"type:varchar(36);not null;index" json:"project_id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	Position  int    `gorm:"not null" json:"position"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
