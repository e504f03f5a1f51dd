package models

import "time"

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

type Task struct {
	ID           string       `gorm:"primarykey;type:varchar(36)" json:"task_id"`
	ProjectID    string       `gorm:"type:varchar(36);not null;index" json:"project_id"`
	SectionID    string       `gorm:"type:varchar(36);not null;index" json:"section_id"`
	ParentTaskID *string      `gorm:"type:varchar(36);index" json:"parent_task_id"`
	Name         string       `gorm:"type:varchar(255);not null" json:"name"`
	Description  *string      `gorm:"type:text" json:"description"`
	AssigneeID   *string      `gorm:"type:varchar(36);index" json:"assignee_id"`
	CreatedBy    string       `gorm:"type:varchar(36);not null;index" json:"created_by"`
	CreatedAt    time.Time    `json:"created_at"`
	DueDate      *time.Time   `json:"due_date"`
	Completed    bool         `gorm:"not null;default:false" json:"completed"`
	CompletedAt  *time.Time   `json:"completed_at"`
	Priority     TaskPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`

	// Relations
	Project    Project   `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Section    Section   `gorm:"foreignKey:SectionID" json:"section,omitempty"`
	ParentTask *Task     `gorm:"foreignKey:ParentTaskID" json:"parent_task,omitempty"`
	Assignee   *User     `gorm:"foreignKey:AssigneeID" json:"assignee,omitempty"`
	Creator    User      `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Comments   []Comment `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
}

// TaskRef is the lightweight projection of a persisted task handed to
// downstream generators.
type TaskRef struct {
	ID        string
	ProjectID string
	Name      string
	CreatedBy string
	CreatedAt time.Time
}
