package models

type Tag struct {
	ID    string `gorm:"primarykey;type:varchar(36)" json:"tag_id"`
	OrgID string `gorm:"type:varchar(36);not null;index" json:"org_id"`
	Name  string `gorm:"type:varchar(100);not null" json:"name"`
	Color string `gorm:"type:varchar(20);not null" json:"color"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrgID" json:"organization,omitempty"`
}

type TaskTag struct {
	TaskID string `gorm:"primarykey;type:varchar(36)" json:"task_id"`
	TagID  string `gorm:"primarykey;type:varchar(36)" json:"tag_id"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Tag  Tag  `gorm:"foreignKey:TagID" json:"tag,omitempty"`
}
