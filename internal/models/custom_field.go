package models

type FieldType string

const (
	FieldTypeDropdown FieldType = "dropdown"
	FieldTypeNumber   FieldType = "number"
	FieldTypeText     FieldType = "text"
	FieldTypeCheckbox FieldType = "checkbox"
)

// CustomFieldDefinition is a project-scoped field. Options holds the
// JSON-serialized option list; it is non-empty only for dropdown fields.
type CustomFieldDefinition struct {
	ID        string    `gorm:"primarykey;type:varchar(36)" json:"field_id"`
	ProjectID string    `gorm:"type:varchar(36);not null;index" json:"project_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	FieldType FieldType `gorm:"type:varchar(20);not null" json:"field_type"`
	Options   string    `gorm:"type:text" json:"options"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

type CustomFieldValue struct {
	ID      string `gorm:"primarykey;type:varchar(36)" json:"value_id"`
	TaskID  string `gorm:"type:varchar(36);not null;index" json:"task_id"`
	FieldID string `gorm:"type:varchar(36);not null;index" json:"field_id"`
	Value   string `gorm:"type:text;not null" json:"value"`

	// Relations
	Task  Task                  `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Field CustomFieldDefinition `gorm:"foreignKey:FieldID" json:"field,omitempty"`
}
