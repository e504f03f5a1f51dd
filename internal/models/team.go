package models

import "time"

type Department string

const (
	DeptEngineering     Department = "Engineering"
	DeptProduct         Department = "Product"
	DeptMarketing       Department = "Marketing"
	DeptSales           Department = "Sales"
	DeptCustomerSuccess Department = "Customer Success"
	DeptOperations      Department = "Operations"
)

// Departments lists every department in the order used for keyword matching.
var Departments = []Department{
	DeptEngineering,
	DeptProduct,
	DeptMarketing,
	DeptSales,
	DeptCustomerSuccess,
	DeptOperations,
}

type Team struct {
	ID          string     `gorm:"primarykey;type:varchar(36)" json:"team_id"`
	OrgID       string     `gorm:"type:varchar(36);not null;index" json:"org_id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Department  Department `gorm:"type:varchar(50);not null" json:"department"`
	CreatedAt   time.Time  `json:"created_at"`

	// Relations
	Organization Organization     `gorm:"foreignKey:OrgID" json:"organization,omitempty"`
	Memberships  []TeamMembership `gorm:"foreignKey:TeamID" json:"memberships,omitempty"`
	Projects     []Project        `gorm:"foreignKey:TeamID" json:"projects,omitempty"`
}
