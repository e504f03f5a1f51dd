package repository

import (
	"github.com/aditya-h-09/asana-rl-seed-data/internal/models"
)

// Writer defines the write side of the seed store. Each generator groups
// its inserts into one Transaction call, so the unit of atomicity is a
// single generator's output.
type Writer interface {
	// Transaction runs fn against a transactional copy of the repository.
	Transaction(fn func(Repository) error) error

	// CreateOrganization persists the single root organization
	CreateOrganization(org *models.Organization) error

	// CreateTeams bulk-inserts teams
	CreateTeams(teams []models.Team) error

	// CreateUsers bulk-inserts users
	CreateUsers(users []models.User) error

	// CreateMemberships bulk-inserts team membership edges
	CreateMemberships(memberships []models.TeamMembership) error

	// CreateProjects bulk-inserts projects
	CreateProjects(projects []models.Project) error

	// CreateSections bulk-inserts project sections
	CreateSections(sections []models.Section) error

	// CreateTasks bulk-inserts tasks and subtasks
	CreateTasks(tasks []models.Task) error

	// CreateComments bulk-inserts task comments
	CreateComments(comments []models.Comment) error

	// CreateFieldDefinitions bulk-inserts custom field definitions
	CreateFieldDefinitions(defs []models.CustomFieldDefinition) error

	// CreateFieldValues bulk-inserts custom field values
	CreateFieldValues(values []models.CustomFieldValue) error

	// CreateTags bulk-inserts organization tags
	CreateTags(tags []models.Tag) error

	// CreateTaskTags bulk-inserts task-tag edges
	CreateTaskTags(taskTags []models.TaskTag) error
}

// Reader is the narrow read-only query surface generators use to
// recompute relationships from already-committed rows.
type Reader interface {
	// ActiveProjectMembers returns active users belonging to the
	// project's team, up to limit (0 means no limit)
	ActiveProjectMembers(projectID string, limit int) ([]models.User, error)

	// FirstUsers returns the first n users by creation order; the
	// fallback pool when a project's team has no active members
	FirstUsers(n int) ([]models.User, error)

	// TeamNamesByProject maps each project ID to its owning team's name
	TeamNamesByProject() (map[string]string, error)

	// TopLevelTasks returns all persisted tasks with a null parent
	TopLevelTasks() ([]models.Task, error)

	// TopLevelTaskIDsByProject returns IDs of a project's top-level tasks
	TopLevelTaskIDsByProject(projectID string) ([]string, error)

	// Counts reports the row count of every seeded table
	Counts() (map[string]int64, error)
}

// Repository is the full storage collaborator handed to generators.
type Repository interface {
	Writer
	Reader
}
