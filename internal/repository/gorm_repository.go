package repository

import (
	"github.com/aditya-h-09/asana-rl-seed-data/internal/models"
	"gorm.io/gorm"
)

// insertBatchSize bounds the row count per INSERT so large runs stay under
// sqlite's bound-variable limit.
const insertBatchSize = 500

// GormRepository is a GORM implementation of Repository
type GormRepository struct {
	db *gorm.DB
}

// New creates a new Repository backed by the given database handle
func New(db *gorm.DB) Repository {
	return &GormRepository{db: db}
}

// Transaction runs fn against a transactional copy of the repository
func (r *GormRepository) Transaction(fn func(Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormRepository{db: tx})
	})
}

// CreateOrganization persists the single root organization
func (r *GormRepository) CreateOrganization(org *models.Organization) error {
	return r.db.Create(org).Error
}

// CreateTeams bulk-inserts teams
func (r *GormRepository) CreateTeams(teams []models.Team) error {
	return createInBatches(r.db, teams)
}

// CreateUsers bulk-inserts users
func (r *GormRepository) CreateUsers(users []models.User) error {
	return createInBatches(r.db, users)
}

// CreateMemberships bulk-inserts team membership edges
func (r *GormRepository) CreateMemberships(memberships []models.TeamMembership) error {
	return createInBatches(r.db, memberships)
}

// CreateProjects bulk-inserts projects
func (r *GormRepository) CreateProjects(projects []models.Project) error {
	return createInBatches(r.db, projects)
}

// CreateSections bulk-inserts project sections
func (r *GormRepository) CreateSections(sections []models.Section) error {
	return createInBatches(r.db, sections)
}

// CreateTasks bulk-inserts tasks and subtasks
func (r *GormRepository) CreateTasks(tasks []models.Task) error {
	return createInBatches(r.db, tasks)
}

// CreateComments bulk-inserts task comments
func (r *GormRepository) CreateComments(comments []models.Comment) error {
	return createInBatches(r.db, comments)
}

// CreateFieldDefinitions bulk-inserts custom field definitions
func (r *GormRepository) CreateFieldDefinitions(defs []models.CustomFieldDefinition) error {
	return createInBatches(r.db, defs)
}

// CreateFieldValues bulk-inserts custom field values
func (r *GormRepository) CreateFieldValues(values []models.CustomFieldValue) error {
	return createInBatches(r.db, values)
}

// CreateTags bulk-inserts organization tags
func (r *GormRepository) CreateTags(tags []models.Tag) error {
	return createInBatches(r.db, tags)
}

// CreateTaskTags bulk-inserts task-tag edges
func (r *GormRepository) CreateTaskTags(taskTags []models.TaskTag) error {
	return createInBatches(r.db, taskTags)
}

func createInBatches[T any](db *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return db.CreateInBatches(rows, insertBatchSize).Error
}

// ActiveProjectMembers returns active users belonging to the project's team
func (r *GormRepository) ActiveProjectMembers(projectID string, limit int) ([]models.User, error) {
	var users []models.User
	query := r.db.Model(&models.User{}).
		Distinct("users.*").
		Joins("JOIN team_memberships ON users.id = team_memberships.user_id").
		Joins("JOIN projects ON team_memberships.team_id = projects.team_id").
		Where("projects.id = ? AND users.is_active = ?", projectID, true)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FirstUsers returns the first n users by creation order
func (r *GormRepository) FirstUsers(n int) ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("created_at ASC").Limit(n).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// TeamNamesByProject maps each project ID to its owning team's name
func (r *GormRepository) TeamNamesByProject() (map[string]string, error) {
	var rows []struct {
		ProjectID string
		TeamName  string
	}
	err := r.db.Model(&models.Project{}).
		Select("projects.id AS project_id, teams.name AS team_name").
		Joins("JOIN teams ON projects.team_id = teams.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(rows))
	for _, row := range rows {
		names[row.ProjectID] = row.TeamName
	}
	return names, nil
}

// TopLevelTasks returns all persisted tasks with a null parent
func (r *GormRepository) TopLevelTasks() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Select("id", "project_id", "section_id", "assignee_id", "created_by", "created_at", "completed", "completed_at").
		Where("parent_task_id IS NULL").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// TopLevelTaskIDsByProject returns IDs of a project's top-level tasks
func (r *GormRepository) TopLevelTaskIDsByProject(projectID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Task{}).
		Where("project_id = ? AND parent_task_id IS NULL", projectID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Counts reports the row count of every seeded table
func (r *GormRepository) Counts() (map[string]int64, error) {
	tables := []string{
		"organizations", "teams", "users", "team_memberships",
		"projects", "sections", "tasks", "comments",
		"custom_field_definitions", "custom_field_values",
		"tags", "task_tags",
	}

	counts := make(map[string]int64, len(tables))
	for _, table := range tables {
		var n int64
		if err := r.db.Table(table).Count(&n).Error; err != nil {
			return nil, err
		}
		counts[table] = n
	}
	return counts, nil
}
