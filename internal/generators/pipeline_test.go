package generators

import (
	"context"
	"testing"
	"time"

	"github.com/aditya-h-09/asana-rl-seed-data/internal/config"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/database"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/models"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/repository"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/sampling"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// PipelineTestSuite runs the full generation pipeline against an
// in-memory store and checks the structural properties of the dataset.
type PipelineTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo repository.Repository
	rng  *sampling.Sampler
	cfg  *config.Config

	org      *models.Organization
	teams    []models.Team
	users    []models.User
	projects []models.Project
	tasks    []models.TaskRef
}

// SetupTest runs before each test
func (suite *PipelineTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)
	suite.Require().NoError(database.InitializeSchema(suite.db, ""))

	suite.repo = repository.New(suite.db)
	suite.rng = sampling.New(42)

	endDate := time.Now().Truncate(24 * time.Hour)
	suite.cfg = &config.Config{
		EmployeeCount: 100,
		StartDate:     endDate.AddDate(0, -6, 0),
		EndDate:       endDate,
		Seed:          42,
	}

	suite.runPipeline()
}

// TearDownTest runs after each test
func (suite *PipelineTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *PipelineTestSuite) runPipeline() {
	var err error

	suite.org, err = NewOrganizationGenerator(suite.repo, suite.rng, suite.cfg).Generate()
	suite.Require().NoError(err)

	suite.teams, err = NewTeamGenerator(suite.repo, suite.rng).Generate(suite.org)
	suite.Require().NoError(err)

	suite.users, err = NewUserGenerator(suite.repo, suite.rng, suite.cfg).Generate(suite.org, suite.teams)
	suite.Require().NoError(err)

	suite.projects, err = NewProjectGenerator(suite.repo, suite.rng, suite.cfg).Generate(suite.teams, suite.users)
	suite.Require().NoError(err)

	suite.tasks, err = NewTaskGenerator(suite.repo, suite.rng, suite.cfg, nil).Generate(context.Background(), suite.projects, suite.users)
	suite.Require().NoError(err)

	_, err = NewCommentGenerator(suite.repo, suite.rng).Generate()
	suite.Require().NoError(err)

	_, err = NewCustomFieldGenerator(suite.repo, suite.rng).Generate(suite.projects)
	suite.Require().NoError(err)

	_, err = NewTagGenerator(suite.repo, suite.rng).Generate(suite.org)
	suite.Require().NoError(err)
}

func (suite *PipelineTestSuite) count(query string, args ...interface{}) int64 {
	var n int64
	suite.Require().NoError(suite.db.Raw(query, args...).Scan(&n).Error)
	return n
}

func (suite *PipelineTestSuite) TestEntityCounts() {
	counts, err := suite.repo.Counts()
	suite.Require().NoError(err)

	suite.Equal(int64(1), counts["organizations"])
	suite.Equal(int64(25), counts["teams"])
	suite.Equal(int64(100), counts["users"])

	// Each user joins 1-2 teams
	suite.GreaterOrEqual(counts["team_memberships"], int64(100))
	suite.LessOrEqual(counts["team_memberships"], int64(200))

	// Each team samples 2-5 project templates
	suite.GreaterOrEqual(counts["projects"], int64(2*25))
	suite.LessOrEqual(counts["projects"], int64(5*25))

	suite.Greater(counts["tasks"], int64(0))
	suite.Equal(int64(20), counts["tags"])
}

func (suite *PipelineTestSuite) TestReferentialIntegrity() {
	orphans := map[string]string{
		"teams without org":         "SELECT COUNT(*) FROM teams t LEFT JOIN organizations o ON t.org_id = o.id WHERE o.id IS NULL",
		"users without org":         "SELECT COUNT(*) FROM users u LEFT JOIN organizations o ON u.org_id = o.id WHERE o.id IS NULL",
		"memberships without team":  "SELECT COUNT(*) FROM team_memberships m LEFT JOIN teams t ON m.team_id = t.id WHERE t.id IS NULL",
		"memberships without user":  "SELECT COUNT(*) FROM team_memberships m LEFT JOIN users u ON m.user_id = u.id WHERE u.id IS NULL",
		"projects without team":     "SELECT COUNT(*) FROM projects p LEFT JOIN teams t ON p.team_id = t.id WHERE t.id IS NULL",
		"projects without owner":    "SELECT COUNT(*) FROM projects p LEFT JOIN users u ON p.owner_id = u.id WHERE u.id IS NULL",
		"sections without project":  "SELECT COUNT(*) FROM sections s LEFT JOIN projects p ON s.project_id = p.id WHERE p.id IS NULL",
		"tasks without project":     "SELECT COUNT(*) FROM tasks t LEFT JOIN projects p ON t.project_id = p.id WHERE p.id IS NULL",
		"tasks without section":     "SELECT COUNT(*) FROM tasks t LEFT JOIN sections s ON t.section_id = s.id WHERE s.id IS NULL",
		"tasks without creator":     "SELECT COUNT(*) FROM tasks t LEFT JOIN users u ON t.created_by = u.id WHERE u.id IS NULL",
		"tasks with bad assignee":   "SELECT COUNT(*) FROM tasks t LEFT JOIN users u ON t.assignee_id = u.id WHERE t.assignee_id IS NOT NULL AND u.id IS NULL",
		"tasks with bad parent":     "SELECT COUNT(*) FROM tasks t LEFT JOIN tasks p ON t.parent_task_id = p.id WHERE t.parent_task_id IS NOT NULL AND p.id IS NULL",
		"comments without task":     "SELECT COUNT(*) FROM comments c LEFT JOIN tasks t ON c.task_id = t.id WHERE t.id IS NULL",
		"comments without author":   "SELECT COUNT(*) FROM comments c LEFT JOIN users u ON c.user_id = u.id WHERE u.id IS NULL",
		"values without task":       "SELECT COUNT(*) FROM custom_field_values v LEFT JOIN tasks t ON v.task_id = t.id WHERE t.id IS NULL",
		"values without definition": "SELECT COUNT(*) FROM custom_field_values v LEFT JOIN custom_field_definitions d ON v.field_id = d.id WHERE d.id IS NULL",
		"task_tags without task":    "SELECT COUNT(*) FROM task_tags tt LEFT JOIN tasks t ON tt.task_id = t.id WHERE t.id IS NULL",
		"task_tags without tag":     "SELECT COUNT(*) FROM task_tags tt LEFT JOIN tags g ON tt.tag_id = g.id WHERE g.id IS NULL",
	}

	for name, query := range orphans {
		suite.Zero(suite.count(query), name)
	}
}

func (suite *PipelineTestSuite) TestTemporalCausality() {
	now := time.Now()

	suite.Zero(suite.count("SELECT COUNT(*) FROM users WHERE created_at < ?", suite.org.CreatedAt), "users created before org")
	suite.Zero(suite.count("SELECT COUNT(*) FROM teams WHERE created_at < ?", suite.org.CreatedAt), "teams created before org")

	suite.Zero(suite.count("SELECT COUNT(*) FROM tasks WHERE completed_at IS NOT NULL AND completed_at < created_at"), "completion before creation")
	suite.Zero(suite.count("SELECT COUNT(*) FROM tasks WHERE completed_at IS NOT NULL AND completed_at > ?", now), "completion in the future")
	suite.Zero(suite.count("SELECT COUNT(*) FROM tasks WHERE created_at > ?", now), "creation in the future")

	suite.Zero(suite.count(`
		SELECT COUNT(*) FROM comments c
		JOIN tasks t ON c.task_id = t.id
		WHERE c.created_at < t.created_at
		   OR c.created_at > COALESCE(t.completed_at, ?)`, now), "comments outside task lifetime")

	// joined_at = max(user creation, team creation)
	suite.Zero(suite.count(`
		SELECT COUNT(*) FROM team_memberships m
		JOIN users u ON m.user_id = u.id
		JOIN teams t ON m.team_id = t.id
		WHERE m.joined_at < u.created_at OR m.joined_at < t.created_at`), "joined before user or team existed")
}

func (suite *PipelineTestSuite) TestCommentTimesFollowOrdinalOrder() {
	suite.Require().NotZero(suite.count("SELECT COUNT(*) FROM comments"))

	// Comments are inserted in ordinal order, so rowid order is ordinal
	// order. Creation time must not decrease along it.
	suite.Zero(suite.count(`
		SELECT COUNT(*) FROM comments c1
		JOIN comments c2 ON c1.task_id = c2.task_id AND c1.rowid < c2.rowid
		WHERE c1.created_at > c2.created_at`))
}

func (suite *PipelineTestSuite) TestEmailUniqueness() {
	suite.Zero(suite.count("SELECT COUNT(*) FROM (SELECT email FROM users GROUP BY email HAVING COUNT(*) > 1)"))
}

func (suite *PipelineTestSuite) TestSubtaskNestingDepth() {
	suite.Zero(suite.count(`
		SELECT COUNT(*) FROM tasks child
		JOIN tasks parent ON child.parent_task_id = parent.id
		WHERE parent.parent_task_id IS NOT NULL`))
}

func (suite *PipelineTestSuite) TestSubtasksStayInParentProject() {
	suite.Zero(suite.count(`
		SELECT COUNT(*) FROM tasks child
		JOIN tasks parent ON child.parent_task_id = parent.id
		WHERE child.project_id != parent.project_id`))
}

func (suite *PipelineTestSuite) TestSprintSectionOrder() {
	var sprint *models.Project
	for i := range suite.projects {
		if suite.projects[i].ProjectType == models.ProjectTypeSprint {
			sprint = &suite.projects[i]
			break
		}
	}
	suite.Require().NotNil(sprint, "expected at least one sprint project")

	var names []string
	err := suite.db.Model(&models.Section{}).
		Where("project_id = ?", sprint.ID).
		Order("position ASC").
		Pluck("name", &names).Error
	suite.Require().NoError(err)

	suite.Equal([]string{"Backlog", "To Do", "In Progress", "In Review", "Done"}, names)
}

func (suite *PipelineTestSuite) TestCompletedSprintTasksInTerminalSections() {
	suite.Zero(suite.count(`
		SELECT COUNT(*) FROM tasks t
		JOIN sections s ON t.section_id = s.id
		JOIN projects p ON t.project_id = p.id
		WHERE t.completed = 1
		  AND t.parent_task_id IS NULL
		  AND p.project_type = 'sprint'
		  AND s.name NOT IN ('Done', 'Completed', 'Launched')`))
}

func (suite *PipelineTestSuite) TestUnassignedTaskFraction() {
	total := suite.count("SELECT COUNT(*) FROM tasks WHERE parent_task_id IS NULL")
	unassigned := suite.count("SELECT COUNT(*) FROM tasks WHERE parent_task_id IS NULL AND assignee_id IS NULL")
	suite.Require().Greater(total, int64(500), "need a meaningful sample")

	suite.InDelta(0.15, float64(unassigned)/float64(total), 0.05)
}

func (suite *PipelineTestSuite) TestZeroCommentTaskFraction() {
	total := suite.count("SELECT COUNT(*) FROM tasks WHERE parent_task_id IS NULL")
	withComments := suite.count("SELECT COUNT(DISTINCT task_id) FROM comments")

	suite.InDelta(0.40, float64(total-withComments)/float64(total), 0.06)
}

func (suite *PipelineTestSuite) TestDropdownValuesMatchOptions() {
	suite.Zero(suite.count(`
		SELECT COUNT(*) FROM custom_field_values v
		JOIN custom_field_definitions d ON v.field_id = d.id
		WHERE d.field_type = 'dropdown'
		  AND INSTR(d.options, '"' || v.value || '"') = 0`))
}

func TestPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}
