package generators

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aditya-h-09/asana-rl-seed-data/internal/config"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/models"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/repository"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/sampling"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/services"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/utils"
)

type taskPattern struct {
	Prefixes   []string
	Components []string
	Actions    []string
	Examples   []string
}

// taskPatterns holds the per-department task name banks. Only Engineering
// carries (prefix, component, action) triples for composed names.
var taskPatterns = map[models.Department]taskPattern{
	models.DeptEngineering: {
		Prefixes: []string{
			"Implement", "Fix", "Refactor", "Update", "Add", "Remove",
			"Optimize", "Debug", "Review", "Test", "Deploy", "Configure",
			"Migrate", "Upgrade", "Investigate", "Document",
		},
		Components: []string{
			"API", "Database", "Frontend", "Backend", "UI", "Authentication",
			"Payment", "Notification", "Cache", "Search", "Analytics",
			"Integration", "Service", "Module", "Component", "Pipeline",
			"Infrastructure", "Monitoring", "Logging", "Security",
		},
		Actions: []string{
			"endpoint", "schema", "query", "component", "service", "handler",
			"middleware", "validation", "error handling", "logging", "tests",
			"documentation", "configuration", "deployment", "migration",
		},
		Examples: []string{
			"Implement OAuth 2.0 authentication flow",
			"Fix memory leak in data processing pipeline",
			"Refactor user service to use dependency injection",
			"Add rate limiting to API endpoints",
			"Optimize database queries for dashboard",
			"Debug infinite loop in background worker",
			"Review pull request - Payment integration",
			"Test edge cases for file upload feature",
			"Deploy hotfix to production - Critical bug",
			"Configure Redis cache for session storage",
			"Migrate legacy endpoints to v2 API",
			"Update dependencies to latest stable versions",
			"Investigate performance degradation in search",
			"Remove deprecated feature flags",
			"Add monitoring alerts for error rates",
		},
	},
	models.DeptProduct: {
		Examples: []string{
			"Define requirements for dashboard redesign",
			"Create user flow diagrams for onboarding",
			"Conduct user interviews - Enterprise segment",
			"Analyze A/B test results for signup flow",
			"Write PRD for mobile app navigation",
			"Review design mockups with stakeholders",
			"Update product roadmap for Q1 2026",
			"Prioritize backlog items for next sprint",
			"Create wireframes for settings page",
			"Design new icon set for navigation",
			"Research competitor features - Collaboration tools",
			"Define success metrics for new feature",
			"Document API requirements for integration",
			"Review accessibility compliance for dashboard",
		},
	},
	models.DeptMarketing: {
		Examples: []string{
			`Write blog post - "10 ways to improve productivity"`,
			"Design email template for product launch",
			"Create social media content calendar for December",
			"Update SEO keywords for landing pages",
			"Design banner ads for Google Display campaign",
			"Write copy for product announcement",
			`Schedule webinar - "Getting started with our platform"`,
			"Create customer case study - Fortune 500 client",
			"Design infographic on product benefits",
			"Update website copy for new pricing",
			"Plan Q1 content strategy",
			"Create video script for product demo",
			"Design trade show booth graphics",
			"Write press release for funding announcement",
			"Update brand guidelines document",
		},
	},
	models.DeptSales: {
		Examples: []string{
			"Follow up with Acme Corp - Enterprise deal",
			"Prepare demo for TechStart Inc",
			"Update deal stage in Salesforce - ABC Company",
			"Send proposal to Beta Solutions",
			"Schedule discovery call with new lead",
			"Create custom pricing for enterprise tier",
			"Update sales deck with new case studies",
			"Prepare ROI analysis for prospect",
			"Follow up on contract renewal - XYZ Corp",
			"Schedule executive sponsor call",
			"Create demo environment for evaluation",
			"Send security questionnaire responses",
		},
	},
	models.DeptCustomerSuccess: {
		Examples: []string{
			"Onboard new customer - Alpha Enterprises",
			"Schedule quarterly business review - Beta Corp",
			"Resolve support ticket #1234 - Login issues",
			"Create help article for export feature",
			"Update customer health score spreadsheet",
			"Send check-in email to at-risk accounts",
			"Conduct training session for new users",
			"Investigate reported bug in mobile app",
			"Create video tutorial for advanced features",
			"Follow up on feature request from customer",
			"Update FAQ documentation",
			"Analyze churn data for Q3",
		},
	},
	models.DeptOperations: {
		Examples: []string{
			"Review Q4 budget vs actuals",
			"Process invoices for vendor payments",
			"Update employee handbook policies",
			"Schedule interviews for engineering role",
			"Prepare board meeting materials",
			"Review legal contract for new vendor",
			"Complete compliance audit checklist",
			"Update org chart with new hires",
			"Process expense reports for travel",
			"Prepare financial forecast for 2026",
			"Review insurance policy renewals",
			"Coordinate office space planning",
		},
	},
}

var descriptionBullets = []string{
	"- Review current implementation and identify issues",
	"- Research best practices and alternatives",
	"- Create detailed technical spec",
	"- Implement changes with tests",
	"- Update documentation",
	"- Deploy to staging for QA review",
}

var (
	subtaskVerbs   = []string{"Complete", "Review", "Test", "Document"}
	subtaskObjects = []string{"component", "feature", "integration", "changes"}
)

var (
	taskPriorities      = []models.TaskPriority{models.PriorityLow, models.PriorityMedium, models.PriorityHigh, models.PriorityUrgent}
	taskPriorityWeights = []float64{0.20, 0.50, 0.25, 0.05}
)

// sectionPositionWeights bias task placement toward earlier workflow
// stages; truncated to the project's section count.
var sectionPositionWeights = []float64{3, 2, 2, 1, 1}

// terminalSectionNames identify the workflow stages completed tasks are
// relocated to when the project has one.
var terminalSectionNames = map[string]bool{
	"Done":      true,
	"Completed": true,
	"Launched":  true,
}

// fallbackMemberPoolSize is how many global users stand in for a project
// whose team has no active members.
const fallbackMemberPoolSize = 20

// TaskGenerator produces tasks and subtasks for every project.
type TaskGenerator struct {
	repo repository.Repository
	rng  *sampling.Sampler
	cfg  *config.Config
	text *services.TextService
}

// NewTaskGenerator creates a new TaskGenerator. A nil text service keeps
// name and description generation fully template-based.
func NewTaskGenerator(repo repository.Repository, rng *sampling.Sampler, cfg *config.Config, text *services.TextService) *TaskGenerator {
	return &TaskGenerator{repo: repo, rng: rng, cfg: cfg, text: text}
}

// Generate creates and persists tasks for all projects, returning the
// lightweight projection downstream generators consume.
func (g *TaskGenerator) Generate(ctx context.Context, projects []models.Project, users []models.User) ([]models.TaskRef, error) {
	teamNames, err := g.repo.TeamNamesByProject()
	if err != nil {
		return nil, fmt.Errorf("failed to load project teams: %w", err)
	}

	var fallbackPool []models.User
	var allTasks []models.Task
	now := time.Now()

	for _, project := range projects {
		if len(project.Sections) == 0 {
			continue
		}

		department := departmentForTeam(teamNames[project.ID])

		memberPool, err := g.repo.ActiveProjectMembers(project.ID, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to load project members: %w", err)
		}
		if len(memberPool) == 0 {
			if fallbackPool == nil {
				fallbackPool, err = g.repo.FirstUsers(fallbackMemberPoolSize)
				if err != nil {
					return nil, fmt.Errorf("failed to load fallback member pool: %w", err)
				}
			}
			memberPool = fallbackPool
		}
		if len(memberPool) == 0 {
			continue
		}

		projectTasks := make([]models.Task, 0, 60)
		for i := 0; i < g.taskCount(project); i++ {
			projectTasks = append(projectTasks, g.buildTask(ctx, project, department, memberPool, now))
		}

		// 10% of projects grow 1-3 subtasks.
		if g.rng.Chance(0.10) && len(projectTasks) > 0 {
			projectTasks = g.attachSubtasks(projectTasks, memberPool)
		}

		allTasks = append(allTasks, projectTasks...)
	}

	err = g.repo.Transaction(func(tx repository.Repository) error {
		return tx.CreateTasks(allTasks)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist tasks: %w", err)
	}

	refs := make([]models.TaskRef, len(allTasks))
	for i, task := range allTasks {
		refs[i] = models.TaskRef{
			ID:        task.ID,
			ProjectID: task.ProjectID,
			Name:      task.Name,
			CreatedBy: task.CreatedBy,
			CreatedAt: task.CreatedAt,
		}
	}
	return refs, nil
}

func (g *TaskGenerator) taskCount(project models.Project) int {
	switch {
	case project.Status == models.ProjectStatusArchived:
		return g.rng.IntBetween(5, 15)
	case project.ProjectType == models.ProjectTypeSprint:
		return g.rng.IntBetween(15, 40)
	case project.ProjectType == models.ProjectTypeOngoing:
		return g.rng.IntBetween(20, 60)
	default:
		return g.rng.IntBetween(10, 30)
	}
}

func (g *TaskGenerator) buildTask(ctx context.Context, project models.Project, department models.Department, memberPool []models.User, now time.Time) models.Task {
	name := g.taskName(ctx, department, project.Name)
	description := g.taskDescription(ctx, name)

	section := sampling.WeightedChoice(g.rng, project.Sections, sectionPositionWeights[:min(len(project.Sections), len(sectionPositionWeights))])

	var assigneeID *string
	if !g.rng.Chance(0.15) {
		id := sampling.Choice(g.rng, memberPool).ID
		assigneeID = &id
	}

	createdAt := g.rng.DatetimeBetween(project.CreatedAt, g.cfg.EndDate, true)
	if createdAt.After(now) {
		createdAt = now.AddDate(0, 0, -g.rng.IntBetween(1, 30))
	}

	completed, completedAt := g.rng.CompletionStatus(createdAt, project.ProjectType, now)
	if completed {
		if terminal := terminalSections(project.Sections); len(terminal) > 0 {
			section = sampling.Choice(g.rng, terminal)
		}
	}

	return models.Task{
		ID:          utils.NewID(),
		ProjectID:   project.ID,
		SectionID:   section.ID,
		Name:        name,
		Description: description,
		AssigneeID:  assigneeID,
		CreatedBy:   sampling.Choice(g.rng, memberPool).ID,
		CreatedAt:   createdAt,
		DueDate:     g.rng.DueDate(createdAt),
		Completed:   completed,
		CompletedAt: completedAt,
		Priority:    sampling.WeightedChoice(g.rng, taskPriorities, taskPriorityWeights),
	}
}

// attachSubtasks appends 1-3 subtasks to the project's task list. Parents
// are drawn from the top-level tasks only, so nesting never exceeds one
// level.
func (g *TaskGenerator) attachSubtasks(projectTasks []models.Task, memberPool []models.User) []models.Task {
	topLevel := make([]models.Task, 0, len(projectTasks))
	for _, task := range projectTasks {
		if task.ParentTaskID == nil {
			topLevel = append(topLevel, task)
		}
	}
	if len(topLevel) == 0 {
		return projectTasks
	}

	for i := 0; i < g.rng.IntBetween(1, 3); i++ {
		parent := sampling.Choice(g.rng, topLevel)
		projectTasks = append(projectTasks, g.buildSubtask(parent, memberPool))
	}
	return projectTasks
}

// buildSubtask copies the parent's project, section, creator, timing and
// due date. Subtasks get their own assignee, medium priority, and are
// never completed or nested further.
func (g *TaskGenerator) buildSubtask(parent models.Task, memberPool []models.User) models.Task {
	assigneeID := sampling.Choice(g.rng, memberPool).ID
	parentID := parent.ID

	name := fmt.Sprintf("Subtask: %s %s",
		sampling.Choice(g.rng, subtaskVerbs),
		sampling.Choice(g.rng, subtaskObjects))

	return models.Task{
		ID:           utils.NewID(),
		ProjectID:    parent.ProjectID,
		SectionID:    parent.SectionID,
		ParentTaskID: &parentID,
		Name:         name,
		AssigneeID:   &assigneeID,
		CreatedBy:    parent.CreatedBy,
		CreatedAt:    parent.CreatedAt,
		DueDate:      parent.DueDate,
		Priority:     models.PriorityMedium,
	}
}

func (g *TaskGenerator) taskName(ctx context.Context, department models.Department, projectName string) string {
	if g.text != nil && g.rng.Chance(0.30) {
		return g.text.TaskName(ctx, string(department), projectName)
	}

	pattern, ok := taskPatterns[department]
	if !ok {
		pattern = taskPatterns[models.DeptOperations]
	}

	if g.rng.Chance(0.20) && department == models.DeptEngineering {
		return fmt.Sprintf("%s %s %s",
			sampling.Choice(g.rng, pattern.Prefixes),
			sampling.Choice(g.rng, pattern.Components),
			sampling.Choice(g.rng, pattern.Actions))
	}
	return sampling.Choice(g.rng, pattern.Examples)
}

func (g *TaskGenerator) taskDescription(ctx context.Context, taskName string) *string {
	if g.rng.Chance(0.20) {
		return nil
	}

	detailed := g.rng.Chance(0.30)

	if g.text != nil && g.rng.Chance(0.20) {
		text := g.text.TaskDescription(ctx, taskName, detailed)
		return &text
	}

	var text string
	if detailed {
		bullets := sampling.SampleN(g.rng, descriptionBullets, g.rng.IntBetween(3, 5))
		text = strings.Join(bullets, "\n")
	} else {
		lower := strings.ToLower(taskName)
		templates := []string{
			fmt.Sprintf("Need to complete %s by EOW. See project requirements for details.", lower),
			fmt.Sprintf("Working on %s. Coordinate with team lead before starting implementation.", lower),
			fmt.Sprintf("Priority task for current sprint. %s", sampling.Choice(g.rng, []string{"Blocked by previous task.", "Ready to start.", "Needs design review first."})),
			fmt.Sprintf("Task details: %s. Estimated effort: %d hours.", taskName, g.rng.IntBetween(2, 8)),
		}
		text = sampling.Choice(g.rng, templates)
	}
	return &text
}

func terminalSections(sections []models.Section) []models.Section {
	var terminal []models.Section
	for _, section := range sections {
		if terminalSectionNames[section.Name] {
			terminal = append(terminal, section)
		}
	}
	return terminal
}

// departmentForTeam resolves a team name to a department by ordered
// keyword match, defaulting to Operations.
func departmentForTeam(teamName string) models.Department {
	lower := strings.ToLower(teamName)
	for _, dept := range models.Departments {
		if strings.Contains(lower, strings.ToLower(string(dept))) {
			return dept
		}
	}
	return models.DeptOperations
}
