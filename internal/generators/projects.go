package generators

import (
	"fmt"
	"time"

	"github.com/aditya-h-09/asana-rl-seed-data/internal/config"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/models"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/repository"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/sampling"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/utils"
)

type projectTemplate struct {
	Name string
	Type models.ProjectType
}

// projectTemplates is the project catalog keyed by department. Departments
// without a catalog fall back to the Operations entries.
var projectTemplates = map[models.Department][]projectTemplate{
	models.DeptEngineering: {
		{"Q4 2025 Sprint Planning", models.ProjectTypeSprint},
		{"API v2.0 Migration", models.ProjectTypeSprint},
		{"Performance Optimization Initiative", models.ProjectTypeSprint},
		{"Security Audit & Remediation", models.ProjectTypeSprint},
		{"Bug Tracking & Resolution", models.ProjectTypeOngoing},
		{"Technical Debt Backlog", models.ProjectTypeOngoing},
		{"Infrastructure Modernization", models.ProjectTypeSprint},
		{"Mobile App Redesign - iOS", models.ProjectTypeSprint},
		{"Data Pipeline Architecture", models.ProjectTypeSprint},
		{"Microservices Migration", models.ProjectTypeSprint},
		{"CI/CD Pipeline Improvements", models.ProjectTypeOngoing},
		{"Kubernetes Cluster Upgrade", models.ProjectTypeSprint},
		{"ML Model Training Pipeline", models.ProjectTypeSprint},
		{"Authentication System Overhaul", models.ProjectTypeSprint},
		{"Database Sharding Implementation", models.ProjectTypeSprint},
	},
	models.DeptProduct: {
		{"2025 Product Roadmap", models.ProjectTypeOngoing},
		{"User Research - Enterprise Customers", models.ProjectTypeSprint},
		{"Q1 Feature Prioritization", models.ProjectTypeSprint},
		{"Dashboard Redesign Project", models.ProjectTypeSprint},
		{"A/B Testing Framework", models.ProjectTypeSprint},
		{"Product Analytics Setup", models.ProjectTypeSprint},
		{"Customer Feedback Loop", models.ProjectTypeOngoing},
		{"Onboarding Flow Optimization", models.ProjectTypeSprint},
		{"Mobile App UX Research", models.ProjectTypeSprint},
		{"Design System Evolution", models.ProjectTypeOngoing},
	},
	models.DeptMarketing: {
		{"Q4 2025 Campaign Planning", models.ProjectTypeCampaign},
		{"Product Launch - Enterprise Tier", models.ProjectTypeCampaign},
		{"Content Calendar - Q1 2026", models.ProjectTypeCampaign},
		{"SEO Optimization Project", models.ProjectTypeOngoing},
		{"Brand Refresh Initiative", models.ProjectTypeCampaign},
		{"Webinar Series - Fall 2025", models.ProjectTypeCampaign},
		{"Customer Case Studies", models.ProjectTypeOngoing},
		{"Paid Advertising - Google Ads", models.ProjectTypeCampaign},
		{"Email Marketing Automation", models.ProjectTypeOngoing},
		{"Social Media Strategy", models.ProjectTypeOngoing},
		{"Conference Sponsorships 2026", models.ProjectTypeCampaign},
		{"Partner Co-Marketing", models.ProjectTypeCampaign},
	},
	models.DeptSales: {
		{"Q4 2025 Sales Pipeline", models.ProjectTypeOngoing},
		{"Enterprise Deal Management", models.ProjectTypeOngoing},
		{"Sales Enablement Materials", models.ProjectTypeOngoing},
		{"CRM Migration - Salesforce", models.ProjectTypeSprint},
		{"Sales Training - New Product", models.ProjectTypeSprint},
		{"Account Expansion Strategy", models.ProjectTypeOngoing},
		{"Demo Environment Setup", models.ProjectTypeSprint},
	},
	models.DeptCustomerSuccess: {
		{"Customer Onboarding Process", models.ProjectTypeOngoing},
		{"Support Ticket Management", models.ProjectTypeOngoing},
		{"Customer Health Scoring", models.ProjectTypeSprint},
		{"Documentation Updates", models.ProjectTypeOngoing},
		{"Quarterly Business Reviews", models.ProjectTypeOngoing},
		{"Customer Training Webinars", models.ProjectTypeCampaign},
	},
	models.DeptOperations: {
		{"Q4 Financial Planning", models.ProjectTypeOperations},
		{"Office Expansion - Austin", models.ProjectTypeOperations},
		{"Legal Contract Templates", models.ProjectTypeOngoing},
		{"Compliance Audit Prep", models.ProjectTypeOperations},
		{"HR Policy Updates", models.ProjectTypeOperations},
		{"Recruiting Pipeline", models.ProjectTypeOngoing},
		{"Annual Planning 2026", models.ProjectTypeOperations},
	},
}

// sectionTemplates maps each project type to its ordered workflow stages.
var sectionTemplates = map[models.ProjectType][]string{
	models.ProjectTypeSprint:     {"Backlog", "To Do", "In Progress", "In Review", "Done"},
	models.ProjectTypeOngoing:    {"Incoming", "Prioritized", "In Progress", "Completed"},
	models.ProjectTypeCampaign:   {"Planning", "In Progress", "Review & Approval", "Launched", "Post-Mortem"},
	models.ProjectTypeOperations: {"To Do", "In Progress", "Blocked", "Completed"},
}

var (
	projectStatuses      = []models.ProjectStatus{models.ProjectStatusActive, models.ProjectStatusArchived, models.ProjectStatusOnHold}
	projectStatusWeights = []float64{0.70, 0.25, 0.05}
)

// ProjectGenerator produces 2-5 projects per team, each with its ordered
// section list.
type ProjectGenerator struct {
	repo repository.Repository
	rng  *sampling.Sampler
	cfg  *config.Config
}

// NewProjectGenerator creates a new ProjectGenerator
func NewProjectGenerator(repo repository.Repository, rng *sampling.Sampler, cfg *config.Config) *ProjectGenerator {
	return &ProjectGenerator{repo: repo, rng: rng, cfg: cfg}
}

// Generate creates and persists projects and sections for every team. The
// returned projects carry their sections for downstream generators.
func (g *ProjectGenerator) Generate(teams []models.Team, users []models.User) ([]models.Project, error) {
	usersByDept := make(map[models.Department][]models.User)
	for _, user := range users {
		usersByDept[user.Department] = append(usersByDept[user.Department], user)
	}

	var projects []models.Project
	var sections []models.Section

	for _, team := range teams {
		templates, ok := projectTemplates[team.Department]
		if !ok {
			templates = projectTemplates[models.DeptOperations]
		}

		numProjects := g.rng.IntBetween(2, 5)
		for _, template := range sampling.SampleN(g.rng, templates, numProjects) {
			project := g.buildProject(team, template, usersByDept, users)
			projects = append(projects, project)

			for position, name := range sectionTemplates[template.Type] {
				sections = append(sections, models.Section{
					ID:        utils.NewID(),
					ProjectID: project.ID,
					Name:      name,
					Position:  position,
				})
			}
		}
	}

	err := g.repo.Transaction(func(tx repository.Repository) error {
		if err := tx.CreateProjects(projects); err != nil {
			return err
		}
		return tx.CreateSections(sections)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist projects: %w", err)
	}

	// Attach sections in position order for the task generator.
	sectionsByProject := make(map[string][]models.Section)
	for _, section := range sections {
		sectionsByProject[section.ProjectID] = append(sectionsByProject[section.ProjectID], section)
	}
	for i := range projects {
		projects[i].Sections = sectionsByProject[projects[i].ID]
	}

	return projects, nil
}

func (g *ProjectGenerator) buildProject(team models.Team, template projectTemplate, usersByDept map[models.Department][]models.User, allUsers []models.User) models.Project {
	var description *string
	if g.rng.Chance(0.30) {
		text := fmt.Sprintf("Project for %s. Key objectives and deliverables to be tracked.", template.Name)
		description = &text
	}

	// Owner from the team's department, any user as the fallback.
	ownerPool := usersByDept[team.Department]
	if len(ownerPool) == 0 {
		ownerPool = allUsers
	}
	owner := sampling.Choice(g.rng, ownerPool)

	// Skew creation toward the start of the window so most of the
	// portfolio is already in flight.
	createdAt := g.rng.DateBetween(g.cfg.StartDate, g.cfg.EndDate, sampling.DateOptions{WeightToStart: true})

	var dueDate *time.Time
	switch template.Type {
	case models.ProjectTypeSprint:
		due := createdAt.AddDate(0, 0, 7*g.rng.IntBetween(2, 6))
		dueDate = &due
	case models.ProjectTypeCampaign:
		due := createdAt.AddDate(0, 0, 30*g.rng.IntBetween(1, 3))
		dueDate = &due
	case models.ProjectTypeOperations:
		if g.rng.Chance(0.50) {
			due := createdAt.AddDate(0, 0, 30*g.rng.IntBetween(1, 4))
			dueDate = &due
		}
	}

	return models.Project{
		ID:          utils.NewID(),
		TeamID:      team.ID,
		Name:        template.Name,
		Description: description,
		ProjectType: template.Type,
		Status:      sampling.WeightedChoice(g.rng, projectStatuses, projectStatusWeights),
		OwnerID:     owner.ID,
		CreatedAt:   createdAt,
		DueDate:     dueDate,
	}
}
