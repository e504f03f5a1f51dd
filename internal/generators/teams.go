package generators

import (
	"fmt"

	"github.com/aditya-h-09/asana-rl-seed-data/internal/models"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/repository"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/sampling"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/utils"
)

type teamTemplate struct {
	Name        string
	Department  models.Department
	Description string
}

// teamTemplates is the fixed team catalog spanning six departments. Every
// entry is instantiated exactly once per run.
var teamTemplates = []teamTemplate{
	// Engineering
	{"Platform Engineering", models.DeptEngineering, "Core platform infrastructure and scalability"},
	{"Frontend Engineering", models.DeptEngineering, "Web and mobile application development"},
	{"Backend Engineering", models.DeptEngineering, "API and backend services development"},
	{"Data Engineering", models.DeptEngineering, "Data pipelines and analytics infrastructure"},
	{"Security Engineering", models.DeptEngineering, "Application and infrastructure security"},
	{"DevOps", models.DeptEngineering, "CI/CD and infrastructure automation"},
	{"Mobile Engineering", models.DeptEngineering, "iOS and Android native applications"},
	{"ML Engineering", models.DeptEngineering, "Machine learning models and systems"},

	// Product
	{"Product Management", models.DeptProduct, "Product strategy and roadmap planning"},
	{"Product Design", models.DeptProduct, "UX/UI design and user research"},
	{"Product Analytics", models.DeptProduct, "User behavior analysis and metrics"},

	// Marketing
	{"Growth Marketing", models.DeptMarketing, "User acquisition and growth initiatives"},
	{"Content Marketing", models.DeptMarketing, "Blog, guides, and educational content"},
	{"Product Marketing", models.DeptMarketing, "Go-to-market strategy and positioning"},
	{"Demand Generation", models.DeptMarketing, "Lead generation and nurturing campaigns"},
	{"Brand & Creative", models.DeptMarketing, "Brand identity and creative assets"},

	// Sales
	{"Enterprise Sales", models.DeptSales, "Large enterprise account management"},
	{"Mid-Market Sales", models.DeptSales, "Mid-sized business sales"},
	{"Sales Engineering", models.DeptSales, "Technical sales support and demos"},

	// Customer Success
	{"Customer Success", models.DeptCustomerSuccess, "Customer onboarding and support"},
	{"Technical Support", models.DeptCustomerSuccess, "Technical troubleshooting and issue resolution"},

	// Operations
	{"Business Operations", models.DeptOperations, "Internal operations and process optimization"},
	{"Finance & Accounting", models.DeptOperations, "Financial planning and accounting"},
	{"People Operations", models.DeptOperations, "HR and employee experience"},
	{"Legal & Compliance", models.DeptOperations, "Legal affairs and regulatory compliance"},
}

// TeamGenerator produces one team per catalog template.
type TeamGenerator struct {
	repo repository.Repository
	rng  *sampling.Sampler
}

// NewTeamGenerator creates a new TeamGenerator
func NewTeamGenerator(repo repository.Repository, rng *sampling.Sampler) *TeamGenerator {
	return &TeamGenerator{repo: repo, rng: rng}
}

// Generate creates and persists the organization's teams. Team formation
// is staggered over the 180 days following the organization's creation.
func (g *TeamGenerator) Generate(org *models.Organization) ([]models.Team, error) {
	teams := make([]models.Team, 0, len(teamTemplates))

	for _, template := range teamTemplates {
		daysAfterOrg := g.rng.IntBetween(0, 180)

		teams = append(teams, models.Team{
			ID:          utils.NewID(),
			OrgID:       org.ID,
			Name:        template.Name,
			Description: template.Description,
			Department:  template.Department,
			CreatedAt:   org.CreatedAt.AddDate(0, 0, daysAfterOrg),
		})
	}

	err := g.repo.Transaction(func(tx repository.Repository) error {
		return tx.CreateTeams(teams)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist teams: %w", err)
	}

	return teams, nil
}
