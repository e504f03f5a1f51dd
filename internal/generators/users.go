package generators

import (
	"fmt"
	"strings"

	"github.com/aditya-h-09/asana-rl-seed-data/internal/config"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/models"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/repository"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/sampling"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/utils"
)

var firstNames = []string{
	"James", "John", "Robert", "Michael", "William", "David", "Richard", "Joseph",
	"Thomas", "Christopher", "Daniel", "Matthew", "Anthony", "Mark", "Donald",
	"Steven", "Andrew", "Paul", "Joshua", "Kenneth", "Kevin", "Brian", "George",
	"Timothy", "Ronald", "Edward", "Jason", "Jeffrey", "Ryan", "Jacob", "Gary",
	"Nicholas", "Eric", "Jonathan", "Stephen", "Larry", "Justin", "Scott", "Brandon",
	"Mary", "Patricia", "Jennifer", "Linda", "Barbara", "Elizabeth", "Susan",
	"Jessica", "Sarah", "Karen", "Lisa", "Nancy", "Betty", "Margaret", "Sandra",
	"Ashley", "Kimberly", "Emily", "Donna", "Michelle", "Carol", "Amanda", "Melissa",
	"Deborah", "Stephanie", "Dorothy", "Rebecca", "Sharon", "Laura", "Cynthia",
	"Amy", "Angela", "Helen", "Anna", "Brenda", "Pamela", "Emma", "Nicole",
	"Samantha", "Katherine", "Christine", "Debra", "Rachel", "Carolyn", "Janet",
	"Wei", "Mohammed", "Priya", "Chen", "Sofia", "Diego", "Fatima", "Raj",
	"Maria", "Carlos", "Aisha", "Luis", "Mei", "Hassan", "Yuki", "Sandeep",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Thompson", "White",
	"Harris", "Clark", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores", "Green", "Adams",
	"Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell", "Carter", "Roberts",
	"Gomez", "Phillips", "Evans", "Turner", "Diaz", "Parker", "Cruz", "Edwards",
	"Collins", "Reyes", "Stewart", "Morris", "Morales", "Murphy", "Cook", "Rogers",
	"Gutierrez", "Ortiz", "Morgan", "Cooper", "Peterson", "Bailey", "Reed", "Kelly",
	"Howard", "Ramos", "Kim", "Cox", "Ward", "Richardson", "Watson", "Brooks",
	"Chavez", "Wood", "James", "Bennett", "Gray", "Mendoza", "Ruiz", "Hughes",
	"Price", "Alvarez", "Castillo", "Sanders", "Patel", "Myers", "Long", "Ross",
	"Foster", "Jimenez", "Powell", "Jenkins", "Perry", "Russell", "Sullivan",
	"Bell", "Coleman", "Butler", "Henderson", "Barnes", "Gonzales", "Fisher",
	"Vasquez", "Simmons", "Romero", "Jordan", "Patterson", "Alexander", "Hamilton",
	"Graham", "Reynolds", "Griffin", "Wallace", "Moreno", "West", "Cole", "Hayes",
	"Bryant", "Herrera", "Gibson", "Ellis", "Tran", "Medina", "Aguilar", "Stevens",
	"Murray", "Ford", "Castro", "Marshall", "Owens", "Harrison", "Fernandez",
	"McDonald", "Woods", "Washington", "Kennedy", "Wells", "Vargas", "Henry",
	"Chen", "Freeman", "Webb", "Tucker", "Guzman", "Burns", "Crawford", "Olson",
}

var jobTitles = map[models.Department][]string{
	models.DeptEngineering: {
		"Software Engineer", "Senior Software Engineer", "Staff Engineer",
		"Principal Engineer", "Engineering Manager", "Senior Engineering Manager",
		"Director of Engineering", "VP of Engineering", "CTO",
		"Frontend Engineer", "Backend Engineer", "Full Stack Engineer",
		"DevOps Engineer", "Site Reliability Engineer", "Data Engineer",
		"ML Engineer", "Security Engineer", "QA Engineer", "Infrastructure Engineer",
	},
	models.DeptProduct: {
		"Product Manager", "Senior Product Manager", "Principal Product Manager",
		"Group Product Manager", "Director of Product", "VP of Product", "CPO",
		"Product Designer", "Senior Product Designer", "Lead Designer",
		"Design Manager", "Director of Design", "UX Researcher", "Product Analyst",
	},
	models.DeptMarketing: {
		"Marketing Manager", "Senior Marketing Manager", "Director of Marketing",
		"VP of Marketing", "CMO", "Content Marketing Manager", "Growth Manager",
		"Demand Generation Manager", "Product Marketing Manager", "Brand Manager",
		"Marketing Coordinator", "Social Media Manager", "SEO Specialist",
		"Marketing Analyst", "Creative Director", "Copywriter", "Graphic Designer",
	},
	models.DeptSales: {
		"Account Executive", "Senior Account Executive", "Sales Manager",
		"Senior Sales Manager", "Director of Sales", "VP of Sales", "CRO",
		"Sales Development Representative", "Business Development Representative",
		"Solutions Engineer", "Sales Engineer", "Account Manager",
		"Enterprise Account Executive", "Regional Sales Manager",
	},
	models.DeptCustomerSuccess: {
		"Customer Success Manager", "Senior Customer Success Manager",
		"Director of Customer Success", "VP of Customer Success",
		"Customer Support Specialist", "Technical Support Engineer",
		"Support Manager", "Customer Success Coordinator", "Onboarding Specialist",
	},
	models.DeptOperations: {
		"Operations Manager", "Senior Operations Manager", "Director of Operations",
		"VP of Operations", "COO", "Business Operations Analyst", "Finance Manager",
		"Financial Analyst", "Accountant", "Senior Accountant", "Controller",
		"CFO", "HR Manager", "Recruiter", "People Operations Manager",
		"Chief People Officer", "Legal Counsel", "Compliance Manager", "CEO",
	},
}

// departmentWeights is the fixed categorical distribution users are
// assigned departments by.
var (
	departmentChoices = []models.Department{
		models.DeptEngineering, models.DeptSales, models.DeptCustomerSuccess,
		models.DeptMarketing, models.DeptProduct, models.DeptOperations,
	}
	departmentWeights = []float64{0.35, 0.20, 0.15, 0.12, 0.10, 0.08}
)

// UserGenerator produces the employee population and its team-membership
// edges.
type UserGenerator struct {
	repo repository.Repository
	rng  *sampling.Sampler
	cfg  *config.Config
}

// NewUserGenerator creates a new UserGenerator
func NewUserGenerator(repo repository.Repository, rng *sampling.Sampler, cfg *config.Config) *UserGenerator {
	return &UserGenerator{repo: repo, rng: rng, cfg: cfg}
}

// Generate creates the configured number of users and assigns each to 1-2
// teams from their department's pool. Users and memberships are persisted
// together as this generator's unit of work.
func (g *UserGenerator) Generate(org *models.Organization, teams []models.Team) ([]models.User, error) {
	users := make([]models.User, 0, g.cfg.EmployeeCount)
	existingEmails := make(map[string]bool, g.cfg.EmployeeCount)

	for i := 0; i < g.cfg.EmployeeCount; i++ {
		firstName := sampling.Choice(g.rng, firstNames)
		lastName := sampling.Choice(g.rng, lastNames)

		email := g.generateEmail(firstName, lastName, org.Domain, existingEmails)
		existingEmails[email] = true

		department := sampling.WeightedChoice(g.rng, departmentChoices, departmentWeights)

		users = append(users, models.User{
			ID:         utils.NewID(),
			OrgID:      org.ID,
			Email:      email,
			Name:       firstName + " " + lastName,
			JobTitle:   sampling.Choice(g.rng, jobTitles[department]),
			Department: department,
			IsActive:   !g.rng.Chance(0.02),
			CreatedAt:  org.CreatedAt.AddDate(0, 0, g.rng.IntBetween(0, 730)),
		})
	}

	memberships := g.assignTeams(users, teams)

	err := g.repo.Transaction(func(tx repository.Repository) error {
		if err := tx.CreateUsers(users); err != nil {
			return err
		}
		return tx.CreateMemberships(memberships)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist users: %w", err)
	}

	return users, nil
}

// generateEmail derives an address from one of four patterns, appending an
// incrementing numeric suffix on collision so emails stay globally unique
// within the run.
func (g *UserGenerator) generateEmail(firstName, lastName, domain string, existing map[string]bool) string {
	first := strings.ToLower(firstName)
	last := strings.ToLower(lastName)

	patterns := []string{
		first + "." + last,
		first + last,
		first[:1] + last,
		first + last[:1],
	}
	local := sampling.Choice(g.rng, patterns)

	email := local + "@" + domain
	for counter := 1; existing[email]; counter++ {
		email = fmt.Sprintf("%s%d@%s", local, counter, domain)
	}
	return email
}

func (g *UserGenerator) assignTeams(users []models.User, teams []models.Team) []models.TeamMembership {
	teamsByDept := make(map[models.Department][]models.Team)
	for _, team := range teams {
		teamsByDept[team.Department] = append(teamsByDept[team.Department], team)
	}

	var memberships []models.TeamMembership
	for _, user := range users {
		deptTeams := teamsByDept[user.Department]
		if len(deptTeams) == 0 {
			// Explicit fallback pool for departments with no teams.
			deptTeams = teamsByDept[models.DeptOperations]
		}
		if len(deptTeams) == 0 {
			continue
		}

		numTeams := 1
		if g.rng.Chance(0.25) {
			numTeams = 2
		}

		for _, team := range sampling.SampleN(g.rng, deptTeams, numTeams) {
			joinedAt := user.CreatedAt
			if team.CreatedAt.After(joinedAt) {
				joinedAt = team.CreatedAt
			}

			memberships = append(memberships, models.TeamMembership{
				ID:       utils.NewID(),
				TeamID:   team.ID,
				UserID:   user.ID,
				Role:     g.membershipRole(user.JobTitle),
				JoinedAt: joinedAt,
			})
		}
	}
	return memberships
}

func (g *UserGenerator) membershipRole(jobTitle string) models.MembershipRole {
	if strings.Contains(jobTitle, "Director") || strings.Contains(jobTitle, "VP") {
		return models.RoleLead
	}
	if g.rng.Chance(0.10) {
		return models.RoleAdmin
	}
	return models.RoleMember
}
