package generators

import (
	"testing"

	"github.com/aditya-h-09/asana-rl-seed-data/internal/config"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/database"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/models"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/repository"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestUserDepartmentDistribution(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.InitializeSchema(db, ""))

	repo := repository.New(db)
	rng := sampling.New(7)
	cfg := &config.Config{EmployeeCount: 10000}

	org, err := NewOrganizationGenerator(repo, rng, cfg).Generate()
	require.NoError(t, err)
	teams, err := NewTeamGenerator(repo, rng).Generate(org)
	require.NoError(t, err)
	users, err := NewUserGenerator(repo, rng, cfg).Generate(org, teams)
	require.NoError(t, err)
	require.Len(t, users, 10000)

	counts := make(map[models.Department]int)
	for _, user := range users {
		counts[user.Department]++
	}

	expected := map[models.Department]float64{
		models.DeptEngineering:     0.35,
		models.DeptSales:           0.20,
		models.DeptCustomerSuccess: 0.15,
		models.DeptMarketing:       0.12,
		models.DeptProduct:         0.10,
		models.DeptOperations:      0.08,
	}

	total := float64(len(users))
	for dept, want := range expected {
		assert.InDelta(t, want, float64(counts[dept])/total, 0.02, string(dept))
	}
}
