package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	end := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	return &Config{
		EmployeeCount: 7500,
		OutputDB:      "output/workspace_seed.sqlite",
		DBDriver:      "sqlite",
		StartDate:     end.AddDate(0, -6, 0),
		EndDate:       end,
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 7500, cfg.EmployeeCount)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "output/workspace_seed.sqlite", cfg.OutputDB)
	assert.Equal(t, cfg.EndDate.AddDate(0, -6, 0), cfg.StartDate)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SEED_EMPLOYEE_COUNT", "250")
	t.Setenv("SEED_END_DATE", "2026-03-15")
	t.Setenv("SEED_RANDOM_SEED", "42")
	t.Setenv("SEED_USE_AI", "true")

	cfg := Load()

	assert.Equal(t, 250, cfg.EmployeeCount)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), cfg.EndDate)
	assert.Equal(t, time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), cfg.StartDate)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.UseAI)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("SEED_EMPLOYEE_COUNT", "lots")
	t.Setenv("SEED_END_DATE", "March 31st")

	cfg := Load()

	assert.Equal(t, 7500, cfg.EmployeeCount)
	assert.False(t, cfg.EndDate.IsZero())
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.EmployeeCount = 0
	assert.ErrorContains(t, cfg.Validate(), "employee_count")

	cfg = validConfig()
	cfg.StartDate = cfg.EndDate
	assert.ErrorContains(t, cfg.Validate(), "must be after")

	cfg = validConfig()
	cfg.DBDriver = "oracle"
	assert.ErrorContains(t, cfg.Validate(), "unsupported db_driver")

	cfg = validConfig()
	cfg.DBDriver = "postgres"
	cfg.DBDSN = ""
	assert.ErrorContains(t, cfg.Validate(), "requires a DSN")

	cfg = validConfig()
	cfg.DBDriver = "mysql"
	cfg.DBDSN = "user:pass@tcp(localhost:3306)/seed?parseTime=true"
	assert.NoError(t, cfg.Validate())
}
