package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

type Config struct {
	EmployeeCount int
	OutputDB      string
	DBDriver      string
	DBDSN         string
	SchemaFile    string
	StartDate     time.Time
	EndDate       time.Time
	Seed          int64
	UseAI         bool
	OpenAIAPIKey  string
}

func Load() *Config {
	endDate := getEnvDate("SEED_END_DATE", time.Now().Truncate(24*time.Hour))
	return &Config{
		EmployeeCount: getEnvInt("SEED_EMPLOYEE_COUNT", 7500),
		OutputDB:      getEnv("SEED_OUTPUT_DB", "output/workspace_seed.sqlite"),
		DBDriver:      getEnv("SEED_DB_DRIVER", "sqlite"),
		DBDSN:         getEnv("SEED_DB_DSN", ""),
		SchemaFile:    getEnv("SEED_SCHEMA_FILE", ""),
		StartDate:     getEnvDate("SEED_START_DATE", endDate.AddDate(0, -6, 0)),
		EndDate:       endDate,
		Seed:          int64(getEnvInt("SEED_RANDOM_SEED", 0)),
		UseAI:         getEnv("SEED_USE_AI", "") == "true",
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
	}
}

// Validate rejects option combinations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.EmployeeCount <= 0 {
		return fmt.Errorf("employee_count must be positive, got %d", c.EmployeeCount)
	}
	if !c.EndDate.After(c.StartDate) {
		return fmt.Errorf("end_date %s must be after start_date %s",
			c.EndDate.Format(dateLayout), c.StartDate.Format(dateLayout))
	}
	switch c.DBDriver {
	case "sqlite", "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported db_driver %q", c.DBDriver)
	}
	if c.DBDriver != "sqlite" && c.DBDSN == "" {
		return fmt.Errorf("db_driver %q requires a DSN", c.DBDriver)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDate(key string, defaultValue time.Time) time.Time {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return defaultValue
	}
	return t
}
