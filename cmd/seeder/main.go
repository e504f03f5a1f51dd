package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/aditya-h-09/asana-rl-seed-data/internal/config"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/database"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/generators"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/repository"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/sampling"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/services"
)

const dateLayout = "2006-01-02"

// summaryTables fixes the order of the final statistics block.
var summaryTables = []string{
	"organizations", "teams", "users", "team_memberships",
	"projects", "sections", "tasks", "comments",
	"custom_field_definitions", "custom_field_values",
	"tags", "task_tags",
}

func main() {
	// Environment config, overridable by flags
	cfg := config.Load()

	flag.IntVar(&cfg.EmployeeCount, "employee-count", cfg.EmployeeCount, "target user population")
	flag.StringVar(&cfg.OutputDB, "output-db", cfg.OutputDB, "destination sqlite file path")
	flag.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "destination driver: sqlite, mysql or postgres")
	flag.StringVar(&cfg.DBDSN, "db-dsn", cfg.DBDSN, "DSN for mysql/postgres targets")
	flag.StringVar(&cfg.SchemaFile, "schema-file", cfg.SchemaFile, "externally supplied schema SQL (empty = auto-migrate)")
	startDate := flag.String("start-date", cfg.StartDate.Format(dateLayout), "start of the project/task scheduling window (YYYY-MM-DD)")
	endDate := flag.String("end-date", cfg.EndDate.Format(dateLayout), "end of the project/task scheduling window (YYYY-MM-DD)")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time-based)")
	flag.BoolVar(&cfg.UseAI, "use-ai", cfg.UseAI, "generate some task text through the OpenAI API")
	flag.Parse()

	var err error
	if cfg.StartDate, err = time.Parse(dateLayout, *startDate); err != nil {
		log.Fatalf("Invalid start-date: %v", err)
	}
	if cfg.EndDate, err = time.Parse(dateLayout, *endDate); err != nil {
		log.Fatalf("Invalid end-date: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Println("=== Starting workspace seed data generation ===")
	startTime := time.Now()

	// Connect to the destination store and initialize the schema
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.InitializeSchema(db, cfg.SchemaFile); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	repo := repository.New(db)
	rng := sampling.New(cfg.Seed)

	// Optional remote text generation, disabled by default
	var text *services.TextService
	if cfg.UseAI {
		text = services.NewTextService(cfg.OpenAIAPIKey)
	}

	ctx := context.Background()

	log.Println("Step 1: Generating organization...")
	org, err := generators.NewOrganizationGenerator(repo, rng, cfg).Generate()
	if err != nil {
		log.Fatalf("Failed to generate organization: %v", err)
	}
	log.Printf("Created organization: %s", org.Name)

	log.Println("Step 2: Generating teams...")
	teams, err := generators.NewTeamGenerator(repo, rng).Generate(org)
	if err != nil {
		log.Fatalf("Failed to generate teams: %v", err)
	}
	log.Printf("Created %d teams", len(teams))

	log.Println("Step 3: Generating users...")
	users, err := generators.NewUserGenerator(repo, rng, cfg).Generate(org, teams)
	if err != nil {
		log.Fatalf("Failed to generate users: %v", err)
	}
	log.Printf("Created %d users", len(users))

	log.Println("Step 4: Generating projects...")
	projects, err := generators.NewProjectGenerator(repo, rng, cfg).Generate(teams, users)
	if err != nil {
		log.Fatalf("Failed to generate projects: %v", err)
	}
	log.Printf("Created %d projects", len(projects))

	log.Println("Step 5: Generating tasks...")
	tasks, err := generators.NewTaskGenerator(repo, rng, cfg, text).Generate(ctx, projects, users)
	if err != nil {
		log.Fatalf("Failed to generate tasks: %v", err)
	}
	log.Printf("Created %d tasks", len(tasks))

	log.Println("Step 6: Generating comments...")
	numComments, err := generators.NewCommentGenerator(repo, rng).Generate()
	if err != nil {
		log.Fatalf("Failed to generate comments: %v", err)
	}
	log.Printf("Created %d comments", numComments)

	log.Println("Step 7: Generating custom fields...")
	numValues, err := generators.NewCustomFieldGenerator(repo, rng).Generate(projects)
	if err != nil {
		log.Fatalf("Failed to generate custom fields: %v", err)
	}
	log.Printf("Created %d custom field values", numValues)

	log.Println("Step 8: Generating tags...")
	tags, err := generators.NewTagGenerator(repo, rng).Generate(org)
	if err != nil {
		log.Fatalf("Failed to generate tags: %v", err)
	}
	log.Printf("Created %d tags", len(tags))

	counts, err := repo.Counts()
	if err != nil {
		log.Fatalf("Failed to collect statistics: %v", err)
	}

	log.Println("=== Generation complete ===")
	log.Println("Database statistics:")
	for _, table := range summaryTables {
		log.Printf("  %s: %d", table, counts[table])
	}
	log.Printf("Total time: %.2f seconds", time.Since(startTime).Seconds())
	if cfg.DBDriver == "sqlite" {
		log.Printf("Output: %s", cfg.OutputDB)
	}
}
