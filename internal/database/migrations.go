package database

import (
	"fmt"
	"log"
	"os"

	"github.com/aditya-h-09/asana-rl-seed-data/internal/models"
	"gorm.io/gorm"
)

// InitializeSchema prepares the table layout for a run. When schemaFile is
// set, the externally supplied SQL is executed as-is; otherwise the schema
// is derived from the models via AutoMigrate.
func InitializeSchema(db *gorm.DB, schemaFile string) error {
	if schemaFile != "" {
		log.Printf("Initializing schema from %s", schemaFile)
		schema, err := os.ReadFile(schemaFile)
		if err != nil {
			return fmt.Errorf("failed to read schema file: %w", err)
		}
		if err := db.Exec(string(schema)).Error; err != nil {
			return fmt.Errorf("failed to execute schema: %w", err)
		}
		return nil
	}

	log.Println("Running database migrations...")
	err := db.AutoMigrate(
		&models.Organization{},
		&models.Team{},
		&models.User{},
		&models.TeamMembership{},
		&models.Project{},
		&models.Section{},
		&models.Task{},
		&models.Comment{},
		&models.CustomFieldDefinition{},
		&models.CustomFieldValue{},
		&models.Tag{},
		&models.TaskTag{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Println("Database migrations completed")
	return nil
}
