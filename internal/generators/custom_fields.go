package generators

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/aditya-h-09/asana-rl-seed-data/internal/models"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/repository"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/sampling"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/utils"
)

type fieldTemplate struct {
	Name    string
	Type    models.FieldType
	Options []string
}

// fieldTemplates is the custom-field catalog keyed by project type.
// Project types without templates get no fields.
var fieldTemplates = map[models.ProjectType][]fieldTemplate{
	models.ProjectTypeSprint: {
		{"Story Points", models.FieldTypeDropdown, []string{"1", "2", "3", "5", "8", "13"}},
		{"Sprint", models.FieldTypeDropdown, []string{"Sprint 1", "Sprint 2", "Sprint 3", "Sprint 4", "Backlog"}},
		{"Effort", models.FieldTypeDropdown, []string{"Small", "Medium", "Large", "Extra Large"}},
	},
	models.ProjectTypeOngoing: {
		{"Status", models.FieldTypeDropdown, []string{"Not Started", "In Progress", "Blocked", "Done"}},
		{"Priority", models.FieldTypeDropdown, []string{"P0", "P1", "P2", "P3"}},
	},
	models.ProjectTypeCampaign: {
		{"Campaign Phase", models.FieldTypeDropdown, []string{"Planning", "Creation", "Review", "Launched", "Analysis"}},
		{"Channel", models.FieldTypeDropdown, []string{"Email", "Social", "Paid Ads", "Content", "Events"}},
		{"Target Audience", models.FieldTypeDropdown, []string{"Enterprise", "Mid-Market", "SMB", "All"}},
	},
	models.ProjectTypeOperations: {
		{"Department", models.FieldTypeDropdown, []string{"Finance", "HR", "Legal", "Admin"}},
		{"Approval Status", models.FieldTypeDropdown, []string{"Pending", "Approved", "Rejected", "Needs Review"}},
	},
}

// CustomFieldGenerator produces per-project field definitions and
// per-task field values.
type CustomFieldGenerator struct {
	repo repository.Repository
	rng  *sampling.Sampler
}

// NewCustomFieldGenerator creates a new CustomFieldGenerator
func NewCustomFieldGenerator(repo repository.Repository, rng *sampling.Sampler) *CustomFieldGenerator {
	return &CustomFieldGenerator{repo: repo, rng: rng}
}

// Generate creates 1-2 field definitions per project and, for each of the
// project's committed top-level tasks, a value with 70% probability. It
// returns the number of values written.
func (g *CustomFieldGenerator) Generate(projects []models.Project) (int, error) {
	var definitions []models.CustomFieldDefinition
	var values []models.CustomFieldValue

	for _, project := range projects {
		templates := fieldTemplates[project.ProjectType]
		if len(templates) == 0 {
			continue
		}

		taskIDs, err := g.repo.TopLevelTaskIDsByProject(project.ID)
		if err != nil {
			return 0, fmt.Errorf("failed to load project tasks: %w", err)
		}

		numFields := g.rng.IntBetween(1, min(2, len(templates)))
		for _, template := range sampling.SampleN(g.rng, templates, numFields) {
			options, err := json.Marshal(template.Options)
			if err != nil {
				return 0, fmt.Errorf("failed to serialize field options: %w", err)
			}

			definition := models.CustomFieldDefinition{
				ID:        utils.NewID(),
				ProjectID: project.ID,
				Name:      template.Name,
				FieldType: template.Type,
				Options:   string(options),
			}
			definitions = append(definitions, definition)

			for _, taskID := range taskIDs {
				if !g.rng.Chance(0.70) {
					continue
				}
				value := g.fieldValue(template)
				if value == "" {
					continue
				}
				values = append(values, models.CustomFieldValue{
					ID:      utils.NewID(),
					TaskID:  taskID,
					FieldID: definition.ID,
					Value:   value,
				})
			}
		}
	}

	err := g.repo.Transaction(func(tx repository.Repository) error {
		if err := tx.CreateFieldDefinitions(definitions); err != nil {
			return err
		}
		return tx.CreateFieldValues(values)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to persist custom fields: %w", err)
	}

	return len(values), nil
}

// fieldValue produces a value whose shape matches the field type.
func (g *CustomFieldGenerator) fieldValue(template fieldTemplate) string {
	switch template.Type {
	case models.FieldTypeDropdown:
		return sampling.Choice(g.rng, template.Options)
	case models.FieldTypeNumber:
		return strconv.Itoa(g.rng.IntBetween(1, 10))
	case models.FieldTypeText:
		return "Custom text value"
	case models.FieldTypeCheckbox:
		return strconv.FormatBool(g.rng.Chance(0.5))
	default:
		return ""
	}
}
