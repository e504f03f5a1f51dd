package generators

import (
	"fmt"

	"github.com/aditya-h-09/asana-rl-seed-data/internal/models"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/repository"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/sampling"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/utils"
)

type tagTemplate struct {
	Name  string
	Color string
}

// tagTemplates is the fixed organization-wide tag catalog.
var tagTemplates = []tagTemplate{
	{"urgent", "#FF0000"},
	{"bug", "#DC143C"},
	{"feature", "#4169E1"},
	{"technical-debt", "#FF8C00"},
	{"documentation", "#32CD32"},
	{"security", "#8B0000"},
	{"performance", "#FF6347"},
	{"ui-ux", "#9370DB"},
	{"backend", "#4682B4"},
	{"frontend", "#20B2AA"},
	{"mobile", "#FF69B4"},
	{"api", "#6495ED"},
	{"database", "#CD853F"},
	{"testing", "#9ACD32"},
	{"deployment", "#FF4500"},
	{"blocked", "#B22222"},
	{"needs-review", "#FFA500"},
	{"customer-request", "#1E90FF"},
	{"quick-win", "#32CD32"},
	{"research", "#9932CC"},
}

// TagGenerator produces the organization's tag catalog and task-tag
// associations.
type TagGenerator struct {
	repo repository.Repository
	rng  *sampling.Sampler
}

// NewTagGenerator creates a new TagGenerator
func NewTagGenerator(repo repository.Repository, rng *sampling.Sampler) *TagGenerator {
	return &TagGenerator{repo: repo, rng: rng}
}

// Generate persists the tag catalog once, then attaches 1-2 tags to 30%
// of the committed top-level tasks. It returns the created tags.
func (g *TagGenerator) Generate(org *models.Organization) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(tagTemplates))
	for _, template := range tagTemplates {
		tags = append(tags, models.Tag{
			ID:    utils.NewID(),
			OrgID: org.ID,
			Name:  template.Name,
			Color: template.Color,
		})
	}

	tasks, err := g.repo.TopLevelTasks()
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	var taskTags []models.TaskTag
	for _, task := range tasks {
		if !g.rng.Chance(0.30) {
			continue
		}

		numTags := 1
		if g.rng.Chance(0.30) {
			numTags = 2
		}

		for _, tag := range sampling.SampleN(g.rng, tags, numTags) {
			taskTags = append(taskTags, models.TaskTag{
				TaskID: task.ID,
				TagID:  tag.ID,
			})
		}
	}

	err = g.repo.Transaction(func(tx repository.Repository) error {
		if err := tx.CreateTags(tags); err != nil {
			return err
		}
		return tx.CreateTaskTags(taskTags)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist tags: %w", err)
	}

	return tags, nil
}
