package generators

import (
	"testing"

	"github.com/aditya-h-09/asana-rl-seed-data/internal/config"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/models"
	"github.com/aditya-h-09/asana-rl-seed-data/internal/sampling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachSubtasksParentsAreTopLevel(t *testing.T) {
	users := []models.User{{ID: "user-1"}, {ID: "user-2"}}

	for seed := int64(1); seed <= 200; seed++ {
		g := NewTaskGenerator(nil, sampling.New(seed), &config.Config{}, nil)

		tasks := []models.Task{
			{ID: "task-1", ProjectID: "project-1", SectionID: "section-1", CreatedBy: "user-1"},
			{ID: "task-2", ProjectID: "project-1", SectionID: "section-1", CreatedBy: "user-1"},
			{ID: "task-3", ProjectID: "project-1", SectionID: "section-2", CreatedBy: "user-2"},
		}

		// Repeated attachment rounds grow the pool with subtasks; parents
		// must still be drawn from the top-level tasks only.
		for round := 0; round < 5; round++ {
			tasks = g.attachSubtasks(tasks, users)
		}

		byID := make(map[string]models.Task, len(tasks))
		for _, task := range tasks {
			byID[task.ID] = task
		}
		for _, task := range tasks {
			if task.ParentTaskID == nil {
				continue
			}
			parent, ok := byID[*task.ParentTaskID]
			require.True(t, ok, "parent %s not in the project", *task.ParentTaskID)
			assert.Nil(t, parent.ParentTaskID, "subtask %s parented to another subtask", task.ID)
			assert.Equal(t, parent.ProjectID, task.ProjectID)
		}
	}
}

func TestAttachSubtasksHandlesSubtaskOnlyPool(t *testing.T) {
	g := NewTaskGenerator(nil, sampling.New(1), &config.Config{}, nil)
	parentID := "task-0"
	tasks := []models.Task{
		{ID: "task-1", ProjectID: "project-1", ParentTaskID: &parentID},
	}

	out := g.attachSubtasks(tasks, []models.User{{ID: "user-1"}})
	assert.Equal(t, tasks, out)
}
