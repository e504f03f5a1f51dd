package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockRepository(t *testing.T) (Repository, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return New(db), mock
}

func TestActiveProjectMembersQuery(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"id", "email", "is_active"}).
		AddRow("user-1", "alice@example.com", true).
		AddRow("user-2", "bob@example.com", true)

	mock.ExpectQuery(`SELECT DISTINCT users\.\* FROM "users" JOIN team_memberships ON users\.id = team_memberships\.user_id JOIN projects ON team_memberships\.team_id = projects\.team_id WHERE projects\.id = \$1 AND users\.is_active = \$2`).
		WithArgs("project-1", true).
		WillReturnRows(rows)

	users, err := repo.ActiveProjectMembers("project-1", 0)
	require.NoError(t, err)

	assert.Len(t, users, 2)
	assert.Equal(t, "user-1", users[0].ID)
	assert.Equal(t, "bob@example.com", users[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActiveProjectMembersAppliesLimit(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT DISTINCT users\.\* FROM "users" .* LIMIT \$3`).
		WithArgs("project-1", true, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-1"))

	users, err := repo.ActiveProjectMembers("project-1", 5)
	require.NoError(t, err)

	assert.Len(t, users, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopLevelTaskIDsByProject(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT "id" FROM "tasks" WHERE project_id = \$1 AND parent_task_id IS NULL`).
		WithArgs("project-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("task-1").AddRow("task-2"))

	ids, err := repo.TopLevelTaskIDsByProject("project-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"task-1", "task-2"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeamNamesByProject(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT projects\.id AS project_id, teams\.name AS team_name FROM "projects" JOIN teams ON projects\.team_id = teams\.id`).
		WillReturnRows(sqlmock.NewRows([]string{"project_id", "team_name"}).
			AddRow("project-1", "Platform Infrastructure").
			AddRow("project-2", "Demand Generation"))

	names, err := repo.TeamNamesByProject()
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"project-1": "Platform Infrastructure",
		"project-2": "Demand Generation",
	}, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopLevelTasksFiltersSubtasks(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(`SELECT .* FROM "tasks" WHERE parent_task_id IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "project_id", "completed"}).
			AddRow("task-1", "project-1", false))

	tasks, err := repo.TopLevelTasks()
	require.NoError(t, err)

	assert.Len(t, tasks, 1)
	assert.Equal(t, "task-1", tasks[0].ID)
	assert.False(t, tasks[0].Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountsCoversAllTables(t *testing.T) {
	repo, mock := newMockRepository(t)

	// one count query per seeded table, in a fixed order
	for i := 0; i < 12; i++ {
		mock.ExpectQuery(`SELECT count\(\*\) FROM`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(i)))
	}

	counts, err := repo.Counts()
	require.NoError(t, err)

	assert.Len(t, counts, 12)
	assert.Equal(t, int64(0), counts["organizations"])
	assert.Equal(t, int64(6), counts["tasks"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTasksSkipsEmptySlice(t *testing.T) {
	repo, mock := newMockRepository(t)

	// no INSERT is expected for an empty batch
	err := repo.CreateTasks(nil)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
