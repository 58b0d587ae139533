package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/workforce-hub/database"
	"github.com/workforce-hub/dto"
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/repositories"
	"gorm.io/gorm"
)

const (
	testUserID  = "11111111-1111-1111-1111-111111111111"
	otherUserID = "22222222-2222-2222-2222-222222222222"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// fakeClock is a Clock whose time only moves when a test sets it
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

type projectFixture struct {
	db       *gorm.DB
	repo     *repositories.ProjectRepository
	projects *ProjectService
	tasks    *TaskService
	roster   *RosterService
	team     *repositories.ResourceRepository[models.TeamMember]
	clock    *fakeClock
}

func newProjectFixture(t *testing.T) *projectFixture {
	t.Helper()
	db := newTestDB(t)
	repo := repositories.NewProjectRepository(db)
	team := repositories.NewResourceRepository[models.TeamMember](db, "name ASC")
	clock := newFakeClock(time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC))
	return &projectFixture{
		db:       db,
		repo:     repo,
		projects: NewProjectService(repo, clock),
		tasks:    NewTaskService(repo),
		roster:   NewRosterService(repo, team),
		team:     team,
		clock:    clock,
	}
}

func (f *projectFixture) createProject(t *testing.T, name string) models.Project {
	t.Helper()
	project, err := f.projects.CreateProject(testUserID, dto.CreateProjectRequest{Name: name})
	require.NoError(t, err)
	return project
}

func (f *projectFixture) addTask(t *testing.T, projectID, title string) models.Task {
	t.Helper()
	project, err := f.tasks.AddTask(projectID, testUserID, dto.CreateTaskRequest{Title: title})
	require.NoError(t, err)
	for _, task := range project.Tasks {
		if task.Title == title {
			return task
		}
	}
	t.Fatalf("task %q missing from project", title)
	return models.Task{}
}

func requireAggregateConsistent(t *testing.T, project models.Project) {
	t.Helper()
	agg := models.ComputeAggregate(project.Tasks)
	require.Equal(t, agg.TotalTasks, project.TotalTasks, "totalTasks")
	require.Equal(t, agg.TasksCompleted, project.TasksCompleted, "tasksCompleted")
	require.Equal(t, agg.Progress, project.Progress, "progress")
}
