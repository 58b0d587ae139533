package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workforce-hub/dto"
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/utils"
)

func TestCreateProjectDefaults(t *testing.T) {
	f := newProjectFixture(t)

	project := f.createProject(t, "Office move")

	assert.NotEmpty(t, project.ID)
	assert.Equal(t, models.ProjectStatusPlanning, project.Status)
	assert.Equal(t, models.PriorityMedium, project.Priority)
	assert.Equal(t, testUserID, project.UserID)
	assert.Zero(t, project.TotalTasks)
	require.Len(t, project.Activities, 1)
	assert.Equal(t, models.ActivityProjectCreated, project.Activities[0].Type)
}

func TestCreateProjectValidation(t *testing.T) {
	f := newProjectFixture(t)

	_, err := f.projects.CreateProject(testUserID, dto.CreateProjectRequest{Name: "  "})
	assert.True(t, utils.IsValidation(err))

	_, err = f.projects.CreateProject(testUserID, dto.CreateProjectRequest{Name: "Bad dates", StartDate: "2024-05-01", EndDate: "2024-04-01"})
	assert.True(t, utils.IsValidation(err))

	_, err = f.projects.CreateProject(testUserID, dto.CreateProjectRequest{Name: "Bad status", Status: "archived"})
	assert.True(t, utils.IsValidation(err))
}

func TestListProjectsFiltersAndPages(t *testing.T) {
	f := newProjectFixture(t)
	for _, name := range []string{"Alpha rollout", "Beta rollout", "Gamma audit"} {
		f.createProject(t, name)
	}

	result, err := f.projects.ListProjects(dto.ProjectFilter{Search: "ROLLOUT", SortBy: "name", SortOrder: "asc"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.TotalCount)
	require.Len(t, result.Projects, 2)
	assert.Equal(t, "Alpha rollout", result.Projects[0].Name)

	result, err = f.projects.ListProjects(dto.ProjectFilter{Page: 2, PageSize: 2, SortBy: "name; DROP TABLE projects", SortOrder: "sideways"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, result.TotalCount)
	assert.Equal(t, 2, result.TotalPages)
	assert.Len(t, result.Projects, 1)
}

func TestProjectStats(t *testing.T) {
	f := newProjectFixture(t)
	project := f.createProject(t, "Compliance")

	_, err := f.tasks.AddTask(project.ID, testUserID, dto.CreateTaskRequest{Title: "Late", DueDate: "2024-03-01", Priority: models.PriorityHigh})
	require.NoError(t, err)
	_, err = f.tasks.AddTask(project.ID, testUserID, dto.CreateTaskRequest{Title: "Future", DueDate: "2024-04-01"})
	require.NoError(t, err)
	done := f.addTask(t, project.ID, "Done early")
	_, err = f.tasks.ToggleTaskStatus(project.ID, done.ID, testUserID)
	require.NoError(t, err)

	stats, err := f.projects.GetProjectStats(project.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Tasks.Total)
	assert.Equal(t, 1, stats.Tasks.Completed)
	assert.Equal(t, 1, stats.Tasks.Overdue)
	assert.Equal(t, 33, stats.Project.Progress)
	assert.Equal(t, 1, stats.Tasks.ByPriority[models.PriorityHigh])
	assert.Equal(t, 2, stats.Tasks.ByStatus[models.TaskStatusTodo])
}

func TestUpdateProjectCoalescesAndKeepsCounters(t *testing.T) {
	f := newProjectFixture(t)
	project := f.createProject(t, "Intranet")
	task := f.addTask(t, project.ID, "Design")
	_, err := f.tasks.ToggleTaskStatus(project.ID, task.ID, testUserID)
	require.NoError(t, err)

	active := models.ProjectStatusActive
	updated, err := f.projects.UpdateProject(project.ID, testUserID, false, dto.UpdateProjectRequest{Status: &active})
	require.NoError(t, err)

	assert.Equal(t, "Intranet", updated.Name)
	assert.Equal(t, models.ProjectStatusActive, updated.Status)
	assert.Equal(t, 100, updated.Progress)
	assert.Equal(t, 1, updated.TotalTasks)
}

func TestUpdateProjectChecksMergedDates(t *testing.T) {
	f := newProjectFixture(t)
	project, err := f.projects.CreateProject(testUserID, dto.CreateProjectRequest{Name: "Dated", StartDate: "2024-01-10", EndDate: "2024-02-10"})
	require.NoError(t, err)

	end := "2024-01-01"
	_, err = f.projects.UpdateProject(project.ID, testUserID, false, dto.UpdateProjectRequest{EndDate: &end})
	assert.True(t, utils.IsValidation(err))
}

func TestProjectWritesRequireOwnerOrAdmin(t *testing.T) {
	f := newProjectFixture(t)
	project := f.createProject(t, "Private")

	name := "Hijacked"
	_, err := f.projects.UpdateProject(project.ID, otherUserID, false, dto.UpdateProjectRequest{Name: &name})
	assert.True(t, errors.Is(err, utils.ErrForbidden))

	err = f.projects.DeleteProject(project.ID, otherUserID, false)
	assert.True(t, errors.Is(err, utils.ErrForbidden))

	updated, err := f.projects.UpdateProject(project.ID, otherUserID, true, dto.UpdateProjectRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Hijacked", updated.Name)
}

func TestDeleteProjectRemovesChildren(t *testing.T) {
	f := newProjectFixture(t)
	project := f.createProject(t, "Short lived")
	f.addTask(t, project.ID, "One")
	_, err := f.roster.AddFile(project.ID, testUserID, dto.AddFileRequest{Name: "plan.pdf", Size: 1024})
	require.NoError(t, err)

	require.NoError(t, f.projects.DeleteProject(project.ID, testUserID, false))

	_, err = f.projects.GetProjectDetail(project.ID)
	assert.True(t, utils.IsNotFound(err))

	for _, model := range []interface{}{&models.Task{}, &models.ProjectFile{}, &models.Activity{}} {
		var count int64
		require.NoError(t, f.db.Model(model).Where("project_id = ?", project.ID).Count(&count).Error)
		assert.Zero(t, count)
	}

	err = f.projects.DeleteProject(project.ID, testUserID, false)
	assert.True(t, utils.IsNotFound(err))
}
