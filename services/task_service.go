package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/workforce-hub/dto"
	"github.com/workforce-hub/logging"
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/repositories"
	"github.com/workforce-hub/utils"
)

// TaskService is the only writer of a project's tasks and its derived
// progress counters
type TaskService struct {
	projectRepo *repositories.ProjectRepository
}

// NewTaskService creates a new task service instance
func NewTaskService(projectRepo *repositories.ProjectRepository) *TaskService {
	return &TaskService{projectRepo: projectRepo}
}

// projectMutation changes one of a project's collections inside a transaction
// and returns the activity to log, if any
type projectMutation func(repo *repositories.ProjectRepository) (*models.Activity, error)

// mutateProject locks the project, applies fn, optionally recomputes the task
// aggregate and returns the refreshed project. Any error rolls everything back.
func mutateProject(projectRepo *repositories.ProjectRepository, projectID, userID string, recompute bool, fn projectMutation) (models.Project, error) {
	var updated models.Project
	if err := utils.CheckID("project", projectID); err != nil {
		return updated, err
	}

	err := projectRepo.Transaction(func(repo *repositories.ProjectRepository) error {
		if _, err := repo.LockByID(projectID); err != nil {
			return utils.TranslateNotFound(err, "project", projectID)
		}

		activity, err := fn(repo)
		if err != nil {
			return err
		}

		if recompute {
			tasks, err := repo.FindTasks(projectID)
			if err != nil {
				return err
			}
			if err := repo.SaveAggregate(projectID, models.ComputeAggregate(tasks)); err != nil {
				return err
			}
		}

		if activity != nil {
			activity.ProjectID = projectID
			activity.UserID = userID
			if err := repo.AddActivity(activity); err != nil {
				return err
			}
		}

		updated, err = repo.FindDetail(projectID)
		return err
	})
	if err != nil {
		return models.Project{}, err
	}

	return updated, nil
}

// AddTask appends a new todo task to a project
func (s *TaskService) AddTask(projectID, userID string, req dto.CreateTaskRequest) (models.Project, error) {
	if err := req.Validate(); err != nil {
		return models.Project{}, err
	}

	return mutateProject(s.projectRepo, projectID, userID, true, func(repo *repositories.ProjectRepository) (*models.Activity, error) {
		task := models.Task{
			ProjectID: projectID,
			Title:     req.Title,
			Status:    models.TaskStatusTodo,
			Priority:  req.Priority,
			DueDate:   req.DueDate,
			Assignee:  req.Assignee,
		}
		if task.Priority == "" {
			task.Priority = models.PriorityMedium
		}
		if err := repo.CreateTask(&task); err != nil {
			return nil, err
		}

		logging.Logger.WithFields(logrus.Fields{"projectId": projectID, "taskId": task.ID}).Debug("task added")
		return &models.Activity{
			Type:    models.ActivityTaskAdded,
			Message: fmt.Sprintf("Task %q added", task.Title),
		}, nil
	})
}

// UpdateTask merges the sent fields into a task
func (s *TaskService) UpdateTask(projectID, taskID, userID string, req dto.UpdateTaskRequest) (models.Project, error) {
	if err := utils.CheckID("task", taskID); err != nil {
		return models.Project{}, err
	}
	return mutateProject(s.projectRepo, projectID, userID, true, func(repo *repositories.ProjectRepository) (*models.Activity, error) {
		task, err := repo.FindTask(projectID, taskID)
		if err != nil {
			return nil, utils.TranslateNotFound(err, "task", taskID)
		}

		if err := req.Apply(&task); err != nil {
			return nil, err
		}
		if err := repo.SaveTask(&task); err != nil {
			return nil, err
		}

		return &models.Activity{
			Type:    models.ActivityTaskUpdated,
			Message: fmt.Sprintf("Task %q updated", task.Title),
		}, nil
	})
}

// DeleteTask removes a task. Removing a task that is already gone succeeds
// and returns the project unchanged.
func (s *TaskService) DeleteTask(projectID, taskID, userID string) (models.Project, error) {
	return mutateProject(s.projectRepo, projectID, userID, true, func(repo *repositories.ProjectRepository) (*models.Activity, error) {
		if utils.CheckID("task", taskID) != nil {
			return nil, nil
		}
		task, err := repo.FindTask(projectID, taskID)
		if err != nil {
			if err = utils.TranslateNotFound(err, "task", taskID); utils.IsNotFound(err) {
				return nil, nil
			}
			return nil, err
		}

		if _, err := repo.DeleteTask(projectID, taskID); err != nil {
			return nil, err
		}

		return &models.Activity{
			Type:    models.ActivityTaskDeleted,
			Message: fmt.Sprintf("Task %q deleted", task.Title),
		}, nil
	})
}

// ToggleTaskStatus flips a task between completed and todo
func (s *TaskService) ToggleTaskStatus(projectID, taskID, userID string) (models.Project, error) {
	if err := utils.CheckID("task", taskID); err != nil {
		return models.Project{}, err
	}
	return mutateProject(s.projectRepo, projectID, userID, true, func(repo *repositories.ProjectRepository) (*models.Activity, error) {
		task, err := repo.FindTask(projectID, taskID)
		if err != nil {
			return nil, utils.TranslateNotFound(err, "task", taskID)
		}

		task.Status = task.ToggledStatus()
		if err := repo.SaveTask(&task); err != nil {
			return nil, err
		}

		return &models.Activity{
			Type:    models.ActivityTaskToggled,
			Message: fmt.Sprintf("Task %q marked %s", task.Title, task.Status),
		}, nil
	})
}
