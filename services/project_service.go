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

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	clock       Clock
}

// NewProjectService creates a new project service instance
func NewProjectService(projectRepo *repositories.ProjectRepository, clock Clock) *ProjectService {
	return &ProjectService{projectRepo: projectRepo, clock: clock}
}

// ListProjects retrieves projects with pagination, filtering and sorting
func (s *ProjectService) ListProjects(filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	var response dto.ProjectListResponse

	// Set defaults if not provided
	if filter.Page <= 0 {
		filter.Page = 1
	}

	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}

	if filter.PageSize > 100 {
		filter.PageSize = 100
	}

	// Validate sort order
	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	// Valid sort columns (whitelist approach for security)
	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"name":       true,
		"progress":   true,
		"end_date":   true,
	}

	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "created_at"
	}

	projects, totalCount, err := s.projectRepo.FindWithPagination(filter)
	if err != nil {
		return response, err
	}

	// Calculate total pages
	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	response = dto.ProjectListResponse{
		Projects:   projects,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}

	return response, nil
}

// GetProjectDetail retrieves a project with tasks, team, files and activities
func (s *ProjectService) GetProjectDetail(projectID string) (models.Project, error) {
	if err := utils.CheckID("project", projectID); err != nil {
		return models.Project{}, err
	}
	project, err := s.projectRepo.FindDetail(projectID)
	if err != nil {
		return models.Project{}, utils.TranslateNotFound(err, "project", projectID)
	}
	return project, nil
}

// GetProjectStats summarises a project's tasks for dashboard views
func (s *ProjectService) GetProjectStats(projectID string) (dto.ProjectStatsResponse, error) {
	project, err := s.GetProjectDetail(projectID)
	if err != nil {
		return dto.ProjectStatsResponse{}, err
	}

	stats := dto.ProjectStatsResponse{}

	stats.Project.ID = project.ID
	stats.Project.Name = project.Name
	stats.Project.Status = project.Status
	stats.Project.Progress = project.Progress

	stats.Tasks.Total = project.TotalTasks
	stats.Tasks.Completed = project.TasksCompleted
	stats.Tasks.ByStatus = map[string]int{
		models.TaskStatusTodo:       0,
		models.TaskStatusInProgress: 0,
		models.TaskStatusCompleted:  0,
	}
	stats.Tasks.ByPriority = map[string]int{
		models.PriorityHigh:   0,
		models.PriorityMedium: 0,
		models.PriorityLow:    0,
	}

	today := s.clock.Now().Format(utils.DateLayout)
	for _, task := range project.Tasks {
		stats.Tasks.ByStatus[task.Status]++
		stats.Tasks.ByPriority[task.Priority]++
		if task.DueDate != "" && task.DueDate < today && task.Status != models.TaskStatusCompleted {
			stats.Tasks.Overdue++
		}
	}

	stats.Members = len(project.Team)
	stats.Files = len(project.Files)

	return stats, nil
}

// CreateProject creates a new project and records its first activity
func (s *ProjectService) CreateProject(userID string, req dto.CreateProjectRequest) (models.Project, error) {
	project, err := req.ToModel(userID)
	if err != nil {
		return models.Project{}, err
	}

	err = s.projectRepo.Transaction(func(repo *repositories.ProjectRepository) error {
		if err := repo.Create(&project); err != nil {
			return err
		}
		return repo.AddActivity(&models.Activity{
			ProjectID: project.ID,
			Type:      models.ActivityProjectCreated,
			Message:   fmt.Sprintf("Project %q created", project.Name),
			UserID:    userID,
		})
	})
	if err != nil {
		return models.Project{}, err
	}

	return s.GetProjectDetail(project.ID)
}

// authorize allows the project owner and admins
func authorize(project models.Project, userID string, isAdmin bool) error {
	if !isAdmin && project.UserID != userID {
		return fmt.Errorf("you don't have permission to modify this project: %w", utils.ErrForbidden)
	}
	return nil
}

// UpdateProject merges the sent fields into a project.
// Access control: admin can update any project, regular users only their own.
func (s *ProjectService) UpdateProject(projectID, userID string, isAdmin bool, req dto.UpdateProjectRequest) (models.Project, error) {
	if err := utils.CheckID("project", projectID); err != nil {
		return models.Project{}, err
	}
	changes, err := req.Changes()
	if err != nil {
		return models.Project{}, err
	}

	err = s.projectRepo.Transaction(func(repo *repositories.ProjectRepository) error {
		existing, err := repo.LockByID(projectID)
		if err != nil {
			return utils.TranslateNotFound(err, "project", projectID)
		}
		if err := authorize(existing, userID, isAdmin); err != nil {
			return err
		}

		start, end := existing.StartDate, existing.EndDate
		if req.StartDate != nil {
			start = *req.StartDate
		}
		if req.EndDate != nil {
			end = *req.EndDate
		}
		if err := utils.ValidateDateRange(start, end); err != nil {
			return err
		}

		if err := repo.UpdateFields(projectID, changes); err != nil {
			return err
		}
		if len(changes) == 0 {
			return nil
		}
		return repo.AddActivity(&models.Activity{
			ProjectID: projectID,
			Type:      models.ActivityProjectUpdated,
			Message:   "Project details updated",
			UserID:    userID,
		})
	})
	if err != nil {
		return models.Project{}, err
	}

	return s.GetProjectDetail(projectID)
}

// DeleteProject deletes a project and everything it owns
func (s *ProjectService) DeleteProject(projectID, userID string, isAdmin bool) error {
	if err := utils.CheckID("project", projectID); err != nil {
		return err
	}
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return utils.TranslateNotFound(err, "project", projectID)
	}

	if err := authorize(project, userID, isAdmin); err != nil {
		return err
	}

	if err := s.projectRepo.Delete(projectID); err != nil {
		return utils.TranslateNotFound(err, "project", projectID)
	}

	logging.Logger.WithFields(logrus.Fields{"projectId": projectID, "userId": userID}).Info("project deleted")
	return nil
}
