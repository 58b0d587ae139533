package dto

import (
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/utils"
)

// ProjectFilter represents filter criteria for projects
type ProjectFilter struct {
	Search     string
	Status     string
	Department string
	SortBy     string
	SortOrder  string
	Page       int
	PageSize   int
}

// ProjectListResponse represents paginated project list response
type ProjectListResponse struct {
	Projects   []models.Project `json:"projects"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// ProjectStatsResponse represents project statistics for dashboard view
type ProjectStatsResponse struct {
	Project struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Status   string `json:"status"`
		Progress int    `json:"progress"`
	} `json:"project"`

	Tasks struct {
		Total      int            `json:"total"`
		Completed  int            `json:"completed"`
		Overdue    int            `json:"overdue"`
		ByStatus   map[string]int `json:"byStatus"`
		ByPriority map[string]int `json:"byPriority"`
	} `json:"tasks"`

	Members int `json:"members"`
	Files   int `json:"files"`
}

// CreateProjectRequest represents the request payload for creating a new project
type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Budget      float64 `json:"budget"`
	Department  string  `json:"department"`
}

// ToModel validates the request and maps it to a project owned by userID
func (r CreateProjectRequest) ToModel(userID string) (models.Project, error) {
	if err := utils.RequireText("name", r.Name); err != nil {
		return models.Project{}, err
	}
	project := models.Project{
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Budget:      r.Budget,
		Department:  r.Department,
		UserID:      userID,
	}
	if project.Status == "" {
		project.Status = models.ProjectStatusPlanning
	}
	if project.Priority == "" {
		project.Priority = models.PriorityMedium
	}
	if !models.ValidProjectStatus(project.Status) {
		return models.Project{}, utils.NewValidationError("status", "unknown project status %q", project.Status)
	}
	if !models.ValidPriority(project.Priority) {
		return models.Project{}, utils.NewValidationError("priority", "unknown priority %q", project.Priority)
	}
	if r.Budget < 0 {
		return models.Project{}, utils.NewValidationError("budget", "must not be negative")
	}
	if err := utils.ValidateDateRange(r.StartDate, r.EndDate); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// UpdateProjectRequest carries the project fields a caller may change.
// Task counters are derived and cannot be sent.
type UpdateProjectRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
	Priority    *string  `json:"priority"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	Budget      *float64 `json:"budget"`
	Department  *string  `json:"department"`
}

// Changes validates the sent fields and returns them as columns
func (r UpdateProjectRequest) Changes() (utils.Changes, error) {
	if r.Name != nil {
		if err := utils.RequireText("name", *r.Name); err != nil {
			return nil, err
		}
	}
	if r.Status != nil && !models.ValidProjectStatus(*r.Status) {
		return nil, utils.NewValidationError("status", "unknown project status %q", *r.Status)
	}
	if r.Priority != nil && !models.ValidPriority(*r.Priority) {
		return nil, utils.NewValidationError("priority", "unknown priority %q", *r.Priority)
	}
	if r.Budget != nil && *r.Budget < 0 {
		return nil, utils.NewValidationError("budget", "must not be negative")
	}
	if r.StartDate != nil {
		if err := utils.ValidateDate("startDate", *r.StartDate); err != nil {
			return nil, err
		}
	}
	if r.EndDate != nil {
		if err := utils.ValidateDate("endDate", *r.EndDate); err != nil {
			return nil, err
		}
	}

	return utils.Changes{}.
		Set("name", r.Name).
		Set("description", r.Description).
		Set("status", r.Status).
		Set("priority", r.Priority).
		Set("start_date", r.StartDate).
		Set("end_date", r.EndDate).
		Set("budget", r.Budget).
		Set("department", r.Department), nil
}
