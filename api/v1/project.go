package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/workforce-hub/dto"
	"github.com/workforce-hub/services"
)

// ProjectController handles project endpoints and the collections a project owns
type ProjectController struct {
	projectService *services.ProjectService
	taskService    *services.TaskService
	rosterService  *services.RosterService
}

// NewProjectController creates a new project controller
func NewProjectController(projectService *services.ProjectService, taskService *services.TaskService, rosterService *services.RosterService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		taskService:    taskService,
		rosterService:  rosterService,
	}
}

// RegisterRoutes registers project routes
func (p *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", p.ListProjects)
		projects.POST("", p.CreateProject)
		projects.GET("/:id", p.GetProject)
		projects.PUT("/:id", p.UpdateProject)
		projects.DELETE("/:id", p.DeleteProject)
		projects.GET("/:id/stats", p.GetProjectStats)

		projects.POST("/:id/tasks", p.AddTask)
		projects.PATCH("/:id/tasks/:taskId", p.UpdateTask)
		projects.DELETE("/:id/tasks/:taskId", p.DeleteTask)
		projects.POST("/:id/tasks/:taskId/toggle", p.ToggleTask)

		projects.POST("/:id/members", p.AddMember)
		projects.DELETE("/:id/members/:memberId", p.RemoveMember)

		projects.POST("/:id/files", p.AddFile)
		projects.DELETE("/:id/files/:fileId", p.DeleteFile)
	}
}

// ListProjects godoc
// @Summary List projects with pagination and filtering
// @Tags projects
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Param search query string false "Search term for project name/description"
// @Param status query string false "Project status"
// @Param department query string false "Department"
// @Param sortBy query string false "Field to sort by (created_at, updated_at, name, progress, end_date)"
// @Param sortOrder query string false "Sort order (asc or desc)"
// @Success 200 {object} dto.ProjectListResponse
// @Router /projects [get]
func (p *ProjectController) ListProjects(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	filter := dto.ProjectFilter{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		Department: c.Query("department"),
		SortBy:     c.DefaultQuery("sortBy", "created_at"),
		SortOrder:  c.DefaultQuery("sortOrder", "desc"),
		Page:       page,
		PageSize:   pageSize,
	}

	response, err := p.projectService.ListProjects(filter)
	if err != nil {
		respondError(c, err, "retrieve projects")
		return
	}

	respondOK(c, response)
}

// GetProject godoc
// @Summary Get a project by ID with tasks, team, files and activities
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project
// @Router /projects/{id} [get]
func (p *ProjectController) GetProject(c *gin.Context) {
	project, err := p.projectService.GetProjectDetail(c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve project")
		return
	}

	respondOK(c, project)
}

// GetProjectStats godoc
// @Summary Get project statistics
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectStatsResponse
// @Router /projects/{id}/stats [get]
func (p *ProjectController) GetProjectStats(c *gin.Context) {
	stats, err := p.projectService.GetProjectStats(c.Param("id"))
	if err != nil {
		respondError(c, err, "get project statistics")
		return
	}

	respondOK(c, stats)
}

// CreateProject godoc
// @Summary Create a new project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project Data"
// @Success 201 {object} models.Project
// @Router /projects [post]
func (p *ProjectController) CreateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := p.projectService.CreateProject(userID, req)
	if err != nil {
		respondError(c, err, "create project")
		return
	}

	respondCreated(c, project)
}

// UpdateProject godoc
// @Summary Update project details; task counters cannot be set
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Project Data"
// @Success 200 {object} models.Project
// @Router /projects/{id} [put]
func (p *ProjectController) UpdateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProjectRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := p.projectService.UpdateProject(c.Param("id"), userID, isAdmin(c), req)
	if err != nil {
		respondError(c, err, "update project")
		return
	}

	respondOK(c, project)
}

// DeleteProject godoc
// @Summary Delete a project with its tasks, team, files and activities
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]interface{}
// @Router /projects/{id} [delete]
func (p *ProjectController) DeleteProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := p.projectService.DeleteProject(c.Param("id"), userID, isAdmin(c)); err != nil {
		respondError(c, err, "delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
	})
}

// AddTask creates a todo task and returns the updated project
func (p *ProjectController) AddTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := p.taskService.AddTask(c.Param("id"), userID, req)
	if err != nil {
		respondError(c, err, "add task")
		return
	}

	respondCreated(c, project)
}

// UpdateTask merges fields into a task and returns the updated project
func (p *ProjectController) UpdateTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := p.taskService.UpdateTask(c.Param("id"), c.Param("taskId"), userID, req)
	if err != nil {
		respondError(c, err, "update task")
		return
	}

	respondOK(c, project)
}

// DeleteTask removes a task and returns the updated project
func (p *ProjectController) DeleteTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	project, err := p.taskService.DeleteTask(c.Param("id"), c.Param("taskId"), userID)
	if err != nil {
		respondError(c, err, "delete task")
		return
	}

	respondOK(c, project)
}

// ToggleTask flips a task between completed and todo
func (p *ProjectController) ToggleTask(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	project, err := p.taskService.ToggleTaskStatus(c.Param("id"), c.Param("taskId"), userID)
	if err != nil {
		respondError(c, err, "toggle task")
		return
	}

	respondOK(c, project)
}

func (p *ProjectController) AddMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := p.rosterService.AddMember(c.Param("id"), userID, req)
	if err != nil {
		respondError(c, err, "add member")
		return
	}

	respondCreated(c, project)
}

func (p *ProjectController) RemoveMember(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	project, err := p.rosterService.RemoveMember(c.Param("id"), c.Param("memberId"), userID)
	if err != nil {
		respondError(c, err, "remove member")
		return
	}

	respondOK(c, project)
}

func (p *ProjectController) AddFile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.AddFileRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := p.rosterService.AddFile(c.Param("id"), userID, req)
	if err != nil {
		respondError(c, err, "add file")
		return
	}

	respondCreated(c, project)
}

func (p *ProjectController) DeleteFile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	project, err := p.rosterService.DeleteFile(c.Param("id"), c.Param("fileId"), userID)
	if err != nil {
		respondError(c, err, "delete file")
		return
	}

	respondOK(c, project)
}
