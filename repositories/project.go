package repositories

import (
	"github.com/workforce-hub/database"
	"github.com/workforce-hub/dto"
	"github.com/workforce-hub/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects and the
// collections they own
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Transaction runs fn against a repository bound to a single transaction
func (r *ProjectRepository) Transaction(fn func(repo *ProjectRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&ProjectRepository{db: tx})
	})
}

// FindByID retrieves a project by its ID without its collections
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := r.db.First(&project, "id = ?", id)
	return project, result.Error
}

// LockByID retrieves a project and, on postgres, holds its row lock until the
// surrounding transaction ends
func (r *ProjectRepository) LockByID(id string) (models.Project, error) {
	var project models.Project
	query := r.db
	if database.IsPostgres(r.db) {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	result := query.First(&project, "id = ?", id)
	return project, result.Error
}

// FindDetail loads a project with tasks, team, files and activities
func (r *ProjectRepository) FindDetail(id string) (models.Project, error) {
	var project models.Project
	result := r.db.
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Team", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Files", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		Preload("Activities", func(db *gorm.DB) *gorm.DB { return db.Order("created_at DESC") }).
		First(&project, "id = ?", id)
	return project, result.Error
}

// FindWithPagination retrieves projects with pagination, filtering and sorting
func (r *ProjectRepository) FindWithPagination(filter dto.ProjectFilter) ([]models.Project, int64, error) {
	projects := make([]models.Project, 0)
	var totalCount int64

	db := r.db.Model(&models.Project{})

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	if filter.Department != "" {
		db = db.Where("department = ?", filter.Department)
	}

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		db = db.Where("(LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?))", searchPattern, searchPattern)
	}

	// Count total records with the same filters
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize

	orderString := filter.SortBy + " " + filter.SortOrder
	if err := db.Order(orderString).Limit(filter.PageSize).Offset(offset).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Omit(clause.Associations).Create(project).Error
}

// UpdateFields writes the given columns of a project
func (r *ProjectRepository) UpdateFields(id string, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}
	return r.db.Model(&models.Project{}).Where("id = ?", id).Updates(changes).Error
}

// SaveAggregate stores the derived task counters on a project
func (r *ProjectRepository) SaveAggregate(id string, agg models.Aggregate) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).Updates(map[string]interface{}{
		"progress":        agg.Progress,
		"tasks_completed": agg.TasksCompleted,
		"total_tasks":     agg.TotalTasks,
	}).Error
}

// Delete removes a project together with everything it owns
func (r *ProjectRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{&models.Task{}, &models.ProjectMember{}, &models.ProjectFile{}, &models.Activity{}} {
			if err := tx.Where("project_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.Project{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// FindTasks retrieves all tasks of a project
func (r *ProjectRepository) FindTasks(projectID string) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	result := r.db.Where("project_id = ?", projectID).Order("created_at ASC").Find(&tasks)
	return tasks, result.Error
}

// FindTask retrieves a task scoped to its project
func (r *ProjectRepository) FindTask(projectID, taskID string) (models.Task, error) {
	var task models.Task
	result := r.db.First(&task, "id = ? AND project_id = ?", taskID, projectID)
	return task, result.Error
}

// CreateTask inserts a task
func (r *ProjectRepository) CreateTask(task *models.Task) error {
	return r.db.Create(task).Error
}

// SaveTask writes every column of a task
func (r *ProjectRepository) SaveTask(task *models.Task) error {
	return r.db.Save(task).Error
}

// DeleteTask removes a task and reports how many rows matched
func (r *ProjectRepository) DeleteTask(projectID, taskID string) (int64, error) {
	result := r.db.Delete(&models.Task{}, "id = ? AND project_id = ?", taskID, projectID)
	return result.RowsAffected, result.Error
}

// CreateMember inserts a roster entry
func (r *ProjectRepository) CreateMember(member *models.ProjectMember) error {
	return r.db.Create(member).Error
}

// DeleteMember removes a roster entry and reports how many rows matched
func (r *ProjectRepository) DeleteMember(projectID, memberID string) (int64, error) {
	result := r.db.Delete(&models.ProjectMember{}, "id = ? AND project_id = ?", memberID, projectID)
	return result.RowsAffected, result.Error
}

// CreateFile inserts a file attachment
func (r *ProjectRepository) CreateFile(file *models.ProjectFile) error {
	return r.db.Create(file).Error
}

// DeleteFile removes a file attachment and reports how many rows matched
func (r *ProjectRepository) DeleteFile(projectID, fileID string) (int64, error) {
	result := r.db.Delete(&models.ProjectFile{}, "id = ? AND project_id = ?", fileID, projectID)
	return result.RowsAffected, result.Error
}

// AddActivity appends a log entry to a project
func (r *ProjectRepository) AddActivity(activity *models.Activity) error {
	return r.db.Create(activity).Error
}
