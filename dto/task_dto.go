package dto

import (
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/utils"
)

// CreateTaskRequest is the draft for a new task. Status always starts as todo.
type CreateTaskRequest struct {
	Title    string              `json:"title" binding:"required"`
	Priority string              `json:"priority"`
	DueDate  string              `json:"dueDate"`
	Assignee models.TaskAssignee `json:"assignee"`
}

// Validate checks the draft fields
func (r CreateTaskRequest) Validate() error {
	if err := utils.RequireText("title", r.Title); err != nil {
		return err
	}
	if r.Priority != "" && !models.ValidPriority(r.Priority) {
		return utils.NewValidationError("priority", "unknown priority %q", r.Priority)
	}
	return utils.ValidateDate("dueDate", r.DueDate)
}

// UpdateTaskRequest is a partial task update
type UpdateTaskRequest struct {
	Title    *string              `json:"title"`
	Status   *string              `json:"status"`
	Priority *string              `json:"priority"`
	DueDate  *string              `json:"dueDate"`
	Assignee *models.TaskAssignee `json:"assignee"`
}

// Apply validates the sent fields and merges them into task
func (r UpdateTaskRequest) Apply(task *models.Task) error {
	if r.Title != nil {
		if err := utils.RequireText("title", *r.Title); err != nil {
			return err
		}
		task.Title = *r.Title
	}
	if r.Status != nil {
		if !models.ValidTaskStatus(*r.Status) {
			return utils.NewValidationError("status", "unknown task status %q", *r.Status)
		}
		task.Status = *r.Status
	}
	if r.Priority != nil {
		if !models.ValidPriority(*r.Priority) {
			return utils.NewValidationError("priority", "unknown priority %q", *r.Priority)
		}
		task.Priority = *r.Priority
	}
	if r.DueDate != nil {
		if err := utils.ValidateDate("dueDate", *r.DueDate); err != nil {
			return err
		}
		task.DueDate = *r.DueDate
	}
	if r.Assignee != nil {
		task.Assignee = *r.Assignee
	}
	return nil
}

// AddMemberRequest adds a roster entry. With DirectoryMemberID set, blank
// fields are filled from the team directory.
type AddMemberRequest struct {
	DirectoryMemberID *string `json:"directoryMemberId"`
	Name              string  `json:"name"`
	Role              string  `json:"role"`
	Avatar            string  `json:"avatar"`
	Email             string  `json:"email"`
	TasksAssigned     int     `json:"tasksAssigned"`
	TasksCompleted    int     `json:"tasksCompleted"`
}

// AddFileRequest attaches file metadata to a project
type AddFileRequest struct {
	Name string `json:"name" binding:"required"`
	Size int64  `json:"size"`
	Type string `json:"type"`
	URL  string `json:"url"`
}
