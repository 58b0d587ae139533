package models

// Task status constants
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in-progress"
	TaskStatusCompleted  = "completed"
)

// Priority constants
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// TaskAssignee is the display snapshot of whoever owns a task
type TaskAssignee struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Task belongs to exactly one project
type Task struct {
	Base
	ProjectID string       `json:"projectId" gorm:"type:uuid;not null;index"`
	Title     string       `json:"title" gorm:"not null"`
	Status    string       `json:"status" gorm:"type:varchar(20);not null;default:'todo'"`
	Priority  string       `json:"priority" gorm:"type:varchar(10);not null;default:'medium'"`
	DueDate   string       `json:"dueDate" gorm:"type:varchar(10)"`
	Assignee  TaskAssignee `json:"assignee" gorm:"embedded;embeddedPrefix:assignee_"`
}

// ToggledStatus flips completed to todo and anything else to completed
func (t Task) ToggledStatus() string {
	if t.Status == TaskStatusCompleted {
		return TaskStatusTodo
	}
	return TaskStatusCompleted
}

// ValidTaskStatus reports whether s is a known task status
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// ValidPriority reports whether p is a known priority
func ValidPriority(p string) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}
