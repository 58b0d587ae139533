package models

// Activity types recorded on a project
const (
	ActivityProjectCreated = "project_created"
	ActivityProjectUpdated = "project_updated"
	ActivityTaskAdded      = "task_added"
	ActivityTaskUpdated    = "task_updated"
	ActivityTaskDeleted    = "task_deleted"
	ActivityTaskToggled    = "task_toggled"
	ActivityMemberAdded    = "member_added"
	ActivityMemberRemoved  = "member_removed"
	ActivityFileAdded      = "file_added"
	ActivityFileDeleted    = "file_deleted"
)

// Activity is an append-only project log entry
type Activity struct {
	Base
	ProjectID string `json:"projectId" gorm:"type:uuid;not null;index"`
	Type      string `json:"type" gorm:"type:varchar(32);not null"`
	Message   string `json:"message"`
	UserID    string `json:"userId" gorm:"type:varchar(36)"`
}
