package models

// ProjectMember is a roster entry scoped to one project.
// When DirectoryMemberID is set the other fields were copied from the team
// directory at the time the member was added and are not kept in sync.
type ProjectMember struct {
	Base
	ProjectID         string  `json:"projectId" gorm:"type:uuid;not null;index"`
	DirectoryMemberID *string `json:"directoryMemberId,omitempty" gorm:"type:uuid"`
	Name              string  `json:"name" gorm:"not null"`
	Role              string  `json:"role"`
	Avatar            string  `json:"avatar"`
	Email             string  `json:"email"`
	TasksAssigned     int     `json:"tasksAssigned"`
	TasksCompleted    int     `json:"tasksCompleted"`
}
