package models

// ProjectStatus values
const (
	ProjectStatusPlanning  = "planning"
	ProjectStatusActive    = "active"
	ProjectStatusOnHold    = "on-hold"
	ProjectStatusCompleted = "completed"
)

// Project groups tasks, a roster, files and an activity log.
// Progress, TasksCompleted and TotalTasks are derived from Tasks.
type Project struct {
	Base
	Name           string  `json:"name" gorm:"not null"`
	Description    string  `json:"description"`
	Status         string  `json:"status" gorm:"type:varchar(20);default:'planning'"`
	Priority       string  `json:"priority" gorm:"type:varchar(10);default:'medium'"`
	StartDate      string  `json:"startDate" gorm:"type:varchar(10)"`
	EndDate        string  `json:"endDate" gorm:"type:varchar(10)"`
	Budget         float64 `json:"budget"`
	Department     string  `json:"department" gorm:"index"`
	UserID         string  `json:"userId" gorm:"type:uuid;not null;index"`
	Progress       int     `json:"progress" gorm:"not null;default:0"`
	TasksCompleted int     `json:"tasksCompleted" gorm:"not null;default:0"`
	TotalTasks     int     `json:"totalTasks" gorm:"not null;default:0"`

	// Relations
	Tasks      []Task          `json:"tasks" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Team       []ProjectMember `json:"team" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Files      []ProjectFile   `json:"files" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	Activities []Activity      `json:"activities" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

// OwnerID returns the user who created the project
func (p Project) OwnerID() string {
	return p.UserID
}

// Aggregate is the derived task summary stored on a project
type Aggregate struct {
	TasksCompleted int
	TotalTasks     int
	Progress       int
}

// ComputeAggregate summarises tasks. Progress is 100*completed/total rounded half up.
func ComputeAggregate(tasks []Task) Aggregate {
	completed := 0
	for _, t := range tasks {
		if t.Status == TaskStatusCompleted {
			completed++
		}
	}

	agg := Aggregate{TasksCompleted: completed, TotalTasks: len(tasks)}
	if agg.TotalTasks > 0 {
		agg.Progress = (200*completed + agg.TotalTasks) / (2 * agg.TotalTasks)
	}
	return agg
}

// ValidProjectStatus reports whether s is a known project status
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectStatusPlanning, ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted:
		return true
	}
	return false
}
