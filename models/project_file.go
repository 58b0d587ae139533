package models

// ProjectFile is an attachment record on a project
type ProjectFile struct {
	Base
	ProjectID  string `json:"projectId" gorm:"type:uuid;not null;index"`
	Name       string `json:"name" gorm:"not null"`
	Size       int64  `json:"size"`
	Type       string `json:"type"`
	URL        string `json:"url"`
	UploadedBy string `json:"uploadedBy" gorm:"type:varchar(36)"`
}
