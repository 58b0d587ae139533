package models

// Document is metadata for a stored file owned by a user
type Document struct {
	Base
	UserID      string `json:"userId" gorm:"type:uuid;not null;index"`
	Name        string `json:"name" gorm:"not null"`
	Category    string `json:"category" gorm:"index"`
	FileType    string `json:"fileType"`
	Size        int64  `json:"size"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

func (d Document) OwnerID() string { return d.UserID }
