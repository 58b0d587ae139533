package dto

import (
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/utils"
)

// CreateDocumentRequest records document metadata; the file itself lives at URL
type CreateDocumentRequest struct {
	Name        string `json:"name" binding:"required"`
	Category    string `json:"category"`
	FileType    string `json:"fileType"`
	Size        int64  `json:"size"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// ToModel validates the metadata and files uncategorised documents under general
func (r CreateDocumentRequest) ToModel(userID string) (models.Document, error) {
	if err := utils.RequireText("name", r.Name); err != nil {
		return models.Document{}, err
	}
	if r.Size < 0 {
		return models.Document{}, utils.NewValidationError("size", "must not be negative")
	}
	doc := models.Document{
		UserID:      userID,
		Name:        r.Name,
		Category:    r.Category,
		FileType:    r.FileType,
		Size:        r.Size,
		URL:         r.URL,
		Description: r.Description,
	}
	if doc.Category == "" {
		doc.Category = "general"
	}
	return doc, nil
}

// UpdateDocumentRequest is a partial document update
type UpdateDocumentRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	FileType    *string `json:"fileType"`
	Size        *int64  `json:"size"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
}

// Changes validates the sent fields and maps them to columns
func (r UpdateDocumentRequest) Changes() (utils.Changes, error) {
	if r.Name != nil {
		if err := utils.RequireText("name", *r.Name); err != nil {
			return nil, err
		}
	}
	if r.Size != nil && *r.Size < 0 {
		return nil, utils.NewValidationError("size", "must not be negative")
	}
	return utils.Changes{}.
		Set("name", r.Name).
		Set("category", r.Category).
		Set("file_type", r.FileType).
		Set("size", r.Size).
		Set("url", r.URL).
		Set("description", r.Description), nil
}
