package dto

import (
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/utils"
	"gorm.io/datatypes"
)

// CreateNoteRequest is the payload for a new note
type CreateNoteRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content"`
	Color   string   `json:"color"`
	Pinned  bool     `json:"pinned"`
	Tags    []string `json:"tags"`
}

// ToModel applies the default color and an empty tag list
func (r CreateNoteRequest) ToModel(userID string) (models.Note, error) {
	if err := utils.RequireText("title", r.Title); err != nil {
		return models.Note{}, err
	}
	note := models.Note{
		UserID:  userID,
		Title:   r.Title,
		Content: r.Content,
		Color:   r.Color,
		Pinned:  r.Pinned,
		Tags:    datatypes.NewJSONSlice(r.Tags),
	}
	if note.Color == "" {
		note.Color = models.DefaultNoteColor
	}
	if note.Tags == nil {
		note.Tags = datatypes.NewJSONSlice([]string{})
	}
	return note, nil
}

// UpdateNoteRequest is a partial note update
type UpdateNoteRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Color   *string   `json:"color"`
	Pinned  *bool     `json:"pinned"`
	Tags    *[]string `json:"tags"`
}

// Changes rejects a blank title and maps the sent fields to columns
func (r UpdateNoteRequest) Changes() (utils.Changes, error) {
	if r.Title != nil {
		if err := utils.RequireText("title", *r.Title); err != nil {
			return nil, err
		}
	}
	changes := utils.Changes{}.
		Set("title", r.Title).
		Set("content", r.Content).
		Set("color", r.Color).
		Set("pinned", r.Pinned)
	if r.Tags != nil {
		changes["tags"] = datatypes.NewJSONSlice(*r.Tags)
	}
	return changes, nil
}
