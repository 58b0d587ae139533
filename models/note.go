package models

import "gorm.io/datatypes"

// DefaultNoteColor is used when a note is created without a color
const DefaultNoteColor = "#fef08a"

// Note is a personal sticky note
type Note struct {
	Base
	UserID  string                      `json:"userId" gorm:"type:uuid;not null;index"`
	Title   string                      `json:"title" gorm:"not null"`
	Content string                      `json:"content"`
	Color   string                      `json:"color" gorm:"type:varchar(20)"`
	Pinned  bool                        `json:"pinned" gorm:"not null;default:false"`
	Tags    datatypes.JSONSlice[string] `json:"tags"`
}

func (n Note) OwnerID() string { return n.UserID }
