package models

import "time"

// Event is a calendar entry
type Event struct {
	Base
	UserID      string    `json:"userId" gorm:"type:uuid;not null;index"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"startTime" gorm:"not null;index"`
	EndTime     time.Time `json:"endTime" gorm:"not null"`
}

func (e Event) OwnerID() string { return e.UserID }
