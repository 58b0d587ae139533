package models

import "time"

// Time-off request states
const (
	TimeOffPending  = "pending"
	TimeOffApproved = "approved"
	TimeOffRejected = "rejected"
)

// TimeOffRequest is a leave request awaiting or past review
type TimeOffRequest struct {
	Base
	UserID     string     `json:"userId" gorm:"type:uuid;not null;index"`
	Type       string     `json:"type" gorm:"type:varchar(20);not null"`
	StartDate  string     `json:"startDate" gorm:"type:varchar(10);not null"`
	EndDate    string     `json:"endDate" gorm:"type:varchar(10);not null"`
	Reason     string     `json:"reason"`
	Status     string     `json:"status" gorm:"type:varchar(20);not null"`
	ReviewedBy *string    `json:"reviewedBy" gorm:"type:uuid"`
	ReviewedAt *time.Time `json:"reviewedAt"`
}

// TableName sets the table name for TimeOffRequest
func (TimeOffRequest) TableName() string {
	return "time_off_requests"
}

func (r TimeOffRequest) OwnerID() string { return r.UserID }
