package models

import "time"

// AttendanceStatusPresent is assigned on the first check-in of a day
const AttendanceStatusPresent = "present"

// AttendanceRecord is the single row per user per calendar day
type AttendanceRecord struct {
	Base
	UserID   string     `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_attendance_user_date"`
	Date     string     `json:"date" gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_user_date"`
	CheckIn  *time.Time `json:"checkIn"`
	CheckOut *time.Time `json:"checkOut"`
	Status   string     `json:"status" gorm:"type:varchar(20);not null"`
}

// TableName sets the table name for AttendanceRecord
func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
