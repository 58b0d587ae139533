package models

// TeamMember is an entry in the organisation-wide team directory.
// It is unrelated to ProjectMember rosters.
type TeamMember struct {
	Base
	Name       string `json:"name" gorm:"not null"`
	Role       string `json:"role"`
	Department string `json:"department" gorm:"index"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Avatar     string `json:"avatar"`
	Location   string `json:"location"`
	Status     string `json:"status" gorm:"type:varchar(20)"`
}
