package models

// Role represents user role types
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents an account that can sign in
type User struct {
	Base
	Email    string  `json:"email" gorm:"uniqueIndex;not null"`
	Password string  `json:"-" gorm:"not null"` // Password is not exposed in JSON
	Name     *string `json:"name" gorm:"default:null"`
	Role     Role    `json:"role" gorm:"type:varchar(10);default:'user'"`
}
