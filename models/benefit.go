package models

// Benefit enrollment states
const (
	BenefitStatusEnrolled  = "enrolled"
	BenefitStatusPending   = "pending"
	BenefitStatusCancelled = "cancelled"
)

// Benefit is a user's enrollment in a benefits plan
type Benefit struct {
	Base
	UserID      string  `json:"userId" gorm:"type:uuid;not null;index"`
	Name        string  `json:"name" gorm:"not null"`
	Category    string  `json:"category"`
	Provider    string  `json:"provider"`
	Coverage    string  `json:"coverage"`
	MonthlyCost float64 `json:"monthlyCost"`
	Status      string  `json:"status" gorm:"type:varchar(20)"`
	EnrolledAt  string  `json:"enrolledAt" gorm:"type:varchar(10)"`
}

func (b Benefit) OwnerID() string { return b.UserID }
