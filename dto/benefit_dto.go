package dto

import (
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/utils"
)

// CreateBenefitRequest enrols the caller in a benefit plan
type CreateBenefitRequest struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Provider    string  `json:"provider"`
	Coverage    string  `json:"coverage"`
	MonthlyCost float64 `json:"monthlyCost"`
	Status      string  `json:"status"`
	EnrolledAt  string  `json:"enrolledAt"`
}

func validBenefitStatus(s string) bool {
	switch s {
	case models.BenefitStatusEnrolled, models.BenefitStatusPending, models.BenefitStatusCancelled:
		return true
	}
	return false
}

// ToModel validates the plan; status defaults to enrolled
func (r CreateBenefitRequest) ToModel(userID string) (models.Benefit, error) {
	if err := utils.RequireText("name", r.Name); err != nil {
		return models.Benefit{}, err
	}
	if r.MonthlyCost < 0 {
		return models.Benefit{}, utils.NewValidationError("monthlyCost", "must not be negative")
	}
	if err := utils.ValidateDate("enrolledAt", r.EnrolledAt); err != nil {
		return models.Benefit{}, err
	}
	benefit := models.Benefit{
		UserID:      userID,
		Name:        r.Name,
		Category:    r.Category,
		Provider:    r.Provider,
		Coverage:    r.Coverage,
		MonthlyCost: r.MonthlyCost,
		Status:      r.Status,
		EnrolledAt:  r.EnrolledAt,
	}
	if benefit.Status == "" {
		benefit.Status = models.BenefitStatusEnrolled
	}
	if !validBenefitStatus(benefit.Status) {
		return models.Benefit{}, utils.NewValidationError("status", "unknown benefit status %q", benefit.Status)
	}
	return benefit, nil
}

// UpdateBenefitRequest is a partial benefit update
type UpdateBenefitRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Provider    *string  `json:"provider"`
	Coverage    *string  `json:"coverage"`
	MonthlyCost *float64 `json:"monthlyCost"`
	Status      *string  `json:"status"`
	EnrolledAt  *string  `json:"enrolledAt"`
}

// Changes validates the sent fields and maps them to columns
func (r UpdateBenefitRequest) Changes() (utils.Changes, error) {
	if r.Name != nil {
		if err := utils.RequireText("name", *r.Name); err != nil {
			return nil, err
		}
	}
	if r.MonthlyCost != nil && *r.MonthlyCost < 0 {
		return nil, utils.NewValidationError("monthlyCost", "must not be negative")
	}
	if r.Status != nil && !validBenefitStatus(*r.Status) {
		return nil, utils.NewValidationError("status", "unknown benefit status %q", *r.Status)
	}
	if r.EnrolledAt != nil {
		if err := utils.ValidateDate("enrolledAt", *r.EnrolledAt); err != nil {
			return nil, err
		}
	}
	return utils.Changes{}.
		Set("name", r.Name).
		Set("category", r.Category).
		Set("provider", r.Provider).
		Set("coverage", r.Coverage).
		Set("monthly_cost", r.MonthlyCost).
		Set("status", r.Status).
		Set("enrolled_at", r.EnrolledAt), nil
}
