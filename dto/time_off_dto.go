package dto

import (
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/utils"
)

// CreateTimeOffRequest is a new leave request; it always starts pending
type CreateTimeOffRequest struct {
	Type      string `json:"type" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason"`
}

// ToModel requires type and both dates and checks their order
func (r CreateTimeOffRequest) ToModel(userID string) (models.TimeOffRequest, error) {
	if err := utils.RequireText("type", r.Type); err != nil {
		return models.TimeOffRequest{}, err
	}
	if err := utils.RequireText("startDate", r.StartDate); err != nil {
		return models.TimeOffRequest{}, err
	}
	if err := utils.RequireText("endDate", r.EndDate); err != nil {
		return models.TimeOffRequest{}, err
	}
	if err := utils.ValidateDateRange(r.StartDate, r.EndDate); err != nil {
		return models.TimeOffRequest{}, err
	}
	return models.TimeOffRequest{
		UserID:    userID,
		Type:      r.Type,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Reason:    r.Reason,
		Status:    models.TimeOffPending,
	}, nil
}

// UpdateTimeOffRequest edits a request; status moves only through review
type UpdateTimeOffRequest struct {
	Type      *string `json:"type"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Reason    *string `json:"reason"`
}

// Changes validates each sent date; the merged range is checked by the service
func (r UpdateTimeOffRequest) Changes() (utils.Changes, error) {
	if r.Type != nil {
		if err := utils.RequireText("type", *r.Type); err != nil {
			return nil, err
		}
	}
	if r.StartDate != nil {
		if err := utils.ValidateDate("startDate", *r.StartDate); err != nil {
			return nil, err
		}
	}
	if r.EndDate != nil {
		if err := utils.ValidateDate("endDate", *r.EndDate); err != nil {
			return nil, err
		}
	}
	return utils.Changes{}.
		Set("type", r.Type).
		Set("start_date", r.StartDate).
		Set("end_date", r.EndDate).
		Set("reason", r.Reason), nil
}

// ReviewTimeOffRequest approves or rejects a request
type ReviewTimeOffRequest struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}
