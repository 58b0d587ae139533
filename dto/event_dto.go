package dto

import (
	"time"

	"github.com/workforce-hub/models"
	"github.com/workforce-hub/utils"
)

// CreateEventRequest schedules a calendar event
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	EndTime     time.Time `json:"endTime"`
}

// ToModel defaults a missing end to one hour after start
func (r CreateEventRequest) ToModel(userID string) (models.Event, error) {
	if err := utils.RequireText("title", r.Title); err != nil {
		return models.Event{}, err
	}
	if r.StartTime.IsZero() {
		return models.Event{}, utils.NewValidationError("startTime", "is required")
	}
	end := r.EndTime
	if end.IsZero() {
		end = r.StartTime.Add(time.Hour)
	}
	if end.Before(r.StartTime) {
		return models.Event{}, utils.NewValidationError("endTime", "must not be before startTime")
	}
	return models.Event{
		UserID:      userID,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		StartTime:   r.StartTime,
		EndTime:     end,
	}, nil
}

// UpdateEventRequest is a partial event update
type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartTime   *time.Time `json:"startTime"`
	EndTime     *time.Time `json:"endTime"`
}

// Changes maps the sent fields to columns. The time range is checked by
// the caller against the stored event.
func (r UpdateEventRequest) Changes() (utils.Changes, error) {
	if r.Title != nil {
		if err := utils.RequireText("title", *r.Title); err != nil {
			return nil, err
		}
	}
	return utils.Changes{}.
		Set("title", r.Title).
		Set("description", r.Description).
		Set("location", r.Location).
		Set("start_time", r.StartTime).
		Set("end_time", r.EndTime), nil
}
