package services

import (
	"github.com/workforce-hub/dto"
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/repositories"
	"github.com/workforce-hub/utils"
)

// EventService keeps calendar events ending no earlier than they start
type EventService struct {
	*ResourceService[models.Event]
}

// NewEventService creates a new event service instance
func NewEventService(repo *repositories.ResourceRepository[models.Event]) *EventService {
	return &EventService{ResourceService: NewResourceService(repo, "event")}
}

// Update edits an event owned by userID. A patch carrying only one of the
// two times is checked against the stored other one.
func (s *EventService) Update(id, userID string, patch dto.UpdateEventRequest) (models.Event, error) {
	existing, err := s.Get(id, userID)
	if err != nil {
		return models.Event{}, err
	}

	start, end := existing.StartTime, existing.EndTime
	if patch.StartTime != nil {
		start = *patch.StartTime
	}
	if patch.EndTime != nil {
		end = *patch.EndTime
	}
	if end.Before(start) {
		return models.Event{}, utils.NewValidationError("endTime", "must not be before startTime")
	}

	return s.ResourceService.Update(id, userID, patch)
}
