package services

import (
	"github.com/sirupsen/logrus"
	"github.com/workforce-hub/dto"
	"github.com/workforce-hub/logging"
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/repositories"
	"github.com/workforce-hub/utils"
)

// TimeOffService adds the review workflow to time-off requests
type TimeOffService struct {
	*ResourceService[models.TimeOffRequest]
	repo  *repositories.ResourceRepository[models.TimeOffRequest]
	clock Clock
}

// NewTimeOffService creates a new time-off service instance
func NewTimeOffService(repo *repositories.ResourceRepository[models.TimeOffRequest], clock Clock) *TimeOffService {
	return &TimeOffService{
		ResourceService: NewResourceService(repo, "time-off request"),
		repo:            repo,
		clock:           clock,
	}
}

// Update edits a request owned by userID. Reviewed requests are frozen and
// the merged dates must still form a valid range.
func (s *TimeOffService) Update(id, userID string, patch dto.UpdateTimeOffRequest) (models.TimeOffRequest, error) {
	existing, err := s.Get(id, userID)
	if err != nil {
		return models.TimeOffRequest{}, err
	}
	if existing.Status != models.TimeOffPending {
		return models.TimeOffRequest{}, utils.NewValidationError("status", "request was already %s", existing.Status)
	}

	start, end := existing.StartDate, existing.EndDate
	if patch.StartDate != nil {
		start = *patch.StartDate
	}
	if patch.EndDate != nil {
		end = *patch.EndDate
	}
	if err := utils.ValidateDateRange(start, end); err != nil {
		return models.TimeOffRequest{}, err
	}

	return s.ResourceService.Update(id, userID, patch)
}

// Review approves or rejects a pending request on behalf of reviewerID
func (s *TimeOffService) Review(id, reviewerID, status string) (models.TimeOffRequest, error) {
	if status != models.TimeOffApproved && status != models.TimeOffRejected {
		return models.TimeOffRequest{}, utils.NewValidationError("status", "must be approved or rejected")
	}

	if err := utils.CheckID("time-off request", id); err != nil {
		return models.TimeOffRequest{}, err
	}
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return models.TimeOffRequest{}, utils.TranslateNotFound(err, "time-off request", id)
	}
	if existing.Status != models.TimeOffPending {
		return models.TimeOffRequest{}, utils.NewValidationError("status", "request was already %s", existing.Status)
	}

	now := s.clock.Now()
	updated, err := s.repo.Update(id, map[string]interface{}{
		"status":      status,
		"reviewed_by": reviewerID,
		"reviewed_at": now,
	})
	if err != nil {
		return models.TimeOffRequest{}, utils.TranslateNotFound(err, "time-off request", id)
	}

	logging.Logger.WithFields(logrus.Fields{"requestId": id, "reviewer": reviewerID, "status": status}).Info("time-off request reviewed")
	return updated, nil
}
