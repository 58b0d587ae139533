package services

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/workforce-hub/logging"
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/repositories"
	"github.com/workforce-hub/utils"
	"gorm.io/gorm"
)

// AttendanceService keeps one attendance record per user per calendar day
type AttendanceService struct {
	repo  *repositories.AttendanceRepository
	clock Clock
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(repo *repositories.AttendanceRepository, clock Clock) *AttendanceService {
	return &AttendanceService{repo: repo, clock: clock}
}

// CheckIn records now as today's check-in. A repeat check-in on the same
// day overwrites the stored time instead of adding a row.
func (s *AttendanceService) CheckIn(userID string) (models.AttendanceRecord, error) {
	if err := utils.RequireText("userId", userID); err != nil {
		return models.AttendanceRecord{}, err
	}

	now := s.clock.Now()
	today := now.Format(utils.DateLayout)

	record := models.AttendanceRecord{
		UserID:  userID,
		Date:    today,
		CheckIn: &now,
		Status:  models.AttendanceStatusPresent,
	}
	if err := s.repo.UpsertCheckIn(&record); err != nil {
		return models.AttendanceRecord{}, err
	}

	stored, err := s.repo.FindByUserAndDate(userID, today)
	if err != nil {
		return models.AttendanceRecord{}, err
	}

	logging.Logger.WithFields(logrus.Fields{"userId": userID, "date": today}).Info("checked in")
	return stored, nil
}

// CheckOut stamps now on today's record. Without a check-in it does nothing
// and returns nil.
func (s *AttendanceService) CheckOut(userID string) (*models.AttendanceRecord, error) {
	if err := utils.RequireText("userId", userID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	today := now.Format(utils.DateLayout)

	rows, err := s.repo.SetCheckOut(userID, today, now)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		logging.Logger.WithFields(logrus.Fields{"userId": userID, "date": today}).Info("check-out ignored, no check-in today")
		return nil, nil
	}

	stored, err := s.repo.FindByUserAndDate(userID, today)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// Today returns the caller's record for the current day, or nil
func (s *AttendanceService) Today(userID string) (*models.AttendanceRecord, error) {
	today := s.clock.Now().Format(utils.DateLayout)
	record, err := s.repo.FindByUserAndDate(userID, today)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// List returns records newest day first, limited to userID when it is set
func (s *AttendanceService) List(userID string) ([]models.AttendanceRecord, error) {
	return s.repo.FindAll(userID)
}
