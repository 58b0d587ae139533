package repositories

import (
	"time"

	"github.com/workforce-hub/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceRepository is the only writer of attendance rows
type AttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository instance
func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// UpsertCheckIn inserts the (user, date) row or, if it exists, overwrites check_in.
// The decision and the write happen in one statement keyed by the unique index.
func (r *AttendanceRepository) UpsertCheckIn(record *models.AttendanceRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"check_in", "updated_at"}),
	}).Create(record).Error
}

// SetCheckOut stamps check_out on an existing row and reports how many rows matched
func (r *AttendanceRepository) SetCheckOut(userID, date string, at time.Time) (int64, error) {
	result := r.db.Model(&models.AttendanceRecord{}).
		Where("user_id = ? AND date = ?", userID, date).
		Updates(map[string]interface{}{"check_out": at, "updated_at": at})
	return result.RowsAffected, result.Error
}

// FindByUserAndDate retrieves the row for one user and day
func (r *AttendanceRepository) FindByUserAndDate(userID, date string) (models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	result := r.db.Where("user_id = ? AND date = ?", userID, date).First(&record)
	return record, result.Error
}

// FindAll retrieves attendance rows newest day first, limited to userID when set
func (r *AttendanceRepository) FindAll(userID string) ([]models.AttendanceRecord, error) {
	records := make([]models.AttendanceRecord, 0)
	query := r.db.Model(&models.AttendanceRecord{})
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	result := query.Order("date DESC").Order("user_id ASC").Find(&records)
	return records, result.Error
}
