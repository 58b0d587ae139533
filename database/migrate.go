package database

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
	"github.com/workforce-hub/logging"
	"github.com/workforce-hub/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Models lists every persisted model, parents before children
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Employee{},
		&models.TeamMember{},
		&models.Project{},
		&models.Task{},
		&models.ProjectMember{},
		&models.ProjectFile{},
		&models.Activity{},
		&models.AttendanceRecord{},
		&models.Note{},
		&models.Document{},
		&models.Benefit{},
		&models.TimeOffRequest{},
		&models.Event{},
	}
}

// DBConnection represents a named database connection
type DBConnection struct {
	DB     *gorm.DB
	Name   string
	Models []interface{}
}

// NewDBConnection creates a new database connection
func NewDBConnection(name string, opts Options) (*DBConnection, error) {
	if opts.URL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	db, err := Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", name, err)
	}

	logging.Logger.WithFields(logrus.Fields{"database": name, "driver": db.Dialector.Name()}).Info("connected to database")

	return &DBConnection{
		DB:     db,
		Name:   name,
		Models: Models(),
	}, nil
}

// Migrate migrates the database schema
func (c *DBConnection) Migrate() error {
	logging.Logger.Infof("migrating %s database schema", c.Name)
	if err := c.DB.AutoMigrate(c.Models...); err != nil {
		return fmt.Errorf("failed to migrate %s database: %w", c.Name, err)
	}
	logging.Logger.Infof("%s database schema migrated", c.Name)
	return nil
}

// MigrateDataBetweenDatabases copies every table from source to target in model order
func MigrateDataBetweenDatabases(source, target *DBConnection) error {
	logging.Logger.Info("starting data migration from source to target")

	return target.DB.Transaction(func(tx *gorm.DB) error {
		for _, model := range source.Models {
			elem := reflect.TypeOf(model).Elem()
			rows := reflect.New(reflect.SliceOf(elem))

			if err := source.DB.Model(model).Find(rows.Interface()).Error; err != nil {
				return fmt.Errorf("failed to fetch %s: %w", elem.Name(), err)
			}

			count := rows.Elem().Len()
			logging.Logger.Infof("found %d %s rows to migrate", count, elem.Name())
			if count == 0 {
				continue
			}

			// Associations are copied by their own table pass
			if err := tx.Omit(clause.Associations).CreateInBatches(rows.Interface(), 200).Error; err != nil {
				return fmt.Errorf("failed to migrate %s: %w", elem.Name(), err)
			}
		}

		logging.Logger.Info("data migration completed successfully")
		return nil
	})
}
