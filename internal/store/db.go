package store

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"appointment-reminder-go/internal/config"
	"appointment-reminder-go/internal/model"
)

// OpenDB initializes the database connection and runs migrations
func OpenDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	gormLogger := logger.New(
		logrus.StandardLogger(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(mysql.Open(cfg.GetDSN()), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&model.Appointment{}, &model.DeliveryLog{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("Database initialized successfully")
	return db, nil
}

// DBStore persists the appointment collection in a relational table while
// keeping the same whole-snapshot read/write contract as the file store.
type DBStore struct {
	db *gorm.DB
}

// NewDBStore creates a database-backed store.
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

// ReadAll loads the full appointment collection.
func (s *DBStore) ReadAll() ([]model.Appointment, error) {
	var appointments []model.Appointment
	if err := s.db.Order("id").Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to read appointments: %w", err)
	}
	if appointments == nil {
		appointments = []model.Appointment{}
	}
	return appointments, nil
}

// WriteAll replaces the full appointment collection in a single transaction.
func (s *DBStore) WriteAll(appointments []model.Appointment) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Appointment{}).Error; err != nil {
			return err
		}
		if len(appointments) == 0 {
			return nil
		}
		return tx.Create(&appointments).Error
	})
	if err != nil {
		return fmt.Errorf("failed to write appointments: %w", err)
	}
	return nil
}
