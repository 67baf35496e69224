package db

import (
	"log"
	"time"

	"github.com/reservly/booking-platform/internal/config"
	"github.com/reservly/booking-platform/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := Open(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Open connects without migrating. The CLI uses it to touch live data.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

// Migrate applies the schema plus the partial unique index that keeps
// at most one non-terminal appointment per (company, service, date,
// time) slot. A racing insert trips the index and surfaces as a
// unique-violation, which the repository maps to a conflict.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Service{},
		&models.Appointment{},
		&models.Subscription{},
		&models.CommissionPayment{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	return db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
        ON appointments (company_id, service_id, appointment_date, appointment_time)
        WHERE status IN ('pending', 'scheduled')
    `).Error
}
