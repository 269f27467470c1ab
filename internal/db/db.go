package db

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-platform/internal/config"
	"github.com/BruksfildServices01/barber-platform/internal/models"
)

func NewDB(cfg *config.Config, log *logrus.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Tenant{},
		&models.Location{},
		&models.LocationHours{},
		&models.User{},
		&models.Service{},
		&models.Client{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// One live appointment per (tenant, barber, date, time). Rejected rows
	// are excluded so a freed slot can be rebooked. The partial index keeps
	// the no-double-booking invariant correct across concurrent instances;
	// the repository additionally pre-checks under FOR UPDATE.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_slot
        ON appointments (tenant_id, barber_id, date, time)
        WHERE status <> 'rejected'
    `)

	db.Exec(`
        UPDATE tenants
        SET timezone = 'Europe/Lisbon'
        WHERE timezone IS NULL OR timezone = ''
    `)

	return db
}
