package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/config"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
)

// memoryDSN is a private in-memory SQLite database with foreign keys enforced.
const memoryDSN = ":memory:?_foreign_keys=1"

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		return OpenMemory(cfg.LogLevel)
	}

	gormCfg := GormConfig(cfg.LogLevel)
	gormCfg.PrepareStmt = true

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// OpenMemory opens a fresh SQLite database that lives as long as the returned handle.
func OpenMemory(logLevel string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(memoryDSN), GormConfig(logLevel))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	// Every new connection to :memory: is a separate, empty database.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// GormConfig is shared by every driver. Errors are left untranslated so
// repositories can see which unique index fired.
func GormConfig(logLevel string) *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel(logLevel)),
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Vehicle{},
		&models.ServiceOffer{},
		&models.Appointment{},
		&models.AppointmentLineItem{},
		&models.HistoryRecord{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// gorm tags cannot express partial indexes.
	for _, stmt := range []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_appointments_active_slot
			ON appointments (slot_date, slot_time)
			WHERE is_deleted = false AND status IN ('Pending', 'Approved', 'Completed')`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_customers_single_operator
			ON customers (role)
			WHERE role = 'operator'`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "debug":
		return gormlogger.Info
	case "warn", "warning":
		return gormlogger.Warn
	case "error":
		return gormlogger.Error
	default:
		return gormlogger.Silent
	}
}
