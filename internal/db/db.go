package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/config"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
)

func NewDB(cfg *config.Config, logger *zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate")
	}

	return db
}

// Migrate também é usado pelos testes, com um banco sqlite em memória.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.ContactForm{},
		&models.Appointment{},
		&models.Massagista{},
		&models.Referral{},
		&models.AuditLog{},
	)
}
