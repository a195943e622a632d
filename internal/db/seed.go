package db

import (
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ClinicaExecutivas/studio-scheduler/internal/config"
	"github.com/ClinicaExecutivas/studio-scheduler/internal/models"
)

// SeedAdminUser garante a existência do usuário administrador. Sem
// ADMIN_PASSWORD configurado nada é criado.
func SeedAdminUser(db *gorm.DB, cfg *config.Config, logger *zerolog.Logger) error {
	if cfg.AdminPassword == "" {
		logger.Warn().Msg("ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	var existing models.User
	err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hashed),
		Role:         "admin",
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	logger.Info().Str("username", user.Username).Msg("admin user created")
	return nil
}
