package database

import (
	"gramseva/config"
	"gramseva/internal/domain"
	"gramseva/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

// AutoMigrate runs Gorm auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Village{},
		&models.Member{},
		&models.Scheme{},
		&models.GalleryImage{},
		&models.ContactMessage{},
	)
}

// SeedStaff creates the bootstrap staff account from configuration.
// It is idempotent: nothing happens when credentials are absent or an
// account with that email already exists.
func SeedStaff(db *gorm.DB, cfg *config.AdminConfig, log *zap.Logger) error {
	if cfg.Email == "" || cfg.Password == "" {
		return nil
	}
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", cfg.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u := &models.User{
		Email:        cfg.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleStaff,
	}
	if err := db.Create(u).Error; err != nil {
		return err
	}
	log.Info("bootstrap staff account created", zap.String("email", cfg.Email))
	return nil
}
