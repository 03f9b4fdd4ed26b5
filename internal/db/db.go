package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Imrannnnn/TallieRestaurantApp/internal/config"
	"github.com/Imrannnnn/TallieRestaurantApp/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
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

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Restaurant{},
		&models.Table{},
		&models.Reservation{},
		&models.User{},
		&models.AuditLog{},
	)
}

// Reset drops and recreates every collection. Test harnesses call this
// between cases instead of reinitializing the whole process.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(
		&models.AuditLog{},
		&models.Reservation{},
		&models.Table{},
		&models.Restaurant{},
		&models.User{},
	); err != nil {
		return err
	}
	return Migrate(db)
}
