package database

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
	"github.com/structurachem/scpl-api/internal/config"
	"github.com/structurachem/scpl-api/internal/domain/entity"
	"github.com/structurachem/scpl-api/internal/domain/enum"
	"github.com/structurachem/scpl-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens the embedded database file. The console is a
// single-tenant, single-operator deployment, so an embedded store stands
// in for a database server.
func NewSQLiteDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One writer at a time; sqlite serializes writes anyway.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	log.Printf("Opened database at %s", cfg.Path)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Operator accounts
		&entity.User{},

		// CRM entities
		&entity.Customer{},
		&entity.VisitLog{},

		// Catalog
		&entity.Product{},

		// Documents
		&entity.Quotation{},
		&entity.LineItem{},
		&entity.StatusLog{},
		&entity.Invoice{},
		&entity.InvoiceItem{},

		// System entities
		&entity.AppSettings{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the factory settings row and the principal admin
// account on first boot.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var settings entity.AppSettings
	if err := db.First(&settings).Error; err != nil {
		defaults := entity.DefaultSettings()
		if err := db.Create(defaults).Error; err != nil {
			return fmt.Errorf("failed to seed settings: %w", err)
		}
		log.Printf("Seeded default settings for %s", defaults.CompanyShortName)
	}

	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var existing entity.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Printf("Admin user already exists: %s", adminEmail)
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if adminName == "" {
		adminName = "Principal Admin"
	}

	var short string
	db.Model(&entity.AppSettings{}).Select("company_short_name").Scan(&short)
	if short == "" {
		short = "SCPL"
	}

	admin := entity.User{
		EmployeeNo: utils.GenerateEmployeeNo(short, 1),
		Name:       adminName,
		Email:      adminEmail,
		Password:   string(hashed),
		Role:       enum.UserRoleAdmin,
		Seeded:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	log.Printf("Admin user created: %s", adminEmail)

	return nil
}
