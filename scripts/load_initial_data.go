package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"payroll-backend/internal/config"
	"payroll-backend/internal/database"
	"payroll-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type CompanyData struct {
	Name         string `yaml:"name"`
	ContactEmail string `yaml:"contact_email"`
}

type UserData struct {
	CompanyName string `yaml:"company_name"`
	Email       string `yaml:"email"`
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	IsActive    bool   `yaml:"is_active"`
}

type WorkscheduleData struct {
	CompanyName string `yaml:"company_name"`
	StartDate   string `yaml:"start_date"`
	EndDate     string `yaml:"end_date"`
	Status      string `yaml:"status"`
}

// File structure
type SeedFile struct {
	Companies     []CompanyData      `yaml:"companies"`
	Users         []UserData         `yaml:"users"`
	Workschedules []WorkscheduleData `yaml:"workschedules"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadSeedFile(db, "scripts/data/seed.yaml"); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedFile(db *gorm.DB, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	// Companies first, then users and schedules referencing them by name
	companiesByName := make(map[string]*models.Company, len(seed.Companies))
	for _, c := range seed.Companies {
		company, err := upsertCompany(db, c)
		if err != nil {
			return fmt.Errorf("company %q: %w", c.Name, err)
		}
		companiesByName[c.Name] = company
	}

	for _, u := range seed.Users {
		company, ok := companiesByName[u.CompanyName]
		if !ok {
			return fmt.Errorf("user %q references unknown company %q", u.Email, u.CompanyName)
		}
		if err := upsertUser(db, company.ID, u); err != nil {
			return fmt.Errorf("user %q: %w", u.Email, err)
		}
	}

	for _, w := range seed.Workschedules {
		company, ok := companiesByName[w.CompanyName]
		if !ok {
			return fmt.Errorf("workschedule references unknown company %q", w.CompanyName)
		}
		if err := upsertWorkschedule(db, company.ID, w); err != nil {
			return fmt.Errorf("workschedule %s..%s: %w", w.StartDate, w.EndDate, err)
		}
	}

	log.Printf("Loaded %d companies, %d users, %d workschedules",
		len(seed.Companies), len(seed.Users), len(seed.Workschedules))
	return nil
}

func upsertCompany(db *gorm.DB, data CompanyData) (*models.Company, error) {
	var existing models.Company
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		existing.ContactEmail = data.ContactEmail
		return &existing, db.Save(&existing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	company := &models.Company{
		Name:         data.Name,
		ContactEmail: data.ContactEmail,
	}
	return company, db.Create(company).Error
}

func upsertUser(db *gorm.DB, companyID uuid.UUID, data UserData) error {
	var existing models.User
	err := db.Where("company_id = ? AND email = ?", companyID, data.Email).First(&existing).Error
	if err == nil {
		existing.FirstName = data.FirstName
		existing.LastName = data.LastName
		existing.IsActive = data.IsActive
		return db.Save(&existing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	return db.Create(&models.User{
		CompanyID: companyID,
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		IsActive:  data.IsActive,
	}).Error
}

func upsertWorkschedule(db *gorm.DB, companyID uuid.UUID, data WorkscheduleData) error {
	start, err := time.Parse("2006-01-02", data.StartDate)
	if err != nil {
		return fmt.Errorf("invalid start_date: %w", err)
	}
	end, err := time.Parse("2006-01-02", data.EndDate)
	if err != nil {
		return fmt.Errorf("invalid end_date: %w", err)
	}

	status := models.WorkscheduleStatus(data.Status)
	if data.Status == "" {
		status = models.WorkscheduleStatusPending
	} else if !status.IsValid() {
		return fmt.Errorf("invalid status %q", data.Status)
	}

	var existing models.Workschedule
	err = db.Where("company_id = ? AND start_date = ? AND end_date = ?",
		companyID, data.StartDate, data.EndDate).First(&existing).Error
	if err == nil {
		existing.Status = status
		return db.Save(&existing).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	return db.Create(&models.Workschedule{
		CompanyID: companyID,
		StartDate: start,
		EndDate:   end,
		Status:    status,
	}).Error
}
