package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"instrument-tray-backend/internal/config"
	"instrument-tray-backend/internal/database"
	"instrument-tray-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type DepartmentData struct {
	Name        string `yaml:"name"`
	Code        string `yaml:"code"`
	Description string `yaml:"description"`
}

type UserData struct {
	Username       string `yaml:"username"`
	Email          string `yaml:"email"`
	Password       string `yaml:"password"`
	FirstName      string `yaml:"first_name"`
	LastName       string `yaml:"last_name"`
	Role           string `yaml:"role"`
	DepartmentCode string `yaml:"department_code,omitempty"`
	Active         *bool  `yaml:"active,omitempty"`
}

type ManufacturerData struct {
	Name    string `yaml:"name"`
	Contact string `yaml:"contact,omitempty"`
	Address string `yaml:"address,omitempty"`
	Website string `yaml:"website,omitempty"`
}

type InstrumentData struct {
	ArticleNumber    string `yaml:"article_number"`
	Designation      string `yaml:"designation"`
	Description      string `yaml:"description,omitempty"`
	ManufacturerName string `yaml:"manufacturer_name"`
}

type TrayItemData struct {
	ArticleNumber string `yaml:"article_number"`
	Quantity      int    `yaml:"quantity"`
	Position      string `yaml:"position,omitempty"`
	Note          string `yaml:"note,omitempty"`
}

type TrayData struct {
	Name           string         `yaml:"name"`
	Description    string         `yaml:"description,omitempty"`
	Classification string         `yaml:"classification"`
	Status         string         `yaml:"status,omitempty"`
	DepartmentCode string         `yaml:"department_code,omitempty"`
	CreatedBy      string         `yaml:"created_by"`
	Items          []TrayItemData `yaml:"items,omitempty"`
}

type DepartmentsFile struct {
	Departments []DepartmentData `yaml:"departments"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type ManufacturersFile struct {
	Manufacturers []ManufacturerData `yaml:"manufacturers"`
}

type InstrumentsFile struct {
	Instruments []InstrumentData `yaml:"instruments"`
}

type TraysFile struct {
	Trays []TrayData `yaml:"trays"`
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

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
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

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	// Load all data from YAML files
	departments, err := loadDepartments(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load departments: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	manufacturers, err := loadManufacturers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load manufacturers: %w", err)
	}

	instruments, err := loadInstruments(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load instruments: %w", err)
	}

	trays, err := loadTrays(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load trays: %w", err)
	}

	// Create departments first
	departmentMap := make(map[string]*models.Department)
	departmentCreated := 0
	for _, departmentData := range departments {
		department, created, err := createDepartment(db, departmentData)
		if err != nil {
			return fmt.Errorf("failed to create department %s: %w", departmentData.Code, err)
		}
		departmentMap[departmentData.Code] = department
		if created {
			departmentCreated++
		}
	}
	log.Printf("📋 Departments: %d created, %d total", departmentCreated, len(departments))

	// Create users
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData, departmentMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Username, err)
		}
		userMap[userData.Username] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create manufacturers
	manufacturerMap := make(map[string]*models.Manufacturer)
	manufacturerCreated := 0
	for _, manufacturerData := range manufacturers {
		manufacturer, created, err := createManufacturer(db, manufacturerData)
		if err != nil {
			return fmt.Errorf("failed to create manufacturer %s: %w", manufacturerData.Name, err)
		}
		manufacturerMap[manufacturerData.Name] = manufacturer
		if created {
			manufacturerCreated++
		}
	}
	log.Printf("📋 Manufacturers: %d created, %d total", manufacturerCreated, len(manufacturers))

	// Create instruments
	instrumentMap := make(map[string]*models.Instrument)
	instrumentCreated := 0
	for _, instrumentData := range instruments {
		instrument, created, err := createInstrument(db, instrumentData, manufacturerMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create instrument %s: %v", instrumentData.ArticleNumber, err)
			continue // Continue with other instruments
		}
		instrumentMap[instrumentData.ArticleNumber] = instrument
		if created {
			instrumentCreated++
		}
	}
	log.Printf("📋 Instruments: %d created, %d total", instrumentCreated, len(instruments))

	// Create trays with their items
	trayCreated := 0
	itemCreated := 0
	for _, trayData := range trays {
		_, created, items, err := createTray(db, trayData, departmentMap, userMap, instrumentMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create tray %s: %v", trayData.Name, err)
			continue // Continue with other trays
		}
		if created {
			trayCreated++
		}
		itemCreated += items
	}
	log.Printf("📋 Trays: %d created, %d total", trayCreated, len(trays))
	log.Printf("📋 Tray items: %d created", itemCreated)

	return nil
}

func loadDepartments(dataDir string) ([]DepartmentData, error) {
	var allDepartments []DepartmentData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "departments") {
			var file DepartmentsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allDepartments = append(allDepartments, file.Departments...)
		}
		return nil
	})

	return allDepartments, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadManufacturers(dataDir string) ([]ManufacturerData, error) {
	var allManufacturers []ManufacturerData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "manufacturers") {
			var file ManufacturersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allManufacturers = append(allManufacturers, file.Manufacturers...)
		}
		return nil
	})

	return allManufacturers, err
}

func loadInstruments(dataDir string) ([]InstrumentData, error) {
	var allInstruments []InstrumentData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "instruments") {
			var file InstrumentsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allInstruments = append(allInstruments, file.Instruments...)
		}
		return nil
	})

	return allInstruments, err
}

func loadTrays(dataDir string) ([]TrayData, error) {
	var allTrays []TrayData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "trays") {
			var file TraysFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTrays = append(allTrays, file.Trays...)
		}
		return nil
	})

	return allTrays, err
}

func createDepartment(db *gorm.DB, departmentData DepartmentData) (*models.Department, bool, error) {
	var department models.Department
	if err := db.Where("code = ?", departmentData.Code).First(&department).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			department = models.Department{
				Name:        departmentData.Name,
				Code:        departmentData.Code,
				Description: departmentData.Description,
			}

			if err := db.Create(&department).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create department: %w", err)
			}
			return &department, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query department: %w", err)
		}
	}

	return &department, false, nil // created = false (existing)
}

func createUser(db *gorm.DB, userData UserData, departmentMap map[string]*models.Department) (*models.User, bool, error) {
	var departmentID *uuid.UUID
	if userData.DepartmentCode != "" {
		department := departmentMap[userData.DepartmentCode]
		if department == nil {
			return nil, false, fmt.Errorf("department %s not found for user %s", userData.DepartmentCode, userData.Username)
		}
		departmentID = &department.ID
	}

	var user models.User
	if err := db.Where("username = ?", userData.Username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			active := true
			if userData.Active != nil {
				active = *userData.Active
			}

			user = models.User{
				Username:     userData.Username,
				Email:        userData.Email,
				PasswordHash: string(hash),
				FirstName:    userData.FirstName,
				LastName:     userData.LastName,
				Role:         models.Role(userData.Role),
				Active:       active,
				DepartmentID: departmentID,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createManufacturer(db *gorm.DB, manufacturerData ManufacturerData) (*models.Manufacturer, bool, error) {
	var manufacturer models.Manufacturer
	if err := db.Where("name = ?", manufacturerData.Name).First(&manufacturer).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			manufacturer = models.Manufacturer{
				Name:    manufacturerData.Name,
				Contact: manufacturerData.Contact,
				Address: manufacturerData.Address,
				Website: manufacturerData.Website,
			}

			if err := db.Create(&manufacturer).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create manufacturer: %w", err)
			}
			return &manufacturer, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query manufacturer: %w", err)
		}
	}

	return &manufacturer, false, nil // created = false (existing)
}

func createInstrument(db *gorm.DB, instrumentData InstrumentData, manufacturerMap map[string]*models.Manufacturer) (*models.Instrument, bool, error) {
	manufacturer := manufacturerMap[instrumentData.ManufacturerName]
	if manufacturer == nil {
		return nil, false, fmt.Errorf("manufacturer %s not found for instrument %s", instrumentData.ManufacturerName, instrumentData.ArticleNumber)
	}

	var instrument models.Instrument
	if err := db.Where("article_number = ? AND manufacturer_id = ?", instrumentData.ArticleNumber, manufacturer.ID).First(&instrument).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			instrument = models.Instrument{
				ArticleNumber:  instrumentData.ArticleNumber,
				Designation:    instrumentData.Designation,
				Description:    instrumentData.Description,
				ManufacturerID: manufacturer.ID,
			}

			if err := db.Create(&instrument).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create instrument: %w", err)
			}
			return &instrument, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query instrument: %w", err)
		}
	}

	return &instrument, false, nil // created = false (existing)
}

func createTray(db *gorm.DB, trayData TrayData, departmentMap map[string]*models.Department, userMap map[string]*models.User, instrumentMap map[string]*models.Instrument) (*models.Tray, bool, int, error) {
	createdBy := userMap[trayData.CreatedBy]
	if createdBy == nil {
		return nil, false, 0, fmt.Errorf("user %s not found for tray %s", trayData.CreatedBy, trayData.Name)
	}

	// Department-specific trays must reference a department; cross-department
	// trays never carry one.
	var departmentID *uuid.UUID
	classification := models.TrayClassification(trayData.Classification)
	if classification == models.TrayClassificationDepartmentSpecific {
		department := departmentMap[trayData.DepartmentCode]
		if department == nil {
			return nil, false, 0, fmt.Errorf("department %s not found for tray %s", trayData.DepartmentCode, trayData.Name)
		}
		departmentID = &department.ID
	}

	var tray models.Tray
	if err := db.Where("name = ?", trayData.Name).First(&tray).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, 0, fmt.Errorf("failed to query tray: %w", err)
		}

		status := models.TrayStatusActive
		if trayData.Status != "" {
			status = models.TrayStatus(trayData.Status)
		}

		tray = models.Tray{
			Name:           trayData.Name,
			Description:    trayData.Description,
			Classification: classification,
			Status:         status,
			Version:        1,
			DepartmentID:   departmentID,
			CreatedByID:    createdBy.ID,
		}

		if err := db.Create(&tray).Error; err != nil {
			return nil, false, 0, fmt.Errorf("failed to create tray: %w", err)
		}

		itemsCreated := 0
		for _, itemData := range trayData.Items {
			instrument := instrumentMap[itemData.ArticleNumber]
			if instrument == nil {
				log.Printf("⚠️  Warning: instrument %s not found for tray %s", itemData.ArticleNumber, trayData.Name)
				continue
			}

			quantity := itemData.Quantity
			if quantity < 1 {
				quantity = 1
			}

			item := models.TrayItem{
				TrayID:       tray.ID,
				InstrumentID: instrument.ID,
				Quantity:     quantity,
				Position:     itemData.Position,
				Note:         itemData.Note,
			}

			if err := db.Create(&item).Error; err != nil {
				log.Printf("⚠️  Warning: failed to create tray item %s for tray %s: %v", itemData.ArticleNumber, trayData.Name, err)
				continue
			}
			itemsCreated++
		}

		return &tray, true, itemsCreated, nil // created = true
	}

	return &tray, false, 0, nil // created = false (existing)
}
