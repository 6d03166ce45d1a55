package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"guard-roster-backend/internal/config"
	"guard-roster-backend/internal/database"
	"guard-roster-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type SiteData struct {
	Name         string `yaml:"name"`
	Address      string `yaml:"address"`
	City         string `yaml:"city"`
	MinimumStaff int    `yaml:"minimum_staff"`
	IsActive     *bool  `yaml:"is_active,omitempty"`
}

type UserData struct {
	FirstName          string   `yaml:"first_name"`
	LastName           string   `yaml:"last_name"`
	Email              string   `yaml:"email"`
	Role               string   `yaml:"role"`
	Qualifications     []string `yaml:"qualifications,omitempty"`
	TargetMonthlyHours float64  `yaml:"target_monthly_hours"`
	MaxWeeklyHours     float64  `yaml:"max_weekly_hours"`
	PreferredShiftType string   `yaml:"preferred_shift_type,omitempty"`
	PreferredDuration  float64  `yaml:"preferred_duration,omitempty"`
	PreferredWorkload  string   `yaml:"preferred_workload,omitempty"`
	IsActive           *bool    `yaml:"is_active,omitempty"`
}

type ShiftData struct {
	SiteName               string   `yaml:"site_name"`
	StartTime              string   `yaml:"start_time"`
	EndTime                string   `yaml:"end_time"`
	RequiredEmployees      int      `yaml:"required_employees"`
	RequiredQualifications []string `yaml:"required_qualifications,omitempty"`
	Status                 string   `yaml:"status,omitempty"`
	Notes                  string   `yaml:"notes,omitempty"`
	AssignedEmails         []string `yaml:"assigned_emails,omitempty"`
}

type ClearanceData struct {
	UserEmail  string `yaml:"user_email"`
	SiteName   string `yaml:"site_name"`
	Status     string `yaml:"status,omitempty"`
	TrainedAt  string `yaml:"trained_at,omitempty"`
	ValidUntil string `yaml:"valid_until,omitempty"`
}

type AbsenceData struct {
	UserEmail string `yaml:"user_email"`
	Type      string `yaml:"type"`
	Status    string `yaml:"status,omitempty"`
	StartsAt  string `yaml:"starts_at"`
	EndsAt    string `yaml:"ends_at"`
	Reason    string `yaml:"reason,omitempty"`
}

// File structures
type SitesFile struct {
	Sites []SiteData `yaml:"sites"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type ShiftsFile struct {
	Shifts []ShiftData `yaml:"shifts"`
}

type ClearancesFile struct {
	Clearances []ClearanceData `yaml:"clearances"`
}

type AbsencesFile struct {
	Absences []AbsenceData `yaml:"absences"`
}

func main() {
	log.Println("Loading initial roster data from YAML files...")

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

	log.Println("Initial roster data loaded successfully!")
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

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	sites, err := loadSites(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load sites: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	shifts, err := loadShifts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load shifts: %w", err)
	}

	clearances, err := loadClearances(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load clearances: %w", err)
	}

	absences, err := loadAbsences(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load absences: %w", err)
	}

	// Create sites first
	siteMap := make(map[string]*models.Site)
	siteCreated := 0
	for _, siteData := range sites {
		site, created, err := createSite(db, siteData)
		if err != nil {
			return fmt.Errorf("failed to create site %s: %w", siteData.Name, err)
		}
		siteMap[siteData.Name] = site
		if created {
			siteCreated++
		}
	}
	log.Printf("Sites: %d created, %d total", siteCreated, len(sites))

	// Create users
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("Users: %d created, %d total", userCreated, len(users))

	// Create shifts with their planned assignments
	shiftCreated := 0
	for _, shiftData := range shifts {
		_, created, err := createShift(db, shiftData, siteMap, userMap)
		if err != nil {
			log.Printf("Warning: failed to create shift at %s starting %s: %v", shiftData.SiteName, shiftData.StartTime, err)
			continue
		}
		if created {
			shiftCreated++
		}
	}
	log.Printf("Shifts: %d created, %d total", shiftCreated, len(shifts))

	// Create clearances
	clearanceCreated := 0
	for _, clearanceData := range clearances {
		_, created, err := createClearance(db, clearanceData, siteMap, userMap)
		if err != nil {
			log.Printf("Warning: failed to create clearance for %s at %s: %v", clearanceData.UserEmail, clearanceData.SiteName, err)
			continue
		}
		if created {
			clearanceCreated++
		}
	}
	log.Printf("Clearances: %d created, %d total", clearanceCreated, len(clearances))

	// Create absences
	absenceCreated := 0
	for _, absenceData := range absences {
		_, created, err := createAbsence(db, absenceData, userMap)
		if err != nil {
			log.Printf("Warning: failed to create absence for %s: %v", absenceData.UserEmail, err)
			continue
		}
		if created {
			absenceCreated++
		}
	}
	log.Printf("Absences: %d created, %d total", absenceCreated, len(absences))

	return nil
}

func loadSites(dataDir string) ([]SiteData, error) {
	var all []SiteData
	err := walkYAMLFiles(dataDir, "sites", func(data []byte) error {
		var file SitesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Sites...)
		return nil
	})
	return all, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var all []UserData
	err := walkYAMLFiles(dataDir, "users", func(data []byte) error {
		var file UsersFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Users...)
		return nil
	})
	return all, err
}

func loadShifts(dataDir string) ([]ShiftData, error) {
	var all []ShiftData
	err := walkYAMLFiles(dataDir, "shifts", func(data []byte) error {
		var file ShiftsFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Shifts...)
		return nil
	})
	return all, err
}

func loadClearances(dataDir string) ([]ClearanceData, error) {
	var all []ClearanceData
	err := walkYAMLFiles(dataDir, "clearances", func(data []byte) error {
		var file ClearancesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Clearances...)
		return nil
	})
	return all, err
}

func loadAbsences(dataDir string) ([]AbsenceData, error) {
	var all []AbsenceData
	err := walkYAMLFiles(dataDir, "absences", func(data []byte) error {
		var file AbsencesFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return err
		}
		all = append(all, file.Absences...)
		return nil
	})
	return all, err
}

func walkYAMLFiles(dataDir, nameHint string, handle func([]byte) error) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, nameHint) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			return handle(data)
		}
		return nil
	})
}

func createSite(db *gorm.DB, siteData SiteData) (*models.Site, bool, error) {
	var site models.Site
	if err := db.Where("name = ?", siteData.Name).First(&site).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			minStaff := siteData.MinimumStaff
			if minStaff < 1 {
				minStaff = 1
			}
			site = models.Site{
				Name:         siteData.Name,
				Address:      siteData.Address,
				City:         siteData.City,
				MinimumStaff: minStaff,
				IsActive:     siteData.IsActive == nil || *siteData.IsActive,
			}
			if err := db.Create(&site).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create site: %w", err)
			}
			return &site, true, nil
		}
		return nil, false, fmt.Errorf("failed to query site: %w", err)
	}
	return &site, false, nil
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			role := models.UserRoleEmployee
			if userData.Role != "" {
				role = models.UserRole(userData.Role)
			}
			user = models.User{
				FirstName:          userData.FirstName,
				LastName:           userData.LastName,
				Email:              userData.Email,
				Role:               role,
				Qualifications:     userData.Qualifications,
				TargetMonthlyHours: userData.TargetMonthlyHours,
				MaxWeeklyHours:     userData.MaxWeeklyHours,
				PreferredShiftType: models.ShiftType(userData.PreferredShiftType),
				PreferredDuration:  userData.PreferredDuration,
				PreferredWorkload:  models.WorkloadLevel(userData.PreferredWorkload),
				IsActive:           userData.IsActive == nil || *userData.IsActive,
			}
			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil
		}
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, false, nil
}

func createShift(db *gorm.DB, shiftData ShiftData, siteMap map[string]*models.Site, userMap map[string]*models.User) (*models.Shift, bool, error) {
	site := siteMap[shiftData.SiteName]
	if site == nil {
		return nil, false, fmt.Errorf("site %s not found", shiftData.SiteName)
	}

	start, err := time.Parse(time.RFC3339, shiftData.StartTime)
	if err != nil {
		return nil, false, fmt.Errorf("invalid start_time: %w", err)
	}
	end, err := time.Parse(time.RFC3339, shiftData.EndTime)
	if err != nil {
		return nil, false, fmt.Errorf("invalid end_time: %w", err)
	}

	var shift models.Shift
	if err := db.Where("site_id = ? AND start_time = ?", site.ID, start).First(&shift).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.ShiftStatusPlanned
			if shiftData.Status != "" {
				status = models.ShiftStatus(shiftData.Status)
			}
			shift = models.Shift{
				SiteID:                 site.ID,
				StartTime:              start,
				EndTime:                end,
				RequiredEmployees:      shiftData.RequiredEmployees,
				RequiredQualifications: shiftData.RequiredQualifications,
				Status:                 status,
				Notes:                  shiftData.Notes,
			}
			if err := db.Create(&shift).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create shift: %w", err)
			}

			// Seed planned assignments by employee email
			for _, email := range shiftData.AssignedEmails {
				user := userMap[email]
				if user == nil {
					log.Printf("Warning: user %s not found for shift assignment", email)
					continue
				}
				assignment := models.Assignment{
					UserID:  user.ID,
					ShiftID: shift.ID,
					Status:  models.AssignmentStatusAssigned,
					Origin:  models.AssignmentOriginPlanned,
				}
				if err := db.Create(&assignment).Error; err != nil {
					log.Printf("Warning: failed to assign %s: %v", email, err)
				}
			}
			return &shift, true, nil
		}
		return nil, false, fmt.Errorf("failed to query shift: %w", err)
	}
	return &shift, false, nil
}

func createClearance(db *gorm.DB, clearanceData ClearanceData, siteMap map[string]*models.Site, userMap map[string]*models.User) (*models.ObjectClearance, bool, error) {
	site := siteMap[clearanceData.SiteName]
	if site == nil {
		return nil, false, fmt.Errorf("site %s not found", clearanceData.SiteName)
	}
	user := userMap[clearanceData.UserEmail]
	if user == nil {
		return nil, false, fmt.Errorf("user %s not found", clearanceData.UserEmail)
	}

	var clearance models.ObjectClearance
	if err := db.Where("user_id = ? AND site_id = ?", user.ID, site.ID).First(&clearance).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.ClearanceStatusTraining
			if clearanceData.Status != "" {
				status = models.ClearanceStatus(clearanceData.Status)
			}
			clearance = models.ObjectClearance{
				UserID: user.ID,
				SiteID: site.ID,
				Status: status,
			}
			if t, err := parseOptionalTime(clearanceData.TrainedAt); err != nil {
				return nil, false, fmt.Errorf("invalid trained_at: %w", err)
			} else {
				clearance.TrainedAt = t
			}
			if t, err := parseOptionalTime(clearanceData.ValidUntil); err != nil {
				return nil, false, fmt.Errorf("invalid valid_until: %w", err)
			} else {
				clearance.ValidUntil = t
			}
			if err := db.Create(&clearance).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create clearance: %w", err)
			}
			return &clearance, true, nil
		}
		return nil, false, fmt.Errorf("failed to query clearance: %w", err)
	}
	return &clearance, false, nil
}

func createAbsence(db *gorm.DB, absenceData AbsenceData, userMap map[string]*models.User) (*models.Absence, bool, error) {
	user := userMap[absenceData.UserEmail]
	if user == nil {
		return nil, false, fmt.Errorf("user %s not found", absenceData.UserEmail)
	}

	start, err := time.Parse(time.RFC3339, absenceData.StartsAt)
	if err != nil {
		return nil, false, fmt.Errorf("invalid starts_at: %w", err)
	}
	end, err := time.Parse(time.RFC3339, absenceData.EndsAt)
	if err != nil {
		return nil, false, fmt.Errorf("invalid ends_at: %w", err)
	}

	var absence models.Absence
	if err := db.Where("user_id = ? AND starts_at = ? AND type = ?", user.ID, start, absenceData.Type).First(&absence).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.AbsenceStatusRequested
			if absenceData.Status != "" {
				status = models.AbsenceStatus(absenceData.Status)
			}
			absence = models.Absence{
				UserID:   user.ID,
				Type:     models.AbsenceType(absenceData.Type),
				Status:   status,
				StartsAt: start,
				EndsAt:   end,
				Reason:   absenceData.Reason,
			}
			if err := db.Create(&absence).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create absence: %w", err)
			}
			return &absence, true, nil
		}
		return nil, false, fmt.Errorf("failed to query absence: %w", err)
	}
	return &absence, false, nil
}

func parseOptionalTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
