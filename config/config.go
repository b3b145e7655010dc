package config

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/mohdrafey1/FitTrack-sub000/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	var dialector gorm.Dialector
	if os.Getenv("DB_DRIVER") == "sqlite" {
		dialector = sqlite.Open(os.Getenv("DB_PATH"))
	} else {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	}

	var err error
	// TranslateError so the unique-index race on food logs shows up as
	// gorm.ErrDuplicatedKey on both drivers.
	DB, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.CustomFood{},
		&models.FoodLog{},
		&models.FoodLogItem{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

var (
	appLoc     *time.Location
	appLocOnce sync.Once
)

// AppLocation is the single reference timezone every date truncation uses.
// APP_TIMEZONE is an IANA name; unset or invalid falls back to UTC.
func AppLocation() *time.Location {
	appLocOnce.Do(func() {
		name := os.Getenv("APP_TIMEZONE")
		if name == "" {
			appLoc = time.UTC
			return
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Printf("invalid APP_TIMEZONE %q, falling back to UTC", name)
			appLoc = time.UTC
			return
		}
		appLoc = loc
	})
	return appLoc
}
