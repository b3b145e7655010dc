package services

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/mohdrafey1/FitTrack-sub000/config"
	"github.com/mohdrafey1/FitTrack-sub000/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func useTestUserDB(t *testing.T) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "fittrack-users-test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	previous := config.DB
	config.DB = db
	t.Cleanup(func() {
		config.DB = previous
		_ = sqlDB.Close()
	})
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	useTestUserDB(t)

	if err := RegisterUser("ann@example.com", "correct-horse", "Ann"); err != nil {
		t.Fatalf("first registration: %v", err)
	}

	err := RegisterUser("ann@example.com", "other-password", "Another Ann")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}

	var count int64
	if err := config.DB.Model(&models.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("users = %d, want 1", count)
	}
}

func TestRegisterThenAuthenticate(t *testing.T) {
	useTestUserDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	if err := RegisterUser("bob@example.com", "correct-horse", "Bob"); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := AuthenticateUser("bob@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if token == "" {
		t.Error("empty token for valid credentials")
	}

	if _, err := AuthenticateUser("bob@example.com", "wrong-password"); err == nil {
		t.Error("expected an error for a wrong password")
	}
	if _, err := AuthenticateUser("nobody@example.com", "correct-horse"); err == nil {
		t.Error("expected an error for an unknown email")
	}
}
