package repositories

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/kwolosonovich/warbler/internal/models"
)

var testDBCounter int64

// newTestDB opens a fresh in-memory sqlite database with the full schema.
// Each call gets its own named database so tests cannot see each other's
// rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:warbler_test_%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Message{}, &models.Follow{}, &models.Like{})
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, repo UserRepository, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
	}
	if err := repo.CreateUser(user); err != nil {
		t.Fatalf("create test user %q: %v", username, err)
	}
	return user
}

func createTestMessage(t *testing.T, repo MessageRepository, userID uint, text string, at time.Time) *models.Message {
	t.Helper()
	message := &models.Message{Text: text, UserID: userID, Timestamp: at}
	if err := repo.CreateMessage(message); err != nil {
		t.Fatalf("create test message %q: %v", text, err)
	}
	return message
}
