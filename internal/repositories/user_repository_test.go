package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/kwolosonovich/warbler/internal/models"
)

func TestCreateUserDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresUserRepository(db)

	createTestUser(t, repo, "alice")

	dup := &models.User{
		Username:     "alice",
		Email:        "other@example.com",
		PasswordHash: "x",
	}
	err := repo.CreateUser(dup)
	if !errors.Is(err, models.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 user after failed signup, got %d", count)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresUserRepository(db)

	createTestUser(t, repo, "alice")

	dup := &models.User{
		Username:     "bob",
		Email:        "alice@example.com",
		PasswordHash: "x",
	}
	if err := repo.CreateUser(dup); !errors.Is(err, models.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestGetUserByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresUserRepository(db)

	if _, err := repo.GetUserByID(42); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSearchUsers(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresUserRepository(db)

	createTestUser(t, repo, "alice")
	createTestUser(t, repo, "bob")
	createTestUser(t, repo, "malice")

	users, err := repo.SearchUsers("ALI")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 matches for %q, got %d", "ALI", len(users))
	}
	if users[0].Username != "alice" || users[1].Username != "malice" {
		t.Fatalf("expected insertion order [alice malice], got [%s %s]", users[0].Username, users[1].Username)
	}

	all, err := repo.SearchUsers("")
	if err != nil {
		t.Fatalf("empty search failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected empty query to list everyone, got %d", len(all))
	}
}

func TestDeleteUserCascades(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db)
	messageRepo := NewPostgresMessageRepository(db)
	followRepo := NewPostgresFollowRepository(db, false)
	likeRepo := NewPostgresLikeRepository(db)

	alice := createTestUser(t, userRepo, "alice")
	bob := createTestUser(t, userRepo, "bob")

	now := time.Now().UTC()
	aliceMsg := createTestMessage(t, messageRepo, alice.ID, "mine", now)
	bobMsg := createTestMessage(t, messageRepo, bob.ID, "bobs", now)

	if err := followRepo.CreateFollow(alice.ID, bob.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if err := followRepo.CreateFollow(bob.ID, alice.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if err := likeRepo.CreateLike(alice.ID, bobMsg.ID); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if err := likeRepo.CreateLike(bob.ID, aliceMsg.ID); err != nil {
		t.Fatalf("like failed: %v", err)
	}

	if err := userRepo.DeleteUser(alice.ID); err != nil {
		t.Fatalf("delete user failed: %v", err)
	}

	var count int64
	db.Model(&models.Message{}).Where("user_id = ?", alice.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected 0 messages left for deleted user, got %d", count)
	}
	db.Model(&models.Follow{}).Where("follower_id = ? OR followed_id = ?", alice.ID, alice.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected 0 follow edges touching deleted user, got %d", count)
	}
	db.Model(&models.Like{}).Where("user_id = ?", alice.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected 0 likes by deleted user, got %d", count)
	}
	db.Model(&models.Like{}).Where("message_id = ?", aliceMsg.ID).Count(&count)
	if count != 0 {
		t.Errorf("expected 0 likes on deleted user's messages, got %d", count)
	}

	// Bob and his message survive.
	if _, err := userRepo.GetUserByID(bob.ID); err != nil {
		t.Errorf("bob should still exist: %v", err)
	}
	if _, err := messageRepo.GetMessageByID(bobMsg.ID); err != nil {
		t.Errorf("bob's message should still exist: %v", err)
	}
}

func TestUpdateUserRejectsTakenEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresUserRepository(db)

	createTestUser(t, repo, "alice")
	bob := createTestUser(t, repo, "bob")

	bob.Email = "alice@example.com"
	if err := repo.UpdateUser(bob); !errors.Is(err, models.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}
