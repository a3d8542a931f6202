package repositories

import (
	"testing"
	"time"

	"github.com/kwolosonovich/warbler/internal/models"
)

func TestLikeUnlikeRestoresCount(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db)
	messageRepo := NewPostgresMessageRepository(db)
	likeRepo := NewPostgresLikeRepository(db)

	alice := createTestUser(t, userRepo, "alice")
	bob := createTestUser(t, userRepo, "bob")
	message := createTestMessage(t, messageRepo, bob.ID, "hi", time.Now().UTC())

	before, err := likeRepo.GetLikeCount(message.ID)
	if err != nil {
		t.Fatalf("like count failed: %v", err)
	}

	if err := likeRepo.CreateLike(alice.ID, message.ID); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	during, _ := likeRepo.GetLikeCount(message.ID)
	if during != before+1 {
		t.Fatalf("expected count %d after like, got %d", before+1, during)
	}

	if err := likeRepo.DeleteLike(alice.ID, message.ID); err != nil {
		t.Fatalf("unlike failed: %v", err)
	}
	after, _ := likeRepo.GetLikeCount(message.ID)
	if after != before {
		t.Fatalf("expected count restored to %d, got %d", before, after)
	}
}

func TestDuplicateLikeIsNoOp(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db)
	messageRepo := NewPostgresMessageRepository(db)
	likeRepo := NewPostgresLikeRepository(db)

	alice := createTestUser(t, userRepo, "alice")
	message := createTestMessage(t, messageRepo, alice.ID, "self-like is fine", time.Now().UTC())

	if err := likeRepo.CreateLike(alice.ID, message.ID); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if err := likeRepo.CreateLike(alice.ID, message.ID); err != nil {
		t.Fatalf("duplicate like should be a no-op, got %v", err)
	}

	count, err := likeRepo.GetLikeCount(message.ID)
	if err != nil {
		t.Fatalf("like count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 like after duplicate, got %d", count)
	}
}

func TestUnlikeAbsentIsNoOp(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db)
	messageRepo := NewPostgresMessageRepository(db)
	likeRepo := NewPostgresLikeRepository(db)

	alice := createTestUser(t, userRepo, "alice")
	message := createTestMessage(t, messageRepo, alice.ID, "hi", time.Now().UTC())

	if err := likeRepo.DeleteLike(alice.ID, message.ID); err != nil {
		t.Fatalf("unlike of absent like should be a no-op, got %v", err)
	}
}

func TestGetLikedMessages(t *testing.T) {
	db := newTestDB(t)
	userRepo := NewPostgresUserRepository(db)
	messageRepo := NewPostgresMessageRepository(db)
	likeRepo := NewPostgresLikeRepository(db)

	alice := createTestUser(t, userRepo, "alice")
	bob := createTestUser(t, userRepo, "bob")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	first := createTestMessage(t, messageRepo, bob.ID, "first", base)
	second := createTestMessage(t, messageRepo, bob.ID, "second", base.Add(time.Minute))
	createTestMessage(t, messageRepo, bob.ID, "unliked", base.Add(2*time.Minute))

	if err := likeRepo.CreateLike(alice.ID, first.ID); err != nil {
		t.Fatalf("like failed: %v", err)
	}
	if err := likeRepo.CreateLike(alice.ID, second.ID); err != nil {
		t.Fatalf("like failed: %v", err)
	}

	liked, err := likeRepo.GetLikedMessages(alice.ID)
	if err != nil {
		t.Fatalf("liked messages failed: %v", err)
	}
	if len(liked) != 2 {
		t.Fatalf("expected 2 liked messages, got %d", len(liked))
	}
	if liked[0].Text != "second" || liked[1].Text != "first" {
		t.Fatalf("expected newest-first order, got [%s %s]", liked[0].Text, liked[1].Text)
	}

	has, err := likeRepo.HasUserLiked(alice.ID, first.ID)
	if err != nil || !has {
		t.Fatalf("expected HasUserLiked true, got %v %v", has, err)
	}

	var unliked models.Message
	db.Where("text = ?", "unliked").First(&unliked)
	has, err = likeRepo.HasUserLiked(alice.ID, unliked.ID)
	if err != nil || has {
		t.Fatalf("expected HasUserLiked false, got %v %v", has, err)
	}
}
