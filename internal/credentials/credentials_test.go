package credentials

import (
	"testing"

	"github.com/kwolosonovich/warbler/internal/models"
)

// fakeUserRepo serves a single user by username.
type fakeUserRepo struct {
	user *models.User
}

func (f *fakeUserRepo) CreateUser(*models.User) error          { return nil }
func (f *fakeUserRepo) UpdateUser(*models.User) error          { return nil }
func (f *fakeUserRepo) DeleteUser(uint) error                  { return nil }
func (f *fakeUserRepo) SearchUsers(string) ([]models.User, error) { return nil, nil }

func (f *fakeUserRepo) GetUserByID(id uint) (*models.User, error) {
	if f.user != nil && f.user.ID == id {
		return f.user, nil
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) GetUserByUsername(username string) (*models.User, error) {
	if f.user != nil && f.user.Username == username {
		return f.user, nil
	}
	return nil, models.ErrNotFound
}

func TestHashAndCheck(t *testing.T) {
	hash, err := Hash("letmein")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "letmein" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !Check(hash, "letmein") {
		t.Fatal("check should accept the original password")
	}
	if Check(hash, "wrong") {
		t.Fatal("check should reject a wrong password")
	}
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("letmein")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	b, err := Hash("letmein")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if a == b {
		t.Fatal("two hashes of the same password must differ")
	}
}

func TestVerify(t *testing.T) {
	hash, err := Hash("correct horse")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	repo := &fakeUserRepo{user: &models.User{ID: 1, Username: "alice", PasswordHash: hash}}
	store := NewStore(repo)

	user, err := store.Verify("alice", "correct horse")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if user == nil || user.ID != 1 {
		t.Fatalf("expected alice, got %v", user)
	}

	// Wrong password and unknown username are indistinguishable.
	user, err = store.Verify("alice", "wrong")
	if err != nil || user != nil {
		t.Fatalf("expected (nil, nil) for wrong password, got %v %v", user, err)
	}
	user, err = store.Verify("nobody", "anything")
	if err != nil || user != nil {
		t.Fatalf("expected (nil, nil) for unknown username, got %v %v", user, err)
	}
}
