package repositories

import (
	"errors"
	"fmt"

	"github.com/kwolosonovich/warbler/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user directory operations
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	SearchUsers(query string) ([]models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id uint) error
}

// PostgresUserRepository implements UserRepository on GORM
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// CreateUser inserts a new user. A username or email collision surfaces as
// models.ErrDuplicate; the insert is a single statement so nothing partial
// persists on failure.
func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("username or email taken: %w", models.ErrDuplicate)
		}
		return fmt.Errorf("create user failed: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("query user by id failed: %w", err)
	}
	return &user, nil
}

// GetUserByUsername retrieves a user by exact username
func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %q: %w", username, models.ErrNotFound)
		}
		return nil, fmt.Errorf("query user by username failed: %w", err)
	}
	return &user, nil
}

// SearchUsers lists users whose username contains the query,
// case-insensitive, in insertion order. An empty query lists everyone.
func (r *PostgresUserRepository) SearchUsers(query string) ([]models.User, error) {
	var users []models.User
	q := r.db.Order("id")
	if query != "" {
		q = q.Where("LOWER(username) LIKE LOWER(?)", "%"+query+"%")
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("search users failed: %w", err)
	}
	return users, nil
}

// UpdateUser persists changes to an existing user
func (r *PostgresUserRepository) UpdateUser(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("username or email taken: %w", models.ErrDuplicate)
		}
		return fmt.Errorf("update user failed: %w", err)
	}
	return nil
}

// DeleteUser removes a user and everything they own in one transaction:
// likes on their messages, their own likes, follow edges in both
// directions, their messages, and finally the user row.
func (r *PostgresUserRepository) DeleteUser(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		ownMessages := tx.Model(&models.Message{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("message_id IN (?)", ownMessages).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followed_id = ?", id, id).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete user failed: %w", err)
	}
	return nil
}
