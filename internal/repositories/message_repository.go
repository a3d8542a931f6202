package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kwolosonovich/warbler/internal/models"
	"gorm.io/gorm"
)

// MessageRepository defines the interface for the message store and the
// feed queries built on it
type MessageRepository interface {
	CreateMessage(message *models.Message) error
	GetMessageByID(id uint) (*models.Message, error)
	GetMessagesByUser(userID uint, limit int) ([]models.Message, error)
	DeleteMessage(id, requesterID uint) error
	RecentMessages(limit int) ([]models.Message, error)
	MessagesByAuthors(authorIDs []uint, limit int) ([]models.Message, error)
}

// PostgresMessageRepository implements MessageRepository on GORM
type PostgresMessageRepository struct {
	db *gorm.DB
}

// NewPostgresMessageRepository creates a new PostgresMessageRepository
func NewPostgresMessageRepository(db *gorm.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

// CreateMessage inserts a message. Text must be non-empty after trimming
// and within the length bound; the timestamp is server-assigned when the
// caller leaves it zero.
func (r *PostgresMessageRepository) CreateMessage(message *models.Message) error {
	message.Text = strings.TrimSpace(message.Text)
	if message.Text == "" {
		return fmt.Errorf("message text is empty: %w", models.ErrValidation)
	}
	if len(message.Text) > models.MessageMaxLength {
		return fmt.Errorf("message text exceeds %d characters: %w", models.MessageMaxLength, models.ErrValidation)
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}
	if err := r.db.Create(message).Error; err != nil {
		return fmt.Errorf("create message failed: %w", err)
	}
	return nil
}

// GetMessageByID retrieves a message by ID
func (r *PostgresMessageRepository) GetMessageByID(id uint) (*models.Message, error) {
	var message models.Message
	if err := r.db.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("message %d: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("query message by id failed: %w", err)
	}
	return &message, nil
}

// GetMessagesByUser lists a user's messages, newest first
func (r *PostgresMessageRepository) GetMessagesByUser(userID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("user_id = ?", userID).
		Order("timestamp DESC, id ASC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("query messages by user failed: %w", err)
	}
	return messages, nil
}

// DeleteMessage removes a message and its likes in one transaction. Only
// the owner may delete; deleting an id that no longer exists is a no-op.
func (r *PostgresMessageRepository) DeleteMessage(id, requesterID uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var message models.Message
		if err := tx.First(&message, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if message.UserID != requesterID {
			return fmt.Errorf("message %d belongs to another user: %w", id, models.ErrUnauthorized)
		}
		if err := tx.Where("message_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Message{}, id).Error
	})
	if err != nil {
		if errors.Is(err, models.ErrUnauthorized) {
			return err
		}
		return fmt.Errorf("delete message failed: %w", err)
	}
	return nil
}

// RecentMessages lists the most recent messages across all users, the
// fallback feed for a viewer who follows nobody
func (r *PostgresMessageRepository) RecentMessages(limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Order("timestamp DESC, id ASC").Limit(limit).Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("query recent messages failed: %w", err)
	}
	return messages, nil
}

// MessagesByAuthors lists the most recent messages authored by any of the
// given users. Single indexed range query over (user_id, timestamp).
func (r *PostgresMessageRepository) MessagesByAuthors(authorIDs []uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("user_id IN ?", authorIDs).
		Order("timestamp DESC, id ASC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("query feed messages failed: %w", err)
	}
	return messages, nil
}
