package repositories

import (
	"fmt"

	"github.com/kwolosonovich/warbler/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository defines the interface for like edges on messages
type LikeRepository interface {
	CreateLike(userID, messageID uint) error
	DeleteLike(userID, messageID uint) error
	HasUserLiked(userID, messageID uint) (bool, error)
	GetLikeCount(messageID uint) (int64, error)
	GetLikedMessages(userID uint) ([]models.Message, error)
}

// PostgresLikeRepository implements LikeRepository on GORM
type PostgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository
func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// CreateLike records that a user likes a message. Liking the same message
// twice is a no-op against the composite unique index.
func (r *PostgresLikeRepository) CreateLike(userID, messageID uint) error {
	like := &models.Like{UserID: userID, MessageID: messageID}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
		return fmt.Errorf("create like failed: %w", err)
	}
	return nil
}

// DeleteLike removes the like if present; unliking an absent like is a
// no-op, not an error.
func (r *PostgresLikeRepository) DeleteLike(userID, messageID uint) error {
	res := r.db.Where("user_id = ? AND message_id = ?", userID, messageID).Delete(&models.Like{})
	if res.Error != nil {
		return fmt.Errorf("delete like failed: %w", res.Error)
	}
	return nil
}

// HasUserLiked reports whether the user has liked the message
func (r *PostgresLikeRepository) HasUserLiked(userID, messageID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("user_id = ? AND message_id = ?", userID, messageID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("query like failed: %w", err)
	}
	return count > 0, nil
}

// GetLikeCount counts the likes on a message
func (r *PostgresLikeRepository) GetLikeCount(messageID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("message_id = ?", messageID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count likes failed: %w", err)
	}
	return count, nil
}

// GetLikedMessages lists the messages a user has liked, newest first
func (r *PostgresLikeRepository) GetLikedMessages(userID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("id IN (?)",
		r.db.Table("likes").Select("message_id").Where("user_id = ?", userID),
	).Order("timestamp DESC, id ASC").Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("query liked messages failed: %w", err)
	}
	return messages, nil
}
