package models

import "time"

// Like represents a user liking a message. A (user, message) pair appears
// at most once, enforced by the composite unique index.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_message;not null"`
	MessageID uint      `json:"message_id" gorm:"index;uniqueIndex:idx_user_message;not null"`
	CreatedAt time.Time `json:"created_at"`
}
