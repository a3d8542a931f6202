package models

import "time"

// MessageMaxLength bounds the text of a message, matching the 140-character
// column the original schema used.
const MessageMaxLength = 140

// Message is a short post owned by one user. Messages are immutable after
// creation; there is no edit operation. The composite (user_id, timestamp)
// index backs the feed range query.
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"size:140;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"index:idx_messages_author_time,priority:2"`
	UserID    uint      `json:"user_id" gorm:"index:idx_messages_author_time,priority:1;not null"`
}

// CreateMessageRequest defines the request body for posting a message
type CreateMessageRequest struct {
	Text string `json:"text" validate:"required,max=140"`
}
