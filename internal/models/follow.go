package models

import "time"

// Follow represents a directed follow edge: FollowerID follows FollowedID.
// The composite unique index rejects duplicate edges at the store level.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follower_followed;not null"`
	FollowedID uint      `json:"followed_id" gorm:"index;uniqueIndex:idx_follower_followed;not null"`
	CreatedAt  time.Time `json:"created_at"`
}
