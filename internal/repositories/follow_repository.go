package repositories

import (
	"fmt"

	"github.com/kwolosonovich/warbler/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the interface for the social graph
type FollowRepository interface {
	CreateFollow(followerID, followedID uint) error
	DeleteFollow(followerID, followedID uint) error
	IsFollowing(followerID, followedID uint) (bool, error)
	IsFollowedBy(userID, otherID uint) (bool, error)
	GetFollowers(userID uint) ([]models.User, error)
	GetFollowing(userID uint) ([]models.User, error)
	GetFollowingIDs(userID uint) ([]uint, error)
}

// PostgresFollowRepository implements FollowRepository on GORM
type PostgresFollowRepository struct {
	db        *gorm.DB
	allowSelf bool
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository.
// allowSelf controls whether a user may follow themselves.
func NewPostgresFollowRepository(db *gorm.DB, allowSelf bool) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db, allowSelf: allowSelf}
}

// CreateFollow adds the edge follower -> followed. Re-following is a no-op:
// the insert lands on the composite unique index and does nothing.
func (r *PostgresFollowRepository) CreateFollow(followerID, followedID uint) error {
	if !r.allowSelf && followerID == followedID {
		return fmt.Errorf("cannot follow yourself: %w", models.ErrValidation)
	}
	follow := &models.Follow{FollowerID: followerID, FollowedID: followedID}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(follow).Error; err != nil {
		return fmt.Errorf("create follow failed: %w", err)
	}
	return nil
}

// DeleteFollow removes the edge if present; removing an absent edge is a
// no-op, not an error.
func (r *PostgresFollowRepository) DeleteFollow(followerID, followedID uint) error {
	res := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).Delete(&models.Follow{})
	if res.Error != nil {
		return fmt.Errorf("delete follow failed: %w", res.Error)
	}
	return nil
}

// IsFollowing reports whether the edge follower -> followed exists
func (r *PostgresFollowRepository) IsFollowing(followerID, followedID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ? AND followed_id = ?", followerID, followedID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("query follow failed: %w", err)
	}
	return count > 0, nil
}

// IsFollowedBy reports whether otherID follows userID
func (r *PostgresFollowRepository) IsFollowedBy(userID, otherID uint) (bool, error) {
	return r.IsFollowing(otherID, userID)
}

// GetFollowers lists the users following userID
func (r *PostgresFollowRepository) GetFollowers(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("follower_id").Where("followed_id = ?", userID),
	).Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("query followers failed: %w", err)
	}
	return users, nil
}

// GetFollowing lists the users userID follows
func (r *PostgresFollowRepository) GetFollowing(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Table("follows").Select("followed_id").Where("follower_id = ?", userID),
	).Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("query following failed: %w", err)
	}
	return users, nil
}

// GetFollowingIDs lists just the ids userID follows, for feed composition
func (r *PostgresFollowRepository) GetFollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Pluck("followed_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("query following ids failed: %w", err)
	}
	return ids, nil
}
