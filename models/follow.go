package models

import (
	"time"

	"gorm.io/gorm"
)

// Follow is a directed edge: FollowerID observes FollowedID's tweets.
// Edges are created out-of-band (see the seed package); the API only
// reads them.
type Follow struct {
	ID         uint      `gorm:"primary_key;autoIncrement" json:"id"`
	FollowerID uint      `gorm:"not null;index;uniqueIndex:idx_follows_unique" json:"follower_id"`
	FollowedID uint      `gorm:"not null;index;uniqueIndex:idx_follows_unique" json:"followed_id"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (f *Follow) SaveFollow(db *gorm.DB) (*Follow, error) {
	err := db.Create(&f).Error
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Exists reports whether followerID follows followedID. This is the
// whole visibility rule: there is no author exception, so a user cannot
// read their own tweet's detail without a self-follow edge.
func (f *Follow) Exists(db *gorm.DB, followerID, followedID uint) (bool, error) {
	var count int64
	err := db.Model(&Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FollowingNames lists the display names of everyone uid follows.
func (f *Follow) FollowingNames(db *gorm.DB, uid uint) ([]string, error) {
	var names []string
	sub := db.Model(&Follow{}).Select("followed_id").Where("follower_id = ?", uid)
	err := db.Model(&User{}).Where("id IN (?)", sub).Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// FollowerNames lists the display names of everyone following uid.
func (f *Follow) FollowerNames(db *gorm.DB, uid uint) ([]string, error) {
	var names []string
	sub := db.Model(&Follow{}).Select("follower_id").Where("followed_id = ?", uid)
	err := db.Model(&User{}).Where("id IN (?)", sub).Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
