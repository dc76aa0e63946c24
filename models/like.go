package models

import (
	"time"

	"gorm.io/gorm"
)

// Like rows are created out-of-band; the API only counts and lists them.
type Like struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	TweetID   uint      `gorm:"not null;index" json:"tweet_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (l *Like) SaveLike(db *gorm.DB) (*Like, error) {
	err := db.Create(&l).Error
	if err != nil {
		return nil, err
	}
	return l, nil
}

// LikerUsernames lists the usernames of everyone who liked the tweet.
func (l *Like) LikerUsernames(db *gorm.DB, tid uint) ([]string, error) {
	usernames := []string{}
	err := db.Table("users").
		Joins("INNER JOIN likes ON likes.user_id = users.id").
		Where("likes.tweet_id = ?", tid).
		Pluck("users.username", &usernames).Error
	if err != nil {
		return nil, err
	}
	return usernames, nil
}
