package models

import (
	"time"

	"gorm.io/gorm"
)

// Reply rows are created out-of-band; the API only counts and lists them.
type Reply struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	TweetID   uint      `gorm:"not null;index" json:"tweet_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// ReplyRow pairs a reply body with its author's display name.
type ReplyRow struct {
	Name  string `gorm:"column:name"`
	Reply string `gorm:"column:reply"`
}

func (r *Reply) SaveReply(db *gorm.DB) (*Reply, error) {
	err := db.Create(&r).Error
	if err != nil {
		return nil, err
	}
	return r, nil
}

// RepliesForTweet lists every reply to the tweet with its author's name.
func (r *Reply) RepliesForTweet(db *gorm.DB, tid uint) ([]ReplyRow, error) {
	rows := []ReplyRow{}
	err := db.Table("replies").
		Select("users.name AS name, replies.body AS reply").
		Joins("INNER JOIN users ON users.id = replies.user_id").
		Where("replies.tweet_id = ?", tid).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
