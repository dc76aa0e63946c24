package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// TimeLayout is the wire format for tweet timestamps: wall-clock UTC at
// second precision, matching what the store has always held.
const TimeLayout = "2006-01-02 15:04:05"

type Tweet struct {
	ID        uint      `gorm:"primary_key;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Body      string    `gorm:"type:text" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// TweetSummary is one row of the like/reply aggregation.
type TweetSummary struct {
	Body       string    `gorm:"column:body"`
	LikeCount  int       `gorm:"column:like_count"`
	ReplyCount int       `gorm:"column:reply_count"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

// FeedItem is one home-timeline entry.
type FeedItem struct {
	Username  string    `gorm:"column:username"`
	Body      string    `gorm:"column:body"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (t *Tweet) SaveTweet(db *gorm.DB) (*Tweet, error) {
	err := db.Create(&t).Error
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tweet) FindTweetByID(db *gorm.DB, tid uint) (*Tweet, error) {
	var tweet Tweet
	err := db.Where("id = ?", tid).Take(&tweet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &tweet, nil
}

func (t *Tweet) DeleteTweet(db *gorm.DB, tid uint) (int64, error) {
	// Likes and replies referencing the tweet are left in place.
	result := db.Where("id = ?", tid).Delete(&Tweet{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// summarySelect counts likes per distinct liker, so duplicate like rows
// from one user count once, and counts reply rows outright. DISTINCT
// also keeps the two LEFT JOINs from inflating each other.
const summarySelect = "tweets.body AS body, " +
	"COUNT(DISTINCT likes.user_id) AS like_count, " +
	"COUNT(DISTINCT replies.id) AS reply_count, " +
	"tweets.created_at AS created_at"

// SummarizeUserTweets aggregates like/reply counts for every tweet uid
// has authored. Tweets with no likes or replies report zero counts.
func (t *Tweet) SummarizeUserTweets(db *gorm.DB, uid uint) ([]TweetSummary, error) {
	summaries := []TweetSummary{}
	err := db.Table("tweets").
		Select(summarySelect).
		Joins("LEFT JOIN likes ON likes.tweet_id = tweets.id").
		Joins("LEFT JOIN replies ON replies.tweet_id = tweets.id").
		Where("tweets.user_id = ?", uid).
		Group("tweets.id").
		Order("tweets.id").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// SummarizeTweet runs the same aggregation for a single tweet.
func (t *Tweet) SummarizeTweet(db *gorm.DB, tid uint) (*TweetSummary, error) {
	var summary TweetSummary
	err := db.Table("tweets").
		Select(summarySelect).
		Joins("LEFT JOIN likes ON likes.tweet_id = tweets.id").
		Joins("LEFT JOIN replies ON replies.tweet_id = tweets.id").
		Where("tweets.id = ?", tid).
		Group("tweets.id").
		Take(&summary).Error
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// HomeFeed returns the four most recent tweets authored by users the
// viewer follows, newest first. Order between tweets sharing a
// timestamp is not guaranteed.
func (t *Tweet) HomeFeed(db *gorm.DB, viewerID uint) ([]FeedItem, error) {
	items := []FeedItem{}
	err := db.Table("follows").
		Select("users.username AS username, tweets.body AS body, tweets.created_at AS created_at").
		Joins("INNER JOIN tweets ON tweets.user_id = follows.followed_id").
		Joins("INNER JOIN users ON users.id = tweets.user_id").
		Where("follows.follower_id = ?", viewerID).
		Order("tweets.created_at DESC").
		Limit(4).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
