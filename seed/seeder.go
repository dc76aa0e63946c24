package seed

import (
	"log"
	"time"

	"Chirp/models"
	"Chirp/security"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The follow graph has no write API, so demo deployments get their
// edges (and some likes and replies to count) from here.

var users = []models.User{
	{Username: "jack", Password: "password", Name: "Jack", Gender: "male"},
	{Username: "mina", Password: "password", Name: "Mina", Gender: "female"},
	{Username: "ravi", Password: "password", Name: "Ravi", Gender: "male"},
}

// follows[i] = (follower index, followed index)
var follows = [][2]int{
	{0, 1},
	{0, 2},
	{1, 0},
	{2, 1},
}

var tweets = []struct {
	author int
	body   string
}{
	{1, "first post"},
	{1, "shipping the demo data"},
	{2, "hello from ravi"},
}

// Load populates demo users, follow edges, tweets, likes, and replies.
// It is idempotent: existing rows are left alone.
func Load(db *gorm.DB) {
	// Work on copies so repeated calls never re-hash an already
	// hashed password in the package data.
	ids := make([]uint, len(users))
	for i := range users {
		user := users[i]
		hashed, err := security.Hash(user.Password)
		if err != nil {
			log.Fatalf("cannot hash seed password: %v", err)
		}
		user.Password = string(hashed)

		err = db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error
		if err != nil {
			log.Fatalf("cannot seed users table: %v", err)
		}
		if user.ID == 0 {
			var existing models.User
			if err := db.Where("username = ?", user.Username).Take(&existing).Error; err != nil {
				log.Fatalf("cannot resolve seed user: %v", err)
			}
			user.ID = existing.ID
		}
		ids[i] = user.ID
	}

	for _, pair := range follows {
		follow := models.Follow{
			FollowerID: ids[pair[0]],
			FollowedID: ids[pair[1]],
		}
		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error
		if err != nil {
			log.Fatalf("cannot seed follows table: %v", err)
		}
	}

	var tweetCount int64
	if err := db.Model(&models.Tweet{}).Count(&tweetCount).Error; err != nil {
		log.Fatalf("cannot count tweets: %v", err)
	}
	if tweetCount > 0 {
		return
	}

	now := time.Now().UTC().Truncate(time.Second)
	for i, t := range tweets {
		tweet := models.Tweet{
			UserID:    ids[t.author],
			Body:      t.body,
			CreatedAt: now.Add(time.Duration(i-len(tweets)) * time.Minute),
		}
		if _, err := tweet.SaveTweet(db); err != nil {
			log.Fatalf("cannot seed tweets table: %v", err)
		}

		like := models.Like{TweetID: tweet.ID, UserID: ids[0]}
		if _, err := like.SaveLike(db); err != nil {
			log.Fatalf("cannot seed likes table: %v", err)
		}

		reply := models.Reply{TweetID: tweet.ID, UserID: ids[0], Body: "nice one"}
		if _, err := reply.SaveReply(db); err != nil {
			log.Fatalf("cannot seed replies table: %v", err)
		}
	}

	log.Println("seeded demo users, follow graph, and tweets")
}
