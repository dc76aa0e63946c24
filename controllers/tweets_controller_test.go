package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"Chirp/models"
	"Chirp/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweetDetailVisibleToFollower(t *testing.T) {
	server := newTestServer(t)
	alice := createUser(t, server, "alice", "password1", "Alice")
	bob := createUser(t, server, "bob", "password2", "Bob")
	createFollow(t, server, alice.ID, bob.ID)

	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	tweet := createTweet(t, server, bob.ID, "hello", at)

	token := loginUser(t, server, "alice", "password1")
	w := doRequest(t, server, http.MethodGet, fmt.Sprintf("/tweets/%d/", tweet.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail responses.TweetSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "hello", detail.Body)
	assert.Equal(t, 0, detail.LikeCount)
	assert.Equal(t, 0, detail.ReplyCount)
	assert.Equal(t, "2026-03-01 09:30:00", detail.CreatedAt)
}

func TestVisibilityCollapseHidesExistence(t *testing.T) {
	server := newTestServer(t)
	bob := createUser(t, server, "bob", "password2", "Bob")
	createUser(t, server, "carol", "password3", "Carol")
	tweet := createTweet(t, server, bob.ID, "secret", time.Now())

	token := loginUser(t, server, "carol", "password3")

	// A real tweet by an unfollowed author and a fabricated tweet ID
	// must be indistinguishable on every gated read endpoint.
	realID := fmt.Sprint(tweet.ID)
	fakeID := "99999"
	for _, id := range []string{realID, fakeID} {
		for _, path := range []string{
			"/tweets/" + id + "/",
			"/tweets/" + id + "/likes/",
			"/tweets/" + id + "/replies/",
		} {
			w := doRequest(t, server, http.MethodGet, path, token, nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code, path)
			assert.Equal(t, "Invalid Request", w.Body.String(), path)
		}
	}
}

func TestOwnTweetDetailNeedsSelfFollow(t *testing.T) {
	server := newTestServer(t)
	bob := createUser(t, server, "bob", "password2", "Bob")
	tweet := createTweet(t, server, bob.ID, "mine", time.Now())

	token := loginUser(t, server, "bob", "password2")

	// No author exception: without a self-follow edge the author is
	// just another non-follower.
	w := doRequest(t, server, http.MethodGet, fmt.Sprintf("/tweets/%d/", tweet.ID), token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid Request", w.Body.String())

	createFollow(t, server, bob.ID, bob.ID)
	w = doRequest(t, server, http.MethodGet, fmt.Sprintf("/tweets/%d/", tweet.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTweetAggregationCountsDistinctLikers(t *testing.T) {
	server := newTestServer(t)
	alice := createUser(t, server, "alice", "password1", "Alice")
	bob := createUser(t, server, "bob", "password2", "Bob")
	carol := createUser(t, server, "carol", "password3", "Carol")
	dave := createUser(t, server, "dave", "password4", "Dave")
	createFollow(t, server, alice.ID, bob.ID)

	tweet := createTweet(t, server, bob.ID, "popular", time.Now())

	for _, uid := range []uint{alice.ID, carol.ID, dave.ID} {
		like := models.Like{TweetID: tweet.ID, UserID: uid}
		_, err := like.SaveLike(server.DB)
		require.NoError(t, err)
	}
	// A duplicate like row from the same user must not inflate the count.
	dup := models.Like{TweetID: tweet.ID, UserID: alice.ID}
	_, err := dup.SaveLike(server.DB)
	require.NoError(t, err)

	for _, body := range []string{"nice", "agreed"} {
		reply := models.Reply{TweetID: tweet.ID, UserID: carol.ID, Body: body}
		_, err := reply.SaveReply(server.DB)
		require.NoError(t, err)
	}

	token := loginUser(t, server, "alice", "password1")
	w := doRequest(t, server, http.MethodGet, fmt.Sprintf("/tweets/%d/", tweet.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var detail responses.TweetSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, 3, detail.LikeCount)
	assert.Equal(t, 2, detail.ReplyCount)
}

func TestTweetLikesAndReplies(t *testing.T) {
	server := newTestServer(t)
	alice := createUser(t, server, "alice", "password1", "Alice")
	bob := createUser(t, server, "bob", "password2", "Bob")
	carol := createUser(t, server, "carol", "password3", "Carol")
	createFollow(t, server, alice.ID, bob.ID)

	tweet := createTweet(t, server, bob.ID, "hello", time.Now())

	like := models.Like{TweetID: tweet.ID, UserID: carol.ID}
	_, err := like.SaveLike(server.DB)
	require.NoError(t, err)

	reply := models.Reply{TweetID: tweet.ID, UserID: carol.ID, Body: "hi bob"}
	_, err = reply.SaveReply(server.DB)
	require.NoError(t, err)

	token := loginUser(t, server, "alice", "password1")

	w := doRequest(t, server, http.MethodGet, fmt.Sprintf("/tweets/%d/likes/", tweet.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var likes responses.LikesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &likes))
	assert.Equal(t, []string{"carol"}, likes.Likes)

	w = doRequest(t, server, http.MethodGet, fmt.Sprintf("/tweets/%d/replies/", tweet.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var replies responses.RepliesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &replies))
	require.Len(t, replies.Replies, 1)
	assert.Equal(t, "Carol", replies.Replies[0].Name)
	assert.Equal(t, "hi bob", replies.Replies[0].Reply)
}

func TestCreateTweet(t *testing.T) {
	server := newTestServer(t)
	createUser(t, server, "bob", "password2", "Bob")

	token := loginUser(t, server, "bob", "password2")
	w := doRequest(t, server, http.MethodPost, "/user/tweets/", token, map[string]string{
		"tweet": "my first tweet",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Created a Tweet", w.Body.String())

	w = doRequest(t, server, http.MethodGet, "/user/tweets/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summaries []responses.TweetSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "my first tweet", summaries[0].Body)
	assert.Equal(t, 0, summaries[0].LikeCount)
	assert.Equal(t, 0, summaries[0].ReplyCount)
}

func TestCreateTweetAllowsEmptyBody(t *testing.T) {
	server := newTestServer(t)
	createUser(t, server, "bob", "password2", "Bob")

	token := loginUser(t, server, "bob", "password2")
	w := doRequest(t, server, http.MethodPost, "/user/tweets/", token, map[string]string{})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Created a Tweet", w.Body.String())
}

func TestDeleteTweetOwnership(t *testing.T) {
	server := newTestServer(t)
	createUser(t, server, "alice", "password1", "Alice")
	bob := createUser(t, server, "bob", "password2", "Bob")

	tweet := createTweet(t, server, bob.ID, "to be removed", time.Now())

	aliceToken := loginUser(t, server, "alice", "password1")
	w := doRequest(t, server, http.MethodDelete, fmt.Sprintf("/tweets/%d/", tweet.ID), aliceToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid Request", w.Body.String())

	bobToken := loginUser(t, server, "bob", "password2")
	w = doRequest(t, server, http.MethodDelete, fmt.Sprintf("/tweets/%d/", tweet.ID), bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tweet Removed", w.Body.String())

	w = doRequest(t, server, http.MethodGet, "/user/tweets/", bobToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	// Deleting a missing tweet answers like deleting a foreign one.
	w = doRequest(t, server, http.MethodDelete, fmt.Sprintf("/tweets/%d/", tweet.ID), bobToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid Request", w.Body.String())
}

func TestDeleteTweetLeavesLikesAndReplies(t *testing.T) {
	server := newTestServer(t)
	bob := createUser(t, server, "bob", "password2", "Bob")
	carol := createUser(t, server, "carol", "password3", "Carol")

	tweet := createTweet(t, server, bob.ID, "orphan maker", time.Now())
	like := models.Like{TweetID: tweet.ID, UserID: carol.ID}
	_, err := like.SaveLike(server.DB)
	require.NoError(t, err)
	reply := models.Reply{TweetID: tweet.ID, UserID: carol.ID, Body: "bye"}
	_, err = reply.SaveReply(server.DB)
	require.NoError(t, err)

	token := loginUser(t, server, "bob", "password2")
	w := doRequest(t, server, http.MethodDelete, fmt.Sprintf("/tweets/%d/", tweet.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Likes and replies are not cascade-deleted.
	var likeCount, replyCount int64
	require.NoError(t, server.DB.Model(&models.Like{}).Where("tweet_id = ?", tweet.ID).Count(&likeCount).Error)
	require.NoError(t, server.DB.Model(&models.Reply{}).Where("tweet_id = ?", tweet.ID).Count(&replyCount).Error)
	assert.Equal(t, int64(1), likeCount)
	assert.Equal(t, int64(1), replyCount)
}

func TestEndToEndScenario(t *testing.T) {
	server := newTestServer(t)

	for _, u := range []map[string]string{
		{"username": "alice", "password": "password1", "name": "Alice", "gender": "female"},
		{"username": "bob", "password": "password2", "name": "Bob", "gender": "male"},
		{"username": "carol", "password": "password3", "name": "Carol", "gender": "female"},
	} {
		w := doRequest(t, server, http.MethodPost, "/register/", "", u)
		require.Equal(t, http.StatusOK, w.Code)
	}

	// The follow edge arrives out-of-band; there is no API for it.
	var aliceUser, bobUser models.User
	require.NoError(t, server.DB.Where("username = ?", "alice").Take(&aliceUser).Error)
	require.NoError(t, server.DB.Where("username = ?", "bob").Take(&bobUser).Error)
	createFollow(t, server, aliceUser.ID, bobUser.ID)

	bobToken := loginUser(t, server, "bob", "password2")
	w := doRequest(t, server, http.MethodPost, "/user/tweets/", bobToken, map[string]string{"tweet": "hello"})
	require.Equal(t, http.StatusOK, w.Code)

	aliceToken := loginUser(t, server, "alice", "password1")
	w = doRequest(t, server, http.MethodGet, "/user/tweets/feed/", aliceToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var feed []responses.FeedTweetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	require.Len(t, feed, 1)
	assert.Equal(t, "bob", feed[0].Username)
	assert.Equal(t, "hello", feed[0].Body)

	var tweet models.Tweet
	require.NoError(t, server.DB.Where("user_id = ?", bobUser.ID).Take(&tweet).Error)

	w = doRequest(t, server, http.MethodGet, fmt.Sprintf("/tweets/%d/", tweet.ID), aliceToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	carolToken := loginUser(t, server, "carol", "password3")
	w = doRequest(t, server, http.MethodGet, fmt.Sprintf("/tweets/%d/", tweet.ID), carolToken, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid Request", w.Body.String())
}
