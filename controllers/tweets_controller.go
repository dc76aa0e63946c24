package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"Chirp/models"
	"Chirp/responses"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// resolveViewableTweet applies the visibility rule shared by the tweet
// detail, likes, and replies endpoints: the tweet must exist and the
// viewer must follow its author. Both failure modes collapse into one
// "not visible" answer so a caller cannot probe which tweet IDs exist.
// There is deliberately no author exception.
func (server *Server) resolveViewableTweet(viewerID uint, tid uint) (*models.Tweet, bool, error) {
	tweet, err := (&models.Tweet{}).FindTweetByID(server.DB, tid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	following, err := (&models.Follow{}).Exists(server.DB, viewerID, tweet.UserID)
	if err != nil {
		return nil, false, err
	}
	return tweet, following, nil
}

func parseTweetID(c *gin.Context) (uint, bool) {
	tid, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(tid), true
}

// GetTweet godoc
// @Summary      Tweet detail
// @Description  Tweet body with like and reply counts, if the viewer follows the author
// @Tags         tweets
// @Produce      json
// @Param        id  path  int  true  "Tweet ID"
// @Success      200  {object}  responses.TweetSummaryResponse
// @Failure      401  {string}  string  "Invalid Request"
// @Router       /tweets/{id}/ [get]
// @Security     BearerAuth
func (server *Server) GetTweet(c *gin.Context) {
	uid, ok, err := server.currentUserID(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !ok {
		c.String(http.StatusUnauthorized, "Invalid JWT Token")
		return
	}
	tid, ok := parseTweetID(c)
	if !ok {
		c.String(http.StatusUnauthorized, "Invalid Request")
		return
	}

	_, visible, err := server.resolveViewableTweet(uid, tid)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !visible {
		c.String(http.StatusUnauthorized, "Invalid Request")
		return
	}

	summary, err := (&models.Tweet{}).SummarizeTweet(server.DB, tid)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, responses.SummaryToResponse(*summary))
}

// GetTweetLikes godoc
// @Summary      Tweet likes
// @Description  Usernames that liked the tweet, if the viewer follows the author
// @Tags         tweets
// @Produce      json
// @Param        id  path  int  true  "Tweet ID"
// @Success      200  {object}  responses.LikesResponse
// @Failure      401  {string}  string  "Invalid Request"
// @Router       /tweets/{id}/likes/ [get]
// @Security     BearerAuth
func (server *Server) GetTweetLikes(c *gin.Context) {
	uid, ok, err := server.currentUserID(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !ok {
		c.String(http.StatusUnauthorized, "Invalid JWT Token")
		return
	}
	tid, ok := parseTweetID(c)
	if !ok {
		c.String(http.StatusUnauthorized, "Invalid Request")
		return
	}

	_, visible, err := server.resolveViewableTweet(uid, tid)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !visible {
		c.String(http.StatusUnauthorized, "Invalid Request")
		return
	}

	usernames, err := (&models.Like{}).LikerUsernames(server.DB, tid)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, responses.LikesResponse{Likes: usernames})
}

// GetTweetReplies godoc
// @Summary      Tweet replies
// @Description  Replies to the tweet with author names, if the viewer follows the author
// @Tags         tweets
// @Produce      json
// @Param        id  path  int  true  "Tweet ID"
// @Success      200  {object}  responses.RepliesResponse
// @Failure      401  {string}  string  "Invalid Request"
// @Router       /tweets/{id}/replies/ [get]
// @Security     BearerAuth
func (server *Server) GetTweetReplies(c *gin.Context) {
	uid, ok, err := server.currentUserID(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !ok {
		c.String(http.StatusUnauthorized, "Invalid JWT Token")
		return
	}
	tid, ok := parseTweetID(c)
	if !ok {
		c.String(http.StatusUnauthorized, "Invalid Request")
		return
	}

	_, visible, err := server.resolveViewableTweet(uid, tid)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !visible {
		c.String(http.StatusUnauthorized, "Invalid Request")
		return
	}

	rows, err := (&models.Reply{}).RepliesForTweet(server.DB, tid)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, responses.RepliesToResponse(rows))
}

// GetMyTweets godoc
// @Summary      Own tweets
// @Description  The authenticated user's tweets with like and reply counts
// @Tags         tweets
// @Produce      json
// @Success      200  {array}  responses.TweetSummaryResponse
// @Failure      401  {string}  string  "Invalid JWT Token"
// @Router       /user/tweets/ [get]
// @Security     BearerAuth
func (server *Server) GetMyTweets(c *gin.Context) {
	uid, ok, err := server.currentUserID(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !ok {
		c.String(http.StatusUnauthorized, "Invalid JWT Token")
		return
	}

	summaries, err := (&models.Tweet{}).SummarizeUserTweets(server.DB, uid)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, responses.SummariesToResponse(summaries))
}

// CreateTweet godoc
// @Summary      Post a tweet
// @Description  Create a tweet with a server-assigned timestamp
// @Tags         tweets
// @Accept       json
// @Produce      plain
// @Param        tweet  body  CreateTweetRequest  true  "Tweet payload"
// @Success      200  {string}  string  "Created a Tweet"
// @Failure      401  {string}  string  "Invalid JWT Token"
// @Router       /user/tweets/ [post]
// @Security     BearerAuth
func (server *Server) CreateTweet(c *gin.Context) {
	uid, ok, err := server.currentUserID(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !ok {
		c.String(http.StatusUnauthorized, "Invalid JWT Token")
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid Request")
		return
	}
	var req struct {
		Tweet string `json:"tweet"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		c.String(http.StatusBadRequest, "Invalid Request")
		return
	}

	// No body validation: empty and oversized tweets go through.
	tweet := models.Tweet{
		UserID:    uid,
		Body:      req.Tweet,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if _, err := tweet.SaveTweet(server.DB); err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.String(http.StatusOK, "Created a Tweet")
}

// DeleteTweet godoc
// @Summary      Delete a tweet
// @Description  Delete one of the authenticated user's own tweets
// @Tags         tweets
// @Produce      plain
// @Param        id  path  int  true  "Tweet ID"
// @Success      200  {string}  string  "Tweet Removed"
// @Failure      401  {string}  string  "Invalid Request"
// @Router       /tweets/{id}/ [delete]
// @Security     BearerAuth
func (server *Server) DeleteTweet(c *gin.Context) {
	uid, ok, err := server.currentUserID(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !ok {
		c.String(http.StatusUnauthorized, "Invalid JWT Token")
		return
	}
	tid, ok := parseTweetID(c)
	if !ok {
		c.String(http.StatusUnauthorized, "Invalid Request")
		return
	}

	tweet, err := (&models.Tweet{}).FindTweetByID(server.DB, tid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Missing tweet and foreign tweet answer alike.
			c.String(http.StatusUnauthorized, "Invalid Request")
			return
		}
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if tweet.UserID != uid {
		c.String(http.StatusUnauthorized, "Invalid Request")
		return
	}

	if _, err := tweet.DeleteTweet(server.DB, tid); err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.String(http.StatusOK, "Tweet Removed")
}
