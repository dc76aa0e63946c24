package controllers

import (
	"net/http"

	"Chirp/models"
	"Chirp/responses"

	"github.com/gin-gonic/gin"
)

// GetFeed godoc
// @Summary      Home feed
// @Description  The four most recent tweets from followed users, newest first
// @Tags         feed
// @Produce      json
// @Success      200  {array}  responses.FeedTweetResponse
// @Failure      401  {string}  string  "Invalid JWT Token"
// @Router       /user/tweets/feed/ [get]
// @Security     BearerAuth
func (server *Server) GetFeed(c *gin.Context) {
	uid, ok, err := server.currentUserID(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !ok {
		c.String(http.StatusUnauthorized, "Invalid JWT Token")
		return
	}

	items, err := (&models.Tweet{}).HomeFeed(server.DB, uid)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, responses.FeedToResponse(items))
}

// GetFollowing godoc
// @Summary      Following list
// @Description  Names of users the authenticated user follows
// @Tags         feed
// @Produce      json
// @Success      200  {array}  responses.NameResponse
// @Failure      401  {string}  string  "Invalid JWT Token"
// @Router       /user/following/ [get]
// @Security     BearerAuth
func (server *Server) GetFollowing(c *gin.Context) {
	uid, ok, err := server.currentUserID(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !ok {
		c.String(http.StatusUnauthorized, "Invalid JWT Token")
		return
	}

	names, err := (&models.Follow{}).FollowingNames(server.DB, uid)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, responses.NamesToResponse(names))
}

// GetFollowers godoc
// @Summary      Followers list
// @Description  Names of users following the authenticated user
// @Tags         feed
// @Produce      json
// @Success      200  {array}  responses.NameResponse
// @Failure      401  {string}  string  "Invalid JWT Token"
// @Router       /user/followers/ [get]
// @Security     BearerAuth
func (server *Server) GetFollowers(c *gin.Context) {
	uid, ok, err := server.currentUserID(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	if !ok {
		c.String(http.StatusUnauthorized, "Invalid JWT Token")
		return
	}

	names, err := (&models.Follow{}).FollowerNames(server.DB, uid)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.JSON(http.StatusOK, responses.NamesToResponse(names))
}
