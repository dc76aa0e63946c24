package controllers

import (
	"net/http"

	"Chirp/middlewares"

	"github.com/gin-gonic/gin"
)

func (s *Server) initializeRoutes() {

	s.Router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Chirp API")
	})

	s.Router.POST("/register/", s.Register)
	s.Router.POST("/login/", s.Login)

	authorized := s.Router.Group("/")
	authorized.Use(middlewares.TokenAuthMiddleware(s.Auth))
	{
		authorized.GET("/user/tweets/feed/", s.GetFeed)
		authorized.GET("/user/following/", s.GetFollowing)
		authorized.GET("/user/followers/", s.GetFollowers)
		authorized.GET("/user/tweets/", s.GetMyTweets)
		authorized.POST("/user/tweets/", s.CreateTweet)
		authorized.GET("/tweets/:id/", s.GetTweet)
		authorized.GET("/tweets/:id/likes/", s.GetTweetLikes)
		authorized.GET("/tweets/:id/replies/", s.GetTweetReplies)
		authorized.DELETE("/tweets/:id/", s.DeleteTweet)
	}
}
