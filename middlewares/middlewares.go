package middlewares

import (
	"net/http"
	"os"
	"strings"

	"Chirp/auth"

	"github.com/gin-gonic/gin"
)

// TokenAuthMiddleware verifies the bearer token and stashes the
// username claim in the Gin context. A missing header and a bad token
// produce the same response so callers learn nothing either way.
func TokenAuthMiddleware(a *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, err := a.ExtractUsername(c.Request)
		if err != nil {
			c.String(http.StatusUnauthorized, "Invalid JWT Token")
			c.Abort()
			return
		}

		c.Set("username", username)
		c.Next()
	}
}

// CORSMiddleware allows browser frontends listed in CORS_ORIGINS
// (comma-separated) to talk to the API.
func CORSMiddleware() gin.HandlerFunc {
	allowedOrigins := splitCSV(os.Getenv("CORS_ORIGINS"))

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		for _, o := range allowedOrigins {
			if o == origin {
				c.Writer.Header().Set("Access-Control-Allow-Origin", o)
				break
			}
		}

		c.Writer.Header().Set("Vary", "Origin")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization, Content-Length, Accept, Origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods",
			"POST, GET, OPTIONS, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func splitCSV(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
