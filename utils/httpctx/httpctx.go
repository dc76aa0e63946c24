package httpctx

import "github.com/gin-gonic/gin"

// CurrentUsername retrieves the authenticated username from Gin context
// if present.
func CurrentUsername(c *gin.Context) (string, bool) {
	val, exists := c.Get("username")
	if !exists {
		return "", false
	}
	username, ok := val.(string)
	return username, ok
}
