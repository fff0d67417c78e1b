package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// currentUID reads the authenticated user id set by the auth middleware.
// Responds 401 and returns false when it is missing.
func currentUID(c *gin.Context) (string, bool) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user id"})
		return "", false
	}
	return uid.(string), true
}

// requestDate falls back to the server's local date when the client did not
// send one. Day granularity, no timezone stored.
func requestDate(date string) string {
	if date == "" {
		return time.Now().Format(dateLayout)
	}
	return date
}
