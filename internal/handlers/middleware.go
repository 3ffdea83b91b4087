package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userId"

// userIdMiddleware authenticates the request from the Authorization header.
// Accepts either "Bearer <token>" or the raw token.
func (h *Handler) userIdMiddleware(c *gin.Context) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	token := header
	if header == "Bearer" {
		token = ""
	} else if strings.HasPrefix(header, "Bearer ") {
		token = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	userId, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	// store in Gin context
	c.Set(userIDKey, userId)
	c.Next()
}

// callerID returns the authenticated user id set by userIdMiddleware.
func callerID(c *gin.Context) int64 {
	id, _ := c.Get(userIDKey)
	uid, _ := id.(int64)
	return uid
}
