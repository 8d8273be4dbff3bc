package utils

import (
	"github.com/gin-gonic/gin"
)

type UserClaims struct {
	UserID  uint     `json:"user_id"`
	Subject string   `json:"sub"`
	Roles   []string `json:"roles"`
}

type contextKey string

const (
	UserContextKey      contextKey = "user"
	RequestIDContextKey contextKey = "request_id"
)

func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}

// GetRequestID returns the id assigned by the request id middleware, if any.
func GetRequestID(c *gin.Context) string {
	return c.GetString(string(RequestIDContextKey))
}
