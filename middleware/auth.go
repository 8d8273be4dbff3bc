package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/snap-point/places-api/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires an HS256 bearer token signed with secret. With an
// empty secret every request passes through untouched.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || !strings.EqualFold(bearerToken[0], "Bearer") {
			abortUnauthorized(c, "Invalid token format")
			return
		}

		claims := jwt.MapClaims{}
		parsedToken, err := jwt.ParseWithClaims(bearerToken[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !parsedToken.Valid {
			abortUnauthorized(c, "Invalid token")
			return
		}

		c.Set(string(utils.UserContextKey), claimsFromToken(claims))
		c.Next()
	}
}

func claimsFromToken(claims jwt.MapClaims) *utils.UserClaims {
	userClaims := &utils.UserClaims{}
	if userID, ok := claims["user_id"].(float64); ok {
		userClaims.UserID = uint(userID)
	}
	if sub, ok := claims["sub"].(string); ok {
		userClaims.Subject = sub
	}
	if roles, ok := claims["roles"].([]interface{}); ok {
		for _, role := range roles {
			if r, ok := role.(string); ok {
				userClaims.Roles = append(userClaims.Roles, r)
			}
		}
	}
	return userClaims
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": message,
	})
}
