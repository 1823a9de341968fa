package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"school_hub_server/pkg/errorx"
	"school_hub_server/pkg/util/jwt"
)

// JWTAuth verifies the access token and puts the caller's uuid into the
// gin context as user_id. Websocket clients cannot set headers from the
// browser API, so a token query parameter is accepted as a fallback.
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			abortUnauthorized(c, "authentication required")
			return
		}

		claims, err := jwt.ParseToken(token)
		if err != nil {
			abortUnauthorized(c, "token expired or invalid")
			return
		}
		if claims.Subject != "access_token" {
			abortUnauthorized(c, "an access token is required here")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code": errorx.CodeUnauthorized,
		"msg":  msg,
	})
}
