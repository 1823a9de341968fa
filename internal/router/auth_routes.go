package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public authentication endpoints.
func (rt *Router) RegisterAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", rt.handlers.Auth.Register)
		auth.POST("/login", rt.handlers.Auth.Login)
		auth.POST("/refresh", rt.handlers.Auth.Refresh)
	}
}
