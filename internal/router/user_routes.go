package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers profile, account admin and role endpoints.
func (rt *Router) RegisterUserRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("/me", rt.handlers.User.GetMe)
		users.PUT("/me", rt.handlers.User.UpdateMe)
		users.PUT("/me/active-role", rt.handlers.User.SetActiveRole)

		users.GET("", rt.handlers.User.GetUserList)
		users.PUT("/status", rt.handlers.User.SetUserStatus)

		users.GET("/:userId", rt.handlers.User.GetUser)
		users.DELETE("/:userId", rt.handlers.User.DeleteUser)
		users.GET("/:userId/roles", rt.handlers.User.GetUserRoles)
		users.POST("/:userId/roles", rt.handlers.User.AssignRole)
		users.DELETE("/:userId/roles/:role", rt.handlers.User.RevokeRole)
	}
}
