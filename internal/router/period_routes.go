package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterPeriodRoutes registers the grading period configuration
// endpoints.
func (rt *Router) RegisterPeriodRoutes(rg *gin.RouterGroup) {
	rg.GET("/academic-periods/:classId", rt.handlers.Period.GetPeriods)
	rg.PUT("/academic-periods/:classId", rt.handlers.Period.PutPeriods)
}
