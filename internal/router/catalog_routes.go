package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers school, class and subject endpoints.
func (rt *Router) RegisterCatalogRoutes(rg *gin.RouterGroup) {
	schools := rg.Group("/schools")
	{
		schools.POST("", rt.handlers.Catalog.CreateSchool)
		schools.GET("", rt.handlers.Catalog.GetSchoolList)
		schools.GET("/:schoolId", rt.handlers.Catalog.GetSchool)
		schools.PUT("/:schoolId", rt.handlers.Catalog.UpdateSchool)
		schools.DELETE("/:schoolId", rt.handlers.Catalog.DeleteSchool)
		schools.GET("/:schoolId/classes", rt.handlers.Catalog.GetClassesBySchool)
		schools.GET("/:schoolId/subjects", rt.handlers.Catalog.GetSubjectsBySchool)
	}

	classes := rg.Group("/classes")
	{
		classes.POST("", rt.handlers.Catalog.CreateClass)
		classes.GET("/:classId", rt.handlers.Catalog.GetClass)
		classes.PUT("/:classId", rt.handlers.Catalog.UpdateClass)
		classes.DELETE("/:classId", rt.handlers.Catalog.DeleteClass)
	}

	subjects := rg.Group("/subjects")
	{
		subjects.POST("", rt.handlers.Catalog.CreateSubject)
		subjects.PUT("/:subjectId", rt.handlers.Catalog.UpdateSubject)
		subjects.DELETE("/:subjectId", rt.handlers.Catalog.DeleteSubject)
	}
}
