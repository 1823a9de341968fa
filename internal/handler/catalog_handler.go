package handler

import (
	"github.com/gin-gonic/gin"

	"school_hub_server/internal/dto/request"
	"school_hub_server/internal/service"
)

// CatalogHandler handles the school, class and subject reference data.
type CatalogHandler struct {
	catalogSvc service.CatalogService
}

// NewCatalogHandler creates the catalog handler.
func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// CreateSchool registers a school.
// POST /api/schools
func (h *CatalogHandler) CreateSchool(c *gin.Context) {
	var req request.CreateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.catalogSvc.CreateSchool(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, data)
}

// UpdateSchool edits a school.
// PUT /api/schools/:schoolId
func (h *CatalogHandler) UpdateSchool(c *gin.Context) {
	var req request.UpdateSchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.catalogSvc.UpdateSchool(c.Param("schoolId"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetSchool returns one school.
// GET /api/schools/:schoolId
func (h *CatalogHandler) GetSchool(c *gin.Context) {
	data, err := h.catalogSvc.GetSchool(c.Param("schoolId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetSchoolList pages through schools.
// GET /api/schools
func (h *CatalogHandler) GetSchoolList(c *gin.Context) {
	var req request.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.catalogSvc.GetSchoolList(req.Page, req.PageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteSchool archives a school.
// DELETE /api/schools/:schoolId
func (h *CatalogHandler) DeleteSchool(c *gin.Context) {
	if err := h.catalogSvc.DeleteSchool(c.Param("schoolId")); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// CreateClass registers a class.
// POST /api/classes
func (h *CatalogHandler) CreateClass(c *gin.Context) {
	var req request.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.catalogSvc.CreateClass(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, data)
}

// UpdateClass edits a class.
// PUT /api/classes/:classId
func (h *CatalogHandler) UpdateClass(c *gin.Context) {
	var req request.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.catalogSvc.UpdateClass(c.Param("classId"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetClass returns one class.
// GET /api/classes/:classId
func (h *CatalogHandler) GetClass(c *gin.Context) {
	data, err := h.catalogSvc.GetClass(c.Param("classId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetClassesBySchool lists the classes of one school.
// GET /api/schools/:schoolId/classes
func (h *CatalogHandler) GetClassesBySchool(c *gin.Context) {
	data, err := h.catalogSvc.GetClassesBySchool(c.Param("schoolId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteClass archives a class.
// DELETE /api/classes/:classId
func (h *CatalogHandler) DeleteClass(c *gin.Context) {
	if err := h.catalogSvc.DeleteClass(c.Param("classId")); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// CreateSubject registers a subject.
// POST /api/subjects
func (h *CatalogHandler) CreateSubject(c *gin.Context) {
	var req request.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.catalogSvc.CreateSubject(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, data)
}

// UpdateSubject edits a subject.
// PUT /api/subjects/:subjectId
func (h *CatalogHandler) UpdateSubject(c *gin.Context) {
	var req request.UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.catalogSvc.UpdateSubject(c.Param("subjectId"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetSubjectsBySchool lists the subjects of one school.
// GET /api/schools/:schoolId/subjects
func (h *CatalogHandler) GetSubjectsBySchool(c *gin.Context) {
	data, err := h.catalogSvc.GetSubjectsBySchool(c.Param("schoolId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteSubject removes a subject.
// DELETE /api/subjects/:subjectId
func (h *CatalogHandler) DeleteSubject(c *gin.Context) {
	if err := h.catalogSvc.DeleteSubject(c.Param("subjectId")); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
