package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"school_hub_server/internal/dto/request"
	"school_hub_server/internal/service"
)

// PeriodHandler handles grading period configuration per class.
type PeriodHandler struct {
	periodSvc service.PeriodService
}

// NewPeriodHandler creates the period handler.
func NewPeriodHandler(periodSvc service.PeriodService) *PeriodHandler {
	return &PeriodHandler{periodSvc: periodSvc}
}

// GetPeriods returns the full grading configuration of a class: explicit
// boundaries where stored, computed defaults elsewhere, plus the period
// the current date falls in.
// GET /api/academic-periods/:classId
func (h *PeriodHandler) GetPeriods(c *gin.Context) {
	data, err := h.periodSvc.GetPeriods(c.Param("classId"), time.Now())
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// PutPeriods replaces a class's grading configuration.
// PUT /api/academic-periods/:classId
func (h *PeriodHandler) PutPeriods(c *gin.Context) {
	var req request.PutPeriodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.periodSvc.PutPeriods(c.Param("classId"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
