package request

// PeriodBoundary is one named grading window with explicit dates, formatted
// YYYY-MM-DD.
type PeriodBoundary struct {
	Name         string `json:"name" binding:"required,max=12"`
	StartDate    string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate      string `json:"endDate" binding:"required,datetime=2006-01-02"`
	AcademicYear string `json:"academicYear" binding:"omitempty,max=9"`
}

// PutPeriodsRequest replaces a class's grading configuration. Boundary names
// must match the period type; an empty boundary list reverts the class to
// computed defaults.
type PutPeriodsRequest struct {
	PeriodType string           `json:"periodType" binding:"required,oneof=quarters semesters trimesters"`
	Boundaries []PeriodBoundary `json:"boundaries" binding:"omitempty,dive"`
}
