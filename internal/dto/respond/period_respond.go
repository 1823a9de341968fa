package respond

// PeriodRespond is one grading window. Source tells whether the dates came
// from stored configuration or from the computed default calendar.
type PeriodRespond struct {
	Name         string `json:"name"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	AcademicYear string `json:"academicYear"`
	Source       string `json:"source"` // "explicit" or "default"
}

// GetPeriodsRespond is the full grading configuration of a class.
type GetPeriodsRespond struct {
	ClassId       string          `json:"classId"`
	PeriodType    string          `json:"periodType"`
	CurrentPeriod string          `json:"currentPeriod"`
	Boundaries    []PeriodRespond `json:"boundaries"`
}
