package respond

// SchoolRespond is one school.
type SchoolRespond struct {
	SchoolId string `json:"schoolId"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Status   int8   `json:"status"`
}

// GetSchoolListRespond is one page of schools.
type GetSchoolListRespond struct {
	Total   int64           `json:"total"`
	Schools []SchoolRespond `json:"schools"`
}

// ClassRespond is one class.
type ClassRespond struct {
	ClassId      string `json:"classId"`
	SchoolId     string `json:"schoolId"`
	Name         string `json:"name"`
	GradeLevel   int    `json:"gradeLevel"`
	AcademicYear int    `json:"academicYear"`
	PeriodType   string `json:"periodType"`
}

// SubjectRespond is one subject.
type SubjectRespond struct {
	SubjectId string `json:"subjectId"`
	SchoolId  string `json:"schoolId"`
	Code      string `json:"code"`
	Name      string `json:"name"`
}
