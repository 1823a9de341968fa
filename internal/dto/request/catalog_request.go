package request

// CreateSchoolRequest registers a school.
type CreateSchoolRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Address string `json:"address" binding:"omitempty,max=255"`
}

// UpdateSchoolRequest edits a school.
type UpdateSchoolRequest struct {
	Name    string `json:"name" binding:"omitempty,max=100"`
	Address string `json:"address" binding:"omitempty,max=255"`
}

// CreateClassRequest registers a class within a school.
type CreateClassRequest struct {
	SchoolId     string `json:"schoolId" binding:"required,max=20"`
	Name         string `json:"name" binding:"required,max=50"`
	GradeLevel   int    `json:"gradeLevel" binding:"required,min=1,max=12"`
	AcademicYear int    `json:"academicYear" binding:"required,min=2000,max=2100"`
	PeriodType   string `json:"periodType" binding:"omitempty,oneof=quarters semesters trimesters"`
}

// UpdateClassRequest edits a class.
type UpdateClassRequest struct {
	Name       string `json:"name" binding:"omitempty,max=50"`
	GradeLevel int    `json:"gradeLevel" binding:"omitempty,min=1,max=12"`
	PeriodType string `json:"periodType" binding:"omitempty,oneof=quarters semesters trimesters"`
}

// CreateSubjectRequest registers a subject within a school.
type CreateSubjectRequest struct {
	SchoolId string `json:"schoolId" binding:"required,max=20"`
	Code     string `json:"code" binding:"required,max=20"`
	Name     string `json:"name" binding:"required,max=100"`
}

// UpdateSubjectRequest edits a subject.
type UpdateSubjectRequest struct {
	Code string `json:"code" binding:"omitempty,max=20"`
	Name string `json:"name" binding:"omitempty,max=100"`
}
