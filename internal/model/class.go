package model

import (
	"gorm.io/gorm"
)

// Grading period models a class may be configured with.
const (
	PeriodTypeQuarters   = "quarters"
	PeriodTypeSemesters  = "semesters"
	PeriodTypeTrimesters = "trimesters"
)

// Class is a group of students within a school for one academic year.
// PeriodType selects the grading model the academic period resolver uses
// when no explicit boundaries are stored.
type Class struct {
	gorm.Model

	// Uuid public identifier, "K" + date-prefixed random string.
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:public class id"`

	SchoolUuid string `gorm:"column:school_uuid;index;type:char(20);not null;comment:owning school"`
	Name       string `gorm:"column:name;type:varchar(50);not null;comment:class name"`

	// GradeLevel 1..12.
	GradeLevel int `gorm:"column:grade_level;not null;comment:grade level"`

	// AcademicYear is the starting calendar year; 2024 means 2024/2025 with
	// the year starting September 1.
	AcademicYear int `gorm:"column:academic_year;not null;comment:starting calendar year"`

	// PeriodType quarters, semesters or trimesters.
	PeriodType string `gorm:"column:period_type;type:varchar(12);not null;default:quarters;comment:grading model"`
}

func (Class) TableName() string {
	return "class"
}
