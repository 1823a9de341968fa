package model

import (
	"time"

	"gorm.io/gorm"
)

// Period names per grading model.
const (
	PeriodQuarter1   = "quarter1"
	PeriodQuarter2   = "quarter2"
	PeriodQuarter3   = "quarter3"
	PeriodQuarter4   = "quarter4"
	PeriodSemester1  = "semester1"
	PeriodSemester2  = "semester2"
	PeriodTrimester1 = "trimester1"
	PeriodTrimester2 = "trimester2"
	PeriodTrimester3 = "trimester3"
)

// PeriodNamesFor returns the valid period names for a class period type.
func PeriodNamesFor(periodType string) []string {
	switch periodType {
	case PeriodTypeSemesters:
		return []string{PeriodSemester1, PeriodSemester2}
	case PeriodTypeTrimesters:
		return []string{PeriodTrimester1, PeriodTrimester2, PeriodTrimester3}
	default:
		return []string{PeriodQuarter1, PeriodQuarter2, PeriodQuarter3, PeriodQuarter4}
	}
}

// AcademicPeriod is an explicitly configured grading window for a class.
// A class with no rows here falls back to computed defaults in the period
// service.
type AcademicPeriod struct {
	gorm.Model

	ClassUuid string `gorm:"column:class_uuid;type:char(20);not null;uniqueIndex:idx_class_period;comment:owning class"`

	// Name quarter1..quarter4, semester1..semester2 or trimester1..trimester3.
	Name string `gorm:"column:name;type:varchar(12);not null;uniqueIndex:idx_class_period;comment:period name"`

	StartDate time.Time `gorm:"column:start_date;type:date;not null;comment:first day"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null;comment:last day"`

	// AcademicYear label such as "2024/2025".
	AcademicYear string `gorm:"column:academic_year;type:char(9);not null;comment:academic year label"`
}

func (AcademicPeriod) TableName() string {
	return "academic_period"
}
