package period

import (
	"fmt"
	"time"

	"school_hub_server/internal/model"
)

// The academic year starts September 1. A class whose AcademicYear is 2024
// runs from 2024-09-01 to the summer of 2025.

// defaultSpan positions a period inside the academic year. yearOffset is 0
// for dates in the starting calendar year and 1 for dates after new year.
type defaultSpan struct {
	startMonth  time.Month
	startOffset int
	endMonth    time.Month
	endOffset   int
}

// defaultCalendar is the fixed fallback used when a class has no explicit
// boundaries stored.
var defaultCalendar = map[string]defaultSpan{
	model.PeriodQuarter1: {time.September, 0, time.October, 0},
	model.PeriodQuarter2: {time.November, 0, time.January, 1},
	model.PeriodQuarter3: {time.February, 1, time.March, 1},
	model.PeriodQuarter4: {time.April, 1, time.June, 1},

	model.PeriodSemester1: {time.September, 0, time.January, 1},
	model.PeriodSemester2: {time.February, 1, time.June, 1},

	model.PeriodTrimester1: {time.September, 0, time.November, 0},
	model.PeriodTrimester2: {time.December, 0, time.February, 1},
	model.PeriodTrimester3: {time.March, 1, time.June, 1},
}

// DefaultPeriodDates computes the fallback boundaries of a named period for
// the given academic year. The end date is the last day of the end month.
func DefaultPeriodDates(name string, academicYear int) (start, end time.Time, err error) {
	span, ok := defaultCalendar[name]
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("unknown period name %q", name)
	}
	start = time.Date(academicYear+span.startOffset, span.startMonth, 1, 0, 0, 0, 0, time.UTC)
	// First day of the following month, minus one day.
	end = time.Date(academicYear+span.endOffset, span.endMonth, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, -1)
	return start, end, nil
}

// AcademicYearLabel renders the "2024/2025" form.
func AcademicYearLabel(academicYear int) string {
	return fmt.Sprintf("%d/%d", academicYear, academicYear+1)
}

// CurrentQuarterName maps a date to the quarter it falls in. The summer
// recess (June through August) folds into quarter4 instead of a distinct
// "no active period" state, matching the grading UI's expectation that some
// period is always selected.
func CurrentQuarterName(now time.Time) string {
	switch now.Month() {
	case time.September, time.October:
		return model.PeriodQuarter1
	case time.November, time.December, time.January:
		return model.PeriodQuarter2
	case time.February, time.March:
		return model.PeriodQuarter3
	default:
		// April through August.
		return model.PeriodQuarter4
	}
}
