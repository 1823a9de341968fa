package period

import (
	"testing"
	"time"

	"school_hub_server/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDefaultPeriodDates(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		start time.Time
		end   time.Time
	}{
		{model.PeriodQuarter1, 2024, date(2024, time.September, 1), date(2024, time.October, 31)},
		{model.PeriodQuarter2, 2024, date(2024, time.November, 1), date(2025, time.January, 31)},
		{model.PeriodQuarter3, 2024, date(2025, time.February, 1), date(2025, time.March, 31)},
		{model.PeriodQuarter4, 2024, date(2025, time.April, 1), date(2025, time.June, 30)},
		{model.PeriodSemester1, 2024, date(2024, time.September, 1), date(2025, time.January, 31)},
		{model.PeriodSemester2, 2024, date(2025, time.February, 1), date(2025, time.June, 30)},
		{model.PeriodTrimester1, 2024, date(2024, time.September, 1), date(2024, time.November, 30)},
		{model.PeriodTrimester2, 2024, date(2024, time.December, 1), date(2025, time.February, 28)},
		{model.PeriodTrimester3, 2024, date(2025, time.March, 1), date(2025, time.June, 30)},
		// 2023/2024 ends February in a leap year.
		{model.PeriodTrimester2, 2023, date(2023, time.December, 1), date(2024, time.February, 29)},
	}
	for _, tt := range tests {
		start, end, err := DefaultPeriodDates(tt.name, tt.year)
		if err != nil {
			t.Fatalf("DefaultPeriodDates(%q, %d): %v", tt.name, tt.year, err)
		}
		if !start.Equal(tt.start) || !end.Equal(tt.end) {
			t.Errorf("DefaultPeriodDates(%q, %d) = %s..%s, want %s..%s",
				tt.name, tt.year,
				start.Format("2006-01-02"), end.Format("2006-01-02"),
				tt.start.Format("2006-01-02"), tt.end.Format("2006-01-02"))
		}
	}
}

func TestDefaultPeriodDatesUnknownName(t *testing.T) {
	if _, _, err := DefaultPeriodDates("quarter5", 2024); err == nil {
		t.Fatal("expected an error for an unknown period name")
	}
}

func TestCurrentQuarterName(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.September, model.PeriodQuarter1},
		{time.October, model.PeriodQuarter1},
		{time.November, model.PeriodQuarter2},
		{time.December, model.PeriodQuarter2},
		{time.January, model.PeriodQuarter2},
		{time.February, model.PeriodQuarter3},
		{time.March, model.PeriodQuarter3},
		{time.April, model.PeriodQuarter4},
		{time.May, model.PeriodQuarter4},
		// Summer recess folds into the last quarter.
		{time.June, model.PeriodQuarter4},
		{time.July, model.PeriodQuarter4},
		{time.August, model.PeriodQuarter4},
	}
	for _, tt := range tests {
		if got := CurrentQuarterName(date(2025, tt.month, 15)); got != tt.want {
			t.Errorf("CurrentQuarterName(%s) = %q, want %q", tt.month, got, tt.want)
		}
	}
}

func TestAcademicYearLabel(t *testing.T) {
	if got := AcademicYearLabel(2024); got != "2024/2025" {
		t.Fatalf("AcademicYearLabel(2024) = %q", got)
	}
}
