// Package period resolves grading period boundaries: explicit rows stored
// per class win, everything else comes from the default calendar.
package period

import (
	"time"

	"go.uber.org/zap"

	"school_hub_server/internal/dao/mysql/repository"
	"school_hub_server/internal/dto/request"
	"school_hub_server/internal/dto/respond"
	"school_hub_server/internal/model"
	"school_hub_server/pkg/errorx"
)

const dateLayout = "2006-01-02"

type periodService struct {
	repos *repository.Repositories
}

// NewPeriodService constructs the period service.
func NewPeriodService(repos *repository.Repositories) *periodService {
	return &periodService{repos: repos}
}

// GetPeriods returns every period of the class's grading model. Names with
// a stored row are returned verbatim; the rest are filled from the default
// calendar for the class's academic year.
func (s *periodService) GetPeriods(classUuid string, now time.Time) (*respond.GetPeriodsRespond, error) {
	class, err := s.repos.Class.FindByUuid(classUuid)
	if err != nil {
		return nil, err
	}

	stored, err := s.repos.Period.FindByClassUuid(classUuid)
	if err != nil {
		return nil, err
	}
	explicit := make(map[string]model.AcademicPeriod, len(stored))
	for _, p := range stored {
		explicit[p.Name] = p
	}

	names := model.PeriodNamesFor(class.PeriodType)
	boundaries := make([]respond.PeriodRespond, 0, len(names))
	for _, name := range names {
		if p, ok := explicit[name]; ok {
			boundaries = append(boundaries, respond.PeriodRespond{
				Name:         p.Name,
				StartDate:    p.StartDate.Format(dateLayout),
				EndDate:      p.EndDate.Format(dateLayout),
				AcademicYear: p.AcademicYear,
				Source:       "explicit",
			})
			continue
		}
		start, end, err := DefaultPeriodDates(name, class.AcademicYear)
		if err != nil {
			// Unreachable while PeriodNamesFor and defaultCalendar agree.
			zap.L().Error("default period calendar miss", zap.String("name", name), zap.Error(err))
			return nil, errorx.New(errorx.CodeServerBusy, "server busy")
		}
		boundaries = append(boundaries, respond.PeriodRespond{
			Name:         name,
			StartDate:    start.Format(dateLayout),
			EndDate:      end.Format(dateLayout),
			AcademicYear: AcademicYearLabel(class.AcademicYear),
			Source:       "default",
		})
	}

	return &respond.GetPeriodsRespond{
		ClassId:       class.Uuid,
		PeriodType:    class.PeriodType,
		CurrentPeriod: currentPeriodFor(class.PeriodType, now),
		Boundaries:    boundaries,
	}, nil
}

// PutPeriods replaces the class's grading configuration. The period type is
// updated on the class; boundaries must use names belonging to that type.
// An empty boundary list clears the stored rows, reverting to defaults.
func (s *periodService) PutPeriods(classUuid string, req request.PutPeriodsRequest) error {
	class, err := s.repos.Class.FindByUuid(classUuid)
	if err != nil {
		return err
	}

	valid := make(map[string]bool)
	for _, name := range model.PeriodNamesFor(req.PeriodType) {
		valid[name] = true
	}

	periods := make([]model.AcademicPeriod, 0, len(req.Boundaries))
	seen := make(map[string]bool, len(req.Boundaries))
	for _, b := range req.Boundaries {
		if !valid[b.Name] {
			return errorx.Newf(errorx.CodeInvalidParam,
				"period name %s does not belong to the %s model", b.Name, req.PeriodType)
		}
		if seen[b.Name] {
			return errorx.Newf(errorx.CodeInvalidParam, "period name %s given twice", b.Name)
		}
		seen[b.Name] = true

		start, err := time.Parse(dateLayout, b.StartDate)
		if err != nil {
			return errorx.Newf(errorx.CodeInvalidParam, "invalid start date %s", b.StartDate)
		}
		end, err := time.Parse(dateLayout, b.EndDate)
		if err != nil {
			return errorx.Newf(errorx.CodeInvalidParam, "invalid end date %s", b.EndDate)
		}
		if !end.After(start) {
			return errorx.Newf(errorx.CodeInvalidParam,
				"period %s must end after it starts", b.Name)
		}

		yearLabel := b.AcademicYear
		if yearLabel == "" {
			yearLabel = AcademicYearLabel(class.AcademicYear)
		}
		periods = append(periods, model.AcademicPeriod{
			ClassUuid:    class.Uuid,
			Name:         b.Name,
			StartDate:    start,
			EndDate:      end,
			AcademicYear: yearLabel,
		})
	}

	if class.PeriodType != req.PeriodType {
		class.PeriodType = req.PeriodType
		if err := s.repos.Class.Update(class); err != nil {
			return err
		}
	}
	return s.repos.Period.ReplaceForClass(class.Uuid, periods)
}

// currentPeriodFor maps the current date to a period name of the class's
// grading model. The quarter mapping is the reference; semesters and
// trimesters coarsen it.
func currentPeriodFor(periodType string, now time.Time) string {
	switch periodType {
	case model.PeriodTypeSemesters:
		switch CurrentQuarterName(now) {
		case model.PeriodQuarter1, model.PeriodQuarter2:
			return model.PeriodSemester1
		default:
			return model.PeriodSemester2
		}
	case model.PeriodTypeTrimesters:
		switch now.Month() {
		case time.September, time.October, time.November:
			return model.PeriodTrimester1
		case time.December, time.January, time.February:
			return model.PeriodTrimester2
		default:
			return model.PeriodTrimester3
		}
	default:
		return CurrentQuarterName(now)
	}
}
