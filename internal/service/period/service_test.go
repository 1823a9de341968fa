package period

import (
	"errors"
	"testing"
	"time"

	"school_hub_server/internal/dao/mysql/repository"
	"school_hub_server/internal/dto/request"
	"school_hub_server/internal/model"
	"school_hub_server/pkg/errorx"
)

type stubClassRepo struct {
	class   *model.Class
	updated *model.Class
}

func (r *stubClassRepo) FindByUuid(uuid string) (*model.Class, error) {
	if r.class == nil || r.class.Uuid != uuid {
		return nil, errorx.Newf(errorx.CodeNotFound, "class %s not found", uuid)
	}
	return r.class, nil
}
func (r *stubClassRepo) FindBySchoolUuid(schoolUuid string) ([]model.Class, error) {
	return nil, nil
}
func (r *stubClassRepo) Create(class *model.Class) error { return nil }
func (r *stubClassRepo) Update(class *model.Class) error {
	r.updated = class
	return nil
}
func (r *stubClassRepo) SoftDeleteByUuid(uuid string) error { return nil }

type stubPeriodRepo struct {
	stored   []model.AcademicPeriod
	replaced []model.AcademicPeriod
}

func (r *stubPeriodRepo) FindByClassUuid(classUuid string) ([]model.AcademicPeriod, error) {
	return r.stored, nil
}
func (r *stubPeriodRepo) ReplaceForClass(classUuid string, periods []model.AcademicPeriod) error {
	r.replaced = periods
	return nil
}

func newTestService(class *model.Class, stored []model.AcademicPeriod) (*periodService, *stubClassRepo, *stubPeriodRepo) {
	classRepo := &stubClassRepo{class: class}
	periodRepo := &stubPeriodRepo{stored: stored}
	repos := &repository.Repositories{Class: classRepo, Period: periodRepo}
	return NewPeriodService(repos), classRepo, periodRepo
}

func TestGetPeriodsAllDefaults(t *testing.T) {
	svc, _, _ := newTestService(&model.Class{
		Uuid: "K1", AcademicYear: 2024, PeriodType: model.PeriodTypeQuarters,
	}, nil)

	rsp, err := svc.GetPeriods("K1", date(2024, time.September, 10))
	if err != nil {
		t.Fatalf("GetPeriods: %v", err)
	}
	if len(rsp.Boundaries) != 4 {
		t.Fatalf("expected 4 boundaries, got %d", len(rsp.Boundaries))
	}
	q1 := rsp.Boundaries[0]
	if q1.Name != model.PeriodQuarter1 || q1.StartDate != "2024-09-01" || q1.EndDate != "2024-10-31" {
		t.Fatalf("quarter1 default wrong: %+v", q1)
	}
	for _, b := range rsp.Boundaries {
		if b.Source != "default" {
			t.Errorf("boundary %s source = %q, want default", b.Name, b.Source)
		}
		if b.AcademicYear != "2024/2025" {
			t.Errorf("boundary %s academic year = %q", b.Name, b.AcademicYear)
		}
	}
	if rsp.CurrentPeriod != model.PeriodQuarter1 {
		t.Fatalf("current period = %q, want quarter1", rsp.CurrentPeriod)
	}
}

func TestGetPeriodsExplicitOverridesOnlyItsName(t *testing.T) {
	svc, _, _ := newTestService(&model.Class{
		Uuid: "K1", AcademicYear: 2024, PeriodType: model.PeriodTypeQuarters,
	}, []model.AcademicPeriod{{
		ClassUuid:    "K1",
		Name:         model.PeriodQuarter1,
		StartDate:    date(2024, time.August, 15),
		EndDate:      date(2024, time.November, 5),
		AcademicYear: "2024/2025",
	}})

	rsp, err := svc.GetPeriods("K1", date(2025, time.March, 1))
	if err != nil {
		t.Fatalf("GetPeriods: %v", err)
	}
	q1 := rsp.Boundaries[0]
	if q1.Source != "explicit" || q1.StartDate != "2024-08-15" || q1.EndDate != "2024-11-05" {
		t.Fatalf("explicit quarter1 not returned verbatim: %+v", q1)
	}
	q2 := rsp.Boundaries[1]
	if q2.Source != "default" || q2.StartDate != "2024-11-01" {
		t.Fatalf("quarter2 should stay on defaults: %+v", q2)
	}
	if rsp.CurrentPeriod != model.PeriodQuarter3 {
		t.Fatalf("current period in March = %q, want quarter3", rsp.CurrentPeriod)
	}
}

func TestGetPeriodsSemesters(t *testing.T) {
	svc, _, _ := newTestService(&model.Class{
		Uuid: "K1", AcademicYear: 2024, PeriodType: model.PeriodTypeSemesters,
	}, nil)

	rsp, err := svc.GetPeriods("K1", date(2025, time.July, 1))
	if err != nil {
		t.Fatalf("GetPeriods: %v", err)
	}
	if len(rsp.Boundaries) != 2 {
		t.Fatalf("expected 2 boundaries, got %d", len(rsp.Boundaries))
	}
	if rsp.CurrentPeriod != model.PeriodSemester2 {
		t.Fatalf("summer current period = %q, want semester2", rsp.CurrentPeriod)
	}
}

func TestGetPeriodsUnknownClass(t *testing.T) {
	svc, _, _ := newTestService(&model.Class{Uuid: "K1"}, nil)
	if _, err := svc.GetPeriods("K9", time.Now()); !errorx.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestPutPeriodsRejectsForeignName(t *testing.T) {
	svc, _, _ := newTestService(&model.Class{
		Uuid: "K1", AcademicYear: 2024, PeriodType: model.PeriodTypeQuarters,
	}, nil)

	err := svc.PutPeriods("K1", request.PutPeriodsRequest{
		PeriodType: model.PeriodTypeSemesters,
		Boundaries: []request.PeriodBoundary{{
			Name: model.PeriodQuarter1, StartDate: "2024-09-01", EndDate: "2024-10-31",
		}},
	})
	var codeErr *errorx.CodeError
	if !errors.As(err, &codeErr) || codeErr.Code != errorx.CodeInvalidParam {
		t.Fatalf("expected invalid-param, got %v", err)
	}
}

func TestPutPeriodsRejectsInvertedDates(t *testing.T) {
	svc, _, _ := newTestService(&model.Class{
		Uuid: "K1", AcademicYear: 2024, PeriodType: model.PeriodTypeQuarters,
	}, nil)

	err := svc.PutPeriods("K1", request.PutPeriodsRequest{
		PeriodType: model.PeriodTypeQuarters,
		Boundaries: []request.PeriodBoundary{{
			Name: model.PeriodQuarter1, StartDate: "2024-10-31", EndDate: "2024-09-01",
		}},
	})
	if err == nil {
		t.Fatal("expected an error for end before start")
	}
}

func TestPutPeriodsStoresAndSwitchesType(t *testing.T) {
	class := &model.Class{
		Uuid: "K1", AcademicYear: 2024, PeriodType: model.PeriodTypeQuarters,
	}
	svc, classRepo, periodRepo := newTestService(class, nil)

	err := svc.PutPeriods("K1", request.PutPeriodsRequest{
		PeriodType: model.PeriodTypeSemesters,
		Boundaries: []request.PeriodBoundary{{
			Name: model.PeriodSemester1, StartDate: "2024-09-01", EndDate: "2025-01-20",
		}},
	})
	if err != nil {
		t.Fatalf("PutPeriods: %v", err)
	}
	if classRepo.updated == nil || classRepo.updated.PeriodType != model.PeriodTypeSemesters {
		t.Fatal("class period type was not switched")
	}
	if len(periodRepo.replaced) != 1 {
		t.Fatalf("expected 1 stored boundary, got %d", len(periodRepo.replaced))
	}
	if got := periodRepo.replaced[0].AcademicYear; got != "2024/2025" {
		t.Fatalf("academic year label defaulted to %q", got)
	}
}

func TestPutPeriodsEmptyRevertsToDefaults(t *testing.T) {
	class := &model.Class{
		Uuid: "K1", AcademicYear: 2024, PeriodType: model.PeriodTypeQuarters,
	}
	svc, _, periodRepo := newTestService(class, []model.AcademicPeriod{{
		ClassUuid: "K1", Name: model.PeriodQuarter1,
	}})

	err := svc.PutPeriods("K1", request.PutPeriodsRequest{
		PeriodType: model.PeriodTypeQuarters,
	})
	if err != nil {
		t.Fatalf("PutPeriods: %v", err)
	}
	if len(periodRepo.replaced) != 0 {
		t.Fatalf("expected stored boundaries cleared, got %d", len(periodRepo.replaced))
	}
}
