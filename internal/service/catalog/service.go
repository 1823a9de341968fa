// Package catalog implements CRUD over the school, class and subject
// reference data.
package catalog

import (
	"school_hub_server/internal/dao/mysql/repository"
	"school_hub_server/internal/dto/request"
	"school_hub_server/internal/dto/respond"
	"school_hub_server/internal/model"
	"school_hub_server/pkg/errorx"
	"school_hub_server/pkg/util/random"
)

type catalogService struct {
	repos *repository.Repositories
}

// NewCatalogService constructs the catalog service.
func NewCatalogService(repos *repository.Repositories) *catalogService {
	return &catalogService{repos: repos}
}

func (s *catalogService) CreateSchool(req request.CreateSchoolRequest) (*respond.SchoolRespond, error) {
	school := &model.School{
		Uuid:    "S" + random.GetNowAndLenRandomString(11),
		Name:    req.Name,
		Address: req.Address,
	}
	if err := s.repos.School.Create(school); err != nil {
		return nil, err
	}
	return toSchoolRespond(school), nil
}

func (s *catalogService) UpdateSchool(uuid string, req request.UpdateSchoolRequest) error {
	school, err := s.repos.School.FindByUuid(uuid)
	if err != nil {
		return err
	}
	if req.Name != "" {
		school.Name = req.Name
	}
	if req.Address != "" {
		school.Address = req.Address
	}
	return s.repos.School.Update(school)
}

func (s *catalogService) GetSchool(uuid string) (*respond.SchoolRespond, error) {
	school, err := s.repos.School.FindByUuid(uuid)
	if err != nil {
		return nil, err
	}
	return toSchoolRespond(school), nil
}

func (s *catalogService) GetSchoolList(page, pageSize int) (*respond.GetSchoolListRespond, error) {
	schools, total, err := s.repos.School.GetSchoolList(page, pageSize)
	if err != nil {
		return nil, err
	}
	rsp := &respond.GetSchoolListRespond{
		Total:   total,
		Schools: make([]respond.SchoolRespond, 0, len(schools)),
	}
	for i := range schools {
		rsp.Schools = append(rsp.Schools, *toSchoolRespond(&schools[i]))
	}
	return rsp, nil
}

// DeleteSchool archives the school. Classes and subjects keep their rows;
// they become unreachable through the catalog listing.
func (s *catalogService) DeleteSchool(uuid string) error {
	if _, err := s.repos.School.FindByUuid(uuid); err != nil {
		return err
	}
	return s.repos.School.SoftDeleteByUuid(uuid)
}

func (s *catalogService) CreateClass(req request.CreateClassRequest) (*respond.ClassRespond, error) {
	if _, err := s.repos.School.FindByUuid(req.SchoolId); err != nil {
		return nil, err
	}
	periodType := req.PeriodType
	if periodType == "" {
		periodType = model.PeriodTypeQuarters
	}
	class := &model.Class{
		Uuid:         "K" + random.GetNowAndLenRandomString(11),
		SchoolUuid:   req.SchoolId,
		Name:         req.Name,
		GradeLevel:   req.GradeLevel,
		AcademicYear: req.AcademicYear,
		PeriodType:   periodType,
	}
	if err := s.repos.Class.Create(class); err != nil {
		return nil, err
	}
	return toClassRespond(class), nil
}

func (s *catalogService) UpdateClass(uuid string, req request.UpdateClassRequest) error {
	class, err := s.repos.Class.FindByUuid(uuid)
	if err != nil {
		return err
	}
	if req.Name != "" {
		class.Name = req.Name
	}
	if req.GradeLevel != 0 {
		class.GradeLevel = req.GradeLevel
	}
	if req.PeriodType != "" {
		class.PeriodType = req.PeriodType
	}
	return s.repos.Class.Update(class)
}

func (s *catalogService) GetClass(uuid string) (*respond.ClassRespond, error) {
	class, err := s.repos.Class.FindByUuid(uuid)
	if err != nil {
		return nil, err
	}
	return toClassRespond(class), nil
}

func (s *catalogService) GetClassesBySchool(schoolUuid string) ([]respond.ClassRespond, error) {
	if _, err := s.repos.School.FindByUuid(schoolUuid); err != nil {
		return nil, err
	}
	classes, err := s.repos.Class.FindBySchoolUuid(schoolUuid)
	if err != nil {
		return nil, err
	}
	rsp := make([]respond.ClassRespond, 0, len(classes))
	for i := range classes {
		rsp = append(rsp, *toClassRespond(&classes[i]))
	}
	return rsp, nil
}

func (s *catalogService) DeleteClass(uuid string) error {
	if _, err := s.repos.Class.FindByUuid(uuid); err != nil {
		return err
	}
	return s.repos.Class.SoftDeleteByUuid(uuid)
}

func (s *catalogService) CreateSubject(req request.CreateSubjectRequest) (*respond.SubjectRespond, error) {
	if _, err := s.repos.School.FindByUuid(req.SchoolId); err != nil {
		return nil, err
	}
	subject := &model.Subject{
		Uuid:       "J" + random.GetNowAndLenRandomString(11),
		SchoolUuid: req.SchoolId,
		Code:       req.Code,
		Name:       req.Name,
	}
	if err := s.repos.Subject.Create(subject); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, errorx.Newf(errorx.CodeConflict,
				"subject code %s already exists in this school", req.Code)
		}
		return nil, err
	}
	return toSubjectRespond(subject), nil
}

func (s *catalogService) UpdateSubject(uuid string, req request.UpdateSubjectRequest) error {
	subject, err := s.repos.Subject.FindByUuid(uuid)
	if err != nil {
		return err
	}
	if req.Code != "" {
		subject.Code = req.Code
	}
	if req.Name != "" {
		subject.Name = req.Name
	}
	if err := s.repos.Subject.Update(subject); err != nil {
		if repository.IsDuplicateKey(err) {
			return errorx.Newf(errorx.CodeConflict,
				"subject code %s already exists in this school", req.Code)
		}
		return err
	}
	return nil
}

func (s *catalogService) GetSubjectsBySchool(schoolUuid string) ([]respond.SubjectRespond, error) {
	if _, err := s.repos.School.FindByUuid(schoolUuid); err != nil {
		return nil, err
	}
	subjects, err := s.repos.Subject.FindBySchoolUuid(schoolUuid)
	if err != nil {
		return nil, err
	}
	rsp := make([]respond.SubjectRespond, 0, len(subjects))
	for i := range subjects {
		rsp = append(rsp, *toSubjectRespond(&subjects[i]))
	}
	return rsp, nil
}

func (s *catalogService) DeleteSubject(uuid string) error {
	if _, err := s.repos.Subject.FindByUuid(uuid); err != nil {
		return err
	}
	return s.repos.Subject.SoftDeleteByUuid(uuid)
}

func toSchoolRespond(school *model.School) *respond.SchoolRespond {
	return &respond.SchoolRespond{
		SchoolId: school.Uuid,
		Name:     school.Name,
		Address:  school.Address,
		Status:   school.Status,
	}
}

func toClassRespond(class *model.Class) *respond.ClassRespond {
	return &respond.ClassRespond{
		ClassId:      class.Uuid,
		SchoolId:     class.SchoolUuid,
		Name:         class.Name,
		GradeLevel:   class.GradeLevel,
		AcademicYear: class.AcademicYear,
		PeriodType:   class.PeriodType,
	}
}

func toSubjectRespond(subject *model.Subject) *respond.SubjectRespond {
	return &respond.SubjectRespond{
		SubjectId: subject.Uuid,
		SchoolId:  subject.SchoolUuid,
		Code:      subject.Code,
		Name:      subject.Name,
	}
}
