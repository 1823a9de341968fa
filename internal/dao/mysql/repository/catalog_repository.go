package repository

import (
	"school_hub_server/internal/model"

	"gorm.io/gorm"
)

// Catalog repositories: schools, classes, subjects. They are small CRUD
// stores and share this file.

type schoolRepository struct {
	db *gorm.DB
}

// NewSchoolRepository creates a SchoolRepository backed by gorm.
func NewSchoolRepository(db *gorm.DB) SchoolRepository {
	return &schoolRepository{db: db}
}

func (r *schoolRepository) FindByUuid(uuid string) (*model.School, error) {
	var school model.School
	if err := r.db.Where("uuid = ?", uuid).First(&school).Error; err != nil {
		return nil, wrapDBErrorf(err, "find school uuid=%s", uuid)
	}
	return &school, nil
}

func (r *schoolRepository) GetSchoolList(page, pageSize int) ([]model.School, int64, error) {
	var schools []model.School
	var total int64
	if err := r.db.Model(&model.School{}).Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "count schools")
	}
	offset := (page - 1) * pageSize
	if err := r.db.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&schools).Error; err != nil {
		return nil, 0, wrapDBError(err, "list schools")
	}
	return schools, total, nil
}

func (r *schoolRepository) Create(school *model.School) error {
	if err := r.db.Create(school).Error; err != nil {
		return wrapDBError(err, "create school")
	}
	return nil
}

func (r *schoolRepository) Update(school *model.School) error {
	if err := r.db.Save(school).Error; err != nil {
		return wrapDBError(err, "update school")
	}
	return nil
}

func (r *schoolRepository) SoftDeleteByUuid(uuid string) error {
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.School{}).Error; err != nil {
		return wrapDBErrorf(err, "delete school uuid=%s", uuid)
	}
	return nil
}

type classRepository struct {
	db *gorm.DB
}

// NewClassRepository creates a ClassRepository backed by gorm.
func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) FindByUuid(uuid string) (*model.Class, error) {
	var class model.Class
	if err := r.db.Where("uuid = ?", uuid).First(&class).Error; err != nil {
		return nil, wrapDBErrorf(err, "find class uuid=%s", uuid)
	}
	return &class, nil
}

func (r *classRepository) FindBySchoolUuid(schoolUuid string) ([]model.Class, error) {
	var classes []model.Class
	if err := r.db.Where("school_uuid = ?", schoolUuid).
		Order("grade_level, name").Find(&classes).Error; err != nil {
		return nil, wrapDBErrorf(err, "list classes school=%s", schoolUuid)
	}
	return classes, nil
}

func (r *classRepository) Create(class *model.Class) error {
	if err := r.db.Create(class).Error; err != nil {
		return wrapDBError(err, "create class")
	}
	return nil
}

func (r *classRepository) Update(class *model.Class) error {
	if err := r.db.Save(class).Error; err != nil {
		return wrapDBError(err, "update class")
	}
	return nil
}

func (r *classRepository) SoftDeleteByUuid(uuid string) error {
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.Class{}).Error; err != nil {
		return wrapDBErrorf(err, "delete class uuid=%s", uuid)
	}
	return nil
}

type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository creates a SubjectRepository backed by gorm.
func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) FindByUuid(uuid string) (*model.Subject, error) {
	var subject model.Subject
	if err := r.db.Where("uuid = ?", uuid).First(&subject).Error; err != nil {
		return nil, wrapDBErrorf(err, "find subject uuid=%s", uuid)
	}
	return &subject, nil
}

func (r *subjectRepository) FindBySchoolUuid(schoolUuid string) ([]model.Subject, error) {
	var subjects []model.Subject
	if err := r.db.Where("school_uuid = ?", schoolUuid).
		Order("code").Find(&subjects).Error; err != nil {
		return nil, wrapDBErrorf(err, "list subjects school=%s", schoolUuid)
	}
	return subjects, nil
}

func (r *subjectRepository) Create(subject *model.Subject) error {
	if err := r.db.Create(subject).Error; err != nil {
		return wrapDBError(err, "create subject")
	}
	return nil
}

func (r *subjectRepository) Update(subject *model.Subject) error {
	if err := r.db.Save(subject).Error; err != nil {
		return wrapDBError(err, "update subject")
	}
	return nil
}

func (r *subjectRepository) SoftDeleteByUuid(uuid string) error {
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.Subject{}).Error; err != nil {
		return wrapDBErrorf(err, "delete subject uuid=%s", uuid)
	}
	return nil
}
