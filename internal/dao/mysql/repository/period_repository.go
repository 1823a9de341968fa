package repository

import (
	"school_hub_server/internal/model"

	"gorm.io/gorm"
)

type periodRepository struct {
	db *gorm.DB
}

// NewPeriodRepository creates a PeriodRepository backed by gorm.
func NewPeriodRepository(db *gorm.DB) PeriodRepository {
	return &periodRepository{db: db}
}

func (r *periodRepository) FindByClassUuid(classUuid string) ([]model.AcademicPeriod, error) {
	var periods []model.AcademicPeriod
	if err := r.db.Where("class_uuid = ?", classUuid).
		Order("start_date").Find(&periods).Error; err != nil {
		return nil, wrapDBErrorf(err, "list periods class=%s", classUuid)
	}
	return periods, nil
}

// ReplaceForClass drops every stored boundary for the class and inserts the
// new set in one transaction, so a reader never observes a partial mix of
// old and new boundaries.
func (r *periodRepository) ReplaceForClass(classUuid string, periods []model.AcademicPeriod) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("class_uuid = ?", classUuid).
			Delete(&model.AcademicPeriod{}).Error; err != nil {
			return err
		}
		if len(periods) == 0 {
			return nil
		}
		return tx.Create(&periods).Error
	})
	if err != nil {
		return wrapDBErrorf(err, "replace periods class=%s", classUuid)
	}
	return nil
}
