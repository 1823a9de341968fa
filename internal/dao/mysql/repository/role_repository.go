package repository

import (
	"school_hub_server/internal/model"

	"gorm.io/gorm"
)

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a RoleRepository backed by gorm.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindByUserUuid(userUuid string) ([]model.UserRole, error) {
	var roles []model.UserRole
	if err := r.db.Where("user_uuid = ?", userUuid).Find(&roles).Error; err != nil {
		return nil, wrapDBErrorf(err, "find roles user=%s", userUuid)
	}
	return roles, nil
}

func (r *roleRepository) DistinctRoleNames(userUuid string) ([]string, error) {
	var names []string
	if err := r.db.Model(&model.UserRole{}).
		Where("user_uuid = ?", userUuid).
		Distinct("role").
		Pluck("role", &names).Error; err != nil {
		return nil, wrapDBErrorf(err, "find role names user=%s", userUuid)
	}
	return names, nil
}

func (r *roleRepository) Create(role *model.UserRole) error {
	if err := r.db.Create(role).Error; err != nil {
		return wrapDBError(err, "create role assignment")
	}
	return nil
}

// DeleteByUserAndRole removes the rows permanently. A soft-deleted
// assignment would keep occupying the scope unique index and block
// re-assigning the same role later.
func (r *roleRepository) DeleteByUserAndRole(userUuid, role string) error {
	if err := r.db.Unscoped().
		Where("user_uuid = ? AND role = ?", userUuid, role).
		Delete(&model.UserRole{}).Error; err != nil {
		return wrapDBErrorf(err, "delete role %s user=%s", role, userUuid)
	}
	return nil
}

func (r *roleRepository) DeleteByUserUuid(userUuid string) error {
	if err := r.db.Unscoped().
		Where("user_uuid = ?", userUuid).
		Delete(&model.UserRole{}).Error; err != nil {
		return wrapDBErrorf(err, "delete roles user=%s", userUuid)
	}
	return nil
}
