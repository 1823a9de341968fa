package repository

import (
	"school_hub_server/internal/model"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a UserRepository backed by gorm.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByUuid(uuid string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("uuid = ?", uuid).First(&user).Error; err != nil {
		return nil, wrapDBErrorf(err, "find user uuid=%s", uuid)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, wrapDBErrorf(err, "find user email=%s", email)
	}
	return &user, nil
}

func (r *userRepository) FindByUuids(uuids []string) ([]model.User, error) {
	if len(uuids) == 0 {
		return nil, nil
	}
	var users []model.User
	if err := r.db.Where("uuid IN ?", uuids).Find(&users).Error; err != nil {
		return nil, wrapDBError(err, "find users by uuids")
	}
	return users, nil
}

func (r *userRepository) GetUserList(page, pageSize int) ([]model.User, int64, error) {
	var users []model.User
	var total int64
	if err := r.db.Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "count users")
	}
	offset := (page - 1) * pageSize
	if err := r.db.Order("created_at DESC").Offset(offset).Limit(pageSize).Find(&users).Error; err != nil {
		return nil, 0, wrapDBError(err, "list users")
	}
	return users, total, nil
}

func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return wrapDBError(err, "create user")
	}
	return nil
}

func (r *userRepository) Update(user *model.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return wrapDBError(err, "update user")
	}
	return nil
}

func (r *userRepository) UpdateActiveRole(uuid, activeRole string) error {
	if err := r.db.Model(&model.User{}).Where("uuid = ?", uuid).
		Update("active_role", activeRole).Error; err != nil {
		return wrapDBErrorf(err, "update active role uuid=%s", uuid)
	}
	return nil
}

func (r *userRepository) UpdateStatusByUuids(uuids []string, status int8) error {
	if len(uuids) == 0 {
		return nil
	}
	if err := r.db.Model(&model.User{}).Where("uuid IN ?", uuids).
		Update("status", status).Error; err != nil {
		return wrapDBError(err, "update user status")
	}
	return nil
}

// SoftDeleteByUuids retires accounts. The login email is tombstoned first:
// it is uniquely indexed across soft-deleted rows, and keeping it would stop
// the address from ever registering again.
func (r *userRepository) SoftDeleteByUuids(uuids []string) error {
	if len(uuids) == 0 {
		return nil
	}
	if err := r.db.Model(&model.User{}).Where("uuid IN ?", uuids).
		Update("email", gorm.Expr("CONCAT('deleted:', uuid)")).Error; err != nil {
		return wrapDBError(err, "release user emails")
	}
	if err := r.db.Where("uuid IN ?", uuids).Delete(&model.User{}).Error; err != nil {
		return wrapDBError(err, "delete users")
	}
	return nil
}
