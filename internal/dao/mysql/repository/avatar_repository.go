package repository

import (
	"errors"

	"school_hub_server/internal/model"

	"gorm.io/gorm"
)

type avatarRepository struct {
	db *gorm.DB
}

// NewAvatarRepository creates an AvatarRepository backed by gorm.
func NewAvatarRepository(db *gorm.DB) AvatarRepository {
	return &avatarRepository{db: db}
}

func (r *avatarRepository) FindByChatUuid(chatUuid string) (*model.ChatAvatar, error) {
	var avatar model.ChatAvatar
	if err := r.db.Where("chat_uuid = ?", chatUuid).First(&avatar).Error; err != nil {
		return nil, wrapDBErrorf(err, "find avatar chat=%s", chatUuid)
	}
	return &avatar, nil
}

func (r *avatarRepository) Upsert(avatar *model.ChatAvatar) error {
	var existing model.ChatAvatar
	err := r.db.Where("chat_uuid = ?", avatar.ChatUuid).First(&existing).Error
	switch {
	case err == nil:
		existing.Data = avatar.Data
		existing.MimeType = avatar.MimeType
		existing.Size = avatar.Size
		if err := r.db.Save(&existing).Error; err != nil {
			return wrapDBErrorf(err, "update avatar chat=%s", avatar.ChatUuid)
		}
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := r.db.Create(avatar).Error; err != nil {
			return wrapDBErrorf(err, "create avatar chat=%s", avatar.ChatUuid)
		}
		return nil
	default:
		return wrapDBErrorf(err, "find avatar chat=%s", avatar.ChatUuid)
	}
}

func (r *avatarRepository) DeleteByChatUuid(chatUuid string) error {
	if err := r.db.Unscoped().Where("chat_uuid = ?", chatUuid).
		Delete(&model.ChatAvatar{}).Error; err != nil {
		return wrapDBErrorf(err, "delete avatar chat=%s", chatUuid)
	}
	return nil
}
