package repository

import (
	"time"

	"school_hub_server/internal/model"

	"gorm.io/gorm"
)

type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a ChatRepository backed by gorm.
func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) FindByUuid(uuid string) (*model.Chat, error) {
	var chat model.Chat
	if err := r.db.Where("uuid = ?", uuid).First(&chat).Error; err != nil {
		return nil, wrapDBErrorf(err, "find chat uuid=%s", uuid)
	}
	return &chat, nil
}

func (r *chatRepository) FindByPairKey(pairKey string) (*model.Chat, error) {
	var chat model.Chat
	if err := r.db.Where("pair_key = ?", pairKey).First(&chat).Error; err != nil {
		return nil, wrapDBErrorf(err, "find chat pair_key=%s", pairKey)
	}
	return &chat, nil
}

func (r *chatRepository) FindByUserUuid(userUuid string) ([]model.Chat, error) {
	var chats []model.Chat
	err := r.db.
		Joins("JOIN chat_participant ON chat_participant.chat_uuid = chat.uuid").
		Where("chat_participant.user_uuid = ? AND chat_participant.deleted_at IS NULL", userUuid).
		Order("chat.last_message_at DESC").
		Find(&chats).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "list chats user=%s", userUuid)
	}
	return chats, nil
}

func (r *chatRepository) Create(chat *model.Chat) error {
	if err := r.db.Create(chat).Error; err != nil {
		// Not wrapped when it is a duplicated key: the chat service turns
		// that into the conflict response carrying the existing chat id.
		if IsDuplicateKey(err) {
			return err
		}
		return wrapDBError(err, "create chat")
	}
	return nil
}

func (r *chatRepository) UpdateHasAvatar(uuid string, hasAvatar bool) error {
	if err := r.db.Model(&model.Chat{}).Where("uuid = ?", uuid).
		Update("has_avatar", hasAvatar).Error; err != nil {
		return wrapDBErrorf(err, "update chat avatar flag uuid=%s", uuid)
	}
	return nil
}

func (r *chatRepository) TouchLastMessage(uuid string) error {
	if err := r.db.Model(&model.Chat{}).Where("uuid = ?", uuid).
		Update("last_message_at", time.Now()).Error; err != nil {
		return wrapDBErrorf(err, "touch chat uuid=%s", uuid)
	}
	return nil
}

// SoftDeleteByUuid retires the chat. The pair key is released first: the
// unique index spans soft-deleted rows, so keeping it would stop the pair
// from ever starting a new private chat.
func (r *chatRepository) SoftDeleteByUuid(uuid string) error {
	if err := r.db.Model(&model.Chat{}).Where("uuid = ?", uuid).
		Update("pair_key", nil).Error; err != nil {
		return wrapDBErrorf(err, "release chat pair key uuid=%s", uuid)
	}
	if err := r.db.Where("uuid = ?", uuid).Delete(&model.Chat{}).Error; err != nil {
		return wrapDBErrorf(err, "delete chat uuid=%s", uuid)
	}
	return nil
}
