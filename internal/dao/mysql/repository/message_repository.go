package repository

import (
	"school_hub_server/internal/model"

	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a MessageRepository backed by gorm.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) FindByUuid(uuid string) (*model.Message, error) {
	var msg model.Message
	if err := r.db.Where("uuid = ?", uuid).First(&msg).Error; err != nil {
		return nil, wrapDBErrorf(err, "find message uuid=%s", uuid)
	}
	return &msg, nil
}

func (r *messageRepository) FindByChatUuid(chatUuid string) ([]model.Message, error) {
	var msgs []model.Message
	if err := r.db.Where("chat_uuid = ?", chatUuid).
		Order("created_at").Find(&msgs).Error; err != nil {
		return nil, wrapDBErrorf(err, "list messages chat=%s", chatUuid)
	}
	return msgs, nil
}

func (r *messageRepository) Create(msg *model.Message) error {
	if err := r.db.Create(msg).Error; err != nil {
		return wrapDBError(err, "create message")
	}
	return nil
}

// DeleteAndUnlinkReplies severs reply links before deleting the target.
// Dependents keep their own content; only reply_to_uuid goes to NULL.
func (r *messageRepository) DeleteAndUnlinkReplies(uuid string) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Message{}).
			Where("reply_to_uuid = ?", uuid).
			Update("reply_to_uuid", nil).Error; err != nil {
			return err
		}
		return tx.Where("uuid = ?", uuid).Delete(&model.Message{}).Error
	})
	if err != nil {
		return wrapDBErrorf(err, "delete message uuid=%s", uuid)
	}
	return nil
}
