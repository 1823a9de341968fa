package repository

import (
	"school_hub_server/internal/model"

	"gorm.io/gorm"
)

type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository creates a ParticipantRepository backed by gorm.
func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) FindByChatUuid(chatUuid string) ([]model.ChatParticipant, error) {
	var ps []model.ChatParticipant
	if err := r.db.Where("chat_uuid = ?", chatUuid).Order("created_at").Find(&ps).Error; err != nil {
		return nil, wrapDBErrorf(err, "list participants chat=%s", chatUuid)
	}
	return ps, nil
}

func (r *participantRepository) FindByChatAndUser(chatUuid, userUuid string) (*model.ChatParticipant, error) {
	var p model.ChatParticipant
	if err := r.db.Where("chat_uuid = ? AND user_uuid = ?", chatUuid, userUuid).First(&p).Error; err != nil {
		return nil, wrapDBErrorf(err, "find participant chat=%s user=%s", chatUuid, userUuid)
	}
	return &p, nil
}

func (r *participantRepository) CountByChatUuid(chatUuid string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.ChatParticipant{}).
		Where("chat_uuid = ?", chatUuid).Count(&count).Error; err != nil {
		return 0, wrapDBErrorf(err, "count participants chat=%s", chatUuid)
	}
	return count, nil
}

func (r *participantRepository) Create(p *model.ChatParticipant) error {
	if err := r.db.Create(p).Error; err != nil {
		return wrapDBError(err, "create participant")
	}
	return nil
}

func (r *participantRepository) CreateBatch(ps []model.ChatParticipant) error {
	if len(ps) == 0 {
		return nil
	}
	if err := r.db.Create(&ps).Error; err != nil {
		return wrapDBError(err, "create participants")
	}
	return nil
}

// DeleteByChatAndUser removes the row permanently. Membership carries no
// soft-delete history, and a lingering soft-deleted row would block a rejoin
// on the (chat, user) unique index.
func (r *participantRepository) DeleteByChatAndUser(chatUuid, userUuid string) error {
	if err := r.db.Unscoped().
		Where("chat_uuid = ? AND user_uuid = ?", chatUuid, userUuid).
		Delete(&model.ChatParticipant{}).Error; err != nil {
		return wrapDBErrorf(err, "delete participant chat=%s user=%s", chatUuid, userUuid)
	}
	return nil
}

func (r *participantRepository) DeleteByChatUuid(chatUuid string) error {
	if err := r.db.Unscoped().
		Where("chat_uuid = ?", chatUuid).
		Delete(&model.ChatParticipant{}).Error; err != nil {
		return wrapDBErrorf(err, "delete participants chat=%s", chatUuid)
	}
	return nil
}
