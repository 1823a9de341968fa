// Package repository separates data access from business logic. All
// interfaces live in this file; implementations sit one file per entity.
package repository

import (
	"errors"

	"school_hub_server/internal/model"
	"school_hub_server/pkg/errorx"

	"gorm.io/gorm"
)

// wrapDBError maps a gorm error to an errorx code: record-not-found becomes
// CodeNotFound, everything else CodeDBError. Duplicate-key errors are left
// recognizable through errors.Is(err, gorm.ErrDuplicatedKey).
func wrapDBError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrap(err, errorx.CodeNotFound, msg)
	}
	return errorx.Wrap(err, errorx.CodeDBError, msg)
}

// wrapDBErrorf is wrapDBError with a formatted message.
func wrapDBErrorf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.Wrapf(err, errorx.CodeNotFound, format, args...)
	}
	return errorx.Wrapf(err, errorx.CodeDBError, format, args...)
}

// IsDuplicateKey reports whether err stems from a unique-constraint
// violation.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// UserRepository accesses user accounts.
type UserRepository interface {
	FindByUuid(uuid string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByUuids(uuids []string) ([]model.User, error)
	GetUserList(page, pageSize int) ([]model.User, int64, error)
	Create(user *model.User) error
	Update(user *model.User) error
	UpdateActiveRole(uuid, activeRole string) error
	UpdateStatusByUuids(uuids []string, status int8) error
	SoftDeleteByUuids(uuids []string) error
}

// RoleRepository accesses the user_role assignment relation.
type RoleRepository interface {
	FindByUserUuid(userUuid string) ([]model.UserRole, error)
	// DistinctRoleNames returns the deduplicated role names assigned to a
	// user, ignoring scope.
	DistinctRoleNames(userUuid string) ([]string, error)
	Create(role *model.UserRole) error
	// DeleteByUserAndRole removes every assignment of the named role,
	// regardless of scope.
	DeleteByUserAndRole(userUuid, role string) error
	DeleteByUserUuid(userUuid string) error
}

// SchoolRepository accesses schools.
type SchoolRepository interface {
	FindByUuid(uuid string) (*model.School, error)
	GetSchoolList(page, pageSize int) ([]model.School, int64, error)
	Create(school *model.School) error
	Update(school *model.School) error
	SoftDeleteByUuid(uuid string) error
}

// ClassRepository accesses classes.
type ClassRepository interface {
	FindByUuid(uuid string) (*model.Class, error)
	FindBySchoolUuid(schoolUuid string) ([]model.Class, error)
	Create(class *model.Class) error
	Update(class *model.Class) error
	SoftDeleteByUuid(uuid string) error
}

// SubjectRepository accesses subjects.
type SubjectRepository interface {
	FindByUuid(uuid string) (*model.Subject, error)
	FindBySchoolUuid(schoolUuid string) ([]model.Subject, error)
	Create(subject *model.Subject) error
	Update(subject *model.Subject) error
	SoftDeleteByUuid(uuid string) error
}

// ChatRepository accesses chats.
type ChatRepository interface {
	FindByUuid(uuid string) (*model.Chat, error)
	// FindByPairKey resolves the private chat for a canonical pair key.
	FindByPairKey(pairKey string) (*model.Chat, error)
	// FindByUserUuid lists the chats a user participates in, most recent
	// activity first.
	FindByUserUuid(userUuid string) ([]model.Chat, error)
	Create(chat *model.Chat) error
	UpdateHasAvatar(uuid string, hasAvatar bool) error
	// TouchLastMessage bumps last_message_at to now.
	TouchLastMessage(uuid string) error
	SoftDeleteByUuid(uuid string) error
}

// ParticipantRepository accesses chat membership.
type ParticipantRepository interface {
	FindByChatUuid(chatUuid string) ([]model.ChatParticipant, error)
	FindByChatAndUser(chatUuid, userUuid string) (*model.ChatParticipant, error)
	CountByChatUuid(chatUuid string) (int64, error)
	Create(p *model.ChatParticipant) error
	CreateBatch(ps []model.ChatParticipant) error
	// DeleteByChatAndUser removes a membership row for good; membership has
	// no soft-delete history and a rejoin must not trip the unique index.
	DeleteByChatAndUser(chatUuid, userUuid string) error
	DeleteByChatUuid(chatUuid string) error
}

// MessageRepository accesses messages.
type MessageRepository interface {
	FindByUuid(uuid string) (*model.Message, error)
	FindByChatUuid(chatUuid string) ([]model.Message, error)
	Create(msg *model.Message) error
	// DeleteAndUnlinkReplies nulls reply_to_uuid on every dependent, then
	// soft-deletes the message itself, in one transaction. Replies are never
	// cascaded.
	DeleteAndUnlinkReplies(uuid string) error
}

// AvatarRepository accesses chat avatar blobs.
type AvatarRepository interface {
	FindByChatUuid(chatUuid string) (*model.ChatAvatar, error)
	// Upsert replaces the avatar for a chat, creating the row if absent.
	Upsert(avatar *model.ChatAvatar) error
	DeleteByChatUuid(chatUuid string) error
}

// PeriodRepository accesses explicit academic period boundaries.
type PeriodRepository interface {
	FindByClassUuid(classUuid string) ([]model.AcademicPeriod, error)
	// ReplaceForClass swaps the whole boundary set for a class atomically.
	ReplaceForClass(classUuid string, periods []model.AcademicPeriod) error
}

// Repositories aggregates every repository for injection into services.
type Repositories struct {
	db          *gorm.DB
	User        UserRepository
	Role        RoleRepository
	School      SchoolRepository
	Class       ClassRepository
	Subject     SubjectRepository
	Chat        ChatRepository
	Participant ParticipantRepository
	Message     MessageRepository
	Avatar      AvatarRepository
	Period      PeriodRepository
}

// NewRepositories wires every repository to the given database handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:          db,
		User:        NewUserRepository(db),
		Role:        NewRoleRepository(db),
		School:      NewSchoolRepository(db),
		Class:       NewClassRepository(db),
		Subject:     NewSubjectRepository(db),
		Chat:        NewChatRepository(db),
		Participant: NewParticipantRepository(db),
		Message:     NewMessageRepository(db),
		Avatar:      NewAvatarRepository(db),
		Period:      NewPeriodRepository(db),
	}
}

// Transaction runs fn with a Repositories bound to one database transaction;
// any error rolls everything back.
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	if r.db == nil {
		// No database bound: run the callback against this aggregate as-is.
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
