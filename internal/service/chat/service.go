// Package chat implements chat identity, membership and avatars. The
// private-chat uniqueness invariant is enforced by the unique index on the
// canonical pair key; this service translates the resulting duplicate-key
// error into a conflict the API can answer with the existing chat id.
package chat

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"go.uber.org/zap"

	"school_hub_server/internal/dao/mysql/repository"
	myredis "school_hub_server/internal/dao/redis"
	"school_hub_server/internal/dto/request"
	"school_hub_server/internal/dto/respond"
	"school_hub_server/internal/model"
	"school_hub_server/pkg/constants"
	"school_hub_server/pkg/errorx"
	"school_hub_server/pkg/util/random"
)

// DuplicateChatError reports that a private chat already exists for the
// requested user pair. It carries the existing chat id so the caller can
// redirect instead of duplicating.
type DuplicateChatError struct {
	ExistingChatId string
}

func (e *DuplicateChatError) Error() string {
	return fmt.Sprintf("a private chat with this user already exists (chat %s)", e.ExistingChatId)
}

type chatService struct {
	repos *repository.Repositories
}

// NewChatService constructs the chat service.
func NewChatService(repos *repository.Repositories) *chatService {
	return &chatService{repos: repos}
}

func chatListCacheKey(userUuid string) string {
	return "chat_list_" + userUuid
}

// FindPrivateChatBetweenUsers resolves the private chat between two users,
// order-independently. Group chats never match, even with the same two
// members, because only two-party private chats carry a pair key.
func (s *chatService) FindPrivateChatBetweenUsers(userA, userB string) (*respond.ChatRespond, error) {
	if userA == userB {
		return nil, errorx.New(errorx.CodeInvalidParam, "cannot resolve a private chat of a user with themselves")
	}
	chat, err := s.repos.Chat.FindByPairKey(model.PairKey(userA, userB))
	if err != nil {
		return nil, err
	}
	return s.buildChatRespond(chat, true)
}

// CreateChat creates a conversation. Private chats are deduplicated per
// unordered user pair; group chats are always created.
func (s *chatService) CreateChat(creatorUuid string, req request.CreateChatRequest) (*respond.ChatRespond, error) {
	if _, err := s.repos.School.FindByUuid(req.SchoolId); err != nil {
		return nil, err
	}

	others := dedupeExcluding(req.ParticipantIds, creatorUuid)

	chat := &model.Chat{
		Uuid:        "C" + random.GetNowAndLenRandomString(11),
		Type:        req.Type,
		Name:        req.Name,
		CreatorUuid: creatorUuid,
		SchoolUuid:  req.SchoolId,
	}

	switch req.Type {
	case model.ChatTypePrivate:
		if len(others) == 0 {
			return nil, errorx.New(errorx.CodeInvalidParam, "cannot create a private chat with yourself")
		}
		if len(others) > 1 {
			return nil, errorx.New(errorx.CodeInvalidParam, "a private chat has exactly two participants")
		}
		if _, err := s.repos.User.FindByUuid(others[0]); err != nil {
			return nil, err
		}
		chat.PairKey = sql.NullString{String: model.PairKey(creatorUuid, others[0]), Valid: true}
	case model.ChatTypeGroup:
		if users, err := s.repos.User.FindByUuids(others); err != nil {
			return nil, err
		} else if len(users) != len(others) {
			return nil, errorx.New(errorx.CodeInvalidParam, "unknown participant id")
		}
	default:
		return nil, errorx.Newf(errorx.CodeInvalidParam, "unknown chat type %q", req.Type)
	}

	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Chat.Create(chat); err != nil {
			return err
		}
		participants := make([]model.ChatParticipant, 0, len(others)+1)
		participants = append(participants, model.ChatParticipant{
			ChatUuid: chat.Uuid, UserUuid: creatorUuid, IsAdmin: true,
		})
		for _, uuid := range others {
			participants = append(participants, model.ChatParticipant{
				ChatUuid: chat.Uuid, UserUuid: uuid,
			})
		}
		return tx.Participant.CreateBatch(participants)
	})
	if err != nil {
		if repository.IsDuplicateKey(err) && chat.PairKey.Valid {
			// Lost the race (or the pair simply already had a chat): answer
			// with the surviving row's id.
			existing, ferr := s.repos.Chat.FindByPairKey(chat.PairKey.String)
			if ferr != nil {
				return nil, ferr
			}
			return nil, &DuplicateChatError{ExistingChatId: existing.Uuid}
		}
		return nil, err
	}

	s.invalidateChatLists(append(others, creatorUuid))
	return s.buildChatRespond(chat, true)
}

// GetChatList lists the chats the user participates in, cache-first, most
// recent activity first.
func (s *chatService) GetChatList(userUuid string) ([]respond.ChatRespond, error) {
	cacheKey := chatListCacheKey(userUuid)
	cached, err := myredis.GetKeyNilIsErr(context.Background(), cacheKey)
	if err == nil {
		var rsp []respond.ChatRespond
		if err := json.Unmarshal([]byte(cached), &rsp); err == nil {
			return rsp, nil
		}
		zap.L().Error("json unmarshal chat list cache error", zap.Error(err))
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("redis get chat list error", zap.Error(err))
	}

	chats, err := s.repos.Chat.FindByUserUuid(userUuid)
	if err != nil {
		return nil, err
	}
	rspList := make([]respond.ChatRespond, 0, len(chats))
	for i := range chats {
		rsp, err := s.buildChatRespond(&chats[i], false)
		if err != nil {
			return nil, err
		}
		rspList = append(rspList, *rsp)
	}

	myredis.SubmitCacheTask(func() {
		jsonBytes, err := json.Marshal(rspList)
		if err != nil {
			zap.L().Error("json marshal chat list error", zap.Error(err))
			return
		}
		if err := myredis.SetKeyEx(context.Background(), cacheKey, string(jsonBytes),
			time.Duration(constants.REDIS_TIMEOUT)*time.Minute); err != nil {
			zap.L().Error("redis set chat list error", zap.Error(err))
		}
	})

	return rspList, nil
}

// GetChat returns one chat with membership; participant-only.
func (s *chatService) GetChat(chatUuid, userUuid string) (*respond.ChatRespond, error) {
	chat, err := s.repos.Chat.FindByUuid(chatUuid)
	if err != nil {
		return nil, err
	}
	if err := s.requireParticipant(chatUuid, userUuid); err != nil {
		return nil, err
	}
	return s.buildChatRespond(chat, true)
}

// JoinChat adds the user to a group chat. Private chats are closed.
func (s *chatService) JoinChat(chatUuid, userUuid string) error {
	chat, err := s.repos.Chat.FindByUuid(chatUuid)
	if err != nil {
		return err
	}
	if chat.Type != model.ChatTypeGroup {
		return errorx.New(errorx.CodeForbidden, "cannot join a private chat")
	}
	err = s.repos.Participant.Create(&model.ChatParticipant{
		ChatUuid: chatUuid, UserUuid: userUuid,
	})
	if err != nil {
		if repository.IsDuplicateKey(err) {
			return nil // already a member
		}
		return err
	}
	s.invalidateChatLists([]string{userUuid})
	return nil
}

// LeaveChat removes the user from a group chat. Leaving a private chat is
// rejected since it would strand a one-participant "pair".
func (s *chatService) LeaveChat(chatUuid, userUuid string) error {
	chat, err := s.repos.Chat.FindByUuid(chatUuid)
	if err != nil {
		return err
	}
	if chat.Type != model.ChatTypeGroup {
		return errorx.New(errorx.CodeForbidden, "cannot leave a private chat")
	}
	if err := s.requireParticipant(chatUuid, userUuid); err != nil {
		return err
	}
	if err := s.repos.Participant.DeleteByChatAndUser(chatUuid, userUuid); err != nil {
		return err
	}
	s.invalidateChatLists([]string{userUuid})
	return nil
}

// DismissChat deletes a chat entirely; creator only.
func (s *chatService) DismissChat(chatUuid, userUuid string) error {
	chat, err := s.repos.Chat.FindByUuid(chatUuid)
	if err != nil {
		return err
	}
	if chat.CreatorUuid != userUuid {
		return errorx.New(errorx.CodeForbidden, "only the creator can dismiss a chat")
	}

	participants, err := s.repos.Participant.FindByChatUuid(chatUuid)
	if err != nil {
		return err
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Participant.DeleteByChatUuid(chatUuid); err != nil {
			return err
		}
		if err := tx.Avatar.DeleteByChatUuid(chatUuid); err != nil {
			return err
		}
		return tx.Chat.SoftDeleteByUuid(chatUuid)
	})
	if err != nil {
		return err
	}

	userIds := make([]string, 0, len(participants))
	for _, p := range participants {
		userIds = append(userIds, p.UserUuid)
	}
	s.invalidateChatLists(userIds)
	return nil
}

// UploadAvatar stores a chat avatar; chat admins only, images only.
func (s *chatService) UploadAvatar(chatUuid, userUuid string, fh *multipart.FileHeader) error {
	if _, err := s.repos.Chat.FindByUuid(chatUuid); err != nil {
		return err
	}
	if err := s.requireAdmin(chatUuid, userUuid); err != nil {
		return err
	}
	if fh.Size > constants.AVATAR_MAX_SIZE {
		return errorx.Newf(errorx.CodeFileTooLarge, "avatar is %d bytes, limit is %d", fh.Size, constants.AVATAR_MAX_SIZE)
	}

	src, err := fh.Open()
	if err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "open uploaded avatar")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return errorx.Wrap(err, errorx.CodeServerBusy, "read uploaded avatar")
	}

	// Sniff the real content type; the client header is not trusted.
	contentType := http.DetectContentType(data)
	switch contentType {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
	default:
		return errorx.Newf(errorx.CodeUnsupportedFileType, "avatar type %s not allowed", contentType)
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Avatar.Upsert(&model.ChatAvatar{
			ChatUuid: chatUuid,
			Data:     data,
			MimeType: contentType,
			Size:     int64(len(data)),
		}); err != nil {
			return err
		}
		return tx.Chat.UpdateHasAvatar(chatUuid, true)
	})
	return err
}

// GetAvatar returns the stored avatar; participant-only.
func (s *chatService) GetAvatar(chatUuid, userUuid string) (*model.ChatAvatar, error) {
	if err := s.requireParticipant(chatUuid, userUuid); err != nil {
		return nil, err
	}
	return s.repos.Avatar.FindByChatUuid(chatUuid)
}

// DeleteAvatar removes the avatar and clears the mirror flag; admins only.
func (s *chatService) DeleteAvatar(chatUuid, userUuid string) error {
	if err := s.requireAdmin(chatUuid, userUuid); err != nil {
		return err
	}
	return s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Avatar.DeleteByChatUuid(chatUuid); err != nil {
			return err
		}
		return tx.Chat.UpdateHasAvatar(chatUuid, false)
	})
}

func (s *chatService) requireParticipant(chatUuid, userUuid string) error {
	_, err := s.repos.Participant.FindByChatAndUser(chatUuid, userUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeForbidden, "not a participant of this chat")
		}
		return err
	}
	return nil
}

func (s *chatService) requireAdmin(chatUuid, userUuid string) error {
	p, err := s.repos.Participant.FindByChatAndUser(chatUuid, userUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeForbidden, "not a participant of this chat")
		}
		return err
	}
	if !p.IsAdmin {
		return errorx.New(errorx.CodeForbidden, "chat admin required")
	}
	return nil
}

func (s *chatService) buildChatRespond(chat *model.Chat, withParticipants bool) (*respond.ChatRespond, error) {
	rsp := &respond.ChatRespond{
		ChatId:    chat.Uuid,
		Type:      chat.Type,
		Name:      chat.Name,
		CreatorId: chat.CreatorUuid,
		SchoolId:  chat.SchoolUuid,
		HasAvatar: chat.HasAvatar,
	}
	if chat.LastMessageAt.Valid {
		rsp.LastMessageAt = chat.LastMessageAt.Time.Format("2006-01-02 15:04:05")
	}
	if !withParticipants {
		return rsp, nil
	}

	participants, err := s.repos.Participant.FindByChatUuid(chat.Uuid)
	if err != nil {
		return nil, err
	}
	userIds := make([]string, 0, len(participants))
	for _, p := range participants {
		userIds = append(userIds, p.UserUuid)
	}
	users, err := s.repos.User.FindByUuids(userIds)
	if err != nil {
		return nil, err
	}
	byUuid := make(map[string]*model.User, len(users))
	for i := range users {
		byUuid[users[i].Uuid] = &users[i]
	}

	rsp.Participants = make([]respond.ParticipantRespond, 0, len(participants))
	for _, p := range participants {
		pr := respond.ParticipantRespond{UserId: p.UserUuid, IsAdmin: p.IsAdmin}
		if u, ok := byUuid[p.UserUuid]; ok {
			pr.Name = u.Name
			pr.Avatar = u.Avatar
		}
		rsp.Participants = append(rsp.Participants, pr)
	}
	return rsp, nil
}

func (s *chatService) invalidateChatLists(userIds []string) {
	myredis.SubmitCacheTask(func() {
		for _, uuid := range userIds {
			if err := myredis.DelKeyIfExists(context.Background(), chatListCacheKey(uuid)); err != nil {
				zap.L().Error("redis del chat list error", zap.Error(err))
			}
		}
	})
}

// dedupeExcluding returns ids without duplicates and without exclude.
func dedupeExcluding(ids []string, exclude string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == exclude || id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
