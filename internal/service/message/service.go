// Package message implements message validation, persistence, attachments
// and live fan-out.
package message

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"school_hub_server/internal/config"
	"school_hub_server/internal/dao/mysql/repository"
	myredis "school_hub_server/internal/dao/redis"
	"school_hub_server/internal/dto/request"
	"school_hub_server/internal/dto/respond"
	"school_hub_server/internal/model"
	"school_hub_server/pkg/constants"
	"school_hub_server/pkg/errorx"
	"school_hub_server/pkg/filecrypt"
	"school_hub_server/pkg/util/random"
)

// Publisher pushes a sent message to online recipients. The websocket
// gateway implements it; the dependency points this way so this package
// never imports the gateway.
type Publisher interface {
	PublishToUsers(userIds []string, payload []byte)
}

var publisher Publisher

// SetPublisher wires the live-delivery implementation. Called once from
// main; a nil publisher simply disables fan-out.
func SetPublisher(p Publisher) {
	publisher = p
}

type messageService struct {
	repos *repository.Repositories
}

// NewMessageService constructs the message service.
func NewMessageService(repos *repository.Repositories) *messageService {
	return &messageService{repos: repos}
}

func messageListCacheKey(chatUuid string) string {
	return "message_list_" + chatUuid
}

// SendMessage validates and persists a message, bumps the chat's activity
// timestamp and fans the message out to online participants.
func (m *messageService) SendMessage(chatUuid, senderUuid string, req request.SendMessageRequest) (*respond.MessageRespond, error) {
	if _, err := m.repos.Chat.FindByUuid(chatUuid); err != nil {
		return nil, err
	}
	if err := m.requireParticipant(chatUuid, senderUuid); err != nil {
		return nil, err
	}

	hasAttachment := req.AttachmentUrl != ""
	if strings.TrimSpace(req.Content) == "" && !hasAttachment {
		return nil, errorx.New(errorx.CodeInvalidParam, "a message needs text content or an attachment")
	}
	if hasAttachment && req.AttachmentType == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "attachmentType is required with an attachment")
	}

	msg := &model.Message{
		Uuid:           "M" + random.GetNowAndLenRandomString(11),
		ChatUuid:       chatUuid,
		SenderUuid:     senderUuid,
		Content:        req.Content,
		HasAttachment:  hasAttachment,
		AttachmentType: req.AttachmentType,
		AttachmentUrl:  req.AttachmentUrl,
		AttachmentName: req.AttachmentName,
		AttachmentSize: req.AttachmentSize,
	}

	if req.ReplyToMessageId != "" {
		target, err := m.repos.Message.FindByUuid(req.ReplyToMessageId)
		if err != nil {
			if errorx.IsNotFound(err) {
				return nil, errorx.Newf(errorx.CodeInvalidParam, "replied-to message %s not found", req.ReplyToMessageId)
			}
			return nil, err
		}
		if target.ChatUuid != chatUuid {
			return nil, errorx.New(errorx.CodeInvalidParam, "cannot reply to a message from another chat")
		}
		msg.ReplyToUuid = sql.NullString{String: target.Uuid, Valid: true}
	}

	err := m.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Message.Create(msg); err != nil {
			return err
		}
		return tx.Chat.TouchLastMessage(chatUuid)
	})
	if err != nil {
		return nil, err
	}

	m.invalidateMessageCache(chatUuid)
	rsp := toMessageRespond(msg)
	m.fanOut(chatUuid, senderUuid, &rsp)
	return &rsp, nil
}

// GetMessageList returns a chat's messages in send order; participant-only,
// cache-first.
func (m *messageService) GetMessageList(chatUuid, userUuid string) ([]respond.MessageRespond, error) {
	if err := m.requireParticipant(chatUuid, userUuid); err != nil {
		return nil, err
	}

	cacheKey := messageListCacheKey(chatUuid)
	cached, err := myredis.GetKeyNilIsErr(context.Background(), cacheKey)
	if err == nil {
		var rsp []respond.MessageRespond
		if err := json.Unmarshal([]byte(cached), &rsp); err == nil {
			return rsp, nil
		}
		zap.L().Error("json unmarshal message cache error", zap.Error(err))
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("redis get message list error", zap.Error(err))
	}

	messages, err := m.repos.Message.FindByChatUuid(chatUuid)
	if err != nil {
		return nil, err
	}
	rspList := make([]respond.MessageRespond, 0, len(messages))
	for i := range messages {
		rspList = append(rspList, toMessageRespond(&messages[i]))
	}

	myredis.SubmitCacheTask(func() {
		jsonBytes, err := json.Marshal(rspList)
		if err != nil {
			zap.L().Error("json marshal message list error", zap.Error(err))
			return
		}
		if err := myredis.SetKeyEx(context.Background(), cacheKey, string(jsonBytes),
			time.Duration(constants.REDIS_TIMEOUT)*time.Minute); err != nil {
			zap.L().Error("redis set message list error", zap.Error(err))
		}
	})

	return rspList, nil
}

// DeleteMessage removes the sender's own message. Replies to it survive with
// their link nulled.
func (m *messageService) DeleteMessage(messageUuid, userUuid string) error {
	msg, err := m.repos.Message.FindByUuid(messageUuid)
	if err != nil {
		return err
	}
	if msg.SenderUuid != userUuid {
		return errorx.New(errorx.CodeForbidden, "only the sender can delete a message")
	}
	if err := m.repos.Message.DeleteAndUnlinkReplies(messageUuid); err != nil {
		return err
	}
	m.invalidateMessageCache(msg.ChatUuid)
	return nil
}

// UploadFile stores one attachment for a chat: participant check, MIME
// allow-list against sniffed bytes, size ceiling, then AES-GCM encryption
// at rest.
func (m *messageService) UploadFile(chatUuid, userUuid string, fh *multipart.FileHeader) (*respond.UploadFileRespond, error) {
	if _, err := m.repos.Chat.FindByUuid(chatUuid); err != nil {
		return nil, err
	}
	if err := m.requireParticipant(chatUuid, userUuid); err != nil {
		return nil, err
	}

	src, err := fh.Open()
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "open uploaded file")
	}
	defer src.Close()

	// Sniff the first 512 bytes; the client-supplied header is not trusted.
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "read uploaded file")
	}
	mimeType := resolveMime(http.DetectContentType(head[:n]), fh.Filename)

	category, err := CheckAttachment(mimeType, fh.Size)
	if err != nil {
		return nil, err
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "rewind uploaded file")
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "read uploaded file")
	}

	conf := config.GetConfig()
	key := filecrypt.KeyFromSecret(conf.UploadConfig.FileSecret)
	encrypted, err := filecrypt.Encrypt(data, key)
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "encrypt uploaded file")
	}

	storedName := random.GetNowAndLenRandomString(10) + ".bin"
	dst := filepath.Join(conf.StaticSrcConfig.StaticFilePath, storedName)
	if err := os.WriteFile(dst, encrypted, 0o644); err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "store uploaded file")
	}

	zap.L().Info("upload file success",
		zap.String("chat", chatUuid),
		zap.String("filename", storedName),
		zap.String("mimetype", mimeType),
		zap.Int64("size", fh.Size),
	)

	return &respond.UploadFileRespond{
		Success: true,
		File: respond.UploadedFileInfo{
			Filename:     storedName,
			Originalname: fh.Filename,
			Mimetype:     mimeType,
			Size:         fh.Size,
			Url:          "/api/files/" + storedName,
			Type:         category,
			IsEncrypted:  true,
		},
	}, nil
}

// ReadFile loads and decrypts a stored attachment.
func (m *messageService) ReadFile(filename string) ([]byte, string, error) {
	conf := config.GetConfig()
	// Base strips any path traversal attempt from the url parameter.
	path := filepath.Join(conf.StaticSrcConfig.StaticFilePath, filepath.Base(filename))

	encrypted, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", errorx.Newf(errorx.CodeNotFound, "file %s not found", filename)
		}
		return nil, "", errorx.Wrap(err, errorx.CodeServerBusy, "read stored file")
	}

	key := filecrypt.KeyFromSecret(conf.UploadConfig.FileSecret)
	data, err := filecrypt.Decrypt(encrypted, key)
	if err != nil {
		return nil, "", errorx.Wrap(err, errorx.CodeServerBusy, "decrypt stored file")
	}
	return data, http.DetectContentType(data), nil
}

func (m *messageService) requireParticipant(chatUuid, userUuid string) error {
	_, err := m.repos.Participant.FindByChatAndUser(chatUuid, userUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeForbidden, "not a participant of this chat")
		}
		return err
	}
	return nil
}

func (m *messageService) fanOut(chatUuid, senderUuid string, rsp *respond.MessageRespond) {
	if publisher == nil {
		return
	}
	participants, err := m.repos.Participant.FindByChatUuid(chatUuid)
	if err != nil {
		zap.L().Error("load participants for fan-out error", zap.Error(err))
		return
	}
	recipients := make([]string, 0, len(participants))
	for _, p := range participants {
		if p.UserUuid != senderUuid {
			recipients = append(recipients, p.UserUuid)
		}
	}
	payload, err := json.Marshal(rsp)
	if err != nil {
		zap.L().Error("marshal fan-out payload error", zap.Error(err))
		return
	}
	publisher.PublishToUsers(recipients, payload)
}

func (m *messageService) invalidateMessageCache(chatUuid string) {
	myredis.SubmitCacheTask(func() {
		if err := myredis.DelKeyIfExists(context.Background(), messageListCacheKey(chatUuid)); err != nil {
			zap.L().Error("redis del message cache error", zap.Error(err))
		}
	})
}

func toMessageRespond(msg *model.Message) respond.MessageRespond {
	rsp := respond.MessageRespond{
		MessageId:      msg.Uuid,
		ChatId:         msg.ChatUuid,
		SenderId:       msg.SenderUuid,
		Content:        msg.Content,
		HasAttachment:  msg.HasAttachment,
		AttachmentType: msg.AttachmentType,
		AttachmentUrl:  msg.AttachmentUrl,
		AttachmentName: msg.AttachmentName,
		AttachmentSize: msg.AttachmentSize,
		CreatedAt:      msg.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if msg.ReplyToUuid.Valid {
		rsp.ReplyToMessageId = msg.ReplyToUuid.String
	}
	return rsp
}
