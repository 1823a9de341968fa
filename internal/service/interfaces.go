// Package service defines the business-logic interfaces and their
// aggregation. Implementations live in the per-domain subpackages.
package service

import (
	"mime/multipart"
	"time"

	"school_hub_server/internal/dto/request"
	"school_hub_server/internal/dto/respond"
	"school_hub_server/internal/model"
)

// AuthService handles registration, login and token refresh.
type AuthService interface {
	Register(req request.RegisterRequest) (*respond.LoginRespond, error)
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	Refresh(req request.RefreshTokenRequest) (*respond.LoginRespond, error)
}

// UserService handles profiles and admin account management.
type UserService interface {
	GetUserInfo(uuid string) (*respond.GetUserInfoRespond, error)
	UpdateUserInfo(uuid string, req request.UpdateUserInfoRequest) error
	GetUserList(page, pageSize int) (*respond.GetUserListRespond, error)
	SetUserStatus(uuids []string, status int8) error
	DeleteUser(uuid string) error
}

// RoleService derives the role view from the user_role relation. Roles are
// purely set-valued: there is no legacy single-role fallback.
type RoleService interface {
	GetUserRoles(userUuid string) ([]string, error)
	UserHasAnyRole(userUuid string, candidates ...string) (bool, error)
	AssignRole(userUuid string, req request.AssignRoleRequest) error
	RevokeRole(userUuid, role string) error
	SetActiveRole(userUuid, role string) error
	// RemoveAllRoles drops every assignment of a user; used on account
	// deletion.
	RemoveAllRoles(userUuid string) error
}

// ChatService owns chat identity, membership and avatars.
type ChatService interface {
	// FindPrivateChatBetweenUsers is symmetric in its arguments and matches
	// only two-party private chats.
	FindPrivateChatBetweenUsers(userA, userB string) (*respond.ChatRespond, error)
	CreateChat(creatorUuid string, req request.CreateChatRequest) (*respond.ChatRespond, error)
	GetChatList(userUuid string) ([]respond.ChatRespond, error)
	GetChat(chatUuid, userUuid string) (*respond.ChatRespond, error)
	JoinChat(chatUuid, userUuid string) error
	LeaveChat(chatUuid, userUuid string) error
	DismissChat(chatUuid, userUuid string) error
	UploadAvatar(chatUuid, userUuid string, fh *multipart.FileHeader) error
	GetAvatar(chatUuid, userUuid string) (*model.ChatAvatar, error)
	DeleteAvatar(chatUuid, userUuid string) error
}

// MessageService owns message validation, persistence and attachments.
type MessageService interface {
	SendMessage(chatUuid, senderUuid string, req request.SendMessageRequest) (*respond.MessageRespond, error)
	GetMessageList(chatUuid, userUuid string) ([]respond.MessageRespond, error)
	DeleteMessage(messageUuid, userUuid string) error
	UploadFile(chatUuid, userUuid string, fh *multipart.FileHeader) (*respond.UploadFileRespond, error)
	// ReadFile decrypts a stored attachment and returns its bytes plus the
	// sniffed content type.
	ReadFile(filename string) ([]byte, string, error)
}

// PeriodService resolves grading period boundaries for classes.
type PeriodService interface {
	GetPeriods(classUuid string, now time.Time) (*respond.GetPeriodsRespond, error)
	PutPeriods(classUuid string, req request.PutPeriodsRequest) error
}

// CatalogService is CRUD over schools, classes and subjects.
type CatalogService interface {
	CreateSchool(req request.CreateSchoolRequest) (*respond.SchoolRespond, error)
	UpdateSchool(uuid string, req request.UpdateSchoolRequest) error
	GetSchool(uuid string) (*respond.SchoolRespond, error)
	GetSchoolList(page, pageSize int) (*respond.GetSchoolListRespond, error)
	DeleteSchool(uuid string) error

	CreateClass(req request.CreateClassRequest) (*respond.ClassRespond, error)
	UpdateClass(uuid string, req request.UpdateClassRequest) error
	GetClass(uuid string) (*respond.ClassRespond, error)
	GetClassesBySchool(schoolUuid string) ([]respond.ClassRespond, error)
	DeleteClass(uuid string) error

	CreateSubject(req request.CreateSubjectRequest) (*respond.SubjectRespond, error)
	UpdateSubject(uuid string, req request.UpdateSubjectRequest) error
	GetSubjectsBySchool(schoolUuid string) ([]respond.SubjectRespond, error)
	DeleteSubject(uuid string) error
}
