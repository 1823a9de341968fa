// Package user implements profile and admin account management.
package user

import (
	"school_hub_server/internal/dao/mysql/repository"
	"school_hub_server/internal/dto/request"
	"school_hub_server/internal/dto/respond"
	"school_hub_server/internal/model"
)

// RoleView is the slice of the role service this package needs.
type RoleView interface {
	GetUserRoles(userUuid string) ([]string, error)
	RemoveAllRoles(userUuid string) error
}

type userService struct {
	repos *repository.Repositories
	roles RoleView
}

// NewUserService constructs the user service.
func NewUserService(repos *repository.Repositories, roles RoleView) *userService {
	return &userService{repos: repos, roles: roles}
}

func (s *userService) GetUserInfo(uuid string) (*respond.GetUserInfoRespond, error) {
	user, err := s.repos.User.FindByUuid(uuid)
	if err != nil {
		return nil, err
	}
	roles, err := s.roles.GetUserRoles(uuid)
	if err != nil {
		return nil, err
	}
	rsp := toUserRespond(user)
	rsp.Roles = roles
	return &rsp, nil
}

func (s *userService) UpdateUserInfo(uuid string, req request.UpdateUserInfoRequest) error {
	user, err := s.repos.User.FindByUuid(uuid)
	if err != nil {
		return err
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	return s.repos.User.Update(user)
}

func (s *userService) GetUserList(page, pageSize int) (*respond.GetUserListRespond, error) {
	users, total, err := s.repos.User.GetUserList(page, pageSize)
	if err != nil {
		return nil, err
	}
	rsp := &respond.GetUserListRespond{Total: total, Users: make([]respond.GetUserInfoRespond, 0, len(users))}
	for i := range users {
		rsp.Users = append(rsp.Users, toUserRespond(&users[i]))
	}
	return rsp, nil
}

func (s *userService) SetUserStatus(uuids []string, status int8) error {
	return s.repos.User.UpdateStatusByUuids(uuids, status)
}

// DeleteUser retires an account: every role assignment is dropped and the
// user row is soft-deleted with its email released for re-registration.
func (s *userService) DeleteUser(uuid string) error {
	if _, err := s.repos.User.FindByUuid(uuid); err != nil {
		return err
	}
	if err := s.roles.RemoveAllRoles(uuid); err != nil {
		return err
	}
	return s.repos.User.SoftDeleteByUuids([]string{uuid})
}

func toUserRespond(user *model.User) respond.GetUserInfoRespond {
	return respond.GetUserInfoRespond{
		UserId:     user.Uuid,
		Name:       user.Name,
		Email:      user.Email,
		Avatar:     user.Avatar,
		ActiveRole: user.ActiveRole,
		Status:     user.Status,
		CreatedAt:  user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
