// Package role implements the role/permission view over the user_role
// relation. Roles are set-valued from the start; there is no single-role
// column to fall back on.
package role

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"school_hub_server/internal/dao/mysql/repository"
	myredis "school_hub_server/internal/dao/redis"
	"school_hub_server/internal/dto/request"
	"school_hub_server/internal/model"
	"school_hub_server/pkg/constants"
	"school_hub_server/pkg/errorx"
)

type roleService struct {
	repos *repository.Repositories
}

// NewRoleService constructs the role service.
func NewRoleService(repos *repository.Repositories) *roleService {
	return &roleService{repos: repos}
}

func roleCacheKey(userUuid string) string {
	return "user_roles_" + userUuid
}

// GetUserRoles returns the deduplicated role names assigned to the user,
// cache-first.
func (s *roleService) GetUserRoles(userUuid string) ([]string, error) {
	cacheKey := roleCacheKey(userUuid)
	cached, err := myredis.GetKeyNilIsErr(context.Background(), cacheKey)
	if err == nil {
		var roles []string
		if err := json.Unmarshal([]byte(cached), &roles); err == nil {
			return roles, nil
		}
		zap.L().Error("json unmarshal role cache error", zap.Error(err))
	} else if !errorx.IsNotFound(err) {
		zap.L().Error("redis get role set error", zap.Error(err))
	}

	roles, err := s.repos.Role.DistinctRoleNames(userUuid)
	if err != nil {
		return nil, err
	}

	myredis.SubmitCacheTask(func() {
		jsonBytes, err := json.Marshal(roles)
		if err != nil {
			zap.L().Error("json marshal role set error", zap.Error(err))
			return
		}
		if err := myredis.SetKeyEx(context.Background(), cacheKey, string(jsonBytes),
			time.Duration(constants.REDIS_TIMEOUT)*time.Minute); err != nil {
			zap.L().Error("redis set role set error", zap.Error(err))
		}
	})

	return roles, nil
}

// UserHasAnyRole reports whether the user holds at least one of the
// candidate roles.
func (s *roleService) UserHasAnyRole(userUuid string, candidates ...string) (bool, error) {
	roles, err := s.GetUserRoles(userUuid)
	if err != nil {
		return false, err
	}
	for _, have := range roles {
		for _, want := range candidates {
			if have == want {
				return true, nil
			}
		}
	}
	return false, nil
}

// AssignRole grants a role assignment. When the user had no active role yet,
// the new role becomes active so the invariant "active role is one of the
// assigned roles" holds from the first assignment on.
func (s *roleService) AssignRole(userUuid string, req request.AssignRoleRequest) error {
	user, err := s.repos.User.FindByUuid(userUuid)
	if err != nil {
		return err
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Role.Create(&model.UserRole{
			UserUuid:   userUuid,
			Role:       req.Role,
			SchoolUuid: req.SchoolId,
			ClassUuid:  req.ClassId,
		}); err != nil {
			return err
		}
		if user.ActiveRole == "" {
			return tx.User.UpdateActiveRole(userUuid, req.Role)
		}
		return nil
	})
	if err != nil {
		if repository.IsDuplicateKey(err) {
			// Same scoped assignment already present; nothing to change.
			return nil
		}
		return err
	}

	s.invalidateRoleCache(userUuid)
	return nil
}

// RevokeRole removes every assignment of the named role. When the revoked
// role was active, the active role is demoted to any remaining role, or
// cleared when none are left.
func (s *roleService) RevokeRole(userUuid, role string) error {
	if !model.IsKnownRole(role) {
		return errorx.Newf(errorx.CodeInvalidParam, "unknown role %q", role)
	}
	user, err := s.repos.User.FindByUuid(userUuid)
	if err != nil {
		return err
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Role.DeleteByUserAndRole(userUuid, role); err != nil {
			return err
		}
		if user.ActiveRole != role {
			return nil
		}
		remaining, err := tx.Role.DistinctRoleNames(userUuid)
		if err != nil {
			return err
		}
		next := ""
		if len(remaining) > 0 {
			next = remaining[0]
		}
		return tx.User.UpdateActiveRole(userUuid, next)
	})
	if err != nil {
		return err
	}

	s.invalidateRoleCache(userUuid)
	return nil
}

// SetActiveRole switches which assigned role the session presents. Rejected
// when the role is not in the user's assigned set.
func (s *roleService) SetActiveRole(userUuid, role string) error {
	has, err := s.UserHasAnyRole(userUuid, role)
	if err != nil {
		return err
	}
	if !has {
		return errorx.Newf(errorx.CodeInvalidParam, "role %q is not assigned to this user", role)
	}
	return s.repos.User.UpdateActiveRole(userUuid, role)
}

// RemoveAllRoles drops every role assignment of a user, regardless of scope.
// Used when an account is deleted.
func (s *roleService) RemoveAllRoles(userUuid string) error {
	if err := s.repos.Role.DeleteByUserUuid(userUuid); err != nil {
		return err
	}
	s.invalidateRoleCache(userUuid)
	return nil
}

func (s *roleService) invalidateRoleCache(userUuid string) {
	myredis.SubmitCacheTask(func() {
		if err := myredis.DelKeyIfExists(context.Background(), roleCacheKey(userUuid)); err != nil {
			zap.L().Error("redis del role cache error", zap.Error(err))
		}
	})
}
