package handler

import (
	"github.com/gin-gonic/gin"

	"school_hub_server/internal/dto/request"
	"school_hub_server/internal/model"
	"school_hub_server/internal/service"
	"school_hub_server/pkg/errorx"
)

// UserHandler handles profiles and the admin account surface, including
// role assignment.
type UserHandler struct {
	userSvc service.UserService
	roleSvc service.RoleService
}

// NewUserHandler creates the user handler.
func NewUserHandler(userSvc service.UserService, roleSvc service.RoleService) *UserHandler {
	return &UserHandler{userSvc: userSvc, roleSvc: roleSvc}
}

// GetMe returns the caller's profile.
// GET /api/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	data, err := h.userSvc.GetUserInfo(c.GetString(currentUserKey))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateMe edits the caller's profile.
// PUT /api/users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req request.UpdateUserInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.userSvc.UpdateUserInfo(c.GetString(currentUserKey), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetUser returns one user by id.
// GET /api/users/:userId
func (h *UserHandler) GetUser(c *gin.Context) {
	data, err := h.userSvc.GetUserInfo(c.Param("userId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetUserList pages through accounts for the admin screen.
// GET /api/users
func (h *UserHandler) GetUserList(c *gin.Context) {
	var req request.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.requireAdmin(c); err != nil {
		HandleError(c, err)
		return
	}
	data, err := h.userSvc.GetUserList(req.Page, req.PageSize)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// SetUserStatus enables or disables accounts.
// PUT /api/users/status
func (h *UserHandler) SetUserStatus(c *gin.Context) {
	var req request.SetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.requireAdmin(c); err != nil {
		HandleError(c, err)
		return
	}
	if err := h.userSvc.SetUserStatus(req.UserIds, req.Status); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteUser retires an account, admin only. Deleting yourself is rejected
// so the last admin cannot lock everyone out by accident.
// DELETE /api/users/:userId
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.requireAdmin(c); err != nil {
		HandleError(c, err)
		return
	}
	userId := c.Param("userId")
	if userId == c.GetString(currentUserKey) {
		HandleError(c, errorx.New(errorx.CodeInvalidParam, "cannot delete your own account"))
		return
	}
	if err := h.userSvc.DeleteUser(userId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetUserRoles returns the role set of one user.
// GET /api/users/:userId/roles
func (h *UserHandler) GetUserRoles(c *gin.Context) {
	roles, err := h.roleSvc.GetUserRoles(c.Param("userId"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"roles": roles})
}

// AssignRole grants a role to a user, admin only.
// POST /api/users/:userId/roles
func (h *UserHandler) AssignRole(c *gin.Context) {
	var req request.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.requireAdmin(c); err != nil {
		HandleError(c, err)
		return
	}
	if err := h.roleSvc.AssignRole(c.Param("userId"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, nil)
}

// RevokeRole removes every assignment of one role, admin only.
// DELETE /api/users/:userId/roles/:role
func (h *UserHandler) RevokeRole(c *gin.Context) {
	if err := h.requireAdmin(c); err != nil {
		HandleError(c, err)
		return
	}
	if err := h.roleSvc.RevokeRole(c.Param("userId"), c.Param("role")); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// SetActiveRole switches which assigned role the caller presents.
// PUT /api/users/me/active-role
func (h *UserHandler) SetActiveRole(c *gin.Context) {
	var req request.SetActiveRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.roleSvc.SetActiveRole(c.GetString(currentUserKey), req.Role); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

func (h *UserHandler) requireAdmin(c *gin.Context) error {
	ok, err := h.roleSvc.UserHasAnyRole(c.GetString(currentUserKey), model.RoleAdmin)
	if err != nil {
		return err
	}
	if !ok {
		return errorx.ErrForbidden
	}
	return nil
}
