package request

// UpdateUserInfoRequest updates the caller's profile.
type UpdateUserInfoRequest struct {
	Name   string `json:"name" binding:"omitempty,max=50"`
	Avatar string `json:"avatar" binding:"omitempty,max=255"`
}

// SetUserStatusRequest enables or disables a batch of accounts.
type SetUserStatusRequest struct {
	UserIds []string `json:"userIds" binding:"required,min=1"`
	Status  int8     `json:"status" binding:"oneof=0 1"`
}

// ListRequest is the shared pagination query.
type ListRequest struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize,default=20" binding:"omitempty,min=1,max=100"`
}

// AssignRoleRequest grants a role, optionally scoped to a school or class.
type AssignRoleRequest struct {
	Role       string `json:"role" binding:"required,rolename"`
	SchoolId   string `json:"schoolId" binding:"omitempty,max=20"`
	ClassId    string `json:"classId" binding:"omitempty,max=20"`
}

// SetActiveRoleRequest switches the role the session presents. The role
// service rejects roles not in the caller's assigned set.
type SetActiveRoleRequest struct {
	Role string `json:"role" binding:"required,rolename"`
}
