package role

import (
	"testing"

	"gorm.io/gorm"

	"school_hub_server/internal/dao/mysql/repository"
	"school_hub_server/internal/dto/request"
	"school_hub_server/internal/model"
	"school_hub_server/pkg/errorx"
)

// stubUserRepo holds one user and records active-role updates.
type stubUserRepo struct {
	user       *model.User
	activeRole []string
}

func (r *stubUserRepo) FindByUuid(uuid string) (*model.User, error) {
	if r.user == nil || r.user.Uuid != uuid {
		return nil, errorx.Newf(errorx.CodeNotFound, "user %s not found", uuid)
	}
	return r.user, nil
}
func (r *stubUserRepo) FindByEmail(email string) (*model.User, error) {
	return nil, errorx.New(errorx.CodeNotFound, "no such user")
}
func (r *stubUserRepo) FindByUuids(uuids []string) ([]model.User, error) { return nil, nil }
func (r *stubUserRepo) GetUserList(page, pageSize int) ([]model.User, int64, error) {
	return nil, 0, nil
}
func (r *stubUserRepo) Create(user *model.User) error { return nil }
func (r *stubUserRepo) Update(user *model.User) error { return nil }
func (r *stubUserRepo) UpdateActiveRole(uuid, activeRole string) error {
	r.activeRole = append(r.activeRole, activeRole)
	r.user.ActiveRole = activeRole
	return nil
}
func (r *stubUserRepo) UpdateStatusByUuids(uuids []string, status int8) error { return nil }
func (r *stubUserRepo) SoftDeleteByUuids(uuids []string) error                { return nil }

// stubRoleRepo keeps assignments in order and can simulate the unique index.
type stubRoleRepo struct {
	roles     []string
	createErr error
}

func (r *stubRoleRepo) FindByUserUuid(userUuid string) ([]model.UserRole, error) {
	return nil, nil
}
func (r *stubRoleRepo) DistinctRoleNames(userUuid string) ([]string, error) {
	seen := make(map[string]bool, len(r.roles))
	names := make([]string, 0, len(r.roles))
	for _, role := range r.roles {
		if !seen[role] {
			seen[role] = true
			names = append(names, role)
		}
	}
	return names, nil
}
func (r *stubRoleRepo) Create(role *model.UserRole) error {
	if r.createErr != nil {
		return r.createErr
	}
	// The scope unique index only sees live rows; deletes are hard deletes,
	// so a revoked role never blocks its own re-assignment.
	for _, have := range r.roles {
		if have == role.Role {
			return gorm.ErrDuplicatedKey
		}
	}
	r.roles = append(r.roles, role.Role)
	return nil
}
func (r *stubRoleRepo) DeleteByUserAndRole(userUuid, role string) error {
	kept := r.roles[:0]
	for _, have := range r.roles {
		if have != role {
			kept = append(kept, have)
		}
	}
	r.roles = kept
	return nil
}
func (r *stubRoleRepo) DeleteByUserUuid(userUuid string) error {
	r.roles = nil
	return nil
}

func newTestRoleService(user *model.User, roles ...string) (*roleService, *stubUserRepo, *stubRoleRepo) {
	userRepo := &stubUserRepo{user: user}
	roleRepo := &stubRoleRepo{roles: roles}
	repos := &repository.Repositories{User: userRepo, Role: roleRepo}
	return NewRoleService(repos), userRepo, roleRepo
}

func TestAssignFirstRoleBecomesActive(t *testing.T) {
	user := &model.User{Uuid: "U1"}
	svc, userRepo, _ := newTestRoleService(user)

	if err := svc.AssignRole("U1", request.AssignRoleRequest{Role: model.RoleTeacher}); err != nil {
		t.Fatalf("AssignRole: %v", err)
	}
	if len(userRepo.activeRole) != 1 || userRepo.activeRole[0] != model.RoleTeacher {
		t.Fatalf("active role updates = %v, want the first assigned role", userRepo.activeRole)
	}
}

func TestAssignSecondRoleKeepsActive(t *testing.T) {
	user := &model.User{Uuid: "U1", ActiveRole: model.RoleTeacher}
	svc, userRepo, _ := newTestRoleService(user, model.RoleTeacher)

	if err := svc.AssignRole("U1", request.AssignRoleRequest{Role: model.RoleParent}); err != nil {
		t.Fatalf("AssignRole: %v", err)
	}
	if len(userRepo.activeRole) != 0 {
		t.Fatalf("active role must not change on a later assignment: %v", userRepo.activeRole)
	}
}

func TestAssignDuplicateRoleIsNoOp(t *testing.T) {
	user := &model.User{Uuid: "U1", ActiveRole: model.RoleTeacher}
	svc, _, roleRepo := newTestRoleService(user, model.RoleTeacher)
	roleRepo.createErr = gorm.ErrDuplicatedKey

	if err := svc.AssignRole("U1", request.AssignRoleRequest{Role: model.RoleTeacher}); err != nil {
		t.Fatalf("duplicate assignment should be silent, got %v", err)
	}
}

func TestRevokeThenReassignRestoresRole(t *testing.T) {
	user := &model.User{Uuid: "U1", ActiveRole: model.RoleTeacher}
	svc, _, roleRepo := newTestRoleService(user, model.RoleTeacher)

	if err := svc.RevokeRole("U1", model.RoleTeacher); err != nil {
		t.Fatalf("RevokeRole: %v", err)
	}
	if err := svc.AssignRole("U1", request.AssignRoleRequest{Role: model.RoleTeacher}); err != nil {
		t.Fatalf("re-assign after revoke: %v", err)
	}
	names, err := roleRepo.DistinctRoleNames("U1")
	if err != nil {
		t.Fatalf("DistinctRoleNames: %v", err)
	}
	if len(names) != 1 || names[0] != model.RoleTeacher {
		t.Fatalf("after re-assign, role set = %v, want [teacher]", names)
	}
	if user.ActiveRole != model.RoleTeacher {
		t.Fatalf("active role after re-assign = %q, want teacher", user.ActiveRole)
	}
}

func TestRevokeActiveRoleDemotes(t *testing.T) {
	user := &model.User{Uuid: "U1", ActiveRole: model.RoleTeacher}
	svc, userRepo, _ := newTestRoleService(user, model.RoleTeacher, model.RoleParent)

	if err := svc.RevokeRole("U1", model.RoleTeacher); err != nil {
		t.Fatalf("RevokeRole: %v", err)
	}
	if user.ActiveRole != model.RoleParent {
		t.Fatalf("active role after demotion = %q, want parent", user.ActiveRole)
	}
	if len(userRepo.activeRole) != 1 {
		t.Fatalf("expected exactly one active-role update, got %v", userRepo.activeRole)
	}
}

func TestRevokeLastRoleClearsActive(t *testing.T) {
	user := &model.User{Uuid: "U1", ActiveRole: model.RoleStudent}
	svc, _, _ := newTestRoleService(user, model.RoleStudent)

	if err := svc.RevokeRole("U1", model.RoleStudent); err != nil {
		t.Fatalf("RevokeRole: %v", err)
	}
	if user.ActiveRole != "" {
		t.Fatalf("active role = %q, want cleared", user.ActiveRole)
	}
}

func TestRevokeInactiveRoleLeavesActiveAlone(t *testing.T) {
	user := &model.User{Uuid: "U1", ActiveRole: model.RoleTeacher}
	svc, userRepo, _ := newTestRoleService(user, model.RoleTeacher, model.RoleParent)

	if err := svc.RevokeRole("U1", model.RoleParent); err != nil {
		t.Fatalf("RevokeRole: %v", err)
	}
	if len(userRepo.activeRole) != 0 {
		t.Fatalf("active role must not change: %v", userRepo.activeRole)
	}
}

func TestRevokeUnknownRole(t *testing.T) {
	svc, _, _ := newTestRoleService(&model.User{Uuid: "U1"})
	if err := svc.RevokeRole("U1", "principal"); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("expected invalid-param for an unknown role, got %v", err)
	}
}

func TestRemoveAllRolesEmptiesSet(t *testing.T) {
	user := &model.User{Uuid: "U1", ActiveRole: model.RoleTeacher}
	svc, _, roleRepo := newTestRoleService(user, model.RoleTeacher, model.RoleParent)

	if err := svc.RemoveAllRoles("U1"); err != nil {
		t.Fatalf("RemoveAllRoles: %v", err)
	}
	names, err := roleRepo.DistinctRoleNames("U1")
	if err != nil {
		t.Fatalf("DistinctRoleNames: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("role set after removal = %v, want empty", names)
	}
}

func TestSetActiveRoleRejectsUnassigned(t *testing.T) {
	user := &model.User{Uuid: "U1", ActiveRole: model.RoleStudent}
	svc, _, _ := newTestRoleService(user, model.RoleStudent)

	if err := svc.SetActiveRole("U1", model.RoleAdmin); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("expected invalid-param for an unassigned role, got %v", err)
	}
	if err := svc.SetActiveRole("U1", model.RoleStudent); err != nil {
		t.Fatalf("SetActiveRole with an assigned role: %v", err)
	}
}
