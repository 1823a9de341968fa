package user

import (
	"testing"

	"school_hub_server/internal/dao/mysql/repository"
	"school_hub_server/internal/model"
	"school_hub_server/pkg/errorx"
)

// stubUserRepo holds one account and records deletions.
type stubUserRepo struct {
	user    *model.User
	deleted []string
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
func (r *stubUserRepo) Create(user *model.User) error                         { return nil }
func (r *stubUserRepo) Update(user *model.User) error                         { return nil }
func (r *stubUserRepo) UpdateActiveRole(uuid, activeRole string) error        { return nil }
func (r *stubUserRepo) UpdateStatusByUuids(uuids []string, status int8) error { return nil }
func (r *stubUserRepo) SoftDeleteByUuids(uuids []string) error {
	r.deleted = append(r.deleted, uuids...)
	return nil
}

// stubRoleView records which users had their role sets dropped.
type stubRoleView struct {
	dropped []string
}

func (v *stubRoleView) GetUserRoles(userUuid string) ([]string, error) { return nil, nil }
func (v *stubRoleView) RemoveAllRoles(userUuid string) error {
	v.dropped = append(v.dropped, userUuid)
	return nil
}

func TestDeleteUserDropsRolesAndAccount(t *testing.T) {
	userRepo := &stubUserRepo{user: &model.User{Uuid: "U1", Email: "u1@example.com"}}
	roles := &stubRoleView{}
	svc := NewUserService(&repository.Repositories{User: userRepo}, roles)

	if err := svc.DeleteUser("U1"); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
	if len(roles.dropped) != 1 || roles.dropped[0] != "U1" {
		t.Fatalf("role sets dropped = %v, want [U1]", roles.dropped)
	}
	if len(userRepo.deleted) != 1 || userRepo.deleted[0] != "U1" {
		t.Fatalf("accounts deleted = %v, want [U1]", userRepo.deleted)
	}
}

func TestDeleteUserUnknownAccount(t *testing.T) {
	userRepo := &stubUserRepo{}
	roles := &stubRoleView{}
	svc := NewUserService(&repository.Repositories{User: userRepo}, roles)

	if err := svc.DeleteUser("U_MISSING"); !errorx.IsNotFound(err) {
		t.Fatalf("expected not-found for an unknown account, got %v", err)
	}
	if len(roles.dropped) != 0 || len(userRepo.deleted) != 0 {
		t.Fatal("nothing must be dropped when the account does not exist")
	}
}
