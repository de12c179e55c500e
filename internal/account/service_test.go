package account

import (
	"errors"
	"testing"

	"aircargo-admin-api/internal/util"
)

func TestCreateAccount(t *testing.T) {
	svc := newTestService(t)
	dept := seedDepartment(t, svc, "Operations")

	user, err := svc.CreateAccount(CreateAccountInput{
		Phone:         "13800000001",
		Password:      "secret123",
		Name:          "Zhang Wei",
		Permissions:   []string{"waybill", "booking"},
		DepartmentIDs: []uint64{dept.ID},
	})
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected a generated user id")
	}
	if !user.IsActive {
		t.Fatal("expected new accounts to start active")
	}
	if user.PasswordHash == "secret123" {
		t.Fatal("password must be stored hashed")
	}
	if err := util.VerifyPassword(user.PasswordHash, "secret123"); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if len(user.Departments) != 1 || user.Departments[0].ID != dept.ID {
		t.Fatalf("expected department association, got %v", user.Departments)
	}
}

func TestCreateAccount_DuplicatePhone(t *testing.T) {
	svc := newTestService(t)
	mustCreateAccount(t, svc, "13800000001")

	_, err := svc.CreateAccount(CreateAccountInput{
		Phone:    "13800000001",
		Password: "secret123",
		Name:     "Another",
	})
	if !errors.Is(err, ErrPhoneExists) {
		t.Fatalf("expected ErrPhoneExists, got %v", err)
	}
}

func TestCreateAccount_UnknownPermission(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateAccount(CreateAccountInput{
		Phone:       "13800000001",
		Password:    "secret123",
		Name:        "Zhang Wei",
		Permissions: []string{"waybill", "superuser"},
	})
	if !errors.Is(err, ErrInvalidPermission) {
		t.Fatalf("expected ErrInvalidPermission, got %v", err)
	}
}

func TestCreateAccount_UnknownDepartment(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateAccount(CreateAccountInput{
		Phone:         "13800000001",
		Password:      "secret123",
		Name:          "Zhang Wei",
		DepartmentIDs: []uint64{99999},
	})
	if !errors.Is(err, ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound, got %v", err)
	}
}

func TestGetAccounts(t *testing.T) {
	svc := newTestService(t)
	mustCreateAccount(t, svc, "13800000001")
	mustCreateAccount(t, svc, "13800000002")

	users, err := svc.GetAccounts()
	if err != nil {
		t.Fatalf("GetAccounts failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(users))
	}
	if users[0].Phone != "13800000002" {
		t.Fatalf("expected newest account first, got %q", users[0].Phone)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc := newTestService(t)
	user := mustCreateAccount(t, svc, "13800000001")

	if err := svc.UpdateStatus(user.ID, false); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	users, err := svc.GetAccounts()
	if err != nil {
		t.Fatalf("GetAccounts failed: %v", err)
	}
	if users[0].IsActive {
		t.Fatal("expected account to be disabled")
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := newTestService(t)

	err := svc.UpdateStatus(12345, false)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestBatchUpdateStatus(t *testing.T) {
	svc := newTestService(t)
	u1 := mustCreateAccount(t, svc, "13800000001")
	u2 := mustCreateAccount(t, svc, "13800000002")
	mustCreateAccount(t, svc, "13800000003")

	updated, err := svc.BatchUpdateStatus([]uint64{u1.ID, u2.ID, 99999}, false)
	if err != nil {
		t.Fatalf("BatchUpdateStatus failed: %v", err)
	}
	if updated != 2 {
		t.Fatalf("expected 2 rows updated, got %d", updated)
	}
}

func TestUpdatePassword(t *testing.T) {
	svc := newTestService(t)
	user := mustCreateAccount(t, svc, "13800000001")

	if err := svc.UpdatePassword(user.ID, "newsecret456"); err != nil {
		t.Fatalf("UpdatePassword failed: %v", err)
	}

	users, err := svc.GetAccounts()
	if err != nil {
		t.Fatalf("GetAccounts failed: %v", err)
	}
	if err := util.VerifyPassword(users[0].PasswordHash, "newsecret456"); err != nil {
		t.Fatalf("new password does not verify: %v", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	svc := newTestService(t)
	dept := seedDepartment(t, svc, "Operations")
	user, err := svc.CreateAccount(CreateAccountInput{
		Phone:         "13800000001",
		Password:      "secret123",
		Name:          "Zhang Wei",
		DepartmentIDs: []uint64{dept.ID},
	})
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	if err := svc.DeleteAccount(user.ID); err != nil {
		t.Fatalf("DeleteAccount failed: %v", err)
	}

	if err := svc.DeleteAccount(user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}

	var joinCount int64
	if err := svc.DB.Table("user_departments").Count(&joinCount).Error; err != nil {
		t.Fatalf("failed to count join rows: %v", err)
	}
	if joinCount != 0 {
		t.Fatalf("expected department links to be removed, found %d", joinCount)
	}
}

func TestBatchDelete(t *testing.T) {
	svc := newTestService(t)
	u1 := mustCreateAccount(t, svc, "13800000001")
	u2 := mustCreateAccount(t, svc, "13800000002")
	mustCreateAccount(t, svc, "13800000003")

	deleted, err := svc.BatchDelete([]uint64{u1.ID, u2.ID, 99999})
	if err != nil {
		t.Fatalf("BatchDelete failed: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected 2 rows deleted, got %d", deleted)
	}

	users, err := svc.GetAccounts()
	if err != nil {
		t.Fatalf("GetAccounts failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 remaining account, got %d", len(users))
	}
}
