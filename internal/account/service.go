package account

import (
	"errors"

	"aircargo-admin-api/internal/auth"
	"aircargo-admin-api/internal/department"
	"aircargo-admin-api/internal/logs"
	"aircargo-admin-api/internal/snowflake"
	"aircargo-admin-api/internal/util"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPhoneExists        = errors.New("phone number already registered")
	ErrInvalidPermission  = errors.New("unknown permission code")
	ErrDepartmentNotFound = errors.New("department not found")
)

type CreateAccountInput struct {
	Phone         string
	Password      string
	Name          string
	Permissions   []string
	DepartmentIDs []uint64
}

type AccountService struct {
	DB     *gorm.DB
	IDGen  *snowflake.Generator
	Logger *logs.LogService
}

func (as *AccountService) audit(action, message string, userID uint64, metadata interface{}) {
	if as.Logger == nil {
		return
	}
	id := userID
	_ = as.Logger.Log(logs.SystemLog{
		Level:   "info",
		Service: "account",
		UserID:  &id,
		Action:  action,
		Message: message,
	}, metadata)
}

func (as *AccountService) CreateAccount(input CreateAccountInput) (*auth.User, error) {
	for _, code := range input.Permissions {
		if !auth.IsValidPermission(code) {
			return nil, ErrInvalidPermission
		}
	}

	var count int64
	if err := as.DB.Model(&auth.User{}).Where("phone = ?", input.Phone).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrPhoneExists
	}

	var departments []department.Department
	if len(input.DepartmentIDs) > 0 {
		if err := as.DB.Where("id IN ?", input.DepartmentIDs).Find(&departments).Error; err != nil {
			return nil, err
		}
		if len(departments) != len(input.DepartmentIDs) {
			return nil, ErrDepartmentNotFound
		}
	}

	hash, err := util.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	id, err := as.IDGen.NextID()
	if err != nil {
		return nil, err
	}

	user := auth.User{
		ID:           id,
		Phone:        input.Phone,
		PasswordHash: hash,
		Name:         input.Name,
		Permissions:  pq.StringArray(input.Permissions),
		IsActive:     true,
		Departments:  departments,
	}
	if err := as.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	as.audit("create", "account created", user.ID, map[string]string{"phone": user.Phone})
	return &user, nil
}

func (as *AccountService) GetAccounts() ([]auth.User, error) {
	var users []auth.User
	err := as.DB.Preload("Departments").Order("created_at DESC, id DESC").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (as *AccountService) UpdateStatus(userID uint64, active bool) error {
	result := as.DB.Model(&auth.User{}).Where("id = ?", userID).Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// BatchUpdateStatus flips is_active on every listed account and reports how
// many rows actually changed. Unknown ids are skipped, not an error.
func (as *AccountService) BatchUpdateStatus(userIDs []uint64, active bool) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	result := as.DB.Model(&auth.User{}).Where("id IN ?", userIDs).Update("is_active", active)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (as *AccountService) UpdatePassword(userID uint64, newPassword string) error {
	hash, err := util.HashPassword(newPassword)
	if err != nil {
		return err
	}
	result := as.DB.Model(&auth.User{}).Where("id = ?", userID).Update("password_hash", hash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (as *AccountService) DeleteAccount(userID uint64) error {
	err := as.DB.Transaction(func(tx *gorm.DB) error {
		var user auth.User
		err := tx.First(&user, "id = ?", userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}
		if err := tx.Model(&user).Association("Departments").Clear(); err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err == nil {
		as.audit("delete", "account deleted", userID, nil)
	}
	return err
}

func (as *AccountService) BatchDelete(userIDs []uint64) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	var deleted int64
	err := as.DB.Transaction(func(tx *gorm.DB) error {
		var users []auth.User
		if err := tx.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
			return err
		}
		for i := range users {
			if err := tx.Model(&users[i]).Association("Departments").Clear(); err != nil {
				return err
			}
		}
		result := tx.Where("id IN ?", userIDs).Delete(&auth.User{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
