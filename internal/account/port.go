package account

import "aircargo-admin-api/internal/auth"

type AccountServiceAPI interface {
	CreateAccount(input CreateAccountInput) (*auth.User, error)
	GetAccounts() ([]auth.User, error)
	UpdateStatus(userID uint64, active bool) error
	BatchUpdateStatus(userIDs []uint64, active bool) (int64, error)
	UpdatePassword(userID uint64, newPassword string) error
	DeleteAccount(userID uint64) error
	BatchDelete(userIDs []uint64) (int64, error)
}
