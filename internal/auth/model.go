package auth

import (
	"time"

	"aircargo-admin-api/internal/department"

	"github.com/lib/pq"
)

// Permission codes understood by the API. Every user carries a subset;
// "admin" grants access to account and department management.
const (
	PermissionWaybill    = "waybill"
	PermissionBooking    = "booking"
	PermissionSettlement = "settlement"
	PermissionAdmin      = "admin"
)

var ValidPermissions = []string{
	PermissionWaybill,
	PermissionBooking,
	PermissionSettlement,
	PermissionAdmin,
}

func IsValidPermission(code string) bool {
	for _, p := range ValidPermissions {
		if p == code {
			return true
		}
	}
	return false
}

type User struct {
	ID           uint64                  `gorm:"primaryKey" json:"id,string"`
	Phone        string                  `gorm:"size:11;uniqueIndex;not null" json:"phone"`
	PasswordHash string                  `gorm:"size:100;not null" json:"-"`
	Name         string                  `gorm:"size:50;not null" json:"name"`
	Permissions  pq.StringArray          `gorm:"type:text[]" json:"permissions"`
	IsActive     bool                    `gorm:"default:true" json:"is_active"`
	Departments  []department.Department `gorm:"many2many:user_departments" json:"departments"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
