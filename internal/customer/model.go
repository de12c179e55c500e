package customer

import (
	"time"
)

type Customer struct {
	ID               uint64    `gorm:"primaryKey" json:"id,string"`
	CompanyName      string    `gorm:"size:200;not null;index" json:"company_name"`
	SettlementMethod string    `gorm:"size:50" json:"settlement_method"`
	Rate             float64   `gorm:"type:numeric(10,2)" json:"rate"`
	ContactPerson    string    `gorm:"size:50" json:"contact_person"`
	ContactPhone     string    `gorm:"size:20" json:"contact_phone"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}
