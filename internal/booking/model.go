package booking

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusNotExecuted = "未执行"
	StatusExecuting   = "执行中"
	StatusFailed      = "执行失败"

	InvoiceNotIssued = "未开单"
	InvoiceIssued    = "成功"
)

type Booking struct {
	ID                     uint64         `gorm:"primaryKey" json:"id,string"`
	FormData               datatypes.JSON `json:"form_data"`
	BookingStatus          string         `gorm:"size:20;index" json:"booking_status"`
	InvoiceStatus          string         `gorm:"size:20;index" json:"invoice_status"`
	BookingTime            time.Time      `gorm:"index" json:"booking_time"`
	MasterAirwaybillNumber *string        `gorm:"size:50;index" json:"master_airwaybill_number"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}
