package waybill

import (
	"time"

	"gorm.io/datatypes"
)

// Execution status values shared by the waybill workflow columns.
const (
	StatusNotExecuted = "未执行"
	StatusExecuting   = "执行中"
	StatusFailed      = "执行失败"
)

type Waybill struct {
	ID                 uint64         `gorm:"primaryKey" json:"id,string"`
	WaybillNumber      *string        `gorm:"size:50;index" json:"waybill_number"`
	FormData           datatypes.JSON `json:"form_data"`
	AirlineStatus      string         `gorm:"size:20" json:"airline_status"`
	CargoStationStatus string         `gorm:"size:20" json:"cargo_station_status"`
	PrintStatus        string         `gorm:"size:20" json:"print_status"`
	BookingDate        time.Time      `gorm:"index" json:"booking_date"`
	DepartureTime      *time.Time     `json:"departure_time"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func (Waybill) TableName() string {
	return "waybills"
}
