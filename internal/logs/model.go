package logs

import (
	"time"
)

type SystemLog struct {
	ID        uint64    `gorm:"primaryKey" json:"id,string"`
	Level     string    `gorm:"size:20;not null" json:"level"`
	Service   string    `gorm:"size:100;not null" json:"service"`
	UserID    *uint64   `gorm:"index" json:"user_id,string,omitempty"`
	Action    string    `gorm:"size:255;not null" json:"action"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Metadata  *string   `gorm:"type:text" json:"metadata,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type LogFilterInput struct {
	UserID  *uint64 `json:"user_id,string"`
	Level   *string `json:"level"`
	Service *string `json:"service"`
	Action  *string `json:"action"`

	StartDate *string `json:"start_date"` // "YYYY-MM-DD"
	EndDate   *string `json:"end_date"`   // "YYYY-MM-DD"

	Search   *string `json:"search"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}

func (SystemLog) TableName() string {
	return "logs"
}
