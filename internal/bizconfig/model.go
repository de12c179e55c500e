package bizconfig

import (
	"time"

	"gorm.io/datatypes"
)

type BusinessConfig struct {
	ID         uint64         `gorm:"primaryKey" json:"id,string"`
	UserID     uint64         `gorm:"uniqueIndex;not null" json:"user_id,string"`
	ConfigData datatypes.JSON `json:"config_data"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (BusinessConfig) TableName() string {
	return "business_configs"
}
