package settlement

import (
	"time"

	"gorm.io/datatypes"
)

type Settlement struct {
	ID        uint64         `gorm:"primaryKey" json:"id,string"`
	FormData  datatypes.JSON `json:"form_data"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Settlement) TableName() string {
	return "settlements"
}
