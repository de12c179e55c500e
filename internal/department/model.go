package department

import (
	"time"
)

type Department struct {
	ID        uint64    `gorm:"primaryKey" json:"id,string"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Department) TableName() string {
	return "departments"
}
