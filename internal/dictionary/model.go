package dictionary

import (
	"time"
)

// DictType is a named category of selectable values, keyed by the stable
// Type string (e.g. "freight_code"). IDs are snowflake-generated and
// serialized as strings so they survive JS number precision.
type DictType struct {
	ID        uint64    `gorm:"primaryKey" json:"id,string"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Type      string    `gorm:"size:50;uniqueIndex;not null" json:"type"`
	Status    bool      `gorm:"not null;default:true" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DictType) TableName() string {
	return "dict_types"
}

// DictOption is one member row of an option group. All rows sharing a
// GroupID form one logical option whose value is the set of row values under
// a single (type, label) pair. Row ids are allocation-ordered, so ascending
// id equals first-seen value order within a group.
type DictOption struct {
	ID         uint64    `gorm:"primaryKey" json:"id,string"`
	DictTypeID uint64    `gorm:"index;not null" json:"dict_type_id,string"`
	GroupID    uint64    `gorm:"index;not null" json:"group_id,string"`
	Label      string    `gorm:"size:100;not null" json:"label"`
	Value      string    `gorm:"size:200;not null" json:"value"`
	Status     bool      `gorm:"not null;default:true" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (DictOption) TableName() string {
	return "dict_options"
}

// OptionGroup is the caller-facing view of one group: one item per group,
// never per member row.
type OptionGroup struct {
	ID         uint64    `json:"id,string"`
	DictTypeID uint64    `json:"dict_type_id,string"`
	DictType   string    `json:"dict_type"`
	Label      string    `json:"label"`
	Value      []string  `json:"value"`
	Status     bool      `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
