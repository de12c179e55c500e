package bizconfig

import (
	"time"

	"gorm.io/datatypes"
)

type BizConfigServiceAPI interface {
	InitializeConfig(userID uint64, configData datatypes.JSON) (*BusinessConfig, error)
	GetConfigIfModified(userID uint64, clientLastModified *time.Time) (*GetConfigResult, error)
	UpdateConfig(userID uint64, configData datatypes.JSON) (*BusinessConfig, error)
}
