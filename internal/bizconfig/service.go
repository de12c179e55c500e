package bizconfig

import (
	"errors"
	"time"

	"aircargo-admin-api/internal/snowflake"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrConfigNotFound     = errors.New("business config not found")
	ErrAlreadyInitialized = errors.New("business config already initialized")
)

type GetConfigResult struct {
	NotModified bool
	Config      *BusinessConfig
}

type BizConfigService struct {
	DB    *gorm.DB
	IDGen *snowflake.Generator
}

func (bs *BizConfigService) InitializeConfig(userID uint64, configData datatypes.JSON) (*BusinessConfig, error) {
	var count int64
	if err := bs.DB.Model(&BusinessConfig{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyInitialized
	}

	id, err := bs.IDGen.NextID()
	if err != nil {
		return nil, err
	}
	config := BusinessConfig{ID: id, UserID: userID, ConfigData: configData}
	if err := bs.DB.Create(&config).Error; err != nil {
		return nil, err
	}
	return &config, nil
}

// GetConfigIfModified returns the user's config, short-circuiting to
// NotModified when the caller's cached timestamp is at least as fresh as the
// stored row.
func (bs *BizConfigService) GetConfigIfModified(userID uint64, clientLastModified *time.Time) (*GetConfigResult, error) {
	var config BusinessConfig
	err := bs.DB.Where("user_id = ?", userID).First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, err
	}

	if clientLastModified != nil && !config.UpdatedAt.After(*clientLastModified) {
		return &GetConfigResult{NotModified: true, Config: &config}, nil
	}
	return &GetConfigResult{NotModified: false, Config: &config}, nil
}

func (bs *BizConfigService) UpdateConfig(userID uint64, configData datatypes.JSON) (*BusinessConfig, error) {
	var config BusinessConfig
	err := bs.DB.Where("user_id = ?", userID).First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := bs.DB.Model(&config).Update("config_data", configData).Error; err != nil {
		return nil, err
	}
	if err := bs.DB.First(&config, "id = ?", config.ID).Error; err != nil {
		return nil, err
	}
	return &config, nil
}
