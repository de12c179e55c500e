package bizconfig

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type BizConfigController struct {
	Service BizConfigServiceAPI
}

func (bc *BizConfigController) InitializeConfig(c *gin.Context) {
	var req struct {
		ConfigData datatypes.JSON `json:"config_data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint64("userID")

	config, err := bc.Service.InitializeConfig(userID, req.ConfigData)
	if err != nil {
		if errors.Is(err, ErrAlreadyInitialized) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Business config initialized successfully",
		"config":  config,
	})
}

// GET /api/v1/config?last_modified=...
//
// last_modified is the timestamp of the config the client has cached.
// Accepted formats: RFC3339 / RFC3339Nano, or unix milliseconds.
func (bc *BizConfigController) GetConfig(c *gin.Context) {
	clientLM, err := parseOptionalTime(c.Query("last_modified"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid last_modified (use RFC3339 or unix ms)"})
		return
	}

	userID := c.GetUint64("userID")

	res, err := bc.Service.GetConfigIfModified(userID, clientLM)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cfg := res.Config
	c.Header("Last-Modified", cfg.UpdatedAt.UTC().Format(time.RFC3339Nano))

	if res.NotModified {
		c.JSON(http.StatusOK, gin.H{
			"not_modified": true,
			"updated_at":   cfg.UpdatedAt,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"not_modified": false,
		"updated_at":   cfg.UpdatedAt,
		"config_data":  cfg.ConfigData,
	})
}

func (bc *BizConfigController) UpdateConfig(c *gin.Context) {
	var req struct {
		ConfigData datatypes.JSON `json:"config_data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint64("userID")

	config, err := bc.Service.UpdateConfig(userID, req.ConfigData)
	if err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Business config updated successfully",
		"config":  config,
	})
}

func parseOptionalTime(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}

	if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
		t := time.Unix(0, ms*int64(time.Millisecond))
		return &t, nil
	}

	return nil, strconv.ErrSyntax
}
