package dictionary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DictionaryController struct {
	Service DictionaryServiceAPI
}

type typeRequest struct {
	Name   string `json:"name" binding:"required"`
	Type   string `json:"type" binding:"required"`
	Status *bool  `json:"status"`
}

type groupRequest struct {
	DictType string   `json:"dict_type" binding:"required"`
	Label    string   `json:"label" binding:"required"`
	Value    []string `json:"value" binding:"required"`
	Status   *bool    `json:"status"`
}

type groupUpdateRequest struct {
	Label  *string  `json:"label"`
	Value  []string `json:"value"`
	Status *bool    `json:"status"`
}

func (dc *DictionaryController) CreateType(c *gin.Context) {
	var req typeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dt, err := dc.Service.CreateType(req.Name, req.Type, statusOrDefault(req.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Dictionary type created successfully",
		"dict_type": dt,
	})
}

func (dc *DictionaryController) UpsertType(c *gin.Context) {
	var req typeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dt, err := dc.Service.CreateOrUpdateType(req.Name, req.Type, statusOrDefault(req.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Dictionary type saved successfully",
		"dict_type": dt,
	})
}

func (dc *DictionaryController) GetTypes(c *gin.Context) {
	typeKey, status, page, pageSize, err := parseListQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	total, items, err := dc.Service.ListTypes(typeKey, status, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dictionary types fetched successfully",
		"total":   total,
		"items":   items,
	})
}

func (dc *DictionaryController) DeleteType(c *gin.Context) {
	typeKey := c.Param("type")

	deleted, err := dc.Service.DeleteType(typeKey)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Dictionary type deleted successfully",
		"deleted_count": deleted,
	})
}

func (dc *DictionaryController) CreateGroup(c *gin.Context) {
	var req groupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := dc.Service.CreateGroup(req.DictType, req.Label, req.Value, statusOrDefault(req.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Dictionary option created successfully",
		"option":  group,
	})
}

func (dc *DictionaryController) UpsertGroup(c *gin.Context) {
	var req groupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := dc.Service.UpsertGroup(req.DictType, req.Label, req.Value, statusOrDefault(req.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dictionary option saved successfully",
		"option":  group,
	})
}

func (dc *DictionaryController) UpdateGroup(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid group id is required"})
		return
	}

	var req groupUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := dc.Service.UpdateGroupByID(groupID, req.Label, req.Value, req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dictionary option updated successfully",
		"option":  group,
	})
}

func (dc *DictionaryController) DeleteGroup(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid group id is required"})
		return
	}

	deleted, err := dc.Service.DeleteGroup(groupID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Dictionary option deleted successfully",
		"deleted_count": deleted,
	})
}

func (dc *DictionaryController) DeleteGroupByTypeLabel(c *gin.Context) {
	typeKey := c.Query("dict_type")
	label := c.Query("label")
	if typeKey == "" || label == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dict_type and label are required"})
		return
	}

	deleted, err := dc.Service.DeleteGroupByTypeLabel(typeKey, label)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Dictionary option deleted successfully",
		"deleted_count": deleted,
	})
}

func (dc *DictionaryController) GetGroups(c *gin.Context) {
	typeKey, status, page, pageSize, err := parseListQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	total, items, err := dc.Service.ListGroups(typeKey, status, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dictionary options fetched successfully",
		"total":   total,
		"items":   items,
	})
}

func parseListQuery(c *gin.Context) (typeKey *string, status *bool, page, pageSize int, err error) {
	if raw := c.Query("dict_type"); raw != "" {
		typeKey = &raw
	} else if raw := c.Query("type"); raw != "" {
		typeKey = &raw
	}

	if raw := c.Query("status"); raw != "" {
		parsed, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			return nil, nil, 0, 0, errors.New("status must be true or false")
		}
		status = &parsed
	}

	page = 1
	if raw := c.Query("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil || page < 1 {
			return nil, nil, 0, 0, errors.New("page must be a positive integer")
		}
	}

	pageSize = 10
	if raw := c.Query("page_size"); raw != "" {
		if pageSize, err = strconv.Atoi(raw); err != nil || pageSize < 1 {
			return nil, nil, 0, 0, errors.New("page_size must be a positive integer")
		}
	}
	return typeKey, status, page, pageSize, nil
}

func statusOrDefault(status *bool) bool {
	if status == nil {
		return true
	}
	return *status
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTypeNotFound), errors.Is(err, ErrGroupNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrTypeExists), errors.Is(err, ErrGroupExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
