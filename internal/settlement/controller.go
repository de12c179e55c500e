package settlement

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"aircargo-admin-api/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type SettlementController struct {
	Service SettlementServiceAPI
}

func (sc *SettlementController) CreateSettlement(c *gin.Context) {
	var req struct {
		FormData datatypes.JSON `json:"form_data" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settlement, err := sc.Service.CreateSettlement(req.FormData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Settlement created successfully",
		"settlement": settlement,
	})
}

func (sc *SettlementController) GetSettlements(c *gin.Context) {
	query, ok := sc.parseListQuery(c)
	if !ok {
		return
	}

	settlements, total, err := sc.Service.GetSettlements(query)
	if err != nil {
		if errors.Is(err, util.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Settlements fetched successfully",
		"total":   total,
		"items":   settlements,
	})
}

func (sc *SettlementController) GetSettlement(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settlement id"})
		return
	}

	settlement, err := sc.Service.GetSettlementByID(id)
	if err != nil {
		if errors.Is(err, ErrSettlementNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Settlement fetched successfully",
		"settlement": settlement,
	})
}

func (sc *SettlementController) ExportSettlements(c *gin.Context) {
	query, ok := sc.parseListQuery(c)
	if !ok {
		return
	}

	contentType, filename, out, err := sc.Service.ExportSettlements(query)
	if err != nil {
		if errors.Is(err, util.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, out)
}

func (sc *SettlementController) parseListQuery(c *gin.Context) (ListSettlementsQuery, bool) {
	query := ListSettlementsQuery{
		Airline:                c.Query("airline"),
		Destination:            c.Query("destination"),
		Customer:               c.Query("customer"),
		FlightNumber:           c.Query("flight_number"),
		MasterAirwaybillNumber: c.Query("master_awb"),
	}
	if raw := c.Query("start_date"); raw != "" {
		query.StartDate = &raw
	}
	if raw := c.Query("end_date"); raw != "" {
		query.EndDate = &raw
	}
	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
			return query, false
		}
		query.Page = page
	}
	if raw := c.Query("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page_size"})
			return query, false
		}
		query.PageSize = pageSize
	}
	return query, true
}
