package waybill

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"aircargo-admin-api/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type WaybillController struct {
	Service WaybillServiceAPI
}

func (wc *WaybillController) CreateWaybill(c *gin.Context) {
	var req struct {
		WaybillNumber *string        `json:"waybill_number"`
		FormData      datatypes.JSON `json:"form_data" binding:"required"`
		DepartureTime *time.Time     `json:"departure_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	waybill, err := wc.Service.CreateWaybill(CreateWaybillInput{
		WaybillNumber: req.WaybillNumber,
		FormData:      req.FormData,
		DepartureTime: req.DepartureTime,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Waybill created successfully",
		"waybill": waybill,
	})
}

func (wc *WaybillController) GetWaybills(c *gin.Context) {
	query := ListWaybillsQuery{
		AirlineStatus:      c.Query("airline_status"),
		CargoStationStatus: c.Query("cargo_station_status"),
		PrintStatus:        c.Query("print_status"),
		WaybillNumber:      c.Query("waybill_number"),
		Airline:            c.Query("airline"),
		Destination:        c.Query("destination"),
		FlightNumber:       c.Query("flight_number"),
		Shipper:            c.Query("shipper"),
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
			return
		}
		query.Page = page
	}
	if raw := c.Query("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page_size"})
			return
		}
		query.PageSize = pageSize
	}

	waybills, total, err := wc.Service.GetWaybills(query)
	if err != nil {
		if errors.Is(err, util.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Waybills fetched successfully",
		"total":   total,
		"items":   waybills,
	})
}

func (wc *WaybillController) GetWaybill(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid waybill id"})
		return
	}

	waybill, err := wc.Service.GetWaybillByID(id)
	if err != nil {
		if errors.Is(err, ErrWaybillNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Waybill fetched successfully",
		"waybill": waybill,
	})
}
