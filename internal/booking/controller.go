package booking

import (
	"errors"
	"net/http"
	"strconv"

	"aircargo-admin-api/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type BookingController struct {
	Service BookingServiceAPI
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req struct {
		FormData               datatypes.JSON `json:"form_data" binding:"required"`
		MasterAirwaybillNumber *string        `json:"master_airwaybill_number"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := bc.Service.CreateBooking(CreateBookingInput{
		FormData:               req.FormData,
		MasterAirwaybillNumber: req.MasterAirwaybillNumber,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

func (bc *BookingController) GetBookings(c *gin.Context) {
	query := ListBookingsQuery{
		BookingStatus:          c.Query("booking_status"),
		InvoiceStatus:          c.Query("invoice_status"),
		MasterAirwaybillNumber: c.Query("master_airwaybill_number"),
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

	bookings, total, err := bc.Service.GetBookings(query)
	if err != nil {
		if errors.Is(err, util.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Bookings fetched successfully",
		"total":   total,
		"items":   bookings,
	})
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	booking, err := bc.Service.GetBookingByID(id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking fetched successfully",
		"booking": booking,
	})
}
