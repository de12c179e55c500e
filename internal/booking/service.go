package booking

import (
	"errors"
	"time"

	"aircargo-admin-api/internal/snowflake"
	"aircargo-admin-api/internal/util"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

type CreateBookingInput struct {
	FormData               datatypes.JSON
	MasterAirwaybillNumber *string
}

type ListBookingsQuery struct {
	BookingStatus          string
	InvoiceStatus          string
	MasterAirwaybillNumber string
	StartDate              *string
	EndDate                *string
	Page                   int
	PageSize               int
}

type BookingService struct {
	DB    *gorm.DB
	IDGen *snowflake.Generator
}

func (bs *BookingService) CreateBooking(input CreateBookingInput) (*Booking, error) {
	id, err := bs.IDGen.NextID()
	if err != nil {
		return nil, err
	}

	booking := Booking{
		ID:                     id,
		FormData:               input.FormData,
		BookingStatus:          StatusNotExecuted,
		InvoiceStatus:          InvoiceNotIssued,
		BookingTime:            time.Now(),
		MasterAirwaybillNumber: input.MasterAirwaybillNumber,
	}
	if err := bs.DB.Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (bs *BookingService) GetBookings(query ListBookingsQuery) ([]Booking, int64, error) {
	page, pageSize := normalizePage(query.Page, query.PageSize)

	start, hasStart, end, hasEnd, err := util.ParseDateRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, 0, err
	}

	filtered := func() *gorm.DB {
		tx := bs.DB.Model(&Booking{})
		if query.BookingStatus != "" {
			tx = tx.Where("booking_status = ?", query.BookingStatus)
		}
		if query.InvoiceStatus != "" {
			tx = tx.Where("invoice_status = ?", query.InvoiceStatus)
		}
		if query.MasterAirwaybillNumber != "" {
			tx = tx.Where("master_airwaybill_number LIKE ?", "%"+query.MasterAirwaybillNumber+"%")
		}
		if hasStart {
			tx = tx.Where("booking_time >= ?", start)
		}
		if hasEnd {
			tx = tx.Where("booking_time < ?", end)
		}
		return tx
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []Booking
	err = filtered().
		Order("id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (bs *BookingService) GetBookingByID(id uint64) (*Booking, error) {
	var booking Booking
	err := bs.DB.First(&booking, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
