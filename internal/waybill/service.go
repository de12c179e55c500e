package waybill

import (
	"errors"
	"time"

	"aircargo-admin-api/internal/snowflake"
	"aircargo-admin-api/internal/util"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrWaybillNotFound = errors.New("waybill not found")

type CreateWaybillInput struct {
	WaybillNumber *string
	FormData      datatypes.JSON
	DepartureTime *time.Time
}

type ListWaybillsQuery struct {
	AirlineStatus      string
	CargoStationStatus string
	PrintStatus        string
	WaybillNumber      string
	Airline            string
	Destination        string
	FlightNumber       string
	Shipper            string
	StartDate          *string
	EndDate            *string
	Page               int
	PageSize           int
}

type WaybillService struct {
	DB    *gorm.DB
	IDGen *snowflake.Generator
}

func (ws *WaybillService) CreateWaybill(input CreateWaybillInput) (*Waybill, error) {
	id, err := ws.IDGen.NextID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	waybill := Waybill{
		ID:                 id,
		WaybillNumber:      input.WaybillNumber,
		FormData:           input.FormData,
		AirlineStatus:      StatusNotExecuted,
		CargoStationStatus: StatusNotExecuted,
		PrintStatus:        StatusNotExecuted,
		BookingDate:        time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		DepartureTime:      input.DepartureTime,
	}
	if err := ws.DB.Create(&waybill).Error; err != nil {
		return nil, err
	}
	return &waybill, nil
}

func (ws *WaybillService) GetWaybills(query ListWaybillsQuery) ([]Waybill, int64, error) {
	page, pageSize := normalizePage(query.Page, query.PageSize)

	start, hasStart, end, hasEnd, err := util.ParseDateRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, 0, err
	}

	filtered := func() *gorm.DB {
		tx := ws.DB.Model(&Waybill{})
		if query.AirlineStatus != "" {
			tx = tx.Where("airline_status = ?", query.AirlineStatus)
		}
		if query.CargoStationStatus != "" {
			tx = tx.Where("cargo_station_status = ?", query.CargoStationStatus)
		}
		if query.PrintStatus != "" {
			tx = tx.Where("print_status = ?", query.PrintStatus)
		}
		if query.WaybillNumber != "" {
			tx = tx.Where("waybill_number LIKE ?", "%"+query.WaybillNumber+"%")
		}
		if hasStart {
			tx = tx.Where("booking_date >= ?", start)
		}
		if hasEnd {
			tx = tx.Where("booking_date < ?", end)
		}
		for key, value := range map[string]string{
			"airline":       query.Airline,
			"destination":   query.Destination,
			"flight_number": query.FlightNumber,
			"shipper":       query.Shipper,
		} {
			if value != "" {
				tx = tx.Where(datatypes.JSONQuery("form_data").Likes("%"+value+"%", key))
			}
		}
		return tx
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var waybills []Waybill
	err = filtered().
		Order("id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&waybills).Error
	if err != nil {
		return nil, 0, err
	}
	return waybills, total, nil
}

func (ws *WaybillService) GetWaybillByID(id uint64) (*Waybill, error) {
	var waybill Waybill
	err := ws.DB.First(&waybill, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrWaybillNotFound
	}
	if err != nil {
		return nil, err
	}
	return &waybill, nil
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
