package settlement

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"aircargo-admin-api/internal/snowflake"
	"aircargo-admin-api/internal/util"
	"aircargo-admin-api/internal/waybill"

	"github.com/iancoleman/orderedmap"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrSettlementNotFound = errors.New("settlement not found")

type ListSettlementsQuery struct {
	Airline                string
	Destination            string
	Customer               string
	FlightNumber           string
	MasterAirwaybillNumber string
	StartDate              *string
	EndDate                *string
	Page                   int
	PageSize               int
}

type SettlementService struct {
	DB    *gorm.DB
	IDGen *snowflake.Generator
}

func (ss *SettlementService) CreateSettlement(formData datatypes.JSON) (*Settlement, error) {
	id, err := ss.IDGen.NextID()
	if err != nil {
		return nil, err
	}
	settlement := Settlement{ID: id, FormData: formData}
	if err := ss.DB.Create(&settlement).Error; err != nil {
		return nil, err
	}
	return &settlement, nil
}

// formDataFiltered returns a fresh query with every non-empty fuzzy filter
// applied against the corresponding form_data field.
func (ss *SettlementService) formDataFiltered(query ListSettlementsQuery) *gorm.DB {
	tx := ss.DB.Model(&Settlement{})
	for key, value := range map[string]string{
		"airline":       query.Airline,
		"destination":   query.Destination,
		"customer":      query.Customer,
		"flight_number": query.FlightNumber,
		"master_awb":    query.MasterAirwaybillNumber,
	} {
		if value != "" {
			tx = tx.Where(datatypes.JSONQuery("form_data").Likes("%"+value+"%", key))
		}
	}
	return tx
}

func (ss *SettlementService) GetSettlements(query ListSettlementsQuery) ([]Settlement, int64, error) {
	page, pageSize := normalizePage(query.Page, query.PageSize)

	start, hasStart, end, hasEnd, err := util.ParseDateRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, 0, err
	}

	if !hasStart && !hasEnd {
		var total int64
		if err := ss.formDataFiltered(query).Count(&total).Error; err != nil {
			return nil, 0, err
		}
		var settlements []Settlement
		err := ss.formDataFiltered(query).
			Order("id DESC").
			Limit(pageSize).
			Offset((page - 1) * pageSize).
			Find(&settlements).Error
		if err != nil {
			return nil, 0, err
		}
		return settlements, total, nil
	}

	// Date bounds apply to the linked waybill's booking date. The master AWB
	// lives inside form_data, so the match against the waybill set happens
	// here rather than in a dialect-specific JSON join.
	allowed, err := ss.waybillNumbersInRange(start, hasStart, end, hasEnd)
	if err != nil {
		return nil, 0, err
	}

	var candidates []Settlement
	if err := ss.formDataFiltered(query).Order("id DESC").Find(&candidates).Error; err != nil {
		return nil, 0, err
	}
	matched := matchWaybillSet(candidates, allowed)

	total := int64(len(matched))
	lo := (page - 1) * pageSize
	if lo > len(matched) {
		lo = len(matched)
	}
	hi := lo + pageSize
	if hi > len(matched) {
		hi = len(matched)
	}
	return matched[lo:hi], total, nil
}

// findAllSettlements loads the complete matched set in one pass, for callers
// that consume every row rather than a page.
func (ss *SettlementService) findAllSettlements(query ListSettlementsQuery) ([]Settlement, error) {
	start, hasStart, end, hasEnd, err := util.ParseDateRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, err
	}

	var all []Settlement
	if err := ss.formDataFiltered(query).Order("id DESC").Find(&all).Error; err != nil {
		return nil, err
	}
	if !hasStart && !hasEnd {
		return all, nil
	}

	allowed, err := ss.waybillNumbersInRange(start, hasStart, end, hasEnd)
	if err != nil {
		return nil, err
	}
	return matchWaybillSet(all, allowed), nil
}

func (ss *SettlementService) GetSettlementByID(id uint64) (*Settlement, error) {
	var settlement Settlement
	err := ss.DB.First(&settlement, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSettlementNotFound
	}
	if err != nil {
		return nil, err
	}
	return &settlement, nil
}

var exportColumns = []struct {
	header string
	key    string
}{
	{"主单号", "master_awb"},
	{"航空公司", "airline"},
	{"航班号", "flight_number"},
	{"目的地", "destination"},
	{"客户", "customer"},
	{"件数", "pieces"},
	{"重量", "weight"},
	{"运费", "freight_charge"},
}

// ExportSettlements renders the filtered settlement list (no paging) as an
// xlsx workbook. form_data fields beyond the fixed columns are appended as
// extra columns in the order the form stored them.
func (ss *SettlementService) ExportSettlements(query ListSettlementsQuery) (contentType, filename string, out []byte, err error) {
	all, err := ss.findAllSettlements(query)
	if err != nil {
		return "", "", nil, err
	}

	fixed := make(map[string]bool, len(exportColumns))
	for _, col := range exportColumns {
		fixed[col.key] = true
	}

	// Decode each blob once, keeping the writer's key order so extra fields
	// line up across rows the way they were entered.
	forms := make([]*orderedmap.OrderedMap, len(all))
	var extraKeys []string
	seen := map[string]bool{}
	for i, s := range all {
		om := orderedmap.New()
		if len(s.FormData) > 0 {
			_ = om.UnmarshalJSON(s.FormData)
		}
		forms[i] = om
		for _, key := range om.Keys() {
			if fixed[key] || seen[key] {
				continue
			}
			seen[key] = true
			extraKeys = append(extraKeys, key)
		}
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "Settlements")

	header := make([]interface{}, 0, len(exportColumns)+len(extraKeys)+1)
	header = append(header, "结算单号")
	for _, col := range exportColumns {
		header = append(header, col.header)
	}
	for _, key := range extraKeys {
		header = append(header, key)
	}
	_ = f.SetSheetRow("Settlements", "A1", &header)

	for i, s := range all {
		row := make([]interface{}, 0, len(header))
		row = append(row, fmt.Sprintf("%d", s.ID))
		for _, col := range exportColumns {
			row = append(row, orderedField(forms[i], col.key))
		}
		for _, key := range extraKeys {
			row = append(row, orderedField(forms[i], key))
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		_ = f.SetSheetRow("Settlements", cell, &row)
	}

	b, err := f.WriteToBuffer()
	if err != nil {
		return "", "", nil, err
	}
	filename = fmt.Sprintf("settlements-%s.xlsx", time.Now().Format("20060102"))
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", filename, b.Bytes(), nil
}

func (ss *SettlementService) waybillNumbersInRange(start time.Time, hasStart bool, end time.Time, hasEnd bool) (map[string]struct{}, error) {
	tx := ss.DB.Model(&waybill.Waybill{}).Where("waybill_number IS NOT NULL")
	if hasStart {
		tx = tx.Where("booking_date >= ?", start)
	}
	if hasEnd {
		tx = tx.Where("booking_date < ?", end)
	}
	var numbers []string
	if err := tx.Pluck("waybill_number", &numbers).Error; err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(numbers))
	for _, n := range numbers {
		set[n] = struct{}{}
	}
	return set, nil
}

// matchWaybillSet keeps the candidates whose master AWB belongs to the
// allowed waybill-number set. Rows without a master AWB never match.
func matchWaybillSet(candidates []Settlement, allowed map[string]struct{}) []Settlement {
	matched := make([]Settlement, 0, len(candidates))
	for _, s := range candidates {
		awb := jsonField(s.FormData, "master_awb")
		if awb == "" {
			continue
		}
		if _, ok := allowed[awb]; ok {
			matched = append(matched, s)
		}
	}
	return matched
}

func jsonField(data datatypes.JSON, key string) string {
	if len(data) == 0 {
		return ""
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return ""
	}
	value, ok := fields[key]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

func orderedField(om *orderedmap.OrderedMap, key string) string {
	value, ok := om.Get(key)
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
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
