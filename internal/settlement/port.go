package settlement

import "gorm.io/datatypes"

type SettlementServiceAPI interface {
	CreateSettlement(formData datatypes.JSON) (*Settlement, error)
	GetSettlements(query ListSettlementsQuery) ([]Settlement, int64, error)
	GetSettlementByID(id uint64) (*Settlement, error)
	ExportSettlements(query ListSettlementsQuery) (contentType, filename string, out []byte, err error)
}
