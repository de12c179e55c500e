package waybill

type WaybillServiceAPI interface {
	CreateWaybill(input CreateWaybillInput) (*Waybill, error)
	GetWaybills(query ListWaybillsQuery) ([]Waybill, int64, error)
	GetWaybillByID(id uint64) (*Waybill, error)
}
