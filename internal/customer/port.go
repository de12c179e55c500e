package customer

type CustomerServiceAPI interface {
	CreateCustomer(input CreateCustomerInput) (*Customer, error)
	GetCustomers(query ListCustomersQuery) ([]Customer, int64, error)
	GetCustomerByID(id uint64) (*Customer, error)
}
