package customer

import (
	"errors"

	"aircargo-admin-api/internal/snowflake"

	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer not found")

type CreateCustomerInput struct {
	CompanyName      string
	SettlementMethod string
	Rate             float64
	ContactPerson    string
	ContactPhone     string
}

type ListCustomersQuery struct {
	CompanyName   string
	ContactPerson string
	Page          int
	PageSize      int
}

type CustomerService struct {
	DB    *gorm.DB
	IDGen *snowflake.Generator
}

func (cs *CustomerService) CreateCustomer(input CreateCustomerInput) (*Customer, error) {
	id, err := cs.IDGen.NextID()
	if err != nil {
		return nil, err
	}
	customer := Customer{
		ID:               id,
		CompanyName:      input.CompanyName,
		SettlementMethod: input.SettlementMethod,
		Rate:             input.Rate,
		ContactPerson:    input.ContactPerson,
		ContactPhone:     input.ContactPhone,
	}
	if err := cs.DB.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (cs *CustomerService) GetCustomers(query ListCustomersQuery) ([]Customer, int64, error) {
	page, pageSize := normalizePage(query.Page, query.PageSize)

	filtered := func() *gorm.DB {
		tx := cs.DB.Model(&Customer{})
		if query.CompanyName != "" {
			tx = tx.Where("company_name LIKE ?", "%"+query.CompanyName+"%")
		}
		if query.ContactPerson != "" {
			tx = tx.Where("contact_person LIKE ?", "%"+query.ContactPerson+"%")
		}
		return tx
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var customers []Customer
	err := filtered().
		Order("id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&customers).Error
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (cs *CustomerService) GetCustomerByID(id uint64) (*Customer, error) {
	var customer Customer
	err := cs.DB.First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
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
