package customer

import (
	"errors"
	"testing"
)

func TestCreateCustomer(t *testing.T) {
	svc := newTestService(t)

	customer, err := svc.CreateCustomer(CreateCustomerInput{
		CompanyName:      "Shenzhen Air Freight Co",
		SettlementMethod: "monthly",
		Rate:             4.20,
		ContactPerson:    "Li Na",
		ContactPhone:     "13900000000",
	})
	if err != nil {
		t.Fatalf("CreateCustomer failed: %v", err)
	}
	if customer.ID == 0 {
		t.Fatal("expected a generated customer id")
	}
	if customer.Rate != 4.20 {
		t.Fatalf("expected rate 4.20, got %v", customer.Rate)
	}
}

func TestGetCustomers_FuzzyCompanyFilter(t *testing.T) {
	svc := newTestService(t)
	mustCreateCustomer(t, svc, "Shenzhen Air Freight Co", "Li Na")
	mustCreateCustomer(t, svc, "Beijing Cargo Ltd", "Wang Fang")
	mustCreateCustomer(t, svc, "Shenzhen Logistics Group", "Chen Jing")

	customers, total, err := svc.GetCustomers(ListCustomersQuery{CompanyName: "Shenzhen"})
	if err != nil {
		t.Fatalf("GetCustomers failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total 2, got %d", total)
	}
	if len(customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(customers))
	}
}

func TestGetCustomers_ContactFilter(t *testing.T) {
	svc := newTestService(t)
	mustCreateCustomer(t, svc, "Shenzhen Air Freight Co", "Li Na")
	mustCreateCustomer(t, svc, "Beijing Cargo Ltd", "Wang Fang")

	customers, total, err := svc.GetCustomers(ListCustomersQuery{ContactPerson: "Wang"})
	if err != nil {
		t.Fatalf("GetCustomers failed: %v", err)
	}
	if total != 1 || len(customers) != 1 {
		t.Fatalf("expected 1 match, got total=%d len=%d", total, len(customers))
	}
	if customers[0].CompanyName != "Beijing Cargo Ltd" {
		t.Fatalf("unexpected match: %q", customers[0].CompanyName)
	}
}

func TestGetCustomers_Pagination(t *testing.T) {
	svc := newTestService(t)
	mustCreateCustomer(t, svc, "Company A", "A")
	mustCreateCustomer(t, svc, "Company B", "B")
	mustCreateCustomer(t, svc, "Company C", "C")

	customers, total, err := svc.GetCustomers(ListCustomersQuery{Page: 2, PageSize: 1})
	if err != nil {
		t.Fatalf("GetCustomers failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}
	if len(customers) != 1 {
		t.Fatalf("expected 1 customer on page, got %d", len(customers))
	}
	if customers[0].CompanyName != "Company B" {
		t.Fatalf("expected middle customer on page 2, got %q", customers[0].CompanyName)
	}
}

func TestGetCustomerByID(t *testing.T) {
	svc := newTestService(t)
	created := mustCreateCustomer(t, svc, "Shenzhen Air Freight Co", "Li Na")

	got, err := svc.GetCustomerByID(created.ID)
	if err != nil {
		t.Fatalf("GetCustomerByID failed: %v", err)
	}
	if got.CompanyName != created.CompanyName {
		t.Fatalf("expected %q, got %q", created.CompanyName, got.CompanyName)
	}
}

func TestGetCustomerByID_NotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetCustomerByID(12345)
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}
