package customer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	Service CustomerServiceAPI
}

func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var req struct {
		CompanyName      string  `json:"company_name" binding:"required"`
		SettlementMethod string  `json:"settlement_method"`
		Rate             float64 `json:"rate"`
		ContactPerson    string  `json:"contact_person"`
		ContactPhone     string  `json:"contact_phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := cc.Service.CreateCustomer(CreateCustomerInput{
		CompanyName:      req.CompanyName,
		SettlementMethod: req.SettlementMethod,
		Rate:             req.Rate,
		ContactPerson:    req.ContactPerson,
		ContactPhone:     req.ContactPhone,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Customer created successfully",
		"customer": customer,
	})
}

func (cc *CustomerController) GetCustomers(c *gin.Context) {
	query := ListCustomersQuery{
		CompanyName:   c.Query("company_name"),
		ContactPerson: c.Query("contact_person"),
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

	customers, total, err := cc.Service.GetCustomers(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customers fetched successfully",
		"total":   total,
		"items":   customers,
	})
}

func (cc *CustomerController) GetCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}

	customer, err := cc.Service.GetCustomerByID(id)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Customer fetched successfully",
		"customer": customer,
	})
}
