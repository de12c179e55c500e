package customer

import (
	"aircargo-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, customerService CustomerServiceAPI) {
	customerController := &CustomerController{Service: customerService}

	customerGroup := r.Group("/api/v1/customers")
	customerGroup.Use(middlewares.AuthMiddleware())
	{
		customerGroup.POST("", customerController.CreateCustomer)
		customerGroup.GET("", customerController.GetCustomers)
		customerGroup.GET("/:id", customerController.GetCustomer)
	}
}
