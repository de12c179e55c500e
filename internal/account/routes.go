package account

import (
	"aircargo-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, accountService AccountServiceAPI) {
	accountController := &AccountController{Service: accountService}

	accountGroup := r.Group("/api/v1/accounts")
	accountGroup.Use(middlewares.AuthMiddleware(), middlewares.RequireAdmin())
	{
		accountGroup.POST("", accountController.CreateAccount)
		accountGroup.GET("", accountController.GetAccounts)
		accountGroup.PUT("/:id/status", accountController.UpdateStatus)
		accountGroup.PUT("/batch-status", accountController.BatchUpdateStatus)
		accountGroup.PUT("/:id/password", accountController.UpdatePassword)
		accountGroup.DELETE("/:id", accountController.DeleteAccount)
		accountGroup.POST("/batch-delete", accountController.BatchDelete)
	}
}
