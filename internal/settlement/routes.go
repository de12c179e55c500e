package settlement

import (
	"aircargo-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, settlementService SettlementServiceAPI) {
	settlementController := &SettlementController{Service: settlementService}

	settlementGroup := r.Group("/api/v1/settlements")
	settlementGroup.Use(middlewares.AuthMiddleware())
	{
		settlementGroup.POST("", settlementController.CreateSettlement)
		settlementGroup.GET("", settlementController.GetSettlements)
		settlementGroup.GET("/export", settlementController.ExportSettlements)
		settlementGroup.GET("/:id", settlementController.GetSettlement)
	}
}
