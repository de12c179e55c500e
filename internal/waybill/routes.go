package waybill

import (
	"aircargo-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, waybillService WaybillServiceAPI) {
	waybillController := &WaybillController{Service: waybillService}

	waybillGroup := r.Group("/api/v1/waybills")
	waybillGroup.Use(middlewares.AuthMiddleware())
	{
		waybillGroup.POST("", waybillController.CreateWaybill)
		waybillGroup.GET("", waybillController.GetWaybills)
		waybillGroup.GET("/:id", waybillController.GetWaybill)
	}
}
