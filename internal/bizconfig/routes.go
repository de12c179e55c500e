package bizconfig

import (
	"aircargo-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, bizConfigService BizConfigServiceAPI) {
	bizConfigController := &BizConfigController{Service: bizConfigService}

	configGroup := r.Group("/api/v1/config")
	configGroup.Use(middlewares.AuthMiddleware())
	{
		configGroup.POST("", bizConfigController.InitializeConfig)
		configGroup.GET("", bizConfigController.GetConfig)
		configGroup.PUT("", bizConfigController.UpdateConfig)
	}
}
