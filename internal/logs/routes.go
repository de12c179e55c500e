package logs

import (
	"aircargo-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, logService *LogService) {
	logController := &LogController{LogService: logService}

	logGroup := r.Group("/api/v1/logs")
	logGroup.Use(middlewares.AuthMiddleware(), middlewares.RequireAdmin())
	{
		logGroup.POST("/query", logController.GetLogs)
	}
}
