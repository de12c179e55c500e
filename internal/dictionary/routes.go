package dictionary

import (
	"aircargo-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, dictionaryService DictionaryServiceAPI) {
	dictionaryController := &DictionaryController{Service: dictionaryService}

	dictGroup := r.Group("/api/v1/dict")
	dictGroup.Use(middlewares.AuthMiddleware())
	{
		dictGroup.POST("/types", dictionaryController.CreateType)
		dictGroup.PUT("/types", dictionaryController.UpsertType)
		dictGroup.GET("/types", dictionaryController.GetTypes)
		dictGroup.DELETE("/types/:type", dictionaryController.DeleteType)

		dictGroup.POST("/options", dictionaryController.CreateGroup)
		dictGroup.PUT("/options", dictionaryController.UpsertGroup)
		dictGroup.PUT("/options/:id", dictionaryController.UpdateGroup)
		dictGroup.DELETE("/options/:id", dictionaryController.DeleteGroup)
		dictGroup.DELETE("/options", dictionaryController.DeleteGroupByTypeLabel)
		dictGroup.GET("/options", dictionaryController.GetGroups)
	}
}
