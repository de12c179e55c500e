package auth

import (
	"aircargo-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, authService AuthServiceAPI) {
	authController := &AuthController{Service: authService}

	authGroup := r.Group("/api/v1/auth")
	{
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/refresh", authController.Refresh)
	}

	userGroup := r.Group("/api/v1/user")
	userGroup.Use(middlewares.AuthMiddleware())
	{
		userGroup.GET("/info", authController.GetUserInfo)
		userGroup.PUT("/password", authController.ChangePassword)
	}
}
