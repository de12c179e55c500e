package department

import (
	"aircargo-admin-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, departmentService DepartmentServiceAPI) {
	departmentController := &DepartmentController{Service: departmentService}

	deptGroup := r.Group("/api/v1/departments")
	deptGroup.Use(middlewares.AuthMiddleware(), middlewares.RequireAdmin())
	{
		deptGroup.POST("", departmentController.CreateDepartment)
		deptGroup.GET("", departmentController.GetAllDepartments)
	}
}
