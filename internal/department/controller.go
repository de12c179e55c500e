package department

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DepartmentController struct {
	Service DepartmentServiceAPI
}

func (dc *DepartmentController) CreateDepartment(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dept, err := dc.Service.CreateDepartment(req.Name)
	if err != nil {
		if errors.Is(err, ErrDepartmentExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Department created successfully",
		"department": dept,
	})
}

func (dc *DepartmentController) GetAllDepartments(c *gin.Context) {
	departments, err := dc.Service.GetAllDepartments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Departments fetched successfully",
		"total":   len(departments),
		"items":   departments,
	})
}
