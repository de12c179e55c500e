package account

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AccountController struct {
	Service AccountServiceAPI
}

type createAccountRequest struct {
	Phone         string   `json:"phone" binding:"required,len=11"`
	Password      string   `json:"password" binding:"required,min=6"`
	Name          string   `json:"name" binding:"required"`
	Permissions   []string `json:"permissions"`
	DepartmentIDs []string `json:"department_ids"`
}

func (ac *AccountController) CreateAccount(c *gin.Context) {
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	departmentIDs, err := parseIDList(req.DepartmentIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid department id"})
		return
	}

	user, err := ac.Service.CreateAccount(CreateAccountInput{
		Phone:         req.Phone,
		Password:      req.Password,
		Name:          req.Name,
		Permissions:   req.Permissions,
		DepartmentIDs: departmentIDs,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"user":    user,
	})
}

func (ac *AccountController) GetAccounts(c *gin.Context) {
	users, err := ac.Service.GetAccounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Accounts fetched successfully",
		"total":   len(users),
		"items":   users,
	})
}

func (ac *AccountController) UpdateStatus(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ac.Service.UpdateStatus(userID, *req.IsActive); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account status updated successfully"})
}

func (ac *AccountController) BatchUpdateStatus(c *gin.Context) {
	var req struct {
		UserIDs  []string `json:"user_ids" binding:"required,min=1"`
		IsActive *bool    `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userIDs, err := parseIDList(req.UserIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	updated, err := ac.Service.BatchUpdateStatus(userIDs, *req.IsActive)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account statuses updated successfully",
		"updated": updated,
	})
}

func (ac *AccountController) UpdatePassword(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req struct {
		NewPassword string `json:"new_password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ac.Service.UpdatePassword(userID, req.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

func (ac *AccountController) DeleteAccount(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := ac.Service.DeleteAccount(userID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}

func (ac *AccountController) BatchDelete(c *gin.Context) {
	var req struct {
		UserIDs []string `json:"user_ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userIDs, err := parseIDList(req.UserIDs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	deleted, err := ac.Service.BatchDelete(userIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Accounts deleted successfully",
		"deleted": deleted,
	})
}

func parseIDList(raw []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(raw))
	for _, s := range raw {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrDepartmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrPhoneExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ErrInvalidPermission):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
