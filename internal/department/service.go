package department

import (
	"errors"

	"aircargo-admin-api/internal/snowflake"

	"gorm.io/gorm"
)

var ErrDepartmentExists = errors.New("department name already exists")

type DepartmentService struct {
	DB    *gorm.DB
	IDGen *snowflake.Generator
}

func (ds *DepartmentService) CreateDepartment(name string) (*Department, error) {
	var existing Department
	err := ds.DB.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, ErrDepartmentExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	id, err := ds.IDGen.NextID()
	if err != nil {
		return nil, err
	}
	dept := Department{ID: id, Name: name}
	if err := ds.DB.Create(&dept).Error; err != nil {
		return nil, err
	}
	return &dept, nil
}

func (ds *DepartmentService) GetAllDepartments() ([]Department, error) {
	var departments []Department
	result := ds.DB.Order("created_at DESC, id DESC").Find(&departments)
	if result.Error != nil {
		return nil, result.Error
	}
	return departments, nil
}
