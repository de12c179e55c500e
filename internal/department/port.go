package department

type DepartmentServiceAPI interface {
	CreateDepartment(name string) (*Department, error)
	GetAllDepartments() ([]Department, error)
}
