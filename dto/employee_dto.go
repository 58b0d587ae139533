package dto

import (
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/utils"
)

// CreateEmployeeRequest carries salary components; totals are derived
type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employeeCode" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Department   string  `json:"department"`
	Position     string  `json:"position"`
	HireDate     string  `json:"hireDate"`
	Status       string  `json:"status"`
	BasicSalary  float64 `json:"basicSalary"`
	HRA          float64 `json:"hra"`
	Allowances   float64 `json:"allowances"`
	Deductions   float64 `json:"deductions"`
}

func validateSalary(field string, v float64) error {
	if v < 0 {
		return utils.NewValidationError(field, "must not be negative")
	}
	return nil
}

// ToModel validates the record and computes gross and net salary.
// Employee records are organisation-wide, so userID is ignored.
func (r CreateEmployeeRequest) ToModel(_ string) (models.Employee, error) {
	if err := utils.RequireText("employeeCode", r.EmployeeCode); err != nil {
		return models.Employee{}, err
	}
	if err := utils.RequireText("name", r.Name); err != nil {
		return models.Employee{}, err
	}
	if err := utils.ValidateDate("hireDate", r.HireDate); err != nil {
		return models.Employee{}, err
	}
	for field, v := range map[string]float64{
		"basicSalary": r.BasicSalary,
		"hra":         r.HRA,
		"allowances":  r.Allowances,
		"deductions":  r.Deductions,
	} {
		if err := validateSalary(field, v); err != nil {
			return models.Employee{}, err
		}
	}

	employee := models.Employee{
		EmployeeCode: r.EmployeeCode,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Department:   r.Department,
		Position:     r.Position,
		HireDate:     r.HireDate,
		Status:       r.Status,
		BasicSalary:  r.BasicSalary,
		HRA:          r.HRA,
		Allowances:   r.Allowances,
		Deductions:   r.Deductions,
	}
	if employee.Status == "" {
		employee.Status = "active"
	}
	employee.RecalculateSalary()
	return employee, nil
}

// UpdateEmployeeRequest is a partial employee update; salary totals are
// recomputed from the merged components
type UpdateEmployeeRequest struct {
	EmployeeCode *string  `json:"employeeCode"`
	Name         *string  `json:"name"`
	Email        *string  `json:"email"`
	Phone        *string  `json:"phone"`
	Department   *string  `json:"department"`
	Position     *string  `json:"position"`
	HireDate     *string  `json:"hireDate"`
	Status       *string  `json:"status"`
	BasicSalary  *float64 `json:"basicSalary"`
	HRA          *float64 `json:"hra"`
	Allowances   *float64 `json:"allowances"`
	Deductions   *float64 `json:"deductions"`
}

// Apply merges the sent fields into employee and refreshes salary totals
func (r UpdateEmployeeRequest) Apply(employee *models.Employee) error {
	if r.EmployeeCode != nil {
		if err := utils.RequireText("employeeCode", *r.EmployeeCode); err != nil {
			return err
		}
		employee.EmployeeCode = *r.EmployeeCode
	}
	if r.Name != nil {
		if err := utils.RequireText("name", *r.Name); err != nil {
			return err
		}
		employee.Name = *r.Name
	}
	if r.HireDate != nil {
		if err := utils.ValidateDate("hireDate", *r.HireDate); err != nil {
			return err
		}
		employee.HireDate = *r.HireDate
	}
	if r.Email != nil {
		employee.Email = *r.Email
	}
	if r.Phone != nil {
		employee.Phone = *r.Phone
	}
	if r.Department != nil {
		employee.Department = *r.Department
	}
	if r.Position != nil {
		employee.Position = *r.Position
	}
	if r.Status != nil {
		employee.Status = *r.Status
	}

	components := []struct {
		field string
		src   *float64
		dst   *float64
	}{
		{"basicSalary", r.BasicSalary, &employee.BasicSalary},
		{"hra", r.HRA, &employee.HRA},
		{"allowances", r.Allowances, &employee.Allowances},
		{"deductions", r.Deductions, &employee.Deductions},
	}
	for _, c := range components {
		if c.src == nil {
			continue
		}
		if err := validateSalary(c.field, *c.src); err != nil {
			return err
		}
		*c.dst = *c.src
	}

	employee.RecalculateSalary()
	return nil
}
