package models

import "math"

// Employee is a directory record with salary components.
// GrossSalary and NetSalary are derived from the component fields.
type Employee struct {
	Base
	EmployeeCode string  `json:"employeeCode" gorm:"uniqueIndex;not null"`
	Name         string  `json:"name" gorm:"not null"`
	Email        string  `json:"email" gorm:"index"`
	Phone        string  `json:"phone"`
	Department   string  `json:"department" gorm:"index"`
	Position     string  `json:"position"`
	HireDate     string  `json:"hireDate" gorm:"type:varchar(10)"`
	Status       string  `json:"status" gorm:"type:varchar(20)"`
	BasicSalary  float64 `json:"basicSalary"`
	HRA          float64 `json:"hra"`
	Allowances   float64 `json:"allowances"`
	Deductions   float64 `json:"deductions"`
	GrossSalary  float64 `json:"grossSalary"`
	NetSalary    float64 `json:"netSalary"`
}

// RecalculateSalary refreshes the derived salary totals, rounded to cents
func (e *Employee) RecalculateSalary() {
	e.GrossSalary = roundCents(e.BasicSalary + e.HRA + e.Allowances)
	e.NetSalary = roundCents(e.GrossSalary - e.Deductions)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
