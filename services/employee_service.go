package services

import (
	"github.com/workforce-hub/dto"
	"github.com/workforce-hub/models"
	"github.com/workforce-hub/repositories"
	"github.com/workforce-hub/utils"
)

// EmployeeService manages the employee directory and keeps salary totals
// in step with their components
type EmployeeService struct {
	*ResourceService[models.Employee]
	repo *repositories.ResourceRepository[models.Employee]
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(repo *repositories.ResourceRepository[models.Employee]) *EmployeeService {
	return &EmployeeService{
		ResourceService: NewResourceService(repo, "employee"),
		repo:            repo,
	}
}

// Update merges the sent fields and recalculates gross and net salary
func (s *EmployeeService) Update(id string, req dto.UpdateEmployeeRequest) (models.Employee, error) {
	if err := utils.CheckID("employee", id); err != nil {
		return models.Employee{}, err
	}
	employee, err := s.repo.FindByID(id)
	if err != nil {
		return models.Employee{}, utils.TranslateNotFound(err, "employee", id)
	}

	if err := req.Apply(&employee); err != nil {
		return models.Employee{}, err
	}

	if err := s.repo.Save(&employee); err != nil {
		return models.Employee{}, err
	}
	return employee, nil
}
