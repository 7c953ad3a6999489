package converter

import (
	"clinic-ops-api/internal/delivery/dto"
	"clinic-ops-api/internal/domain/entity"
)

// EmployeeToResponse converts an Employee entity to EmployeeResponse DTO
func EmployeeToResponse(employee *entity.Employee) *dto.EmployeeResponse {
	if employee == nil {
		return nil
	}

	return &dto.EmployeeResponse{
		ID:           employee.ID,
		UserID:       employee.UserID,
		UserFullName: employee.User.FullName,
		Role:         string(employee.User.Role),
		Experience:   employee.Experience,
		Degree:       employee.Degree,
		ClinicID:     employee.ClinicID,
		ClinicName:   employee.Clinic.Name,
	}
}

// EmployeesToResponses converts a slice of Employee entities to EmployeeResponse DTOs
func EmployeesToResponses(employees []entity.Employee) []dto.EmployeeResponse {
	responses := make([]dto.EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = *EmployeeToResponse(&employees[i])
	}
	return responses
}
