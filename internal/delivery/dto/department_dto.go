package dto

// Request DTOs

type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateDepartmentRequest struct {
	Name string `json:"name" validate:"required"`
}

// Response DTOs

type DepartmentResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
