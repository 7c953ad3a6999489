package dto

// Request DTOs

type CreateEmployeeRequest struct {
	UserID     uint   `json:"user_id" validate:"required"`
	ClinicID   uint   `json:"clinic_id" validate:"required"`
	Experience int    `json:"experience" validate:"gte=0"`
	Degree     string `json:"degree" validate:"required"`
}

type UpdateEmployeeRequest struct {
	Experience int    `json:"experience" validate:"gte=0"`
	Degree     string `json:"degree" validate:"required"`
}

// Response DTOs

type EmployeeResponse struct {
	ID           uint   `json:"id"`
	UserID       uint   `json:"user_id"`
	UserFullName string `json:"user_full_name"`
	Role         string `json:"role"`
	Experience   int    `json:"experience"`
	Degree       string `json:"degree"`
	ClinicID     uint   `json:"clinic_id"`
	ClinicName   string `json:"clinic_name"`
}
