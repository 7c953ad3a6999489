package dto

// Request DTOs

type CreatePatientRequest struct {
	UserID    uint   `json:"user_id" validate:"required"`
	BirthDate string `json:"birth_date" validate:"required"` // Format: YYYY-MM-DD
	Address   string `json:"address" validate:"required"`
}

type UpdatePatientRequest struct {
	BirthDate string `json:"birth_date" validate:"required"` // Format: YYYY-MM-DD
	Address   string `json:"address" validate:"required"`
}

// Response DTOs

type PatientResponse struct {
	ID           uint   `json:"id"`
	UserID       uint   `json:"user_id"`
	UserFullName string `json:"user_full_name"`
	BirthDate    string `json:"birth_date"`
	Address      string `json:"address"`
}
