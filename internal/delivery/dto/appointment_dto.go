package dto

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID   uint   `json:"patient_id" validate:"required"`
	DoctorID    uint   `json:"doctor_id" validate:"required"`
	OrderedDate string `json:"ordered_date" validate:"required"` // Format: YYYY-MM-DD
	OrderedTime string `json:"ordered_time" validate:"required"` // Format: HH:MM
}

// Response DTOs

type AppointmentResponse struct {
	ID          uint   `json:"id"`
	PatientName string `json:"patient_name"`
	DoctorName  string `json:"doctor_name"`
	OrderedDate string `json:"ordered_date"`
	OrderedTime string `json:"ordered_time"`
	OrderStatus string `json:"order_status"`
}
