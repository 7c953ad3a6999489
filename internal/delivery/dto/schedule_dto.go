package dto

// Request DTOs

type CreateScheduleRequest struct {
	DoctorID  uint   `json:"doctor_id" validate:"required"`
	DayOfWeek string `json:"day_of_week" validate:"required"` // MONDAY..SUNDAY
	StartTime string `json:"start_time" validate:"required"`  // Format: HH:MM
	EndTime   string `json:"end_time" validate:"required"`    // Format: HH:MM
}

// Response DTOs

type ScheduleResponse struct {
	ID         uint   `json:"id"`
	DoctorName string `json:"doctor_name"`
	DayOfWeek  string `json:"day_of_week"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}
