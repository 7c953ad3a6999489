package dto

// Request DTOs

type CreateTestResultRequest struct {
	PatientID uint   `json:"patient_id" validate:"required"`
	ServiceID uint   `json:"service_id" validate:"required"`
	Result    string `json:"result" validate:"required"`
	DoctorID  uint   `json:"doctor_id" validate:"required"`
}

type UpdateTestResultRequest struct {
	Result string `json:"result" validate:"required"`
}

// Response DTOs

type TestResultResponse struct {
	ID          uint   `json:"id"`
	PatientName string `json:"patient_name"`
	ServiceName string `json:"service_name"`
	Result      string `json:"result"`
	DoctorName  string `json:"doctor_name"`
}
