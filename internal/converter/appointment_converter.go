package converter

import (
	"clinic-ops-api/internal/delivery/dto"
	"clinic-ops-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appointment.ID,
		PatientName: appointment.Patient.User.FullName,
		DoctorName:  appointment.Doctor.User.FullName,
		OrderedDate: appointment.OrderedDate.Format("2006-01-02"),
		OrderedTime: appointment.OrderedTime,
		OrderStatus: string(appointment.OrderStatus),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
