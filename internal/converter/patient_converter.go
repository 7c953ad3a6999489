package converter

import (
	"clinic-ops-api/internal/delivery/dto"
	"clinic-ops-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:           patient.ID,
		UserID:       patient.UserID,
		UserFullName: patient.User.FullName,
		BirthDate:    patient.BirthDate.Format("2006-01-02"),
		Address:      patient.Address,
	}
}

// PatientsToResponses converts a slice of Patient entities to PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
