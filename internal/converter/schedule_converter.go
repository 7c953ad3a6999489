package converter

import (
	"clinic-ops-api/internal/delivery/dto"
	"clinic-ops-api/internal/domain/entity"
)

// ScheduleToResponse converts a Schedule entity to ScheduleResponse DTO
func ScheduleToResponse(schedule *entity.Schedule) *dto.ScheduleResponse {
	if schedule == nil {
		return nil
	}

	return &dto.ScheduleResponse{
		ID:         schedule.ID,
		DoctorName: schedule.Doctor.User.Username,
		DayOfWeek:  string(schedule.DayOfWeek),
		StartTime:  schedule.StartTime,
		EndTime:    schedule.EndTime,
		Status:     string(schedule.Status),
		Date:       schedule.Date.Format("2006-01-02"),
	}
}

// SchedulesToResponses converts a slice of Schedule entities to ScheduleResponse DTOs
func SchedulesToResponses(schedules []entity.Schedule) []dto.ScheduleResponse {
	responses := make([]dto.ScheduleResponse, len(schedules))
	for i := range schedules {
		responses[i] = *ScheduleToResponse(&schedules[i])
	}
	return responses
}
