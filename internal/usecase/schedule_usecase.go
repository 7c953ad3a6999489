package usecase

import (
	"context"
	"time"

	"clinic-ops-api/internal/converter"
	"clinic-ops-api/internal/delivery/dto"
	"clinic-ops-api/internal/domain/entity"
	"clinic-ops-api/internal/domain/repository"
	"clinic-ops-api/internal/scheduling"
	"clinic-ops-api/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ScheduleUsecase interface {
	CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) ([]dto.ScheduleResponse, error)
	GetAvailableSlots(ctx context.Context, doctorID uint, dayOfWeek string) ([]dto.ScheduleResponse, error)
	GetAll(ctx context.Context) ([]dto.ScheduleResponse, error)
	GetPage(ctx context.Context, page, limit int) ([]dto.ScheduleResponse, int64, error)
	GetByID(ctx context.Context, id uint) (*dto.ScheduleResponse, error)
	Delete(ctx context.Context, id uint) error
}

type scheduleUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	scheduleRepo repository.ScheduleRepository
	employeeRepo repository.EmployeeRepository
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	employeeRepo repository.EmployeeRepository,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:           db,
		log:          log,
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateSchedule expands a doctor's declared shift into 15-minute slots.
//
// Flow:
// 1. Resolve the doctor (role-checked employee lookup)
// 2. Parse the declared shift boundaries
// 3. Walk both half-day periods around lunch in slot increments
// 4. Persist the batch as AVAILABLE slots dated today
func (u *scheduleUsecase) CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) ([]dto.ScheduleResponse, error) {
	doctor, err := u.employeeRepo.FindDoctorByID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.ErrEmployeeNotFound
	}

	day := entity.DayOfWeek(req.DayOfWeek)
	if !day.IsValid() {
		return nil, apperror.ErrBadRequest
	}

	start, err := scheduling.Parse(req.StartTime)
	if err != nil {
		return nil, apperror.ErrBadRequest
	}
	end, err := scheduling.Parse(req.EndTime)
	if err != nil {
		return nil, apperror.ErrBadRequest
	}

	now := time.Now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var schedules []*entity.Schedule
	for _, slot := range scheduling.Slots(start, end) {
		schedules = append(schedules, &entity.Schedule{
			DoctorID:  doctor.ID,
			DayOfWeek: day,
			StartTime: slot.Start.String(),
			EndTime:   slot.End.String(),
			Status:    entity.ScheduleStatusAvailable,
			Date:      date,
		})
	}

	if len(schedules) > 0 {
		if err := u.scheduleRepo.CreateAll(u.db.WithContext(ctx), schedules); err != nil {
			u.log.Errorf("Failed to persist %d slots for doctor %d: %+v", len(schedules), doctor.ID, err)
			return nil, err
		}
	}

	u.log.Infof("Generated %d slots: doctor=%d, day=%s, shift=%s-%s",
		len(schedules), doctor.ID, day, req.StartTime, req.EndTime)

	out := make([]entity.Schedule, len(schedules))
	for i, s := range schedules {
		s.Doctor = *doctor
		out[i] = *s
	}
	return converter.SchedulesToResponses(out), nil
}

// GetAvailableSlots lists the AVAILABLE slots for one doctor on one day
func (u *scheduleUsecase) GetAvailableSlots(ctx context.Context, doctorID uint, dayOfWeek string) ([]dto.ScheduleResponse, error) {
	day := entity.DayOfWeek(dayOfWeek)
	if !day.IsValid() {
		return nil, apperror.ErrBadRequest
	}

	doctor, err := u.employeeRepo.FindDoctorByID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.ErrEmployeeNotFound
	}

	schedules, err := u.scheduleRepo.FindAvailableByDoctorAndDay(u.db.WithContext(ctx), doctorID, day)
	if err != nil {
		u.log.Warnf("Failed to list available slots for doctor %d: %+v", doctorID, err)
		return nil, err
	}

	return converter.SchedulesToResponses(schedules), nil
}

func (u *scheduleUsecase) GetAll(ctx context.Context) ([]dto.ScheduleResponse, error) {
	schedules, err := u.scheduleRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list schedules: %+v", err)
		return nil, err
	}
	return converter.SchedulesToResponses(schedules), nil
}

func (u *scheduleUsecase) GetPage(ctx context.Context, page, limit int) ([]dto.ScheduleResponse, int64, error) {
	schedules, total, err := u.scheduleRepo.FindPage(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to page schedules: %+v", err)
		return nil, 0, err
	}
	return converter.SchedulesToResponses(schedules), total, nil
}

func (u *scheduleUsecase) GetByID(ctx context.Context, id uint) (*dto.ScheduleResponse, error) {
	schedule, err := u.scheduleRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find schedule %d: %+v", id, err)
		return nil, err
	}
	if schedule == nil {
		return nil, apperror.ErrScheduleNotFound
	}
	return converter.ScheduleToResponse(schedule), nil
}

func (u *scheduleUsecase) Delete(ctx context.Context, id uint) error {
	rows, err := u.scheduleRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete schedule %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return apperror.ErrScheduleNotFound
	}
	return nil
}
