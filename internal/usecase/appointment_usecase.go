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

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	CompleteAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	CancelMissedAppointments(ctx context.Context) (int, error)
	GetAll(ctx context.Context) ([]dto.AppointmentResponse, error)
	GetPage(ctx context.Context, page, limit int) ([]dto.AppointmentResponse, int64, error)
	GetByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, id uint) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	scheduleRepo    repository.ScheduleRepository
	patientRepo     repository.PatientRepository
	employeeRepo    repository.EmployeeRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	scheduleRepo repository.ScheduleRepository,
	patientRepo repository.PatientRepository,
	employeeRepo repository.EmployeeRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		patientRepo:     patientRepo,
		employeeRepo:    employeeRepo,
	}
}

// CreateAppointment books a visit by reserving one slot in each half of
// the doctor's day, morning first, inside a single transaction.
//
// Flow:
// 1. Validate patient and doctor exist
// 2. Derive the day of week from the requested date
// 3. Anchor the morning lookup at the requested time and the afternoon
//    lookup at the end of the lunch break
// 4. For each anchor: find the containing slot, verify it is AVAILABLE
//    and dated for the requested day, then flip it BOOKED with a
//    status-guarded update so a concurrent booking loses
// 5. Insert the appointment as PENDING and commit
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	orderedDate, err := time.Parse("2006-01-02", req.OrderedDate)
	if err != nil {
		return nil, apperror.ErrBadRequest
	}
	orderedTime, err := scheduling.Parse(req.OrderedTime)
	if err != nil {
		return nil, apperror.ErrBadRequest
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, apperror.ErrPatientNotFound
	}

	doctor, err := u.employeeRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, apperror.ErrEmployeeNotFound
	}

	day := entity.DayOfWeekFromTime(orderedDate)

	for _, period := range scheduling.BookingPeriods(orderedTime) {
		slot, err := u.scheduleRepo.FindByDoctorAndTime(tx, doctor.ID, day, period.Start.String())
		if err != nil {
			u.log.Warnf("Failed slot lookup: doctor=%d, day=%s, time=%s: %+v", doctor.ID, day, period.Start, err)
			return nil, err
		}
		if slot == nil {
			return nil, apperror.ErrSlotNotAvailable
		}
		if !slot.IsAvailable() {
			return nil, apperror.ErrSlotAlreadyBooked
		}
		if slot.Date.Format("2006-01-02") != req.OrderedDate {
			return nil, apperror.ErrDateMismatch
		}

		rows, err := u.scheduleRepo.MarkBooked(tx, slot.ID)
		if err != nil {
			u.log.Errorf("Failed to reserve slot %d: %+v", slot.ID, err)
			return nil, err
		}
		if rows == 0 {
			return nil, apperror.ErrSlotAlreadyBooked
		}
	}

	appointment := &entity.Appointment{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		OrderedDate: orderedDate,
		OrderedTime: orderedTime.String(),
		OrderStatus: entity.OrderStatusPending,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Errorf("Failed to insert appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	u.log.Infof("Appointment created: id=%d, patient=%d, doctor=%d, date=%s, time=%s",
		appointment.ID, patient.ID, doctor.ID, req.OrderedDate, appointment.OrderedTime)

	appointment.Patient = *patient
	appointment.Doctor = *doctor
	return converter.AppointmentToResponse(appointment), nil
}

// CompleteAppointment marks a visit finished. Completing an already
// completed appointment is a no-op success.
func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.ErrAppointmentNotFound
	}

	appointment.Complete()
	if err := u.appointmentRepo.Update(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Errorf("Failed to complete appointment %d: %+v", id, err)
		return nil, err
	}

	u.log.Infof("Appointment completed: id=%d", id)
	return converter.AppointmentToResponse(appointment), nil
}

// CancelMissedAppointments cancels PENDING appointments whose visit time
// has passed. Reserved slots stay BOOKED. Returns the number cancelled.
func (u *appointmentUsecase) CancelMissedAppointments(ctx context.Context) (int, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	due, err := u.appointmentRepo.FindPendingDueBy(u.db.WithContext(ctx), today)
	if err != nil {
		u.log.Warnf("Failed to list due appointments: %+v", err)
		return 0, err
	}

	nowTime := scheduling.FromTime(now)
	cancelled := 0
	for i := range due {
		appointment := &due[i]

		if appointment.OrderedDate.Format("2006-01-02") == today.Format("2006-01-02") {
			ordered, err := scheduling.Parse(appointment.OrderedTime)
			if err != nil {
				u.log.Warnf("Skipping appointment %d with malformed time %q", appointment.ID, appointment.OrderedTime)
				continue
			}
			if ordered > nowTime {
				continue
			}
		}

		appointment.Cancel()
		if err := u.appointmentRepo.Update(u.db.WithContext(ctx), appointment); err != nil {
			u.log.Errorf("Failed to cancel appointment %d: %+v", appointment.ID, err)
			return cancelled, err
		}
		cancelled++
	}

	if cancelled > 0 {
		u.log.Infof("Cancelled %d missed appointments", cancelled)
	}
	return cancelled, nil
}

func (u *appointmentUsecase) GetAll(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetPage(ctx context.Context, page, limit int) ([]dto.AppointmentResponse, int64, error) {
	appointments, total, err := u.appointmentRepo.FindPage(u.db.WithContext(ctx), limit, (page-1)*limit)
	if err != nil {
		u.log.Warnf("Failed to page appointments: %+v", err)
		return nil, 0, err
	}
	return converter.AppointmentsToResponses(appointments), total, nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, apperror.ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, id uint) error {
	rows, err := u.appointmentRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return err
	}
	if rows == 0 {
		return apperror.ErrAppointmentNotFound
	}
	return nil
}
