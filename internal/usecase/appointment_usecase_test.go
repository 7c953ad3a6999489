package usecase_test

import (
	"context"
	"testing"
	"time"

	"clinic-ops-api/internal/delivery/dto"
	"clinic-ops-api/internal/domain/entity"
	"clinic-ops-api/internal/repository"
	"clinic-ops-api/internal/usecase"
	"clinic-ops-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAppointmentUsecase(db *gorm.DB) usecase.AppointmentUsecase {
	return usecase.NewAppointmentUsecase(
		db,
		testLogger(),
		repository.NewAppointmentRepository(),
		repository.NewScheduleRepository(),
		repository.NewPatientRepository(),
		repository.NewEmployeeRepository(),
	)
}

// seedShift generates a full-day slot set for the doctor on today's
// weekday, so bookings dated today line up with the generated slots.
func seedShift(t *testing.T, db *gorm.DB, doctor *entity.Employee) time.Time {
	t.Helper()

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	uc := usecase.NewScheduleUsecase(db, testLogger(), repository.NewScheduleRepository(), repository.NewEmployeeRepository())
	_, err := uc.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		DoctorID:  doctor.ID,
		DayOfWeek: string(entity.DayOfWeekFromTime(today)),
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)
	return today
}

func TestCreateAppointmentBooksMorningAndAfternoonSlots(t *testing.T) {
	db := openTestDB(t)
	uc := newAppointmentUsecase(db)
	doctor := createDoctor(t, db, "drbooking")
	patient := createPatient(t, db, "patbooking")
	today := seedShift(t, db, doctor)

	resp, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		OrderedDate: today.Format("2006-01-02"),
		OrderedTime: "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "PENDING", resp.OrderStatus)
	assert.Equal(t, "09:00", resp.OrderedTime)

	var booked []entity.Schedule
	require.NoError(t, db.Where("status = ?", entity.ScheduleStatusBooked).Order("start_time ASC").Find(&booked).Error)
	require.Len(t, booked, 2)
	assert.Equal(t, "09:00", booked[0].StartTime)
	assert.Equal(t, "13:00", booked[1].StartTime)
}

func TestCreateAppointmentAtInteriorSlotStart(t *testing.T) {
	db := openTestDB(t)
	uc := newAppointmentUsecase(db)
	doctor := createDoctor(t, db, "drboundary")
	patient := createPatient(t, db, "patboundary")
	today := seedShift(t, db, doctor)

	// 09:15 is both the end of the first slot and the start of the
	// second; the booking must land on the slot starting there.
	_, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		OrderedDate: today.Format("2006-01-02"),
		OrderedTime: "09:15",
	})
	require.NoError(t, err)

	var booked []entity.Schedule
	require.NoError(t, db.Where("status = ?", entity.ScheduleStatusBooked).Order("start_time ASC").Find(&booked).Error)
	require.Len(t, booked, 2)
	assert.Equal(t, "09:15", booked[0].StartTime)
	assert.Equal(t, "09:30", booked[0].EndTime)
	assert.Equal(t, "13:00", booked[1].StartTime)

	var first entity.Schedule
	require.NoError(t, db.Where("doctor_id = ? AND start_time = ?", doctor.ID, "09:00").First(&first).Error)
	assert.Equal(t, entity.ScheduleStatusAvailable, first.Status)

	// The booked start times drop out of the availability listing
	scheduleUC := usecase.NewScheduleUsecase(db, testLogger(), repository.NewScheduleRepository(), repository.NewEmployeeRepository())
	available, err := scheduleUC.GetAvailableSlots(context.Background(), doctor.ID, string(entity.DayOfWeekFromTime(today)))
	require.NoError(t, err)
	for _, slot := range available {
		assert.NotEqual(t, "09:15", slot.StartTime)
		assert.NotEqual(t, "13:00", slot.StartTime)
	}
}

func TestCreateAppointmentDoubleBooking(t *testing.T) {
	db := openTestDB(t)
	uc := newAppointmentUsecase(db)
	doctor := createDoctor(t, db, "drdouble")
	patient := createPatient(t, db, "patdouble")
	other := createPatient(t, db, "patdouble2")
	today := seedShift(t, db, doctor)

	req := &dto.CreateAppointmentRequest{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		OrderedDate: today.Format("2006-01-02"),
		OrderedTime: "10:00",
	}
	_, err := uc.CreateAppointment(context.Background(), req)
	require.NoError(t, err)

	req.PatientID = other.ID
	_, err = uc.CreateAppointment(context.Background(), req)
	assert.ErrorIs(t, err, apperror.ErrSlotAlreadyBooked)

	// The losing attempt must not leave partially booked slots behind
	var booked int64
	require.NoError(t, db.Model(&entity.Schedule{}).
		Where("status = ?", entity.ScheduleStatusBooked).Count(&booked).Error)
	assert.Equal(t, int64(2), booked)
}

func TestCreateAppointmentNoSlotForTime(t *testing.T) {
	db := openTestDB(t)
	uc := newAppointmentUsecase(db)
	doctor := createDoctor(t, db, "drnoslot")
	patient := createPatient(t, db, "patnoslot")
	today := seedShift(t, db, doctor)

	// 08:00 is before the doctor's shift
	_, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		OrderedDate: today.Format("2006-01-02"),
		OrderedTime: "08:00",
	})
	assert.ErrorIs(t, err, apperror.ErrSlotNotAvailable)
}

func TestCreateAppointmentDateMismatch(t *testing.T) {
	db := openTestDB(t)
	uc := newAppointmentUsecase(db)
	doctor := createDoctor(t, db, "drmismatch")
	patient := createPatient(t, db, "patmismatch")

	// Generate slots for next week's weekday: the slots carry today's
	// date, so a booking dated next week hits the weekday match but
	// fails the date check.
	now := time.Now()
	nextWeek := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7)

	scheduleUC := usecase.NewScheduleUsecase(db, testLogger(), repository.NewScheduleRepository(), repository.NewEmployeeRepository())
	_, err := scheduleUC.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		DoctorID:  doctor.ID,
		DayOfWeek: string(entity.DayOfWeekFromTime(nextWeek)),
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)

	_, err = uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		OrderedDate: nextWeek.Format("2006-01-02"),
		OrderedTime: "09:00",
	})
	assert.ErrorIs(t, err, apperror.ErrDateMismatch)
}

func TestCreateAppointmentUnknownPatient(t *testing.T) {
	db := openTestDB(t)
	uc := newAppointmentUsecase(db)
	doctor := createDoctor(t, db, "drnopatient")
	today := seedShift(t, db, doctor)

	_, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:   777,
		DoctorID:    doctor.ID,
		OrderedDate: today.Format("2006-01-02"),
		OrderedTime: "09:00",
	})
	assert.ErrorIs(t, err, apperror.ErrPatientNotFound)
}

func TestCompleteAppointment(t *testing.T) {
	db := openTestDB(t)
	uc := newAppointmentUsecase(db)
	doctor := createDoctor(t, db, "drcomplete")
	patient := createPatient(t, db, "patcomplete")
	today := seedShift(t, db, doctor)

	created, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		OrderedDate: today.Format("2006-01-02"),
		OrderedTime: "14:00",
	})
	require.NoError(t, err)

	resp, err := uc.CompleteAppointment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", resp.OrderStatus)

	// Completing again is a no-op success
	resp, err = uc.CompleteAppointment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", resp.OrderStatus)
}

func TestCompleteAppointmentNotFound(t *testing.T) {
	db := openTestDB(t)
	uc := newAppointmentUsecase(db)

	_, err := uc.CompleteAppointment(context.Background(), 9999)
	assert.ErrorIs(t, err, apperror.ErrAppointmentNotFound)
}

func TestCancelMissedAppointments(t *testing.T) {
	db := openTestDB(t)
	uc := newAppointmentUsecase(db)
	doctor := createDoctor(t, db, "drsweep")
	patient := createPatient(t, db, "patsweep")

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	missed := &entity.Appointment{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		OrderedDate: yesterday,
		OrderedTime: "10:00",
		OrderStatus: entity.OrderStatusPending,
	}
	require.NoError(t, db.Create(missed).Error)

	missedToday := &entity.Appointment{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		OrderedDate: today,
		OrderedTime: "00:00",
		OrderStatus: entity.OrderStatusPending,
	}
	require.NoError(t, db.Create(missedToday).Error)

	upcoming := &entity.Appointment{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		OrderedDate: tomorrow,
		OrderedTime: "10:00",
		OrderStatus: entity.OrderStatusPending,
	}
	require.NoError(t, db.Create(upcoming).Error)

	confirmed := &entity.Appointment{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		OrderedDate: yesterday,
		OrderedTime: "10:00",
		OrderStatus: entity.OrderStatusConfirmed,
	}
	require.NoError(t, db.Create(confirmed).Error)

	cancelled, err := uc.CancelMissedAppointments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, cancelled)

	assertStatus := func(id uint, want entity.OrderStatus) {
		var appointment entity.Appointment
		require.NoError(t, db.First(&appointment, id).Error)
		assert.Equal(t, want, appointment.OrderStatus)
	}
	assertStatus(missed.ID, entity.OrderStatusCancelled)
	assertStatus(missedToday.ID, entity.OrderStatusCancelled)
	assertStatus(upcoming.ID, entity.OrderStatusPending)
	assertStatus(confirmed.ID, entity.OrderStatusConfirmed)
}

func TestCancelMissedKeepsSlotsBooked(t *testing.T) {
	db := openTestDB(t)
	uc := newAppointmentUsecase(db)
	doctor := createDoctor(t, db, "drkeepslots")
	patient := createPatient(t, db, "patkeepslots")
	today := seedShift(t, db, doctor)

	_, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		OrderedDate: today.Format("2006-01-02"),
		OrderedTime: "00:00",
	})
	// 00:00 precedes the shift, so book a real slot instead and backdate it
	assert.ErrorIs(t, err, apperror.ErrSlotNotAvailable)

	created, err := uc.CreateAppointment(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		OrderedDate: today.Format("2006-01-02"),
		OrderedTime: "09:00",
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&entity.Appointment{}).
		Where("id = ?", created.ID).
		Updates(map[string]interface{}{"ordered_date": today.AddDate(0, 0, -1)}).Error)

	cancelled, err := uc.CancelMissedAppointments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, cancelled)

	var booked int64
	require.NoError(t, db.Model(&entity.Schedule{}).
		Where("status = ?", entity.ScheduleStatusBooked).Count(&booked).Error)
	assert.Equal(t, int64(2), booked)
}
