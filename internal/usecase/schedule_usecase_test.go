package usecase_test

import (
	"context"
	"testing"

	"clinic-ops-api/internal/delivery/dto"
	"clinic-ops-api/internal/domain/entity"
	"clinic-ops-api/internal/repository"
	"clinic-ops-api/internal/usecase"
	"clinic-ops-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateScheduleMorningShift(t *testing.T) {
	db := openTestDB(t)
	uc := usecase.NewScheduleUsecase(db, testLogger(), repository.NewScheduleRepository(), repository.NewEmployeeRepository())
	doctor := createDoctor(t, db, "drmorning")

	slots, err := uc.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		DoctorID:  doctor.ID,
		DayOfWeek: "MONDAY",
		StartTime: "09:00",
		EndTime:   "13:00",
	})
	require.NoError(t, err)

	// 09:00-12:00 in 15-minute steps, nothing after lunch
	require.Len(t, slots, 12)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "09:15", slots[0].EndTime)
	assert.Equal(t, "11:45", slots[11].StartTime)
	assert.Equal(t, "12:00", slots[11].EndTime)
	for _, slot := range slots {
		assert.Equal(t, "AVAILABLE", slot.Status)
		assert.Equal(t, "MONDAY", slot.DayOfWeek)
	}
}

func TestCreateScheduleFullDaySkipsLunch(t *testing.T) {
	db := openTestDB(t)
	uc := usecase.NewScheduleUsecase(db, testLogger(), repository.NewScheduleRepository(), repository.NewEmployeeRepository())
	doctor := createDoctor(t, db, "drfullday")

	slots, err := uc.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		DoctorID:  doctor.ID,
		DayOfWeek: "TUESDAY",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	require.NoError(t, err)

	// 12 morning + 16 afternoon slots
	require.Len(t, slots, 28)
	for _, slot := range slots {
		assert.NotEqual(t, "12:00", slot.StartTime)
		assert.NotEqual(t, "12:15", slot.StartTime)
		assert.NotEqual(t, "12:30", slot.StartTime)
		assert.NotEqual(t, "12:45", slot.StartTime)
	}
	assert.Equal(t, "13:00", slots[12].StartTime)
	assert.Equal(t, "16:45", slots[27].StartTime)

	var count int64
	require.NoError(t, db.Model(&entity.Schedule{}).Count(&count).Error)
	assert.Equal(t, int64(28), count)
}

func TestCreateScheduleUnknownDoctor(t *testing.T) {
	db := openTestDB(t)
	uc := usecase.NewScheduleUsecase(db, testLogger(), repository.NewScheduleRepository(), repository.NewEmployeeRepository())

	_, err := uc.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		DoctorID:  999,
		DayOfWeek: "MONDAY",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	assert.ErrorIs(t, err, apperror.ErrEmployeeNotFound)
}

func TestCreateScheduleRejectsNonDoctor(t *testing.T) {
	db := openTestDB(t)
	uc := usecase.NewScheduleUsecase(db, testLogger(), repository.NewScheduleRepository(), repository.NewEmployeeRepository())

	user := createUser(t, db, "cashier1", entity.RoleCashier)
	clinic := createClinic(t, db, "clinic-cashier")
	cashier := &entity.Employee{UserID: user.ID, ClinicID: clinic.ID, Experience: 1, Degree: "BBA"}
	require.NoError(t, db.Create(cashier).Error)

	_, err := uc.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		DoctorID:  cashier.ID,
		DayOfWeek: "MONDAY",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	assert.ErrorIs(t, err, apperror.ErrEmployeeNotFound)
}

func TestCreateScheduleInvalidDay(t *testing.T) {
	db := openTestDB(t)
	uc := usecase.NewScheduleUsecase(db, testLogger(), repository.NewScheduleRepository(), repository.NewEmployeeRepository())
	doctor := createDoctor(t, db, "drbadday")

	_, err := uc.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		DoctorID:  doctor.ID,
		DayOfWeek: "FUNDAY",
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	assert.ErrorIs(t, err, apperror.ErrBadRequest)
}

func TestGetAvailableSlotsFiltersBooked(t *testing.T) {
	db := openTestDB(t)
	uc := usecase.NewScheduleUsecase(db, testLogger(), repository.NewScheduleRepository(), repository.NewEmployeeRepository())
	doctor := createDoctor(t, db, "drbookedslots")

	created, err := uc.CreateSchedule(context.Background(), &dto.CreateScheduleRequest{
		DoctorID:  doctor.ID,
		DayOfWeek: "WEDNESDAY",
		StartTime: "09:00",
		EndTime:   "11:00",
	})
	require.NoError(t, err)
	require.Len(t, created, 8)

	require.NoError(t, db.Model(&entity.Schedule{}).
		Where("id = ?", created[0].ID).
		Update("status", entity.ScheduleStatusBooked).Error)

	available, err := uc.GetAvailableSlots(context.Background(), doctor.ID, "WEDNESDAY")
	require.NoError(t, err)
	assert.Len(t, available, 7)
	for _, slot := range available {
		assert.NotEqual(t, created[0].ID, slot.ID)
	}
}

func TestGetAvailableSlotsUnknownDoctor(t *testing.T) {
	db := openTestDB(t)
	uc := usecase.NewScheduleUsecase(db, testLogger(), repository.NewScheduleRepository(), repository.NewEmployeeRepository())

	_, err := uc.GetAvailableSlots(context.Background(), 42, "MONDAY")
	assert.ErrorIs(t, err, apperror.ErrEmployeeNotFound)
}

func TestDeleteScheduleNotFound(t *testing.T) {
	db := openTestDB(t)
	uc := usecase.NewScheduleUsecase(db, testLogger(), repository.NewScheduleRepository(), repository.NewEmployeeRepository())

	err := uc.Delete(context.Background(), 1234)
	assert.ErrorIs(t, err, apperror.ErrScheduleNotFound)
}
