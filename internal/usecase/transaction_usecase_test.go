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

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTransactionUsecase(db *gorm.DB) usecase.TransactionUsecase {
	return usecase.NewTransactionUsecase(
		db,
		testLogger(),
		repository.NewTransactionRepository(),
		repository.NewAppointmentRepository(),
		repository.NewPatientRepository(),
		repository.NewServiceRepository(),
		repository.NewEmployeeRepository(),
	)
}

func createService(t *testing.T, db *gorm.DB, name string) *entity.Service {
	t.Helper()

	department := &entity.Department{Name: name + " department"}
	require.NoError(t, db.Create(department).Error)

	service := &entity.Service{
		Name:         name,
		Description:  "n/a",
		Price:        decimal.NewFromInt(50),
		DepartmentID: department.ID,
	}
	require.NoError(t, db.Create(service).Error)
	service.Department = *department
	return service
}

func createPendingAppointment(t *testing.T, db *gorm.DB, patient *entity.Patient, doctor *entity.Employee) *entity.Appointment {
	t.Helper()

	now := time.Now()
	appointment := &entity.Appointment{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		OrderedDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		OrderedTime: "09:00",
		OrderStatus: entity.OrderStatusPending,
	}
	require.NoError(t, db.Create(appointment).Error)
	return appointment
}

func TestCreateTransactionConfirmsAppointment(t *testing.T) {
	db := openTestDB(t)
	uc := newTransactionUsecase(db)
	doctor := createDoctor(t, db, "drpay")
	patient := createPatient(t, db, "patpay")
	service := createService(t, db, "Consultation")
	appointment := createPendingAppointment(t, db, patient, doctor)

	resp, err := uc.Create(context.Background(), &dto.CreateTransactionRequest{
		PatientID:     patient.ID,
		ServiceID:     service.ID,
		Amount:        decimal.NewFromInt(50),
		PaymentMethod: "CASH",
		DoctorID:      doctor.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "CASH", resp.PaymentMethod)
	assert.Equal(t, "Consultation", resp.ServiceName)
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(50)))

	var updated entity.Appointment
	require.NoError(t, db.First(&updated, appointment.ID).Error)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.OrderStatus)
}

func TestCreateTransactionWithoutActiveAppointment(t *testing.T) {
	db := openTestDB(t)
	uc := newTransactionUsecase(db)
	doctor := createDoctor(t, db, "drnoappt")
	patient := createPatient(t, db, "patnoappt")
	service := createService(t, db, "Blood Test")

	_, err := uc.Create(context.Background(), &dto.CreateTransactionRequest{
		PatientID:     patient.ID,
		ServiceID:     service.ID,
		Amount:        decimal.NewFromInt(25),
		PaymentMethod: "CARD",
		DoctorID:      doctor.ID,
	})
	assert.ErrorIs(t, err, apperror.ErrAppointmentNotFound)

	var count int64
	require.NoError(t, db.Model(&entity.Transaction{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateTransactionUnknownService(t *testing.T) {
	db := openTestDB(t)
	uc := newTransactionUsecase(db)
	doctor := createDoctor(t, db, "drnoservice")
	patient := createPatient(t, db, "patnoservice")
	createPendingAppointment(t, db, patient, doctor)

	_, err := uc.Create(context.Background(), &dto.CreateTransactionRequest{
		PatientID:     patient.ID,
		ServiceID:     404,
		Amount:        decimal.NewFromInt(25),
		PaymentMethod: "CASH",
		DoctorID:      doctor.ID,
	})
	assert.ErrorIs(t, err, apperror.ErrServiceNotFound)
}

func TestGetTransactionsByPatient(t *testing.T) {
	db := openTestDB(t)
	uc := newTransactionUsecase(db)
	doctor := createDoctor(t, db, "drhistory")
	patient := createPatient(t, db, "pathistory")
	other := createPatient(t, db, "pathistory2")
	service := createService(t, db, "X-Ray")

	for _, p := range []*entity.Patient{patient, patient, other} {
		createPendingAppointment(t, db, p, doctor)
		_, err := uc.Create(context.Background(), &dto.CreateTransactionRequest{
			PatientID:     p.ID,
			ServiceID:     service.ID,
			Amount:        decimal.NewFromInt(80),
			PaymentMethod: "CARD",
			DoctorID:      doctor.ID,
		})
		require.NoError(t, err)
	}

	transactions, err := uc.GetByPatientID(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Len(t, transactions, 2)
}

func TestDeleteTransactionNotFound(t *testing.T) {
	db := openTestDB(t)
	uc := newTransactionUsecase(db)

	err := uc.Delete(context.Background(), 12345)
	assert.ErrorIs(t, err, apperror.ErrTransactionNotFound)
}
