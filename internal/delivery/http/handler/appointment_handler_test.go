package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-ops-api/internal/delivery/dto"
	"clinic-ops-api/internal/delivery/http/handler"
	"clinic-ops-api/internal/domain/entity"
	"clinic-ops-api/internal/repository"
	"clinic-ops-api/internal/usecase"
	"clinic-ops-api/pkg/apperror"
	"clinic-ops-api/pkg/validator"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAppointmentHandler(t *testing.T) (*handler.AppointmentHandler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Clinic{}, &entity.Patient{}, &entity.Employee{},
		&entity.Schedule{}, &entity.Appointment{},
	))

	log := logrus.New()
	log.SetOutput(io.Discard)

	uc := usecase.NewAppointmentUsecase(
		db,
		log,
		repository.NewAppointmentRepository(),
		repository.NewScheduleRepository(),
		repository.NewPatientRepository(),
		repository.NewEmployeeRepository(),
	)
	return handler.NewAppointmentHandler(uc, validator.NewValidator()), db
}

func TestCreateAppointmentReturnsStableErrorBody(t *testing.T) {
	h, db := newAppointmentHandler(t)

	user := &entity.User{
		Username:    "pat400",
		Password:    "x",
		FullName:    "Patient",
		PhoneNumber: "555-0400",
		Address:     "n/a",
		Gender:      entity.GenderFemale,
		Role:        entity.RolePatient,
	}
	require.NoError(t, db.Create(user).Error)
	patient := &entity.Patient{UserID: user.ID, BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, db.Create(patient).Error)

	doctorUser := &entity.User{
		Username:    "dr400",
		Password:    "x",
		FullName:    "Doctor",
		PhoneNumber: "555-0401",
		Address:     "n/a",
		Gender:      entity.GenderMale,
		Role:        entity.RoleDoctor,
	}
	require.NoError(t, db.Create(doctorUser).Error)
	clinic := &entity.Clinic{Name: "Clinic", Address: "n/a"}
	require.NoError(t, db.Create(clinic).Error)
	doctor := &entity.Employee{UserID: doctorUser.ID, ClinicID: clinic.ID, Experience: 1, Degree: "MD"}
	require.NoError(t, db.Create(doctor).Error)

	// No schedules exist, so any booking fails with the slot code
	body, _ := json.Marshal(dto.CreateAppointmentRequest{
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		OrderedDate: time.Now().Format("2006-01-02"),
		OrderedTime: "09:00",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, int(apperror.CodeSlotNotAvailable), errBody.Code)
	assert.Equal(t, "slot is not available", errBody.Message)
}

func TestCreateAppointmentValidatesPayload(t *testing.T) {
	h, _ := newAppointmentHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody struct {
		Code   int               `json:"code"`
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, int(apperror.CodeBadRequest), errBody.Code)
	assert.Contains(t, errBody.Fields, "PatientID")
}
