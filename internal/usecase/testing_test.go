package usecase_test

import (
	"io"
	"testing"
	"time"

	"clinic-ops-api/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Clinic{},
		&entity.Department{},
		&entity.Patient{},
		&entity.Employee{},
		&entity.Service{},
		&entity.Schedule{},
		&entity.Appointment{},
		&entity.Transaction{},
		&entity.TestResult{},
	))

	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func createUser(t *testing.T, db *gorm.DB, username string, role entity.Role) *entity.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		Username:    username,
		Password:    string(hashed),
		FullName:    "Test " + username,
		PhoneNumber: "555-" + username,
		Address:     "1 Test St",
		Gender:      entity.GenderFemale,
		Role:        role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createClinic(t *testing.T, db *gorm.DB, name string) *entity.Clinic {
	t.Helper()

	clinic := &entity.Clinic{Name: name, Address: "2 Test Ave"}
	require.NoError(t, db.Create(clinic).Error)
	return clinic
}

func createDoctor(t *testing.T, db *gorm.DB, username string) *entity.Employee {
	t.Helper()

	user := createUser(t, db, username, entity.RoleDoctor)
	clinic := createClinic(t, db, "clinic-"+username)

	doctor := &entity.Employee{
		UserID:     user.ID,
		ClinicID:   clinic.ID,
		Experience: 5,
		Degree:     "MD",
	}
	require.NoError(t, db.Create(doctor).Error)
	doctor.User = *user
	return doctor
}

func createPatient(t *testing.T, db *gorm.DB, username string) *entity.Patient {
	t.Helper()

	user := createUser(t, db, username, entity.RolePatient)
	patient := &entity.Patient{
		UserID:    user.ID,
		BirthDate: time.Date(1990, 3, 14, 0, 0, 0, 0, time.UTC),
		Address:   "3 Test Rd",
	}
	require.NoError(t, db.Create(patient).Error)
	patient.User = *user
	return patient
}
