package repository

import (
	"time"

	"clinic-ops-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindPage(db *gorm.DB, limit, offset int) ([]entity.Appointment, int64, error)
	// FindPendingDueBy lists PENDING appointments whose ordered date is
	// on or before the given day. Time-of-day filtering happens in the
	// caller.
	FindPendingDueBy(db *gorm.DB, date time.Time) ([]entity.Appointment, error)
	// FindActiveByPatientAndDoctor returns the patient's PENDING or
	// CONFIRMED appointment with the doctor, if any.
	FindActiveByPatientAndDoctor(db *gorm.DB, patientID, doctorID uint) (*entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id uint) (int64, error)
}
